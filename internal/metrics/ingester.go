package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txvault",
		Subsystem: "ingester",
		Name:      "events_total",
		Help:      "Count of feed events by ingestion outcome.",
	}, []string{"outcome"})
	ingesterEventDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txvault",
		Subsystem: "ingester",
		Name:      "event_duration_seconds",
		Help:      "Duration of the synchronous part of ingestion.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
	ingesterArchiveRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "txvault",
		Subsystem: "ingester",
		Name:      "archive_retries_total",
		Help:      "Count of archive write attempts that failed and were retried.",
	})
	ingesterSinkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txvault",
		Subsystem: "ingester",
		Name:      "sink_deliveries_total",
		Help:      "Count of asynchronous sink deliveries.",
	}, []string{"sink", "status"})
	ingesterSinkDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "txvault",
		Subsystem: "ingester",
		Name:      "sink_dropped_total",
		Help:      "Count of records not dispatched to sinks because the queue was full.",
	})
)

// Ingester tracks metrics for the ingestion pipeline.
type Ingester struct{}

// NewIngester creates an Ingester collector.
func NewIngester() *Ingester {
	return &Ingester{}
}

// ObserveIngest records the outcome of one feed event.
func (m Ingester) ObserveIngest(outcome string, started time.Time) {
	if outcome == "" {
		outcome = "unknown"
	}
	ingesterEventsTotal.WithLabelValues(outcome).Inc()
	ingesterEventDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// ObserveArchiveRetry counts a failed archive attempt.
func (m Ingester) ObserveArchiveRetry() {
	ingesterArchiveRetriesTotal.Inc()
}

// ObserveSink records one sink delivery.
func (m Ingester) ObserveSink(sink string, err error) {
	ingesterSinkTotal.WithLabelValues(sink, statusOf(err)).Inc()
}

// ObserveSinkDropped counts a record dropped before reaching the sinks.
func (m Ingester) ObserveSinkDropped() {
	ingesterSinkDroppedTotal.Inc()
}
