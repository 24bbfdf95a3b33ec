package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchIndexPublishTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txvault",
		Subsystem: "search_index",
		Name:      "publish_total",
		Help:      "Count of batches published to the search index topic.",
	}, []string{"status"})
	searchIndexPublishedDocuments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txvault",
		Subsystem: "search_index",
		Name:      "documents_total",
		Help:      "Count of documents handed to the search index topic.",
	}, []string{"status"})
	searchIndexPublishDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txvault",
		Subsystem: "search_index",
		Name:      "publish_duration_seconds",
		Help:      "Duration of publishing a batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// SearchIndex tracks metrics for the search index publisher.
type SearchIndex struct{}

// NewSearchIndex creates a SearchIndex collector.
func NewSearchIndex() *SearchIndex {
	return &SearchIndex{}
}

// ObservePublish records one published batch.
func (m SearchIndex) ObservePublish(documents int, err error, started time.Time) {
	status := statusOf(err)
	searchIndexPublishTotal.WithLabelValues(status).Inc()
	searchIndexPublishedDocuments.WithLabelValues(status).Add(float64(documents))
	searchIndexPublishDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
