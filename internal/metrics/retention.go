package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	retentionRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txvault",
		Subsystem: "retention",
		Name:      "runs_total",
		Help:      "Count of cleanup cycles by job and status.",
	}, []string{"job", "status"})
	retentionRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txvault",
		Subsystem: "retention",
		Name:      "run_duration_seconds",
		Help:      "Duration of cleanup cycles.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"job", "status"})
	retentionRemovedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txvault",
		Subsystem: "retention",
		Name:      "removed_total",
		Help:      "Count of records removed by cleanup.",
	}, []string{"job"})
	retentionThreshold = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "txvault",
		Subsystem: "retention",
		Name:      "threshold_block",
		Help:      "Block number below which the last cleanup removed records.",
	}, []string{"job"})
)

// Retention tracks metrics for the cleanup jobs.
type Retention struct{}

// NewRetention creates a Retention collector.
func NewRetention() *Retention {
	return &Retention{}
}

// ObserveCleanup records one cleanup cycle.
func (m Retention) ObserveCleanup(job string, threshold, removed uint64, err error, started time.Time) {
	status := statusOf(err)
	retentionRunsTotal.WithLabelValues(job, status).Inc()
	retentionRunDuration.WithLabelValues(job, status).Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	retentionRemovedTotal.WithLabelValues(job).Add(float64(removed))
	retentionThreshold.WithLabelValues(job).Set(float64(threshold))
}

// ObserveSkipped records a cycle skipped because the primary store is empty.
func (m Retention) ObserveSkipped(job string) {
	retentionRunsTotal.WithLabelValues(job, "skipped").Inc()
}
