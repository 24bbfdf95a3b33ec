package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	followerFetchLatestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txvault",
		Subsystem: "follower",
		Name:      "fetch_latest_total",
		Help:      "Count of attempts to discover the chain head.",
	}, []string{"network", "status"})

	followerProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txvault",
		Subsystem: "follower",
		Name:      "process_batch_total",
		Help:      "Count of block windows processed.",
	}, []string{"network", "status"})

	followerProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txvault",
		Subsystem: "follower",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing a block window.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	followerProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txvault",
		Subsystem: "follower",
		Name:      "process_batch_size",
		Help:      "Number of blocks processed per window.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"network"})

	followerProcessHeightTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txvault",
		Subsystem: "follower",
		Name:      "process_height_total",
		Help:      "Count of blocks delivered to ingestion.",
	}, []string{"network", "status"})

	followerCheckpointHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "txvault",
		Subsystem: "follower",
		Name:      "checkpoint_height",
		Help:      "Last block height fully delivered to ingestion.",
	}, []string{"network"})
)

// Follower tracks metrics for the chain follower.
type Follower struct {
	network string
}

// NewFollower constructs a Follower collector.
func NewFollower(network string) *Follower {
	if network == "" {
		network = "unknown"
	}
	return &Follower{network: network}
}

// ObserveFetchLatest records a chain head lookup.
func (m Follower) ObserveFetchLatest(err error) {
	followerFetchLatestTotal.WithLabelValues(m.network, statusOf(err)).Inc()
}

// ObserveProcessBatch records processing of a block window.
func (m Follower) ObserveProcessBatch(err error, heights int, started time.Time) {
	status := statusOf(err)
	followerProcessBatchTotal.WithLabelValues(m.network, status).Inc()
	followerProcessBatchDuration.WithLabelValues(m.network, status).
		Observe(time.Since(started).Seconds())
	followerProcessBatchSize.WithLabelValues(m.network).
		Observe(float64(heights))
}

// ObserveProcessHeight records delivery of a single block.
func (m Follower) ObserveProcessHeight(err error, _ uint64) {
	followerProcessHeightTotal.WithLabelValues(m.network, statusOf(err)).Inc()
}

// SetCheckpoint publishes the persisted checkpoint height.
func (m Follower) SetCheckpoint(height uint64) {
	followerCheckpointHeight.WithLabelValues(m.network).Set(float64(height))
}
