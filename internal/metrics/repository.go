// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txvault",
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of durable store operations.",
	}, []string{"operation", "store", "status"})
	repositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txvault",
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of durable store operations.",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "store", "status"})
)

// Repository tracks metrics for one durable store.
type Repository struct {
	store string
}

// NewRepository creates a Repository collector labelled with the store name.
func NewRepository(store string) *Repository {
	if store == "" {
		store = "unknown"
	}
	return &Repository{store: store}
}

// Observe records duration and status of a store operation.
func (m Repository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)

	repositoryOperationsTotal.WithLabelValues(operation, m.store, status).Inc()
	repositoryOperationDuration.WithLabelValues(operation, m.store, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
