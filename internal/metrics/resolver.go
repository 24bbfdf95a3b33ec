package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolverLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txvault",
		Subsystem: "resolver",
		Name:      "lookups_total",
		Help:      "Count of lookups by kind and the tier that answered.",
	}, []string{"kind", "tier", "status"})
	resolverLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txvault",
		Subsystem: "resolver",
		Name:      "lookup_duration_seconds",
		Help:      "Duration of lookups by kind and answering tier.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"kind", "tier"})
)

// Resolver tracks metrics for tiered reads.
type Resolver struct{}

// NewResolver creates a Resolver collector.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ObserveLookup records which tier answered a lookup.
func (m Resolver) ObserveLookup(kind, tier string, err error, started time.Time) {
	if tier == "" {
		tier = "none"
	}
	resolverLookupsTotal.WithLabelValues(kind, tier, statusOf(err)).Inc()
	resolverLookupDuration.WithLabelValues(kind, tier).Observe(time.Since(started).Seconds())
}
