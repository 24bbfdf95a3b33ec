package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var hotCacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "txvault",
	Subsystem: "hot_cache",
	Name:      "entries",
	Help:      "Number of transactions held by the hot cache.",
})

// HotCache publishes the hot cache size.
type HotCache struct{}

// NewHotCache creates a HotCache collector.
func NewHotCache() *HotCache {
	return &HotCache{}
}

// SetEntries publishes the current number of cached transactions.
func (m HotCache) SetEntries(n int) {
	hotCacheEntries.Set(float64(n))
}
