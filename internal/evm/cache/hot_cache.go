// Package cache holds the in-memory tier over the most recent blocks.
package cache

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
	gocache "github.com/patrickmn/go-cache"
)

// SinkName identifies the hot cache among ingestion sinks.
const SinkName = "hot_cache"

type (
	Metrics interface {
		SetEntries(n int)
	}
)

// HotCache indexes recent transactions by hash and by block number.
// It is safe for concurrent use; a Put racing EvictBelow may survive until the next eviction.
type HotCache struct {
	byHash  *gocache.Cache
	metrics Metrics

	mu      sync.RWMutex
	byBlock map[uint64]map[string]model.Transaction
}

// New creates an empty HotCache.
func New(metrics Metrics) *HotCache {
	return &HotCache{
		byHash:  gocache.New(gocache.NoExpiration, 0),
		metrics: metrics,
		byBlock: make(map[uint64]map[string]model.Transaction),
	}
}

// Put stores tx under its hash and adds it to its block set.
func (c *HotCache) Put(tx model.Transaction) {
	c.mu.Lock()
	set, ok := c.byBlock[tx.BlockNumber]
	if !ok {
		set = make(map[string]model.Transaction)
		c.byBlock[tx.BlockNumber] = set
	}
	set[tx.Hash] = tx
	c.mu.Unlock()

	c.byHash.Set(tx.Hash, tx, gocache.NoExpiration)
	c.publishSize()
}

// GetByHash returns the cached transaction for hash.
func (c *HotCache) GetByHash(hash string) (model.Transaction, bool) {
	v, ok := c.byHash.Get(hash)
	if !ok {
		return model.Transaction{}, false
	}
	tx, ok := v.(model.Transaction)
	return tx, ok
}

// GetByBlock returns a copy of the cached transactions of a block, empty when none are cached.
func (c *HotCache) GetByBlock(blockNumber uint64) []model.Transaction {
	c.mu.RLock()
	defer c.mu.RUnlock()

	set := c.byBlock[blockNumber]
	out := make([]model.Transaction, 0, len(set))
	for _, tx := range set {
		out = append(out, tx)
	}
	return out
}

// EvictBelow removes every transaction whose block number is below threshold
// and returns how many hash entries were removed.
func (c *HotCache) EvictBelow(threshold uint64) int {
	evicted := 0
	for hash, item := range c.byHash.Items() {
		tx, ok := item.Object.(model.Transaction)
		if !ok || tx.BlockNumber < threshold {
			c.byHash.Delete(hash)
			evicted++
		}
	}

	c.mu.Lock()
	for blockNumber := range c.byBlock {
		if blockNumber < threshold {
			delete(c.byBlock, blockNumber)
		}
	}
	c.mu.Unlock()

	c.publishSize()
	return evicted
}

// Len returns the number of cached transactions.
func (c *HotCache) Len() int {
	return c.byHash.ItemCount()
}

// Name implements the ingestion sink contract.
func (c *HotCache) Name() string {
	return SinkName
}

// Consume implements the ingestion sink contract by caching tx.
func (c *HotCache) Consume(_ context.Context, tx model.Transaction) error {
	c.Put(tx)
	return nil
}

func (c *HotCache) publishSize() {
	if c.metrics != nil {
		c.metrics.SetEntries(c.byHash.ItemCount())
	}
}
