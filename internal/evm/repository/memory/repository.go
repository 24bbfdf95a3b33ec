// Package memory implements the durable store contract in process memory.
// It backs development runs without external databases and cross-component tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
	"github.com/goodnatureofminers/txvault-backend/pkg/safe"
)

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository keeps transactions in maps guarded by a RWMutex.
type Repository struct {
	metrics Metrics
	// replayable makes Save of a stored hash a no-op instead of a conflict.
	replayable bool

	mu      sync.RWMutex
	byHash  map[string]model.Transaction
	byBlock map[uint64]map[string]struct{}
}

// NewPrimary returns a store that rejects duplicate hashes like the primary database.
func NewPrimary(metrics Metrics) *Repository {
	return newRepository(metrics, false)
}

// NewArchive returns a store that accepts replayed inserts like the archive database.
func NewArchive(metrics Metrics) *Repository {
	return newRepository(metrics, true)
}

func newRepository(metrics Metrics, replayable bool) *Repository {
	return &Repository{
		metrics:    metrics,
		replayable: replayable,
		byHash:     make(map[string]model.Transaction),
		byBlock:    make(map[uint64]map[string]struct{}),
	}
}

func (r *Repository) observe(operation string, err error, started time.Time) {
	if r.metrics != nil {
		r.metrics.Observe(operation, err, started)
	}
}

// Save stores tx.
func (r *Repository) Save(_ context.Context, tx model.Transaction) (err error) {
	start := time.Now()
	defer func() {
		r.observe("save", err, start)
	}()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byHash[tx.Hash]; ok {
		if r.replayable {
			return nil
		}
		return fmt.Errorf("save transaction %s: %w", tx.Hash, model.ErrDuplicateHash)
	}

	r.byHash[tx.Hash] = tx
	set, ok := r.byBlock[tx.BlockNumber]
	if !ok {
		set = make(map[string]struct{})
		r.byBlock[tx.BlockNumber] = set
	}
	set[tx.Hash] = struct{}{}
	return nil
}

// FindByHash returns the transaction stored under hash.
func (r *Repository) FindByHash(_ context.Context, hash string) (model.Transaction, bool, error) {
	defer r.observe("find_by_hash", nil, time.Now())

	r.mu.RLock()
	defer r.mu.RUnlock()

	tx, ok := r.byHash[hash]
	return tx, ok, nil
}

// FindByBlock returns every transaction of blockNumber.
func (r *Repository) FindByBlock(_ context.Context, blockNumber uint64) ([]model.Transaction, error) {
	defer r.observe("find_by_block", nil, time.Now())

	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.byBlock[blockNumber]
	txs := make([]model.Transaction, 0, len(set))
	for hash := range set {
		txs = append(txs, r.byHash[hash])
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].Hash < txs[j].Hash })
	return txs, nil
}

// MaxBlockNumber returns the highest stored block number; false when empty.
func (r *Repository) MaxBlockNumber(_ context.Context) (uint64, bool, error) {
	defer r.observe("max_block_number", nil, time.Now())

	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		maxBlock uint64
		found    bool
	)
	for blockNumber := range r.byBlock {
		if !found || blockNumber > maxBlock {
			maxBlock, found = blockNumber, true
		}
	}
	return maxBlock, found, nil
}

// DeleteBlocksBelow removes every transaction with a block number below threshold.
func (r *Repository) DeleteBlocksBelow(_ context.Context, threshold uint64) (uint64, error) {
	defer r.observe("delete_blocks_below", nil, time.Now())

	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted uint64
	for blockNumber, set := range r.byBlock {
		if blockNumber >= threshold {
			continue
		}
		for hash := range set {
			delete(r.byHash, hash)
			deleted++
		}
		delete(r.byBlock, blockNumber)
	}
	return deleted, nil
}

// DeleteByHash removes one transaction.
func (r *Repository) DeleteByHash(_ context.Context, hash string) (bool, error) {
	defer r.observe("delete_by_hash", nil, time.Now())

	r.mu.Lock()
	defer r.mu.Unlock()

	tx, ok := r.byHash[hash]
	if !ok {
		return false, nil
	}
	delete(r.byHash, hash)
	if set := r.byBlock[tx.BlockNumber]; set != nil {
		delete(set, hash)
		if len(set) == 0 {
			delete(r.byBlock, tx.BlockNumber)
		}
	}
	return true, nil
}

// SearchFullText returns one page of transactions whose full text contains pattern, ignoring case.
// Matches are ordered by block number descending, then hash.
func (r *Repository) SearchFullText(_ context.Context, pattern string, page, size int) (_ model.Page, err error) {
	start := time.Now()
	defer func() {
		r.observe("search_full_text", err, start)
	}()

	from, err := safe.Offset(page, size)
	if err != nil {
		return model.Page{}, fmt.Errorf("%w: %w", model.ErrInvalidPage, err)
	}

	needle := strings.ToLower(pattern)

	r.mu.RLock()
	matches := make([]model.Transaction, 0)
	for _, tx := range r.byHash {
		if strings.Contains(strings.ToLower(tx.FullText), needle) {
			matches = append(matches, tx)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].BlockNumber != matches[j].BlockNumber {
			return matches[i].BlockNumber > matches[j].BlockNumber
		}
		return matches[i].Hash < matches[j].Hash
	})

	result := model.Page{Items: make([]model.Transaction, 0), Number: page, Size: size, Total: uint64(len(matches))}
	if from >= len(matches) {
		return result, nil
	}
	to := from + min(size, len(matches)-from)
	result.Items = append(result.Items, matches[from:to]...)
	return result, nil
}

// Len returns the number of stored transactions.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byHash)
}
