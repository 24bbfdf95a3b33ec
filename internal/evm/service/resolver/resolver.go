// Package resolver answers reads from the fastest tier that holds the data.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
	"github.com/goodnatureofminers/txvault-backend/pkg/safe"
	"go.uber.org/zap"
)

// DefaultMaxPageSize bounds the search page size.
const DefaultMaxPageSize = 1000

const (
	tierCache   = "cache"
	tierPrimary = "primary"
	tierArchive = "archive"
	tierNone    = "none"

	kindHash   = "hash"
	kindBlock  = "block"
	kindSearch = "search"
)

// Service resolves reads across the hot cache, the primary store and the archive.
type Service struct {
	logger      *zap.Logger
	cache       Cache
	primary     Store
	archive     ArchiveStore
	metrics     Metrics
	maxPageSize int
}

// NewService builds a resolver. A non-positive maxPageSize selects DefaultMaxPageSize.
func NewService(cache Cache, primary Store, archive ArchiveStore, metrics Metrics, maxPageSize int, logger *zap.Logger) (*Service, error) {
	if cache == nil || primary == nil || archive == nil {
		return nil, errors.New("cache, primary and archive are required")
	}
	if metrics == nil {
		return nil, errors.New("resolver metrics is required")
	}
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}
	return &Service{
		logger:      logger,
		cache:       cache,
		primary:     primary,
		archive:     archive,
		metrics:     metrics,
		maxPageSize: maxPageSize,
	}, nil
}

// GetByHash returns the transaction for hash from the first tier that holds it.
// A failing primary store is skipped; a failing archive yields ErrStoreUnavailable.
func (s *Service) GetByHash(ctx context.Context, hash string) (tx model.Transaction, err error) {
	started := time.Now()
	tier := tierNone
	defer func() {
		s.metrics.ObserveLookup(kindHash, tier, err, started)
	}()

	if tx, ok := s.cache.GetByHash(hash); ok {
		tier = tierCache
		return tx, nil
	}

	tx, found, err := s.primary.FindByHash(ctx, hash)
	switch {
	case err != nil:
		s.logger.Warn("primary lookup failed; falling back to archive", zap.String("hash", hash), zap.Error(err))
	case found:
		tier = tierPrimary
		return tx, nil
	}

	tx, found, err = s.archive.FindByHash(ctx, hash)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: archive lookup %s: %w", model.ErrStoreUnavailable, hash, err)
	}
	if !found {
		return model.Transaction{}, fmt.Errorf("%w: %s", model.ErrNotFound, hash)
	}
	tier = tierArchive
	return tx, nil
}

// GetByBlock returns the transactions of a block from the first tier that has any.
// An unknown block yields an empty list.
func (s *Service) GetByBlock(ctx context.Context, blockNumber uint64) (txs []model.Transaction, err error) {
	started := time.Now()
	tier := tierNone
	defer func() {
		s.metrics.ObserveLookup(kindBlock, tier, err, started)
	}()

	if cached := s.cache.GetByBlock(blockNumber); len(cached) > 0 {
		tier = tierCache
		return cached, nil
	}

	stored, err := s.primary.FindByBlock(ctx, blockNumber)
	switch {
	case err != nil:
		s.logger.Warn("primary block lookup failed; falling back to archive",
			zap.Uint64("block", blockNumber), zap.Error(err))
	case len(stored) > 0:
		tier = tierPrimary
		return stored, nil
	}

	archived, err := s.archive.FindByBlock(ctx, blockNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: archive block %d: %w", model.ErrStoreUnavailable, blockNumber, err)
	}
	if len(archived) > 0 {
		tier = tierArchive
		return archived, nil
	}
	return make([]model.Transaction, 0), nil
}

// Search runs a case-insensitive substring search over the archive.
func (s *Service) Search(ctx context.Context, pattern string, page, size int) (result model.Page, err error) {
	started := time.Now()
	tier := tierArchive
	defer func() {
		s.metrics.ObserveLookup(kindSearch, tier, err, started)
	}()

	if size > s.maxPageSize {
		tier = tierNone
		return model.Page{}, fmt.Errorf("%w: page %d size %d (max %d)", model.ErrInvalidPage, page, size, s.maxPageSize)
	}
	if _, err := safe.Offset(page, size); err != nil {
		tier = tierNone
		return model.Page{}, fmt.Errorf("%w: %w", model.ErrInvalidPage, err)
	}

	result, err = s.archive.SearchFullText(ctx, pattern, page, size)
	if err != nil {
		return model.Page{}, fmt.Errorf("%w: archive search: %w", model.ErrStoreUnavailable, err)
	}
	return result, nil
}
