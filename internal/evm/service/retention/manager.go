// Package retention shrinks the hot cache and the primary store to trailing block windows.
package retention

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txvault-backend/internal/clock"
	"github.com/goodnatureofminers/txvault-backend/pkg/safe"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	jobCache = "cache"
	jobDB    = "db"
)

// Manager runs the cache eviction and primary store deletion jobs.
type Manager struct {
	logger  *zap.Logger
	primary PrimaryStore
	cache   Cache
	cfg     Config
	metrics Metrics
	wait    func(ctx context.Context, d time.Duration, signal <-chan struct{}) error

	cacheTrigger chan struct{}
	dbTrigger    chan struct{}
}

// NewManager validates cfg and builds a Manager.
func NewManager(primary PrimaryStore, cache Cache, cfg Config, metrics Metrics, logger *zap.Logger) (*Manager, error) {
	if primary == nil {
		return nil, errors.New("primary store is required")
	}
	if cache == nil {
		return nil, errors.New("cache is required")
	}
	if metrics == nil {
		return nil, errors.New("retention metrics is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid retention config: %w", err)
	}

	return &Manager{
		logger:       logger,
		primary:      primary,
		cache:        cache,
		cfg:          cfg,
		metrics:      metrics,
		wait:         clock.WaitOrSignal,
		cacheTrigger: make(chan struct{}, 1),
		dbTrigger:    make(chan struct{}, 1),
	}, nil
}

// CleanupCache evicts cached transactions older than the cache window.
func (m *Manager) CleanupCache(ctx context.Context) error {
	started := time.Now()

	threshold, ok, err := m.threshold(ctx, m.cfg.CacheWindow)
	if err != nil {
		m.metrics.ObserveCleanup(jobCache, 0, 0, err, started)
		return err
	}
	if !ok {
		m.metrics.ObserveSkipped(jobCache)
		m.logger.Debug("primary store empty; cache cleanup skipped")
		return nil
	}

	evicted := m.cache.EvictBelow(threshold)
	m.metrics.ObserveCleanup(jobCache, threshold, uint64(evicted), nil, started)
	m.logger.Debug("cache cleanup done", zap.Uint64("threshold", threshold), zap.Int("evicted", evicted))
	return nil
}

// CleanupDB deletes primary store transactions older than the database window.
// The archive is never touched.
func (m *Manager) CleanupDB(ctx context.Context) error {
	started := time.Now()

	threshold, ok, err := m.threshold(ctx, m.cfg.DBWindow)
	if err != nil {
		m.metrics.ObserveCleanup(jobDB, 0, 0, err, started)
		return err
	}
	if !ok {
		m.metrics.ObserveSkipped(jobDB)
		m.logger.Debug("primary store empty; db cleanup skipped")
		return nil
	}

	deleted, err := m.primary.DeleteBlocksBelow(ctx, threshold)
	m.metrics.ObserveCleanup(jobDB, threshold, deleted, err, started)
	if err != nil {
		return fmt.Errorf("delete blocks below %d: %w", threshold, err)
	}
	m.logger.Info("db cleanup done", zap.Uint64("threshold", threshold), zap.Uint64("deleted", deleted))
	return nil
}

// threshold returns max block number minus window, saturating at zero. ok is false when the primary store is empty.
func (m *Manager) threshold(ctx context.Context, window uint64) (uint64, bool, error) {
	maxBlock, found, err := m.primary.MaxBlockNumber(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("read max block number: %w", err)
	}
	if !found {
		return 0, false, nil
	}
	return safe.SubFloor(maxBlock, window), true, nil
}

// TriggerCacheCleanup asks the cache job to run now. Pending triggers coalesce.
func (m *Manager) TriggerCacheCleanup() {
	signal(m.cacheTrigger)
}

// TriggerDBCleanup asks the db job to run now. Pending triggers coalesce.
func (m *Manager) TriggerDBCleanup() {
	signal(m.dbTrigger)
}

// Run schedules both jobs until ctx is canceled.
func (m *Manager) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return m.loop(ctx, jobCache, m.cfg.CachePeriod, m.cacheTrigger, m.CleanupCache)
	})
	g.Go(func() error {
		return m.loop(ctx, jobDB, m.cfg.DBPeriod, m.dbTrigger, m.CleanupDB)
	})
	return g.Wait()
}

func (m *Manager) loop(
	ctx context.Context,
	job string,
	period time.Duration,
	trigger <-chan struct{},
	cleanup func(context.Context) error,
) error {
	logger := m.logger.With(zap.String("job", job))
	for {
		if err := m.wait(ctx, period, trigger); err != nil {
			return err
		}
		if err := cleanup(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn("cleanup failed; retrying on next tick", zap.Error(err), zap.Duration("period", period))
		}
	}
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
