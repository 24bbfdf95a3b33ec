// Package follower polls an execution node for new blocks and feeds their transactions to ingestion.
package follower

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txvault-backend/internal/clock"
	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
	"github.com/goodnatureofminers/txvault-backend/pkg/workerpool"
	"go.uber.org/zap"
)

// Config tunes the follower. Zero values select defaults; a zero StartBlock means the chain head.
type Config struct {
	BatchSize    uint64
	Workers      int
	StartBlock   uint64
	PollInterval time.Duration
}

// Service delivers every block after the checkpoint to the ingester, a window at a time.
type Service struct {
	logger     *zap.Logger
	source     Source
	ingester   Ingester
	checkpoint Checkpoint
	archive    ArchiveStore
	metrics    Metrics
	sleep      func(context.Context, time.Duration) error

	batchSize     uint64
	workers       int
	startBlock    uint64
	pollInterval  time.Duration
	errorInterval time.Duration

	next uint64
}

// NewService builds a follower Service with dependencies.
func NewService(
	source Source,
	ingester Ingester,
	checkpoint Checkpoint,
	archive ArchiveStore,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	if source == nil || ingester == nil || checkpoint == nil || archive == nil {
		return nil, errors.New("source, ingester, checkpoint and archive are required")
	}
	if metrics == nil {
		return nil, errors.New("follower metrics is required")
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkerCount
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	return &Service{
		logger:        logger,
		source:        source,
		ingester:      ingester,
		checkpoint:    checkpoint,
		archive:       archive,
		metrics:       metrics,
		sleep:         clock.SleepWithContext,
		batchSize:     cfg.BatchSize,
		workers:       cfg.Workers,
		startBlock:    cfg.StartBlock,
		pollInterval:  cfg.PollInterval,
		errorInterval: errorSleepDuration,
	}, nil
}

// Run follows the chain until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	for {
		err := s.resolveStart(ctx)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Warn("resolve start height failed, backing off", zap.Error(err), zap.Duration("sleep", s.errorInterval))
		if sleepErr := s.sleep(ctx, s.errorInterval); sleepErr != nil {
			return sleepErr
		}
	}
	s.logger.Info("following chain", zap.Uint64("from", s.next))

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.errorInterval))
			if sleepErr := s.sleep(ctx, s.errorInterval); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

// resolveStart picks the first height to deliver: after the checkpoint, else after the
// archive head, else the configured start block, else the chain head. A start not taken
// from the checkpoint is persisted at once, so a crash inside the first window restarts
// from the same height rather than from whatever the archive head became.
func (s *Service) resolveStart(ctx context.Context) error {
	height, found, err := s.checkpoint.Load()
	if err != nil {
		return err
	}
	if found {
		s.next = height + 1
		s.metrics.SetCheckpoint(height)
		return nil
	}

	next, err := s.initialHeight(ctx)
	if err != nil {
		return err
	}
	if next > 0 {
		if err := s.checkpoint.Save(next - 1); err != nil {
			return fmt.Errorf("persist start height: %w", err)
		}
		s.metrics.SetCheckpoint(next - 1)
	}
	s.next = next
	return nil
}

func (s *Service) initialHeight(ctx context.Context) (uint64, error) {
	height, found, err := s.archive.MaxBlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("read archive head: %w", err)
	}
	if found {
		return height + 1, nil
	}

	if s.startBlock > 0 {
		return s.startBlock, nil
	}

	latest, err := s.source.LatestHeight(ctx)
	s.metrics.ObserveFetchLatest(err)
	if err != nil {
		return 0, err
	}
	return latest, nil
}

func (s *Service) run(ctx context.Context) error {
	latest, err := s.source.LatestHeight(ctx)
	s.metrics.ObserveFetchLatest(err)
	if err != nil {
		s.logger.Error("fetch chain head failed", zap.Error(err))
		return err
	}

	if s.next > latest {
		s.logger.Debug("no new blocks; sleeping", zap.Uint64("head", latest), zap.Duration("sleep", s.pollInterval))
		return s.sleep(ctx, s.pollInterval)
	}

	end := min(latest, s.next+s.batchSize-1)
	heights := make([]uint64, 0, end-s.next+1)
	for h := s.next; h <= end; h++ {
		heights = append(heights, h)
	}

	started := time.Now()
	err = workerpool.Process(ctx, s.workers, heights, s.processHeight)
	s.metrics.ObserveProcessBatch(err, len(heights), started)
	if err != nil {
		return err
	}

	if err := s.checkpoint.Save(end); err != nil {
		return err
	}
	s.metrics.SetCheckpoint(end)
	s.next = end + 1
	s.logger.Debug("window delivered", zap.Uint64("from", heights[0]), zap.Uint64("to", end))
	return nil
}

func (s *Service) processHeight(ctx context.Context, height uint64) (err error) {
	defer func() {
		s.metrics.ObserveProcessHeight(err, height)
	}()

	txs, err := s.source.FetchBlock(ctx, height)
	if err != nil {
		return err
	}

	for _, raw := range txs {
		if err := s.ingester.Ingest(ctx, raw); err != nil {
			if errors.Is(err, model.ErrDuplicateHash) {
				s.logger.Debug("duplicate transaction skipped", zap.String("hash", raw.Hash), zap.Uint64("block", height))
				continue
			}
			return fmt.Errorf("ingest %s at block %d: %w", raw.Hash, height, err)
		}
	}
	return nil
}
