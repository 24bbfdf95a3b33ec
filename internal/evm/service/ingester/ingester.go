// Package ingester turns feed events into durably stored transactions and
// fans them out to the asynchronous sinks.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
	"github.com/goodnatureofminers/txvault-backend/pkg/dispatcher"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Config sizes the sink dispatcher.
type Config struct {
	QueueCapacity int
	Workers       int
}

// Service is the single write path into the durable stores.
type Service struct {
	logger     *zap.Logger
	primary    PrimaryStore
	archive    ArchiveStore
	sinks      []Sink
	metrics    Metrics
	dispatcher *dispatcher.Dispatcher[model.Transaction]
	newBackOff func() backoff.BackOff
	inflight   singleflight.Group
}

// NewService builds an ingestion Service. Sinks run in the given order for every record.
func NewService(
	primary PrimaryStore,
	archive ArchiveStore,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
	sinks ...Sink,
) (*Service, error) {
	if primary == nil {
		return nil, errors.New("primary store is required")
	}
	if archive == nil {
		return nil, errors.New("archive store is required")
	}
	if metrics == nil {
		return nil, errors.New("ingester metrics is required")
	}
	if cfg.QueueCapacity <= 0 {
		cfg.QueueCapacity = defaultQueueCapacity
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkerCount
	}

	s := &Service{
		logger:     logger,
		primary:    primary,
		archive:    archive,
		sinks:      sinks,
		metrics:    metrics,
		newBackOff: archiveBackOff,
	}
	s.dispatcher = dispatcher.New(logger.Named("dispatcher"), s.fanOut, cfg.QueueCapacity, cfg.Workers)
	return s, nil
}

// Start launches the sink workers.
func (s *Service) Start(ctx context.Context) {
	s.dispatcher.Start(ctx)
}

// Stop drains queued records through the sinks and stops the workers.
func (s *Service) Stop() {
	s.dispatcher.Stop()
}

// Flush blocks until every record accepted so far has passed through all sinks.
func (s *Service) Flush(ctx context.Context) error {
	return s.dispatcher.Flush(ctx)
}

// Ingest stores a feed event in the primary and archive stores and schedules sink delivery.
// Redelivery of a stored hash is discarded, and concurrent calls for one hash share a single execution.
func (s *Service) Ingest(ctx context.Context, raw model.RawTransaction) error {
	_, err, _ := s.inflight.Do(raw.Hash, func() (any, error) {
		started := time.Now()
		outcome, err := s.ingest(ctx, raw)
		s.metrics.ObserveIngest(outcome, started)
		return nil, err
	})
	return err
}

func (s *Service) ingest(ctx context.Context, raw model.RawTransaction) (string, error) {
	logger := s.logger.With(zap.String("hash", raw.Hash), zap.Uint64("block", raw.BlockNumber))

	_, found, err := s.primary.FindByHash(ctx, raw.Hash)
	if err != nil {
		return outcomeError, fmt.Errorf("%w: look up %s: %w", model.ErrWriteFailure, raw.Hash, err)
	}
	if found {
		logger.Debug("duplicate event discarded")
		return outcomeDuplicate, nil
	}

	tx := model.NewTransaction(raw)
	if err := s.primary.Save(ctx, tx); err != nil {
		if errors.Is(err, model.ErrDuplicateHash) {
			return outcomeDuplicate, err
		}
		return outcomeError, fmt.Errorf("%w: save %s: %w", model.ErrWriteFailure, tx.Hash, err)
	}

	if err := s.saveArchive(ctx, tx, logger); err != nil {
		s.rollback(ctx, tx, logger)
		return outcomeError, fmt.Errorf("%w: %s: %w", model.ErrPartialArchive, tx.Hash, err)
	}

	s.dispatch(tx, logger)
	return outcomeIngested, nil
}

func (s *Service) saveArchive(ctx context.Context, tx model.Transaction, logger *zap.Logger) error {
	op := func() error {
		return s.archive.Save(ctx, tx)
	}
	notify := func(err error, next time.Duration) {
		s.metrics.ObserveArchiveRetry()
		logger.Warn("archive write failed; record is in primary only until retry succeeds",
			zap.Error(err), zap.Duration("retry_in", next))
	}
	return backoff.RetryNotify(op, backoff.WithContext(s.newBackOff(), ctx), notify)
}

// rollback removes the primary copy so that redelivery takes the full write path again.
func (s *Service) rollback(ctx context.Context, tx model.Transaction, logger *zap.Logger) {
	deleted, err := s.primary.DeleteByHash(context.WithoutCancel(ctx), tx.Hash)
	if err != nil {
		logger.Error("rollback of primary write failed; primary holds a record missing from archive, reconcile manually",
			zap.Error(err))
		return
	}
	logger.Warn("primary write rolled back after archive failure", zap.Bool("deleted", deleted))
}

func (s *Service) dispatch(tx model.Transaction, logger *zap.Logger) {
	if len(s.sinks) == 0 {
		return
	}
	if !s.dispatcher.Submit(tx) {
		s.metrics.ObserveSinkDropped()
		logger.Warn("sink queue full; record served from durable stores only")
	}
}

func (s *Service) fanOut(ctx context.Context, tx model.Transaction) {
	for _, sink := range s.sinks {
		err := sink.Consume(ctx, tx)
		s.metrics.ObserveSink(sink.Name(), err)
		if err != nil {
			s.logger.Warn("sink failed",
				zap.String("sink", sink.Name()),
				zap.String("hash", tx.Hash),
				zap.Error(err))
		}
	}
}

func archiveBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = archiveInitialInterval
	b.MaxInterval = archiveMaxInterval
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, archiveMaxRetries)
}
