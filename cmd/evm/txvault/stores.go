package main

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
	"github.com/goodnatureofminers/txvault-backend/internal/evm/repository/clickhouse"
	"github.com/goodnatureofminers/txvault-backend/internal/evm/repository/memory"
	"github.com/goodnatureofminers/txvault-backend/internal/evm/repository/postgres"
	"github.com/goodnatureofminers/txvault-backend/internal/metrics"
	"go.uber.org/zap"
)

type primaryStore interface {
	Save(ctx context.Context, tx model.Transaction) error
	FindByHash(ctx context.Context, hash string) (model.Transaction, bool, error)
	FindByBlock(ctx context.Context, blockNumber uint64) ([]model.Transaction, error)
	MaxBlockNumber(ctx context.Context) (uint64, bool, error)
	DeleteBlocksBelow(ctx context.Context, threshold uint64) (uint64, error)
	DeleteByHash(ctx context.Context, hash string) (bool, error)
}

type archiveStore interface {
	Save(ctx context.Context, tx model.Transaction) error
	FindByHash(ctx context.Context, hash string) (model.Transaction, bool, error)
	FindByBlock(ctx context.Context, blockNumber uint64) ([]model.Transaction, error)
	MaxBlockNumber(ctx context.Context) (uint64, bool, error)
	SearchFullText(ctx context.Context, pattern string, page, size int) (model.Page, error)
}

type stores struct {
	primary primaryStore
	archive archiveStore
	closers []func()
}

func (s *stores) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func openStores(ctx context.Context, cfg config, logger *zap.Logger) (*stores, error) {
	if cfg.InMemory {
		logger.Warn("running with in-memory stores; data is lost on exit")
		return &stores{
			primary: memory.NewPrimary(metrics.NewRepository("memory_primary")),
			archive: memory.NewArchive(metrics.NewRepository("memory_archive")),
		}, nil
	}

	if cfg.PostgresDSN == "" || cfg.ClickhouseDSN == "" {
		return nil, fmt.Errorf("postgres and clickhouse DSNs are required unless --in-memory is set")
	}

	pg, err := postgres.NewRepository(ctx, cfg.PostgresDSN, metrics.NewRepository("postgres"))
	if err != nil {
		return nil, fmt.Errorf("init postgres repository: %w", err)
	}
	ch, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewRepository("clickhouse"))
	if err != nil {
		pg.Close()
		return nil, fmt.Errorf("init clickhouse repository: %w", err)
	}

	return &stores{
		primary: pg,
		archive: ch,
		closers: []func(){
			pg.Close,
			func() {
				if err := ch.Close(); err != nil {
					logger.Warn("close clickhouse", zap.Error(err))
				}
			},
		},
	}, nil
}
