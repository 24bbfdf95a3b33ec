package follower

import (
	"context"
	"time"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Source interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) ([]model.RawTransaction, error)
	}
	Ingester interface {
		Ingest(ctx context.Context, raw model.RawTransaction) error
	}
	Checkpoint interface {
		Load() (uint64, bool, error)
		Save(height uint64) error
	}
	ArchiveStore interface {
		MaxBlockNumber(ctx context.Context) (uint64, bool, error)
	}
	Metrics interface {
		ObserveFetchLatest(err error)
		ObserveProcessBatch(err error, heights int, started time.Time)
		ObserveProcessHeight(err error, height uint64)
		SetCheckpoint(height uint64)
	}
)
