package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PrimaryStore interface {
		FindByHash(ctx context.Context, hash string) (model.Transaction, bool, error)
		Save(ctx context.Context, tx model.Transaction) error
		DeleteByHash(ctx context.Context, hash string) (bool, error)
	}
	ArchiveStore interface {
		Save(ctx context.Context, tx model.Transaction) error
	}
	// Sink receives every durably stored transaction after Ingest has returned.
	Sink interface {
		Name() string
		Consume(ctx context.Context, tx model.Transaction) error
	}
	Metrics interface {
		ObserveIngest(outcome string, started time.Time)
		ObserveArchiveRetry()
		ObserveSink(sink string, err error)
		ObserveSinkDropped()
	}
)
