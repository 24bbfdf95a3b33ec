package resolver

import (
	"context"
	"time"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Cache interface {
		GetByHash(hash string) (model.Transaction, bool)
		GetByBlock(blockNumber uint64) []model.Transaction
	}
	Store interface {
		FindByHash(ctx context.Context, hash string) (model.Transaction, bool, error)
		FindByBlock(ctx context.Context, blockNumber uint64) ([]model.Transaction, error)
	}
	ArchiveStore interface {
		Store
		SearchFullText(ctx context.Context, pattern string, page, size int) (model.Page, error)
	}
	Metrics interface {
		ObserveLookup(kind, tier string, err error, started time.Time)
	}
)
