package transport

import (
	"context"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Resolver answers the read routes.
type Resolver interface {
	GetByHash(ctx context.Context, hash string) (model.Transaction, error)
	GetByBlock(ctx context.Context, blockNumber uint64) ([]model.Transaction, error)
	Search(ctx context.Context, pattern string, page, size int) (model.Page, error)
}
