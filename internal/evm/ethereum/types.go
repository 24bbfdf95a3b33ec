package ethereum

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Client is the subset of ethclient.Client the feed relies on.
	Client interface {
		BlockNumber(ctx context.Context) (uint64, error)
		BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
		ChainID(ctx context.Context) (*big.Int, error)
	}
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
