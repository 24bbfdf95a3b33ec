package retention

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// PrimaryStore is the only store retention may delete from. The archive does not satisfy it.
	PrimaryStore interface {
		MaxBlockNumber(ctx context.Context) (uint64, bool, error)
		DeleteBlocksBelow(ctx context.Context, threshold uint64) (uint64, error)
	}
	Cache interface {
		EvictBelow(threshold uint64) int
	}
	Metrics interface {
		ObserveCleanup(job string, threshold, removed uint64, err error, started time.Time)
		ObserveSkipped(job string)
	}
)
