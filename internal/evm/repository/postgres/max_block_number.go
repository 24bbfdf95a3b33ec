package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txvault-backend/pkg/safe"
)

// MaxBlockNumber returns the highest stored block number; false when the table is empty.
func (r *Repository) MaxBlockNumber(ctx context.Context) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_block_number", err, start)
	}()

	const query = `
SELECT max(block_number)
FROM transactions`

	var maxBlock *int64
	if err = r.conn.QueryRow(ctx, query).Scan(&maxBlock); err != nil {
		return 0, false, fmt.Errorf("query max block number: %w", err)
	}
	if maxBlock == nil {
		return 0, false, nil
	}

	height, err := safe.Uint64(*maxBlock)
	if err != nil {
		return 0, false, err
	}
	return height, true, nil
}
