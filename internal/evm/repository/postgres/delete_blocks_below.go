package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txvault-backend/pkg/safe"
)

// DeleteBlocksBelow removes every transaction with block_number < threshold and returns the count.
func (r *Repository) DeleteBlocksBelow(ctx context.Context, threshold uint64) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_blocks_below", err, start)
	}()

	limit, err := safe.Int64(threshold)
	if err != nil {
		return 0, err
	}

	const query = `
DELETE FROM transactions
WHERE block_number < $1`

	tag, err := r.conn.Exec(ctx, query, limit)
	if err != nil {
		return 0, fmt.Errorf("delete blocks below %d: %w", threshold, err)
	}

	deleted, err := safe.Uint64(tag.RowsAffected())
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
