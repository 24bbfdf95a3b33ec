package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// MaxBlockNumber returns the highest archived block number; false when the archive is empty.
func (r *Repository) MaxBlockNumber(ctx context.Context) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_block_number", err, start)
	}()

	const query = `
SELECT count() AS total, max(block_number) AS max_block
FROM archive_transactions`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return 0, false, fmt.Errorf("query max block number: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		err = fmt.Errorf("max block number not found")
		return 0, false, err
	}

	var total, maxBlock uint64
	if err = rows.Scan(&total, &maxBlock); err != nil {
		return 0, false, fmt.Errorf("scan max block number: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max block number: %w", err)
	}

	return maxBlock, total > 0, nil
}
