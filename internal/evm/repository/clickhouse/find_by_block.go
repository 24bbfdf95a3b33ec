package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
)

// FindByBlock returns every archived transaction of blockNumber.
func (r *Repository) FindByBlock(ctx context.Context, blockNumber uint64) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_by_block", err, start)
	}()

	const query = `
SELECT ` + selectColumns + `
FROM archive_transactions
WHERE block_number = ?
ORDER BY hash
LIMIT 1 BY hash`

	rows, err := r.conn.Query(ctx, query, blockNumber)
	if err != nil {
		return nil, fmt.Errorf("query archive block %d: %w", blockNumber, err)
	}
	defer closeRows(rows, &err)

	txs := make([]model.Transaction, 0)
	for rows.Next() {
		tx, scanErr := scanTransaction(rows)
		if scanErr != nil {
			err = fmt.Errorf("scan archive block %d: %w", blockNumber, scanErr)
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate archive block %d: %w", blockNumber, err)
	}
	return txs, nil
}
