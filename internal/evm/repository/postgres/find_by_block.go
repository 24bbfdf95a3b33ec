package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
	"github.com/goodnatureofminers/txvault-backend/pkg/safe"
)

// FindByBlock returns every transaction stored for blockNumber.
func (r *Repository) FindByBlock(ctx context.Context, blockNumber uint64) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_by_block", err, start)
	}()

	block, err := safe.Int64(blockNumber)
	if err != nil {
		return nil, err
	}

	const query = `
SELECT ` + selectColumns + `
FROM transactions
WHERE block_number = $1`

	rows, err := r.conn.Query(ctx, query, block)
	if err != nil {
		return nil, fmt.Errorf("query block %d: %w", blockNumber, err)
	}
	defer rows.Close()

	txs := make([]model.Transaction, 0)
	for rows.Next() {
		var row transactionRow
		if err = scanTransaction(rows, &row); err != nil {
			return nil, fmt.Errorf("scan block %d: %w", blockNumber, err)
		}
		tx, convErr := row.toModel()
		if convErr != nil {
			err = convErr
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block %d: %w", blockNumber, err)
	}

	return txs, nil
}
