package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
)

// FindByHash returns the archived transaction stored under hash.
func (r *Repository) FindByHash(ctx context.Context, hash string) (model.Transaction, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_by_hash", err, start)
	}()

	const query = `
SELECT ` + selectColumns + `
FROM archive_transactions
WHERE hash = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, hash)
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("query archive transaction %s: %w", hash, err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Transaction{}, false, fmt.Errorf("iterate archive transaction %s: %w", hash, err)
		}
		return model.Transaction{}, false, nil
	}

	tx, err := scanTransaction(rows)
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("scan archive transaction %s: %w", hash, err)
	}
	if err = rows.Err(); err != nil {
		return model.Transaction{}, false, fmt.Errorf("iterate archive transaction %s: %w", hash, err)
	}
	return tx, true, nil
}
