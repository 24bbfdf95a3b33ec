package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
	"github.com/jackc/pgx/v5"
)

// FindByHash returns the transaction stored under hash.
func (r *Repository) FindByHash(ctx context.Context, hash string) (model.Transaction, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_by_hash", err, start)
	}()

	const query = `
SELECT ` + selectColumns + `
FROM transactions
WHERE hash = $1`

	var row transactionRow
	if err = scanTransaction(r.conn.QueryRow(ctx, query, hash), &row); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = nil
			return model.Transaction{}, false, nil
		}
		return model.Transaction{}, false, fmt.Errorf("query transaction %s: %w", hash, err)
	}

	tx, err := row.toModel()
	if err != nil {
		return model.Transaction{}, false, err
	}
	return tx, true, nil
}
