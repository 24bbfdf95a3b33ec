package postgres

import (
	"context"
	"fmt"
	"time"
)

// DeleteByHash removes a single transaction. Ingestion uses it to undo a primary
// write whose archive counterpart could not be stored.
func (r *Repository) DeleteByHash(ctx context.Context, hash string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_by_hash", err, start)
	}()

	const query = `
DELETE FROM transactions
WHERE hash = $1`

	tag, err := r.conn.Exec(ctx, query, hash)
	if err != nil {
		return false, fmt.Errorf("delete transaction %s: %w", hash, err)
	}
	return tag.RowsAffected() > 0, nil
}
