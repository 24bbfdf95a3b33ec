package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
	"github.com/goodnatureofminers/txvault-backend/pkg/safe"
)

// Save inserts tx. A hash that already exists yields model.ErrDuplicateHash.
func (r *Repository) Save(ctx context.Context, tx model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save", err, start)
	}()

	block, err := safe.Int64(tx.BlockNumber)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO transactions (
    hash,
    from_address,
    to_address,
    value,
    gas_price,
    gas,
    input,
    block_number,
    transaction_index,
    full_text
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = r.conn.Exec(ctx, query,
		tx.Hash,
		tx.From,
		tx.To,
		tx.Value,
		tx.GasPrice,
		tx.Gas,
		tx.Input,
		block,
		tx.TransactionIndex,
		tx.FullText,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert transaction %s: %w", tx.Hash, model.ErrDuplicateHash)
		}
		return fmt.Errorf("insert transaction %s: %w", tx.Hash, err)
	}
	return nil
}
