package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
)

// Save appends tx to the archive and waits until the insert is acknowledged.
// Replayed inserts of the same hash collapse on merge and are hidden from reads.
func (r *Repository) Save(ctx context.Context, tx model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save", err, start)
	}()

	const query = `
INSERT INTO archive_transactions (
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
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	err = r.conn.AsyncInsert(ctx, query, true,
		tx.Hash,
		tx.From,
		tx.To,
		tx.Value,
		tx.GasPrice,
		tx.Gas,
		tx.Input,
		tx.BlockNumber,
		tx.TransactionIndex,
		tx.FullText,
	)
	if err != nil {
		return fmt.Errorf("insert archive transaction %s: %w", tx.Hash, err)
	}
	return nil
}
