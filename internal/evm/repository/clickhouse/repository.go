// Package clickhouse implements the unbounded archive transaction store on ClickHouse.
// The archive never deletes; it exposes no pruning operation.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=driver_mocks_test.go -package=$GOPACKAGE github.com/ClickHouse/clickhouse-go/v2/lib/driver Rows

type (
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		AsyncInsert(ctx context.Context, query string, wait bool, args ...any) error
		Close() error
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

const selectColumns = `hash, from_address, to_address, value, gas_price, gas, input, block_number, transaction_index, full_text`

// Repository is the archive store.
type Repository struct {
	conn    Conn
	metrics Metrics
}

// NewRepository opens a ClickHouse connection for dsn.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics}, nil
}

// Close closes the underlying connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

func scanTransaction(rows driver.Rows) (model.Transaction, error) {
	var tx model.Transaction
	err := rows.Scan(
		&tx.Hash,
		&tx.From,
		&tx.To,
		&tx.Value,
		&tx.GasPrice,
		&tx.Gas,
		&tx.Input,
		&tx.BlockNumber,
		&tx.TransactionIndex,
		&tx.FullText,
	)
	return tx, err
}

func closeRows(rows driver.Rows, err *error) {
	if closeErr := rows.Close(); closeErr != nil && *err == nil {
		*err = fmt.Errorf("close rows: %w", closeErr)
	}
}
