// Package postgres implements the primary transaction store on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=pgx_mocks_test.go -package=$GOPACKAGE github.com/jackc/pgx/v5 Rows,Row

const uniqueViolation = "23505"

type (
	Conn interface {
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository is the bounded-retention primary store.
type Repository struct {
	conn    Conn
	metrics Metrics
	close   func()
}

// NewRepository opens a pgx pool for dsn and checks connectivity.
func NewRepository(ctx context.Context, dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Repository{conn: pool, metrics: metrics, close: pool.Close}, nil
}

// Close releases the connection pool.
func (r *Repository) Close() {
	if r.close != nil {
		r.close()
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner, tx *transactionRow) error {
	return row.Scan(
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
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
