package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
	"github.com/goodnatureofminers/txvault-backend/pkg/safe"
)

// SearchFullText returns one page of archived transactions whose full text contains pattern, ignoring case.
func (r *Repository) SearchFullText(ctx context.Context, pattern string, page, size int) (model.Page, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("search_full_text", err, start)
	}()

	offset, err := safe.Offset(page, size)
	if err != nil {
		err = fmt.Errorf("%w: %w", model.ErrInvalidPage, err)
		return model.Page{}, err
	}

	result := model.Page{Items: make([]model.Transaction, 0), Number: page, Size: size}

	if result.Total, err = r.countMatches(ctx, pattern); err != nil {
		return model.Page{}, err
	}
	if result.Total == 0 {
		return result, nil
	}

	const query = `
SELECT ` + selectColumns + `
FROM archive_transactions
WHERE positionCaseInsensitiveUTF8(full_text, ?) > 0
ORDER BY block_number DESC, hash
LIMIT 1 BY hash
LIMIT ? OFFSET ?`

	rows, err := r.conn.Query(ctx, query, pattern, size, offset)
	if err != nil {
		return model.Page{}, fmt.Errorf("query full text page: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		tx, scanErr := scanTransaction(rows)
		if scanErr != nil {
			err = fmt.Errorf("scan full text match: %w", scanErr)
			return model.Page{}, err
		}
		result.Items = append(result.Items, tx)
	}
	if err = rows.Err(); err != nil {
		return model.Page{}, fmt.Errorf("iterate full text matches: %w", err)
	}
	return result, nil
}

func (r *Repository) countMatches(ctx context.Context, pattern string) (total uint64, err error) {
	const query = `
SELECT uniqExact(hash)
FROM archive_transactions
WHERE positionCaseInsensitiveUTF8(full_text, ?) > 0`

	rows, err := r.conn.Query(ctx, query, pattern)
	if err != nil {
		return 0, fmt.Errorf("count full text matches: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		return 0, fmt.Errorf("count full text matches: no result")
	}
	if err = rows.Scan(&total); err != nil {
		return 0, fmt.Errorf("scan full text count: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate full text count: %w", err)
	}
	return total, nil
}
