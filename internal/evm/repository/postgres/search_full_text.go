package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
	"github.com/goodnatureofminers/txvault-backend/pkg/safe"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchFullText returns one page of transactions whose full text contains pattern, ignoring case.
func (r *Repository) SearchFullText(ctx context.Context, pattern string, page, size int) (model.Page, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("search_full_text", err, start)
	}()

	const countQuery = `
SELECT count(*)
FROM transactions
WHERE full_text ILIKE '%' || $1 || '%' ESCAPE '\'`

	const pageQuery = `
SELECT ` + selectColumns + `
FROM transactions
WHERE full_text ILIKE '%' || $1 || '%' ESCAPE '\'
ORDER BY block_number DESC, hash
LIMIT $2 OFFSET $3`

	offset, err := safe.Offset(page, size)
	if err != nil {
		err = fmt.Errorf("%w: %w", model.ErrInvalidPage, err)
		return model.Page{}, err
	}

	escaped := likeEscaper.Replace(pattern)

	var total int64
	if err = r.conn.QueryRow(ctx, countQuery, escaped).Scan(&total); err != nil {
		return model.Page{}, fmt.Errorf("count full text matches: %w", err)
	}

	result := model.Page{Items: make([]model.Transaction, 0), Number: page, Size: size}
	if result.Total, err = safe.Uint64(total); err != nil {
		return model.Page{}, err
	}
	if result.Total == 0 {
		return result, nil
	}

	rows, err := r.conn.Query(ctx, pageQuery, escaped, size, offset)
	if err != nil {
		return model.Page{}, fmt.Errorf("query full text page: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row transactionRow
		if err = scanTransaction(rows, &row); err != nil {
			return model.Page{}, fmt.Errorf("scan full text match: %w", err)
		}
		tx, convErr := row.toModel()
		if convErr != nil {
			err = convErr
			return model.Page{}, err
		}
		result.Items = append(result.Items, tx)
	}
	if err = rows.Err(); err != nil {
		return model.Page{}, fmt.Errorf("iterate full text matches: %w", err)
	}

	return result, nil
}
