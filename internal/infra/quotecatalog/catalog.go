package quotecatalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/domain"
)

type Catalog struct {
	db *sql.DB
}

func NewCatalog(db *sql.DB) *Catalog {
	return &Catalog{db: db}
}

// GetQuotesForCategories returns every quote in the given interest categories.
// An empty category list yields an empty pool, not an error; the scheduler
// treats that as the no-content condition.
func (c *Catalog) GetQuotesForCategories(ctx context.Context, categoryIDs []string) ([]domain.Quote, error) {
	if len(categoryIDs) == 0 {
		return []domain.Quote{}, nil
	}

	placeholders := make([]string, len(categoryIDs))
	args := make([]any, len(categoryIDs))
	for i, id := range categoryIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(
		`SELECT id, content, author, category_id FROM quotes WHERE category_id IN (%s)`,
		strings.Join(placeholders, ","),
	)

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	quotes := make([]domain.Quote, 0)
	for rows.Next() {
		var q domain.Quote
		if err := rows.Scan(&q.ID, &q.Content, &q.Author, &q.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotes: %w", err)
	}

	return quotes, nil
}

// UpsertQuote inserts or replaces a quote; used by the catalog sync job and tests.
func (c *Catalog) UpsertQuote(ctx context.Context, quote domain.Quote) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO quotes (id, content, author, category_id, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   content = excluded.content,
		   author = excluded.author,
		   category_id = excluded.category_id`,
		quote.ID, quote.Content, quote.Author, quote.CategoryID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert quote: %w", err)
	}
	return nil
}

// CountQuotes reports the catalog size, used by the readiness check.
func (c *Catalog) CountQuotes(ctx context.Context) (int, error) {
	var count int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quotes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count quotes: %w", err)
	}
	return count, nil
}
