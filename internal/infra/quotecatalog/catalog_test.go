package quotecatalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/domain"
)

func setupCatalog(t *testing.T) *Catalog {
	t.Helper()

	db, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewCatalog(db)
}

func TestGetQuotesForCategories(t *testing.T) {
	ctx := context.Background()
	catalog := setupCatalog(t)

	seed := []domain.Quote{
		{ID: "q1", Content: "first", Author: "a1", CategoryID: "cat-1"},
		{ID: "q2", Content: "second", Author: "a2", CategoryID: "cat-1"},
		{ID: "q3", Content: "third", Author: "a3", CategoryID: "cat-2"},
		{ID: "q4", Content: "fourth", Author: "a4", CategoryID: "cat-3"},
	}
	for _, q := range seed {
		require.NoError(t, catalog.UpsertQuote(ctx, q))
	}

	t.Run("single category", func(t *testing.T) {
		quotes, err := catalog.GetQuotesForCategories(ctx, []string{"cat-1"})
		require.NoError(t, err)
		assert.Len(t, quotes, 2)
		for _, q := range quotes {
			assert.Equal(t, "cat-1", q.CategoryID)
		}
	})

	t.Run("multiple categories", func(t *testing.T) {
		quotes, err := catalog.GetQuotesForCategories(ctx, []string{"cat-1", "cat-3"})
		require.NoError(t, err)
		assert.Len(t, quotes, 3)
	})

	t.Run("unknown category", func(t *testing.T) {
		quotes, err := catalog.GetQuotesForCategories(ctx, []string{"cat-missing"})
		require.NoError(t, err)
		assert.Empty(t, quotes)
	})

	t.Run("empty category list", func(t *testing.T) {
		quotes, err := catalog.GetQuotesForCategories(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, quotes)
	})
}

func TestUpsertQuoteReplaces(t *testing.T) {
	ctx := context.Background()
	catalog := setupCatalog(t)

	require.NoError(t, catalog.UpsertQuote(ctx, domain.Quote{
		ID: "q1", Content: "before", Author: "a1", CategoryID: "cat-1",
	}))
	require.NoError(t, catalog.UpsertQuote(ctx, domain.Quote{
		ID: "q1", Content: "after", Author: "a1", CategoryID: "cat-2",
	}))

	count, err := catalog.CountQuotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	quotes, err := catalog.GetQuotesForCategories(ctx, []string{"cat-2"})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "after", quotes[0].Content)
}

func TestCountQuotesEmpty(t *testing.T) {
	ctx := context.Background()
	catalog := setupCatalog(t)

	count, err := catalog.CountQuotes(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening an already migrated database must not fail.
	db, err = Open(dir)
	require.NoError(t, err)
	defer db.Close()

	var version int
	require.NoError(t, db.QueryRow("PRAGMA user_version;").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}
