package quotecatalog

import (
	"context"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mock.go -package=quotecatalog

// QuoteRepository reads the candidate quote pool. The catalog is synced from
// the content backend out-of-band; scheduling only ever reads it.
type QuoteRepository interface {
	GetQuotesForCategories(ctx context.Context, categoryIDs []string) ([]domain.Quote, error)
}
