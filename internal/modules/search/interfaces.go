package search

import (
	"context"

	"skillsconnect/internal/domain"
)

// ArtisanSource supplies the full directory snapshot a search runs over.
type ArtisanSource interface {
	List(ctx context.Context) ([]domain.Artisan, error)
}

// QueryLogWriter persists the append-only audit record of each search.
type QueryLogWriter interface {
	Create(ctx context.Context, entry *domain.SearchRequestLog) error
}
