package admin

import (
	"context"
	"time"

	"skillsconnect/internal/domain"

	"gorm.io/gorm"
)

type ArtisanRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Artisan, error)
	Update(ctx context.Context, a *domain.Artisan) error
	GetPendingPaginated(ctx context.Context, limit, offset int) ([]domain.Artisan, int64, error)
	DB() *gorm.DB
}

type SearchLogRepository interface {
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type AdRepository interface {
	DB() *gorm.DB
}
