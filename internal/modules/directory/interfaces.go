package directory

import (
	"context"

	"skillsconnect/internal/domain"

	"gorm.io/gorm"
)

type ArtisanRepositoryInterface interface {
	Create(ctx context.Context, a *domain.Artisan) error
	GetByID(ctx context.Context, id int64) (*domain.Artisan, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Update(ctx context.Context, a *domain.Artisan) error
	GetAll(ctx context.Context, limit, offset int) ([]domain.Artisan, int64, error)
	DB() *gorm.DB
}

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
