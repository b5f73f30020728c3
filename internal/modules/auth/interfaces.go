package auth

import (
	"context"

	"skillsconnect/internal/domain"

	"gorm.io/gorm"
)

// UserRepositoryInterface covers only the methods the auth service uses.
type UserRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	DB() *gorm.DB
}
