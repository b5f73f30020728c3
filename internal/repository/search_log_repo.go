package repository

import (
	"context"
	"time"

	"skillsconnect/internal/domain"

	"gorm.io/gorm"
)

type SearchLogRepository struct {
	db *gorm.DB
}

func NewSearchLogRepository(db *gorm.DB) *SearchLogRepository {
	return &SearchLogRepository{db: db}
}

func (r *SearchLogRepository) DB() *gorm.DB { return r.db }

func (r *SearchLogRepository) Create(ctx context.Context, entry *domain.SearchRequestLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *SearchLogRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.SearchRequestLog{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
