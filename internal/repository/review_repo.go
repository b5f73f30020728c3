package repository

import (
	"context"

	"skillsconnect/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) DB() *gorm.DB { return r.db }

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetByArtisan(ctx context.Context, artisanID int64, limit, offset int) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("artisan_id = ?", artisanID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

// Aggregate returns the review count and average rating for an artisan.
func (r *ReviewRepository) Aggregate(ctx context.Context, artisanID int64) (int64, float64, error) {
	var row struct {
		Count int64
		Avg   *float64
	}
	err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Select("COUNT(*) AS count, AVG(rating) AS avg").
		Where("artisan_id = ?", artisanID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	avg := 0.0
	if row.Avg != nil {
		avg = *row.Avg
	}
	return row.Count, avg, nil
}
