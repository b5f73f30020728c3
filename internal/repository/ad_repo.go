package repository

import (
	"context"
	"time"

	"skillsconnect/internal/domain"

	"gorm.io/gorm"
)

type AdRepository struct {
	db *gorm.DB
}

func NewAdRepository(db *gorm.DB) *AdRepository {
	return &AdRepository{db: db}
}

func (r *AdRepository) DB() *gorm.DB { return r.db }

func (r *AdRepository) Create(ctx context.Context, ad *domain.Ad) error {
	return r.db.WithContext(ctx).Create(ad).Error
}

func (r *AdRepository) GetByID(ctx context.Context, id int64) (*domain.Ad, error) {
	var ad domain.Ad
	if err := r.db.WithContext(ctx).First(&ad, id).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *AdRepository) Update(ctx context.Context, ad *domain.Ad) error {
	return r.db.WithContext(ctx).Save(ad).Error
}

// Delete removes the ad row permanently. Ads are the one entity with a
// hard-delete flow.
func (r *AdRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Ad{}, id).Error
}

func (r *AdRepository) ListAll(ctx context.Context) ([]domain.Ad, error) {
	var ads []domain.Ad
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ads).Error
	return ads, err
}

// ListActive returns ads that are switched on and inside their date
// window at the given moment, optionally filtered by placement.
func (r *AdRepository) ListActive(ctx context.Context, placement string, now time.Time) ([]domain.Ad, error) {
	q := r.db.WithContext(ctx).Model(&domain.Ad{}).
		Where("is_active = ?", true).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now)

	if placement != "" {
		q = q.Where("placement = ?", placement)
	}

	var ads []domain.Ad
	err := q.Order("created_at DESC").Find(&ads).Error
	return ads, err
}

func (r *AdRepository) IncrementImpressions(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.Ad{}).
		Where("id = ?", id).
		UpdateColumn("impressions", gorm.Expr("impressions + 1")).Error
}

func (r *AdRepository) IncrementClicks(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.Ad{}).
		Where("id = ?", id).
		UpdateColumn("clicks", gorm.Expr("clicks + 1")).Error
}
