package repository

import (
	"context"
	"strings"

	"skillsconnect/internal/domain"

	"gorm.io/gorm"
)

type ArtisanRepository struct {
	db *gorm.DB
}

func NewArtisanRepository(db *gorm.DB) *ArtisanRepository {
	return &ArtisanRepository{db: db}
}

func (r *ArtisanRepository) DB() *gorm.DB { return r.db }

func (r *ArtisanRepository) Create(ctx context.Context, a *domain.Artisan) error {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ArtisanRepository) GetByID(ctx context.Context, id int64) (*domain.Artisan, error) {
	var a domain.Artisan
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArtisanRepository) GetByEmail(ctx context.Context, email string) (*domain.Artisan, error) {
	var a domain.Artisan
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArtisanRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Artisan{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	return count > 0, err
}

func (r *ArtisanRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Artisan{}).
		Where("phone = ?", strings.TrimSpace(phone)).
		Count(&count).Error
	return count > 0, err
}

func (r *ArtisanRepository) Update(ctx context.Context, a *domain.Artisan) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// List returns every artisan record. The search pipeline filters and
// ranks in memory; the directory is small (tens to low hundreds).
func (r *ArtisanRepository) List(ctx context.Context) ([]domain.Artisan, error) {
	var artisans []domain.Artisan
	err := r.db.WithContext(ctx).Order("id ASC").Find(&artisans).Error
	return artisans, err
}

// GetAll returns a page of records for the "view all profiles" listing.
func (r *ArtisanRepository) GetAll(ctx context.Context, limit, offset int) ([]domain.Artisan, int64, error) {
	var artisans []domain.Artisan
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Artisan{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&artisans).Error
	return artisans, total, err
}

func (r *ArtisanRepository) GetPendingPaginated(ctx context.Context, limit, offset int) ([]domain.Artisan, int64, error) {
	var artisans []domain.Artisan
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Artisan{}).
		Where("approval_status = ?", domain.ApprovalPending)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at ASC").Limit(limit).Offset(offset).Find(&artisans).Error
	return artisans, total, err
}

// IsUniqueViolation reports whether err came from a unique constraint
// (duplicate email/phone). Covers Postgres and the SQLite test driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "SQLSTATE 23505") ||
		strings.Contains(s, "UNIQUE constraint failed")
}
