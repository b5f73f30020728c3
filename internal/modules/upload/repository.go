package upload

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, d *Document) error
	GetByID(ctx context.Context, id string) (*Document, error)
	Delete(ctx context.Context, id string) error
	ListByUserID(ctx context.Context, userID int64) ([]*Document, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Document, error) {
	var d Document
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDocumentNotFound
	}
	return &d, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Document{}).Error
}

func (r *repository) ListByUserID(ctx context.Context, userID int64) ([]*Document, error) {
	var docs []*Document
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&docs).Error
	return docs, err
}
