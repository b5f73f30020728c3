package review

import (
	"context"
	"errors"
	"fmt"

	"skillsconnect/internal/domain"
	"skillsconnect/internal/repository"

	"gorm.io/gorm"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type Service struct {
	reviewRepo  *repository.ReviewRepository
	artisanRepo *repository.ArtisanRepository
}

func NewService(reviewRepo *repository.ReviewRepository, artisanRepo *repository.ArtisanRepository) *Service {
	return &Service{reviewRepo: reviewRepo, artisanRepo: artisanRepo}
}

// Create stores the review and recomputes the artisan's rating and
// review count in the same transaction. Rating is kept as a "%.2f"
// decimal string on the artisan record.
func (s *Service) Create(ctx context.Context, artisanID, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.artisanRepo.GetByID(ctx, artisanID); err != nil {
		return nil, err
	}

	rv := &domain.Review{
		ArtisanID: artisanID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	err := s.reviewRepo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rv).Error; err != nil {
			return err
		}

		var agg struct {
			Count int64
			Avg   float64
		}
		if err := tx.Model(&domain.Review{}).
			Select("COUNT(*) AS count, AVG(rating) AS avg").
			Where("artisan_id = ?", artisanID).
			Scan(&agg).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Artisan{}).
			Where("id = ?", artisanID).
			Updates(map[string]any{
				"rating":       fmt.Sprintf("%.2f", agg.Avg),
				"review_count": agg.Count,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return rv, nil
}

func (s *Service) ListByArtisan(ctx context.Context, artisanID int64, limit, offset int) ([]domain.Review, error) {
	if _, err := s.artisanRepo.GetByID(ctx, artisanID); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByArtisan(ctx, artisanID, limit, offset)
}
