package ads

import (
	"context"
	"errors"
	"time"

	"skillsconnect/internal/domain"
	"skillsconnect/internal/repository"
)

var ErrInvalidDateWindow = errors.New("end date must be after start date")

type Service struct {
	adRepo *repository.AdRepository
}

func NewService(adRepo *repository.AdRepository) *Service {
	return &Service{adRepo: adRepo}
}

func (s *Service) Create(ctx context.Context, req CreateAdRequest) (*domain.Ad, error) {
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, ErrInvalidDateWindow
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	ad := &domain.Ad{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		TargetURL: req.TargetURL,
		Placement: req.Placement,
		IsActive:  active,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateAdRequest) (*domain.Ad, error) {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		ad.Title = *req.Title
	}
	if req.ImageURL != nil {
		ad.ImageURL = *req.ImageURL
	}
	if req.TargetURL != nil {
		ad.TargetURL = *req.TargetURL
	}
	if req.Placement != nil {
		ad.Placement = *req.Placement
	}
	if req.IsActive != nil {
		ad.IsActive = *req.IsActive
	}
	if req.StartDate != nil {
		ad.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		ad.EndDate = req.EndDate
	}

	if ad.StartDate != nil && ad.EndDate != nil && ad.EndDate.Before(*ad.StartDate) {
		return nil, ErrInvalidDateWindow
	}

	if err := s.adRepo.Update(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// Delete removes an ad permanently. Advertisements are the only entity
// with a hard-delete endpoint.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.adRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.adRepo.Delete(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Ad, error) {
	return s.adRepo.ListAll(ctx)
}

// ListActive returns ads currently eligible to display.
func (s *Service) ListActive(ctx context.Context, placement string) ([]domain.Ad, error) {
	return s.adRepo.ListActive(ctx, placement, time.Now())
}

func (s *Service) RecordImpression(ctx context.Context, id int64) error {
	return s.adRepo.IncrementImpressions(ctx, id)
}

func (s *Service) RecordClick(ctx context.Context, id int64) error {
	return s.adRepo.IncrementClicks(ctx, id)
}
