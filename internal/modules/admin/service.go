package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"skillsconnect/internal/domain"
)

var (
	ErrNotPending     = errors.New("application is not pending review")
	ErrReasonRequired = errors.New("rejection reason is required")
)

type Service struct {
	artisanRepo ArtisanRepository
	searchLogs  SearchLogRepository
	adRepo      AdRepository
}

func NewService(artisanRepo ArtisanRepository, searchLogs SearchLogRepository, adRepo AdRepository) *Service {
	return &Service{
		artisanRepo: artisanRepo,
		searchLogs:  searchLogs,
		adRepo:      adRepo,
	}
}

// GetPendingApplications returns the verified-tier review queue.
func (s *Service) GetPendingApplications(ctx context.Context, page, limit int) ([]domain.Artisan, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	return s.artisanRepo.GetPendingPaginated(ctx, limit, offset)
}

// ApproveArtisan moves a pending application to approved and flips the
// verified flag. Approval is the only way verified becomes true.
func (s *Service) ApproveArtisan(ctx context.Context, artisanID, adminID int64) (*domain.Artisan, error) {
	artisan, err := s.artisanRepo.GetByID(ctx, artisanID)
	if err != nil {
		return nil, err
	}

	if artisan.ApprovalStatus != domain.ApprovalPending {
		return nil, ErrNotPending
	}

	now := time.Now()
	artisan.ApprovalStatus = domain.ApprovalApproved
	artisan.Verified = true
	artisan.VerifiedAt = &now
	artisan.ApprovedBy = &adminID
	artisan.ApprovedAt = &now
	artisan.RejectionReason = ""

	if err := s.artisanRepo.Update(ctx, artisan); err != nil {
		return nil, err
	}
	return artisan, nil
}

// RejectArtisan moves a pending application to rejected with a reason.
func (s *Service) RejectArtisan(ctx context.Context, artisanID int64, reason string) (*domain.Artisan, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	artisan, err := s.artisanRepo.GetByID(ctx, artisanID)
	if err != nil {
		return nil, err
	}

	if artisan.ApprovalStatus != domain.ApprovalPending {
		return nil, ErrNotPending
	}

	artisan.ApprovalStatus = domain.ApprovalRejected
	artisan.RejectionReason = strings.TrimSpace(reason)

	if err := s.artisanRepo.Update(ctx, artisan); err != nil {
		return nil, err
	}
	return artisan, nil
}

// GetStatistics aggregates the platform dashboard counters.
func (s *Service) GetStatistics(ctx context.Context) (*StatsResponse, error) {
	stats := &StatsResponse{}
	db := s.artisanRepo.DB().WithContext(ctx)

	if err := db.Table("artisans").Count(&stats.TotalArtisans).Error; err != nil {
		return nil, err
	}
	if err := db.Table("artisans").Where("verified = ?", true).Count(&stats.VerifiedArtisans).Error; err != nil {
		return nil, err
	}
	if err := db.Table("artisans").Where("approval_status = ?", domain.ApprovalPending).Count(&stats.PendingApplications).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	searches, err := s.searchLogs.CountSince(ctx, midnight)
	if err != nil {
		return nil, err
	}
	stats.SearchesToday = searches

	if err := s.adRepo.DB().WithContext(ctx).Table("ads").
		Where("is_active = ?", true).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Count(&stats.ActiveAds).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
