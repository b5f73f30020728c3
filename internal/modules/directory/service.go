package directory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"skillsconnect/internal/domain"
	"skillsconnect/internal/pkg/validator"
	"skillsconnect/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	artisans ArtisanRepositoryInterface
	users    UserRepositoryInterface
}

func NewService(artisans ArtisanRepositoryInterface, users UserRepositoryInterface) *Service {
	return &Service{artisans: artisans, users: users}
}

// Register creates a free-tier listing: auto-approved but not verified,
// so it is reachable via direct links and the full listing page, never
// via search. A linked artisan user account is created in the same
// transaction.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.Artisan, error) {
	return s.createWithAccount(ctx, artisanFields{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Location:        req.Location,
		Services:        req.Services,
		Description:     req.Description,
		YearsExperience: req.YearsExperience,
	}, req.Password, domain.ApprovalApproved, domain.TierUnverified)
}

// Apply creates a verified-tier application that waits in the admin
// review queue. The record stays unverified until approval.
func (s *Service) Apply(ctx context.Context, req ApplyRequest) (*domain.Artisan, error) {
	return s.createWithAccount(ctx, artisanFields{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Location:        req.Location,
		Services:        req.Services,
		Description:     req.Description,
		YearsExperience: req.YearsExperience,
	}, req.Password, domain.ApprovalPending, domain.TierVerified)
}

type artisanFields struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Location        string
	Services        []string
	Description     string
	YearsExperience int
}

func (s *Service) createWithAccount(
	ctx context.Context,
	fields artisanFields,
	password string,
	approval domain.ApprovalStatus,
	tier domain.SubscriptionTier,
) (*domain.Artisan, error) {
	services, err := normalizeServices(fields.Services)
	if err != nil {
		return nil, err
	}

	if err := s.checkContactsUnique(ctx, fields.Email, fields.Phone); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	artisan := &domain.Artisan{
		FirstName:        fields.FirstName,
		LastName:         fields.LastName,
		Email:            strings.ToLower(strings.TrimSpace(fields.Email)),
		Phone:            strings.TrimSpace(fields.Phone),
		Location:         strings.TrimSpace(fields.Location),
		Services:         services,
		Description:      fields.Description,
		YearsExperience:  fields.YearsExperience,
		Rating:           "0.00",
		ReviewCount:      0,
		Verified:         false,
		SubscriptionTier: tier,
		ApprovalStatus:   approval,
	}

	tx := s.artisans.DB().WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(artisan).Error; err != nil {
		tx.Rollback()
		return nil, classifyConflict(err)
	}

	user := &domain.User{
		Email:        artisan.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleArtisan,
		Name:         strings.TrimSpace(fields.FirstName + " " + fields.LastName),
		Phone:        artisan.Phone,
		ArtisanID:    &artisan.ID,
	}
	if err := tx.Create(user).Error; err != nil {
		tx.Rollback()
		return nil, classifyConflict(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return artisan, nil
}

// Import bulk-creates admin-vetted records. Each row succeeds or fails
// on its own; the response reports every rejected row. Imported records
// are created already verified with the importing admin as approver.
func (s *Service) Import(ctx context.Context, adminID int64, rows []ImportRow) (*ImportResult, error) {
	result := &ImportResult{Failed: []ImportFailure{}}
	now := time.Now()

	for i, row := range rows {
		if fieldErrs := validator.Validate(row); fieldErrs != nil {
			result.Failed = append(result.Failed, ImportFailure{Index: i, Email: row.Email, Reason: describeFieldErrors(fieldErrs)})
			continue
		}

		services, err := normalizeServices(row.Services)
		if err != nil {
			result.Failed = append(result.Failed, ImportFailure{Index: i, Email: row.Email, Reason: err.Error()})
			continue
		}

		if err := s.checkContactsUnique(ctx, row.Email, row.Phone); err != nil {
			result.Failed = append(result.Failed, ImportFailure{Index: i, Email: row.Email, Reason: err.Error()})
			continue
		}

		approvedAt := now
		verifiedAt := now
		artisan := &domain.Artisan{
			FirstName:        row.FirstName,
			LastName:         row.LastName,
			Email:            strings.ToLower(strings.TrimSpace(row.Email)),
			Phone:            strings.TrimSpace(row.Phone),
			Location:         strings.TrimSpace(row.Location),
			Services:         services,
			Description:      row.Description,
			YearsExperience:  row.YearsExperience,
			Rating:           "0.00",
			Verified:         true,
			SubscriptionTier: domain.TierVerified,
			ApprovalStatus:   domain.ApprovalApproved,
			ApprovedBy:       &adminID,
			ApprovedAt:       &approvedAt,
			VerifiedAt:       &verifiedAt,
		}

		if err := s.artisans.Create(ctx, artisan); err != nil {
			result.Failed = append(result.Failed, ImportFailure{Index: i, Email: row.Email, Reason: classifyConflict(err).Error()})
			continue
		}
		result.Imported++
	}

	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Artisan, error) {
	return s.artisans.GetByID(ctx, id)
}

// List is the unfiltered "view all profiles" page: unverified records
// are included here, unlike search.
func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Artisan, int64, error) {
	return s.artisans.GetAll(ctx, limit, offset)
}

// UpdateProfile edits descriptive fields. Only the linked artisan user
// or an admin may edit; reputation and visibility fields are untouched.
func (s *Service) UpdateProfile(ctx context.Context, actorID int64, actorRole string, artisanID int64, req UpdateProfileRequest) (*domain.Artisan, error) {
	artisan, err := s.artisans.GetByID(ctx, artisanID)
	if err != nil {
		return nil, err
	}

	if actorRole != string(domain.RoleAdmin) {
		actor, err := s.users.GetByID(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if actor.ArtisanID == nil || *actor.ArtisanID != artisanID {
			return nil, ErrForbidden
		}
	}

	if req.FirstName != nil {
		artisan.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		artisan.LastName = *req.LastName
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone != artisan.Phone {
			taken, err := s.artisans.ExistsByPhone(ctx, phone)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrPhoneExists
			}
			artisan.Phone = phone
		}
	}
	if req.Location != nil {
		artisan.Location = strings.TrimSpace(*req.Location)
	}
	if req.Services != nil {
		services, err := normalizeServices(*req.Services)
		if err != nil {
			return nil, err
		}
		artisan.Services = services
	}
	if req.Description != nil {
		artisan.Description = *req.Description
	}
	if req.YearsExperience != nil && *req.YearsExperience >= 0 {
		artisan.YearsExperience = *req.YearsExperience
	}

	if err := s.artisans.Update(ctx, artisan); err != nil {
		return nil, classifyConflict(err)
	}
	return artisan, nil
}

func (s *Service) checkContactsUnique(ctx context.Context, email, phone string) error {
	emailTaken, err := s.artisans.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !emailTaken {
		emailTaken, err = s.users.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
	}
	if emailTaken {
		return ErrEmailExists
	}

	phoneTaken, err := s.artisans.ExistsByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if phoneTaken {
		return ErrPhoneExists
	}
	return nil
}

// normalizeServices lowercases and trims tags, drops empties, and
// rejects an empty result. Services are never empty at creation.
func normalizeServices(tags []string) (domain.ServiceList, error) {
	out := make(domain.ServiceList, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil, ErrNoServices
	}
	return out, nil
}

// describeFieldErrors flattens validator output into a stable,
// human-readable import failure reason.
func describeFieldErrors(fieldErrs map[string]string) string {
	fields := make([]string, 0, len(fieldErrs))
	for f := range fieldErrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f, fieldErrs[f]))
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}

// classifyConflict maps unique-constraint failures to the sentinel
// conflict errors so the race between concurrent registrations with the
// same contact info still surfaces as a 409.
func classifyConflict(err error) error {
	if err == nil {
		return nil
	}
	if repository.IsUniqueViolation(err) {
		if strings.Contains(err.Error(), "phone") {
			return ErrPhoneExists
		}
		return ErrEmailExists
	}
	return err
}
