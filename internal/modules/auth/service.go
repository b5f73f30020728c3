package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"skillsconnect/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	maxFailedLoginAttempts = 5
	lockoutDuration        = 15 * time.Minute
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

// Service contains the login and email-verification logic.
type Service struct {
	users                  UserRepositoryInterface
	jwt                    jwtService
	mailer                 Mailer
	verificationCodePepper string
	verifyCodeTTL          time.Duration
	verifyResendCooldown   time.Duration
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(
	users UserRepositoryInterface,
	jwt jwtService,
	mailer Mailer,
	verificationCodePepper string,
	verifyCodeTTL time.Duration,
	verifyResendCooldown time.Duration,
) *Service {
	return &Service{
		users:                  users,
		jwt:                    jwt,
		mailer:                 mailer,
		verificationCodePepper: verificationCodePepper,
		verifyCodeTTL:          verifyCodeTTL,
		verifyResendCooldown:   verifyResendCooldown,
	}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	now := time.Now()
	if user.LockedUntil != nil && user.LockedUntil.After(now) {
		return nil, ErrAccountLocked
	}
	if !isUserEmailVerified(user) {
		return nil, ErrEmailNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		failedAttempts := user.FailedLoginAttempts + 1
		updates := map[string]any{"failed_login_attempts": failedAttempts}
		if failedAttempts >= maxFailedLoginAttempts {
			updates["locked_until"] = now.Add(lockoutDuration)
		}
		if updateErr := s.users.DB().WithContext(ctx).Table("users").Where("id = ?", user.ID).Updates(updates).Error; updateErr != nil {
			return nil, updateErr
		}
		if failedAttempts >= maxFailedLoginAttempts {
			return nil, ErrAccountLocked
		}
		return nil, ErrInvalidCredentials
	}

	if user.FailedLoginAttempts > 0 || user.LockedUntil != nil {
		if err := s.users.DB().WithContext(ctx).Table("users").Where("id = ?", user.ID).Updates(map[string]any{
			"failed_login_attempts": 0,
			"locked_until":          nil,
		}).Error; err != nil {
			return nil, err
		}
	}

	accessToken, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: accessToken}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func isUserEmailVerified(user *domain.User) bool {
	return user.EmailVerifiedAt != nil || user.EmailVerified
}
