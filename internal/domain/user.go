package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleArtisan  UserRole = "artisan"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID                  int64      `json:"id" gorm:"primaryKey"`
	Email               string     `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash        string     `json:"-"`
	Role                UserRole   `json:"role"`
	Name                string     `json:"name"`
	Phone               string     `json:"phone,omitempty"`
	EmailVerified       bool       `json:"email_verified"`
	EmailVerifiedAt     *time.Time `json:"email_verified_at,omitempty"`
	ArtisanID           *int64     `json:"artisan_id,omitempty"`
	FailedLoginAttempts int        `json:"-"`
	LockedUntil         *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "users" }
