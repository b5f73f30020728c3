package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type SubscriptionTier string

const (
	TierUnverified SubscriptionTier = "unverified"
	TierVerified   SubscriptionTier = "verified"
	TierPremium    SubscriptionTier = "premium"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ServiceList is a set of lowercase service-category tags stored as JSON.
type ServiceList []string

func (s ServiceList) Value() (driver.Value, error) {
	if s == nil {
		s = ServiceList{}
	}
	return json.Marshal(s)
}

func (s *ServiceList) Scan(value any) error {
	if value == nil {
		*s = ServiceList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for ServiceList")
	}
}

// Artisan is a directory record for a service provider.
// Rating is a decimal string (e.g. "4.75") and, together with
// ReviewCount, is recomputed by the review module; never set by
// clients.
type Artisan struct {
	ID               int64            `json:"id" gorm:"primaryKey"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Email            string           `json:"email" gorm:"uniqueIndex"`
	Phone            string           `json:"phone" gorm:"uniqueIndex"`
	Location         string           `json:"location"`
	Services         ServiceList      `json:"services" gorm:"type:json"`
	Description      string           `json:"description"`
	YearsExperience  int              `json:"years_experience"`
	Rating           string           `json:"rating"`
	ReviewCount      int              `json:"review_count"`
	Verified         bool             `json:"verified"`
	SubscriptionTier SubscriptionTier `json:"subscription_tier"`
	ApprovalStatus   ApprovalStatus   `json:"approval_status"`
	ApprovedBy       *int64           `json:"approved_by,omitempty"`
	ApprovedAt       *time.Time       `json:"approved_at,omitempty"`
	RejectionReason  string           `json:"rejection_reason,omitempty"`
	VerifiedAt       *time.Time       `json:"verified_at,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (Artisan) TableName() string { return "artisans" }
