package ads

import "time"

type CreateAdRequest struct {
	Title     string     `json:"title" binding:"required"`
	ImageURL  string     `json:"image_url" binding:"required,url"`
	TargetURL string     `json:"target_url" binding:"required,url"`
	Placement string     `json:"placement" binding:"required"`
	IsActive  *bool      `json:"is_active"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// UpdateAdRequest uses pointers so absent fields are left alone.
type UpdateAdRequest struct {
	Title     *string    `json:"title"`
	ImageURL  *string    `json:"image_url"`
	TargetURL *string    `json:"target_url"`
	Placement *string    `json:"placement"`
	IsActive  *bool      `json:"is_active"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}
