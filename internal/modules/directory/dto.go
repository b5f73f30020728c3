package directory

// RegisterRequest is the self-service (free tier) registration payload.
type RegisterRequest struct {
	FirstName       string   `json:"first_name" binding:"required"`
	LastName        string   `json:"last_name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Phone           string   `json:"phone" binding:"required"`
	Password        string   `json:"password" binding:"required,min=8"`
	Location        string   `json:"location" binding:"required"`
	Services        []string `json:"services" binding:"required"`
	Description     string   `json:"description"`
	YearsExperience int      `json:"years_experience" binding:"gte=0"`
}

// ApplyRequest is the verified-tier application payload. Identical
// fields; the resulting record starts in pending review.
type ApplyRequest struct {
	FirstName       string   `json:"first_name" binding:"required"`
	LastName        string   `json:"last_name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Phone           string   `json:"phone" binding:"required"`
	Password        string   `json:"password" binding:"required,min=8"`
	Location        string   `json:"location" binding:"required"`
	Services        []string `json:"services" binding:"required"`
	Description     string   `json:"description"`
	YearsExperience int      `json:"years_experience" binding:"gte=0"`
}

// ImportRow is one artisan in an admin bulk import. No password: bulk
// imported artisans have no login until they claim the profile.
// Rows are validated individually in the service (gin binding does not
// descend into slice elements), so these are validate tags, not binding.
type ImportRow struct {
	FirstName       string   `json:"first_name" validate:"required"`
	LastName        string   `json:"last_name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required"`
	Location        string   `json:"location" validate:"required"`
	Services        []string `json:"services" validate:"required"`
	Description     string   `json:"description"`
	YearsExperience int      `json:"years_experience" validate:"gte=0"`
}

type ImportRequest struct {
	Artisans []ImportRow `json:"artisans" binding:"required,min=1"`
}

// ImportFailure reports a single rejected row by its index in the
// request payload.
type ImportFailure struct {
	Index  int    `json:"index"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Imported int             `json:"imported"`
	Failed   []ImportFailure `json:"failed"`
}

// UpdateProfileRequest uses pointers so absent fields are left alone.
// Rating and review count are server-computed and not accepted here.
type UpdateProfileRequest struct {
	FirstName       *string   `json:"first_name"`
	LastName        *string   `json:"last_name"`
	Phone           *string   `json:"phone"`
	Location        *string   `json:"location"`
	Services        *[]string `json:"services"`
	Description     *string   `json:"description"`
	YearsExperience *int      `json:"years_experience"`
}
