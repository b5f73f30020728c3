package search

import "skillsconnect/internal/domain"

// Query carries the raw (already present) search parameters.
type Query struct {
	Service  string
	Location string
	Tier     string
}

// Result is the bounded, ordered outcome of one search.
type Result struct {
	Artisans []domain.Artisan `json:"artisans"`
	Tier     string           `json:"tier"`
	Limit    int              `json:"limit"`
	Count    int              `json:"count"`
}
