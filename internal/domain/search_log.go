package domain

import "time"

// SearchRequestLog is an append-only audit row, one per search query.
// Rows are never updated or deleted.
type SearchRequestLog struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Service   string    `json:"service"`
	Location  string    `json:"location"`
	Tier      string    `json:"tier"`
	CreatedAt time.Time `json:"created_at"`
}

func (SearchRequestLog) TableName() string { return "search_request_logs" }
