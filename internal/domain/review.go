package domain

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ArtisanID int64     `json:"artisan_id" gorm:"index"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string { return "reviews" }
