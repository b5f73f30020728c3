package upload

import "time"

// Document is a verification file (trade certificate, ID document)
// stored on local disk in support of a verified-tier application.
type Document struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	UserID       int64     `gorm:"column:user_id" json:"user_id"`
	OriginalName string    `gorm:"column:original_name" json:"original_name"`
	FilePath     string    `gorm:"column:file_path" json:"-"`
	FileURL      string    `gorm:"column:file_url" json:"url"`
	MimeType     string    `gorm:"column:mime_type" json:"mime_type"`
	Size         int64     `gorm:"column:size" json:"size"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Document) TableName() string { return "verification_documents" }
