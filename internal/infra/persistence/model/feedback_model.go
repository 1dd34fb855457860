package model

import "time"

// FeedbackModel is the GORM-specific struct for the 'feedback' table.
type FeedbackModel struct {
	FeedbackID  string `gorm:"type:varchar(64);primaryKey"`
	Type        string `gorm:"type:varchar(64);not null"`
	Description string `gorm:"type:text;not null"`
	FirstName   string `gorm:"type:varchar(255)"`
	LastName    string `gorm:"type:varchar(255)"`
	Email       string `gorm:"type:varchar(320)"`
	UserID      string `gorm:"type:varchar(255);index"`
	Timestamp   time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}

// FailedExtractionModel is the GORM-specific struct for the 'failed_extractions' table.
type FailedExtractionModel struct {
	ExtractionID string    `gorm:"type:varchar(64);primaryKey"`
	URL          string    `gorm:"column:url;type:text;not null"`
	Domain       string    `gorm:"type:varchar(255);not null;index:idx_failed_extractions_domain_created,priority:1"`
	UserID       string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"index:idx_failed_extractions_domain_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (FailedExtractionModel) TableName() string {
	return "failed_extractions"
}

// All returns every model managed by AutoMigrate and the query generator.
func All() []any {
	return []any{
		&UserModel{},
		&CartModel{},
		&ItemModel{},
		&FeedbackModel{},
		&FailedExtractionModel{},
	}
}
