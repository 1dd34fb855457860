package model

import (
	"time"

	"github.com/lib/pq"
)

// ItemModel is the GORM-specific struct for the 'items' table.
// (user_id, url) is unique for rows that have a url.
type ItemModel struct {
	ItemID          string         `gorm:"type:varchar(64);primaryKey"`
	UserID          string         `gorm:"type:varchar(255);not null;index;uniqueIndex:idx_items_user_url,priority:1,where:url IS NOT NULL"`
	Name            string         `gorm:"type:varchar(200);not null"`
	Price           string         `gorm:"type:varchar(64);not null"`
	Image           *string        `gorm:"type:text"`
	URL             *string        `gorm:"column:url;type:text;uniqueIndex:idx_items_user_url,priority:2,where:url IS NOT NULL"`
	Notes           *string        `gorm:"type:varchar(500)"`
	AddedAt         time.Time      `gorm:"not null"`
	SelectedCartIDs pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
