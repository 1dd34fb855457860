package model

import (
	"time"

	"github.com/lib/pq"
)

// CartModel is the GORM-specific struct for the 'carts' table.
type CartModel struct {
	CartID    string         `gorm:"type:varchar(64);primaryKey"`
	UserID    string         `gorm:"type:varchar(255);not null;index:idx_carts_user_created,priority:1"`
	CartName  string         `gorm:"type:varchar(100);not null"`
	ItemCount int            `gorm:"not null;default:0"`
	CreatedAt time.Time      `gorm:"index:idx_carts_user_created,priority:2"`
	ItemIDs   pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}
