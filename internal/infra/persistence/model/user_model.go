// Package model contains the GORM structs of the Postgres directories.
package model

import (
	"time"

	"github.com/lib/pq"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	UserID    string         `gorm:"type:varchar(255);primaryKey"`
	Email     string         `gorm:"type:varchar(320);not null;default:''"`
	Name      string         `gorm:"type:varchar(255);not null;default:''"`
	CartCount int            `gorm:"not null;default:0"`
	CartIDs   pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
