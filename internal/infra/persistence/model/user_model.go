package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string         `gorm:"size:255;not null;uniqueIndex"`
	Name         string         `gorm:"size:120;not null"`
	PasswordHash string         `gorm:"size:255;not null"`
	Roles        pq.StringArray `gorm:"type:text[];not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
