package models

import (
	"time"
)

// RefreshToken represents a refresh token for user authentication.
// Only the SHA-256 hash of the opaque secret handed to the client is
// persisted; the plaintext never reaches the database.
type RefreshToken struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CreatedAt       time.Time `json:"created_at"`
	TokenHash       string    `json:"-" gorm:"type:varchar(64);not null;unique;index"`
	UserID          uint      `json:"user_id" gorm:"not null;index"`
	ExpiresAt       time.Time `json:"expires_at" gorm:"not null;index"`
	IsRevoked       bool      `json:"is_revoked" gorm:"default:false;index"`
	ReplacedByToken *string   `json:"-" gorm:"type:varchar(64)"`
	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
