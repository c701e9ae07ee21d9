package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uint      `json:"-" gorm:"primaryKey"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	OpenID     string    `json:"-" gorm:"size:64;uniqueIndex;not null"`
	UnionID    string    `json:"-" gorm:"size:64"`
	SessionKey string    `json:"-" gorm:"size:64"`
	Nickname   string    `json:"nickname" gorm:"size:50"`
	AvatarURL  string    `json:"avatar_url" gorm:"size:255"`
	Phone      string    `json:"phone" gorm:"size:20"`
	IsDeleted  bool      `json:"-" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UserRole string

const (
	RoleAdmin UserRole = "Admin"
	RoleUser  UserRole = "User"
)
