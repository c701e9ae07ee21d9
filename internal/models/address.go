package models

import (
	"time"

	"github.com/google/uuid"
)

type ShippingAddr struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uuid.UUID `json:"-" gorm:"type:uuid;index;not null"`
	Province     string    `json:"province" gorm:"size:50;not null"`
	City         string    `json:"city" gorm:"size:50;not null"`
	Address      string    `json:"address" gorm:"size:255;not null"`
	ReceiverName string    `json:"receiver_name" gorm:"size:50;not null"`
	PhoneNumber  string    `json:"phone_number" gorm:"size:50;not null"`
	PostCode     string    `json:"post_code" gorm:"size:6;not null"`
	IsDefault    bool      `json:"is_default" gorm:"not null;default:false"`
	OrderbyID    int       `json:"orderby_id" gorm:"not null;default:0"`
	IsDeleted    bool      `json:"-" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
