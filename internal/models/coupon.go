package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponType int

const (
	CouponMinus   CouponType = 0 // spend Condition, take Amount off
	CouponPercent CouponType = 1 // spend Condition, pay Amount percent
)

type Coupon struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	ProductIDs string          `json:"product_ids" gorm:"size:255;not null"`
	CouponType CouponType      `json:"coupon_type" gorm:"not null"`
	Condition  decimal.Decimal `json:"condition" gorm:"type:decimal(18,4);not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(18,4);not null"`
	StartTime  time.Time       `json:"start_time" gorm:"not null"`
	EndTime    time.Time       `json:"end_time" gorm:"not null"`

	Grants []CouponGrant `json:"-" gorm:"foreignKey:CouponID"`
}

// CouponGrant links a coupon to a user who may redeem it.
type CouponGrant struct {
	ID       uint      `json:"-" gorm:"primaryKey"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	CouponID uint      `json:"coupon_id" gorm:"index;not null"`

	Coupon Coupon `json:"coupon"`
}
