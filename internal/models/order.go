package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderUnpaid    OrderStatus = "unpaid"
	OrderPaid      OrderStatus = "paid"
	OrderDelivered OrderStatus = "delivered"
	OrderFinished  OrderStatus = "finished"
	OrderCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID             uint                `json:"-" gorm:"primaryKey"`
	OrderID        string              `json:"order_id" gorm:"size:16;uniqueIndex;not null"`
	UserID         uuid.UUID           `json:"user_id" gorm:"type:uuid;index;not null"`
	Status         OrderStatus         `json:"status" gorm:"size:10;not null"`
	OrderTime      time.Time           `json:"order_time" gorm:"not null"`
	DeliverTime    *time.Time          `json:"deliver_time"`
	ShippingAddrID int                 `json:"shipping_addr_id" gorm:"not null"`
	TrackingNumber string              `json:"tracking_number" gorm:"size:20"`
	CouponAmount   decimal.Decimal     `json:"coupon_amount" gorm:"type:decimal(18,4);not null"`
	OriginalPrice  decimal.Decimal     `json:"original_price" gorm:"type:decimal(18,4);not null"`
	PayAmount      decimal.NullDecimal `json:"pay_amount" gorm:"type:decimal(18,4)"`
	ShippingFare   decimal.Decimal     `json:"shipping_fare" gorm:"type:decimal(18,4);not null"`
	PayTime        *time.Time          `json:"pay_time"`
	IsDeleted      bool                `json:"-" gorm:"not null;default:false"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID;references:OrderID"`
}
