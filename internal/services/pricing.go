package services

import (
	"wechat_mall/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponPolicy computes the coupon discount for an order being assembled.
type CouponPolicy interface {
	CouponAmount(userID uuid.UUID, items []models.OrderItem, originalPrice decimal.Decimal) decimal.Decimal
}

// ShippingPolicy computes the shipping fare for an order being assembled.
type ShippingPolicy interface {
	ShippingFare(items []models.OrderItem) decimal.Decimal
}

// ZeroCouponPolicy is the default when no discount policy is configured:
// order assembly proceeds with no coupon applied.
type ZeroCouponPolicy struct{}

func (ZeroCouponPolicy) CouponAmount(uuid.UUID, []models.OrderItem, decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

// ZeroShippingPolicy ships for free until a fare policy is configured.
type ZeroShippingPolicy struct{}

func (ZeroShippingPolicy) ShippingFare([]models.OrderItem) decimal.Decimal {
	return decimal.Zero
}
