package models

import "github.com/shopspring/decimal"

// OrderItem snapshots the catalog price at assembly time; later price
// changes never alter a persisted order.
type OrderItem struct {
	ID        uint            `json:"-" gorm:"primaryKey"`
	OrderID   string          `json:"-" gorm:"size:16;index;not null"`
	ProductID string          `json:"product_id" gorm:"size:10;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(18,4);not null"`
	Amount    int             `json:"amount" gorm:"not null"`
}
