package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             uint            `json:"-" gorm:"primaryKey"`
	ProductID      string          `json:"product_id" gorm:"size:10;uniqueIndex;not null"`
	CategoryID     string          `json:"category_id" gorm:"size:10;index;not null"`
	Name           string          `json:"name" gorm:"size:50;not null"`
	Description    string          `json:"description" gorm:"type:text"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(18,4);not null"`
	Stock          int             `json:"stock" gorm:"not null;default:0"`
	OrderbyID      int             `json:"orderby_id" gorm:"not null;default:0"`
	Recommend      int             `json:"recommend" gorm:"not null;default:0"`
	SoldCount      int             `json:"sold_count" gorm:"not null;default:0"`
	OnSale         bool            `json:"on_sale" gorm:"not null;default:true"`
	ShippingFareID *uint           `json:"-"`
	IsDeleted      bool            `json:"-" gorm:"not null;default:false"`
	CreatedAt      time.Time       `json:"-"`
	UpdatedAt      time.Time       `json:"-"`

	Images []ProductImage `json:"images" gorm:"foreignKey:ProductID;references:ProductID"`
}

type ProductImage struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	GUID      string `json:"guid" gorm:"size:36;uniqueIndex;not null"`
	ProductID string `json:"-" gorm:"size:10;index;not null"`
	URL       string `json:"url" gorm:"size:255;not null"`
	OrderbyID int    `json:"orderby_id" gorm:"not null;default:0"`
}

// ShippingFare is a per-product fare table row; fare computation itself is
// a pluggable policy on the order side.
type ShippingFare struct {
	ID       uint            `json:"id" gorm:"primaryKey"`
	Name     string          `json:"name" gorm:"size:50;not null"`
	FlatFare decimal.Decimal `json:"flat_fare" gorm:"type:decimal(18,4);not null"`

	Products []Product `json:"-" gorm:"foreignKey:ShippingFareID"`
}
