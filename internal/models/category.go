package models

import "time"

type Category struct {
	ID         uint      `json:"-" gorm:"primaryKey"`
	CategoryID string    `json:"category_id" gorm:"size:10;uniqueIndex;not null"`
	Name       string    `json:"name" gorm:"size:10;not null"`
	OrderbyID  int       `json:"orderby_id" gorm:"not null;default:0"`
	Icon       string    `json:"icon" gorm:"size:255"`
	IsShown    bool      `json:"is_shown" gorm:"not null;default:true"`
	IsDeleted  bool      `json:"-" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`

	Products []Product `json:"-" gorm:"foreignKey:CategoryID;references:CategoryID"`
}
