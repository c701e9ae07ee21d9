package models

type SiteConfig struct {
	ID    uint   `json:"-" gorm:"primaryKey"`
	Key   string `json:"key" gorm:"size:255;uniqueIndex;not null"`
	Value string `json:"value" gorm:"size:4096;not null"`
}
