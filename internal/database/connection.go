package database

import (
	"fmt"

	"wechat_mall/internal/logger"
	"wechat_mall/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		// duplicate-key inserts must surface as gorm.ErrDuplicatedKey
		// for the order-key retry loop
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("database connected and migrated")
	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.ShippingFare{},
		&models.Order{},
		&models.OrderItem{},
		&models.ShippingAddr{},
		&models.Coupon{},
		&models.CouponGrant{},
		&models.SiteConfig{},
	)
}
