package repository

import (
	"errors"

	"wechat_mall/internal/apperr"
	"wechat_mall/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigRepository interface {
	GetByKey(key string) (*models.SiteConfig, error)
	Upsert(config *models.SiteConfig) error
}

type configRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) GetByKey(key string) (*models.SiteConfig, error) {
	var config models.SiteConfig
	err := r.db.Where("key = ?", key).First(&config).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "config_not_found", "config %s not found", key)
		}
		return nil, err
	}
	return &config, nil
}

func (r *configRepository) Upsert(config *models.SiteConfig) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(config).Error
}
