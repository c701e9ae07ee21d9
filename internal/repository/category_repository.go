package repository

import (
	"errors"

	"wechat_mall/internal/apperr"
	"wechat_mall/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	GetByCategoryID(categoryID string) (*models.Category, error)
	Exists(categoryID string) (bool, error)
	ListShown() ([]models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	SoftDelete(categoryID string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetByCategoryID(categoryID string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("category_id = ? AND is_deleted = ?", categoryID, false).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "category_not_found", "category %s not found", categoryID)
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Exists(categoryID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).
		Where("category_id = ? AND is_deleted = ?", categoryID, false).
		Count(&count).Error
	return count > 0, err
}

func (r *categoryRepository) ListShown() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("is_shown = ? AND is_deleted = ?", true, false).
		Order("orderby_id ASC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Create(category *models.Category) error {
	err := r.db.Create(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Newf(apperr.Conflict, "category_exists", "category %s already exists", category.CategoryID)
	}
	return err
}

func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) SoftDelete(categoryID string) error {
	return r.db.Model(&models.Category{}).
		Where("category_id = ?", categoryID).
		Update("is_deleted", true).Error
}
