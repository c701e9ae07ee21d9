package repository

import (
	"errors"

	"wechat_mall/internal/apperr"
	"wechat_mall/internal/models"

	"gorm.io/gorm"
)

// ProductSort enumerates the listing sort options. Values travel on the
// wire, so they are fixed.
type ProductSort int

const (
	SortNone      ProductSort = 0 // manual curation order
	SortRecommend ProductSort = 1 // recommended items by weight
	SortTopSales  ProductSort = 2 // best sellers first
)

// ProductFilter is the declarative side of a product listing: the
// repository turns it into predicates and ordering.
type ProductFilter struct {
	CategoryID string
	OnSaleOnly bool
	Sort       ProductSort
}

type ProductRepository interface {
	GetByProductID(productID string) (*models.Product, error)
	Exists(productID string) (bool, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Find(filter ProductFilter, offset, limit int) ([]models.Product, error)
	Count(filter ProductFilter) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetByProductID(productID string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Images").Where("product_id = ? AND is_deleted = ?", productID, false).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "product_not_found", "product %s not found", productID)
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Exists(productID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("product_id = ?", productID).Count(&count).Error
	return count > 0, err
}

func (r *productRepository) Create(product *models.Product) error {
	err := r.db.Create(product).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Newf(apperr.Conflict, "product_exists", "product %s already exists", product.ProductID)
	}
	return err
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Find(filter ProductFilter, offset, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.scope(filter).Preload("Images").Offset(offset).Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepository) Count(filter ProductFilter) (int64, error) {
	var count int64
	err := r.scope(filter).Count(&count).Error
	return count, err
}

// scope applies soft-delete exclusion, on-sale exclusion, the optional
// category filter and the sort, in that order.
func (r *productRepository) scope(filter ProductFilter) *gorm.DB {
	q := r.db.Model(&models.Product{}).Where("is_deleted = ?", false)
	if filter.OnSaleOnly {
		q = q.Where("on_sale = ?", true)
	}
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	switch filter.Sort {
	case SortNone:
		q = q.Order("orderby_id ASC")
	case SortRecommend:
		q = q.Where("recommend > 0").Order("recommend ASC")
	case SortTopSales:
		q = q.Order("sold_count DESC")
	}
	return q
}
