package services

import (
	"wechat_mall/internal/apperr"
	"wechat_mall/internal/models"
	"wechat_mall/internal/pagination"
	"wechat_mall/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductListParams is the declarative form of a product listing request.
// RequireCategory is the storefront policy: browsing without a category
// answers an empty page instead of the whole catalog.
type ProductListParams struct {
	CategoryID      string
	Sort            repository.ProductSort
	RequireCategory bool
	Page            pagination.PageRequest
}

type ProductCreateRequest struct {
	ProductID   string          `json:"product_id" binding:"required"`
	CategoryID  string          `json:"category_id" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	OrderbyID   int             `json:"orderby_id"`
	Recommend   int             `json:"recommend"`
	OnSale      bool            `json:"on_sale"`
}

type ProductPatch struct {
	CategoryID  *string          `json:"category_id"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	OrderbyID   *int             `json:"orderby_id"`
	Recommend   *int             `json:"recommend"`
	OnSale      *bool            `json:"on_sale"`
}

type ProductService interface {
	ListProducts(params ProductListParams) (*pagination.Page[models.Product], error)
	GetProduct(productID string) (*models.Product, error)
	CreateProduct(req ProductCreateRequest) (*models.Product, error)
	UpdateProduct(productID string, req ProductCreateRequest) (*models.Product, error)
	PatchProduct(productID string, patch ProductPatch) (*models.Product, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{productRepo: productRepo, categoryRepo: categoryRepo}
}

// ListProducts validates the sort option, applies the listing policy and
// pages the filtered view.
func (s *productService) ListProducts(params ProductListParams) (*pagination.Page[models.Product], error) {
	switch params.Sort {
	case repository.SortNone, repository.SortRecommend, repository.SortTopSales:
	default:
		return nil, apperr.Newf(apperr.InvalidSort, "invalid_sort", "unknown sort option %d", params.Sort)
	}

	if params.RequireCategory && params.CategoryID == "" {
		return pagination.Empty[models.Product](params.Page), nil
	}

	filter := repository.ProductFilter{
		CategoryID: params.CategoryID,
		OnSaleOnly: true,
		Sort:       params.Sort,
	}
	src := pagination.FuncSource[models.Product]{
		CountFunc: func() (int64, error) {
			return s.productRepo.Count(filter)
		},
		SliceFunc: func(offset, limit int) ([]models.Product, error) {
			return s.productRepo.Find(filter, offset, limit)
		},
	}
	return pagination.Paginate[models.Product](src, params.Page)
}

func (s *productService) GetProduct(productID string) (*models.Product, error) {
	product, err := s.productRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if !product.OnSale {
		return nil, apperr.Newf(apperr.NotFound, "product_not_found", "product %s not found", productID)
	}
	return product, nil
}

func (s *productService) CreateProduct(req ProductCreateRequest) (*models.Product, error) {
	exists, err := s.categoryRepo.Exists(req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.Newf(apperr.NotFound, "category_not_found", "category %s not found", req.CategoryID)
	}

	taken, err := s.productRepo.Exists(req.ProductID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Newf(apperr.Conflict, "product_exists", "product %s already exists", req.ProductID)
	}

	product := &models.Product{
		ProductID:   req.ProductID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		OrderbyID:   req.OrderbyID,
		Recommend:   req.Recommend,
		OnSale:      req.OnSale,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) UpdateProduct(productID string, req ProductCreateRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != product.CategoryID {
		exists, err := s.categoryRepo.Exists(req.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperr.Newf(apperr.NotFound, "category_not_found", "category %s not found", req.CategoryID)
		}
	}
	product.CategoryID = req.CategoryID
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Stock = req.Stock
	product.OrderbyID = req.OrderbyID
	product.Recommend = req.Recommend
	product.OnSale = req.OnSale
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) PatchProduct(productID string, patch ProductPatch) (*models.Product, error) {
	product, err := s.productRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if patch.CategoryID != nil && *patch.CategoryID != product.CategoryID {
		exists, err := s.categoryRepo.Exists(*patch.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperr.Newf(apperr.NotFound, "category_not_found", "category %s not found", *patch.CategoryID)
		}
		product.CategoryID = *patch.CategoryID
	}
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.OrderbyID != nil {
		product.OrderbyID = *patch.OrderbyID
	}
	if patch.Recommend != nil {
		product.Recommend = *patch.Recommend
	}
	if patch.OnSale != nil {
		product.OnSale = *patch.OnSale
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}
