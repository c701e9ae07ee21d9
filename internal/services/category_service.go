package services

import (
	"wechat_mall/internal/apperr"
	"wechat_mall/internal/models"
	"wechat_mall/internal/repository"
)

type CategoryCreateRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	OrderbyID  int    `json:"orderby_id"`
	Icon       string `json:"icon"`
	IsShown    bool   `json:"is_shown"`
}

type CategoryService interface {
	ListCategories() ([]models.Category, error)
	CreateCategory(req CategoryCreateRequest) (*models.Category, error)
	UpdateCategory(categoryID string, req CategoryCreateRequest) (*models.Category, error)
	RemoveCategory(categoryID string) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.ListShown()
}

func (s *categoryService) CreateCategory(req CategoryCreateRequest) (*models.Category, error) {
	exists, err := s.categoryRepo.Exists(req.CategoryID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Newf(apperr.Conflict, "category_exists", "category %s already exists", req.CategoryID)
	}
	category := &models.Category{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		OrderbyID:  req.OrderbyID,
		Icon:       req.Icon,
		IsShown:    req.IsShown,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(categoryID string, req CategoryCreateRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByCategoryID(categoryID)
	if err != nil {
		return nil, err
	}
	category.Name = req.Name
	category.OrderbyID = req.OrderbyID
	category.Icon = req.Icon
	category.IsShown = req.IsShown
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) RemoveCategory(categoryID string) error {
	if _, err := s.categoryRepo.GetByCategoryID(categoryID); err != nil {
		return err
	}
	return s.categoryRepo.SoftDelete(categoryID)
}
