package repository

import (
	"errors"

	"wechat_mall/internal/apperr"
	"wechat_mall/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderFilter scopes an order listing; a nil UserID means all users
// (admin view). Soft-deleted orders are always excluded and the listing
// is newest-first.
type OrderFilter struct {
	UserID *uuid.UUID
}

type OrderRepository interface {
	GetByOrderID(orderID string) (*models.Order, error)
	Create(order *models.Order) error
	Update(order *models.Order) error
	SoftDelete(orderID string) error
	Find(filter OrderFilter, offset, limit int) ([]models.Order, error)
	Count(filter OrderFilter) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetByOrderID(orderID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Where("order_id = ? AND is_deleted = ?", orderID, false).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "order_not_found", "order %s not found", orderID)
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Create(order *models.Order) error {
	err := r.db.Create(order).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Newf(apperr.Conflict, "order_key_conflict", "order key %s already exists", order.OrderID)
	}
	return err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) SoftDelete(orderID string) error {
	return r.db.Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Update("is_deleted", true).Error
}

func (r *orderRepository) Find(filter OrderFilter, offset, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.scope(filter).Preload("Items").Offset(offset).Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Count(filter OrderFilter) (int64, error) {
	var count int64
	err := r.scope(filter).Count(&count).Error
	return count, err
}

func (r *orderRepository) scope(filter OrderFilter) *gorm.DB {
	q := r.db.Model(&models.Order{}).Where("is_deleted = ?", false)
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	return q.Order("order_time DESC")
}
