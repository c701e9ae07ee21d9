package repository

import (
	"errors"

	"wechat_mall/internal/apperr"
	"wechat_mall/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddressRepository interface {
	ListByUser(userID uuid.UUID) ([]models.ShippingAddr, error)
	GetDefault(userID uuid.UUID) (*models.ShippingAddr, error)
	GetByID(id uint) (*models.ShippingAddr, error)
	Create(addr *models.ShippingAddr) error
	Update(addr *models.ShippingAddr) error
	SoftDelete(id uint) error
	ClearDefault(userID uuid.UUID) error
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) ListByUser(userID uuid.UUID) ([]models.ShippingAddr, error) {
	var addrs []models.ShippingAddr
	err := r.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("orderby_id ASC").
		Find(&addrs).Error
	return addrs, err
}

func (r *addressRepository) GetDefault(userID uuid.UUID) (*models.ShippingAddr, error) {
	var addr models.ShippingAddr
	err := r.db.Where("user_id = ? AND is_default = ? AND is_deleted = ?", userID, true, false).
		First(&addr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "address_not_found", "no default address")
		}
		return nil, err
	}
	return &addr, nil
}

func (r *addressRepository) GetByID(id uint) (*models.ShippingAddr, error) {
	var addr models.ShippingAddr
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&addr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "address_not_found", "address not found")
		}
		return nil, err
	}
	return &addr, nil
}

func (r *addressRepository) Create(addr *models.ShippingAddr) error {
	return r.db.Create(addr).Error
}

func (r *addressRepository) Update(addr *models.ShippingAddr) error {
	return r.db.Save(addr).Error
}

func (r *addressRepository) SoftDelete(id uint) error {
	return r.db.Model(&models.ShippingAddr{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (r *addressRepository) ClearDefault(userID uuid.UUID) error {
	return r.db.Model(&models.ShippingAddr{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}
