package repository

import (
	"errors"

	"wechat_mall/internal/apperr"
	"wechat_mall/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CouponRepository interface {
	GetByID(id uint) (*models.Coupon, error)
	ListGrantsByUser(userID uuid.UUID) ([]models.CouponGrant, error)
	Create(coupon *models.Coupon) error
	CreateGrant(grant *models.CouponGrant) error
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) GetByID(id uint) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.First(&coupon, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "coupon_not_found", "coupon not found")
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) ListGrantsByUser(userID uuid.UUID) ([]models.CouponGrant, error) {
	var grants []models.CouponGrant
	err := r.db.Preload("Coupon").
		Joins("JOIN coupons ON coupons.id = coupon_grants.coupon_id").
		Where("coupon_grants.user_id = ?", userID).
		Order("coupons.end_time ASC").
		Find(&grants).Error
	return grants, err
}

func (r *couponRepository) Create(coupon *models.Coupon) error {
	return r.db.Create(coupon).Error
}

func (r *couponRepository) CreateGrant(grant *models.CouponGrant) error {
	return r.db.Create(grant).Error
}
