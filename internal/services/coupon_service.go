package services

import (
	"time"

	"wechat_mall/internal/apperr"
	"wechat_mall/internal/models"
	"wechat_mall/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponCreateRequest struct {
	ProductIDs string            `json:"product_ids"`
	CouponType models.CouponType `json:"coupon_type"`
	Condition  decimal.Decimal   `json:"condition"`
	Amount     decimal.Decimal   `json:"amount"`
	StartTime  time.Time         `json:"start_time" binding:"required"`
	EndTime    time.Time         `json:"end_time" binding:"required"`
}

type CouponService interface {
	ListUserCoupons(userID uuid.UUID) ([]models.CouponGrant, error)
	CreateCoupon(req CouponCreateRequest) (*models.Coupon, error)
	GrantCoupon(couponID uint, userID uuid.UUID) error
}

type couponService struct {
	couponRepo repository.CouponRepository
	userRepo   repository.UserRepository
}

func NewCouponService(couponRepo repository.CouponRepository, userRepo repository.UserRepository) CouponService {
	return &couponService{couponRepo: couponRepo, userRepo: userRepo}
}

func (s *couponService) ListUserCoupons(userID uuid.UUID) ([]models.CouponGrant, error) {
	return s.couponRepo.ListGrantsByUser(userID)
}

func (s *couponService) CreateCoupon(req CouponCreateRequest) (*models.Coupon, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, apperr.New(apperr.Validation, "invalid_period", "coupon end time must be after start time")
	}
	coupon := &models.Coupon{
		ProductIDs: req.ProductIDs,
		CouponType: req.CouponType,
		Condition:  req.Condition,
		Amount:     req.Amount,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}
	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *couponService) GrantCoupon(couponID uint, userID uuid.UUID) error {
	if _, err := s.couponRepo.GetByID(couponID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByUserID(userID); err != nil {
		return err
	}
	return s.couponRepo.CreateGrant(&models.CouponGrant{UserID: userID, CouponID: couponID})
}
