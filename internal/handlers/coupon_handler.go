package handlers

import (
	"net/http"
	"strconv"

	"wechat_mall/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	coupons services.CouponService
}

func NewCouponHandler(coupons services.CouponService) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

func (h *CouponHandler) ListMyCoupons(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "invalid_token", "message": "token subject is not a user"})
		return
	}
	grants, err := h.coupons.ListUserCoupons(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grants)
}

func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var req services.CouponCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_body", "message": "invalid request body"})
		return
	}
	coupon, err := h.coupons.CreateCoupon(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, coupon)
}

type grantRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (h *CouponHandler) GrantCoupon(c *gin.Context) {
	couponID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_id", "message": "coupon id must be numeric"})
		return
	}
	var req grantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_body", "message": "invalid request body"})
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_user_id", "message": "user_id is not a valid uuid"})
		return
	}
	if err := h.coupons.GrantCoupon(uint(couponID), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}
