package handlers

import (
	"net/http"

	"wechat_mall/internal/pagination"
	"wechat_mall/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orders services.OrderService
}

func NewOrderHandler(orders services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderListQuery struct {
	UserID     string `form:"userId"`
	PageNumber int    `form:"pageNumber"`
	PageSize   int    `form:"pageSize"`
}

// ListOrders pages a user's orders, newest first. Only admins may list
// across users.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var q orderListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_query", "message": "invalid query parameters"})
		return
	}

	var filterUser *uuid.UUID
	if isAdmin(c) {
		if q.UserID != "" {
			id, err := uuid.Parse(q.UserID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_user_id", "message": "userId is not a valid uuid"})
				return
			}
			filterUser = &id
		}
	} else {
		id, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "invalid_token", "message": "token subject is not a user"})
			return
		}
		filterUser = &id
	}

	page, err := h.orders.ListOrders(filterUser, pagination.NewPageRequest(q.PageNumber, q.PageSize))
	if err != nil {
		respondError(c, err)
		return
	}
	writePagination(c, page)
	c.JSON(http.StatusOK, page.Items)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, _ := currentUserID(c)
	order, err := h.orders.GetOrder(userID, isAdmin(c), c.Param("orderID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "invalid_token", "message": "token subject is not a user"})
		return
	}
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_body", "message": "invalid request body"})
		return
	}
	order, err := h.orders.CreateOrder(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	userID, _ := currentUserID(c)
	var req services.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "invalid_body", "message": "invalid request body"})
		return
	}
	order, err := h.orders.UpdateOrder(userID, isAdmin(c), c.Param("orderID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) RemoveOrder(c *gin.Context) {
	userID, _ := currentUserID(c)
	if err := h.orders.RemoveOrder(userID, isAdmin(c), c.Param("orderID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) PayOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "invalid_token", "message": "token subject is not a user"})
		return
	}
	order, err := h.orders.MarkPaid(userID, c.Param("orderID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
