package services

import (
	"time"

	"wechat_mall/internal/apperr"
	"wechat_mall/internal/logger"
	"wechat_mall/internal/models"
	"wechat_mall/internal/orderid"
	"wechat_mall/internal/pagination"
	"wechat_mall/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// orderCreateAttempts bounds the retry loop around order-key collisions.
const orderCreateAttempts = 3

type LineItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Amount    int    `json:"amount" binding:"required"`
}

type CreateOrderRequest struct {
	ShippingAddrID int               `json:"shipping_addr_id" binding:"required"`
	Items          []LineItemRequest `json:"items"`
}

type UpdateOrderRequest struct {
	Status         *models.OrderStatus `json:"status"`
	TrackingNumber *string             `json:"tracking_number"`
	DeliverTime    *time.Time          `json:"deliver_time"`
}

type OrderService interface {
	CreateOrder(userID uuid.UUID, req CreateOrderRequest) (*models.Order, error)
	GetOrder(userID uuid.UUID, isAdmin bool, orderID string) (*models.Order, error)
	ListOrders(userID *uuid.UUID, page pagination.PageRequest) (*pagination.Page[models.Order], error)
	UpdateOrder(userID uuid.UUID, isAdmin bool, orderID string, req UpdateOrderRequest) (*models.Order, error)
	RemoveOrder(userID uuid.UUID, isAdmin bool, orderID string) error
	MarkPaid(userID uuid.UUID, orderID string) (*models.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	ids         *orderid.Generator
	coupons     CouponPolicy
	shipping    ShippingPolicy
	clock       func() time.Time
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	ids *orderid.Generator,
	coupons CouponPolicy,
	shipping ShippingPolicy,
) OrderService {
	if coupons == nil {
		coupons = ZeroCouponPolicy{}
	}
	if shipping == nil {
		shipping = ZeroShippingPolicy{}
	}
	return &orderService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		ids:         ids,
		coupons:     coupons,
		shipping:    shipping,
		clock:       time.Now,
	}
}

// CreateOrder assembles an order from the requested line items, taking a
// price snapshot of each product at assembly time. The persisted
// original price always equals the sum of the resolved line totals.
func (s *orderService) CreateOrder(userID uuid.UUID, req CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperr.New(apperr.Validation, "order_empty", "order has no line items")
	}

	user, err := s.userRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	originalPrice := decimal.Zero
	for _, line := range req.Items {
		if line.Amount <= 0 {
			return nil, apperr.Newf(apperr.Validation, "invalid_amount", "amount for product %s must be positive", line.ProductID)
		}
		product, err := s.productRepo.GetByProductID(line.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, models.OrderItem{
			ProductID: product.ProductID,
			Price:     product.Price,
			Amount:    line.Amount,
		})
		originalPrice = originalPrice.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Amount))))
	}

	couponAmount := s.coupons.CouponAmount(userID, items, originalPrice)
	shippingFare := s.shipping.ShippingFare(items)

	// Key uniqueness is only enforced by the database; on a collision we
	// mint a fresh key and try again, a bounded number of times.
	var lastErr error
	for attempt := 0; attempt < orderCreateAttempts; attempt++ {
		orderID := s.ids.Generate(user.ID)
		for i := range items {
			items[i].OrderID = orderID
		}
		order := &models.Order{
			OrderID:        orderID,
			UserID:         userID,
			Status:         models.OrderUnpaid,
			OrderTime:      s.clock(),
			ShippingAddrID: req.ShippingAddrID,
			CouponAmount:   couponAmount,
			OriginalPrice:  originalPrice,
			ShippingFare:   shippingFare,
			Items:          items,
		}
		err := s.orderRepo.Create(order)
		if err == nil {
			return order, nil
		}
		if !apperr.IsKind(err, apperr.Conflict) {
			return nil, err
		}
		logger.Warn("order key collision, regenerating", "order_id", orderID, "attempt", attempt+1)
		lastErr = err
	}
	return nil, lastErr
}

func (s *orderService) GetOrder(userID uuid.UUID, isAdmin bool, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && order.UserID != userID {
		return nil, apperr.Newf(apperr.NotFound, "order_not_found", "order %s not found", orderID)
	}
	return order, nil
}

func (s *orderService) ListOrders(userID *uuid.UUID, page pagination.PageRequest) (*pagination.Page[models.Order], error) {
	filter := repository.OrderFilter{UserID: userID}
	src := pagination.FuncSource[models.Order]{
		CountFunc: func() (int64, error) {
			return s.orderRepo.Count(filter)
		},
		SliceFunc: func(offset, limit int) ([]models.Order, error) {
			return s.orderRepo.Find(filter, offset, limit)
		},
	}
	return pagination.Paginate[models.Order](src, page)
}

func (s *orderService) UpdateOrder(userID uuid.UUID, isAdmin bool, orderID string, req UpdateOrderRequest) (*models.Order, error) {
	order, err := s.GetOrder(userID, isAdmin, orderID)
	if err != nil {
		return nil, err
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.TrackingNumber != nil {
		order.TrackingNumber = *req.TrackingNumber
	}
	if req.DeliverTime != nil {
		order.DeliverTime = req.DeliverTime
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) RemoveOrder(userID uuid.UUID, isAdmin bool, orderID string) error {
	if _, err := s.GetOrder(userID, isAdmin, orderID); err != nil {
		return err
	}
	return s.orderRepo.SoftDelete(orderID)
}

// MarkPaid finalizes the payable amount at payment time:
// originalPrice - couponAmount + shippingFare.
func (s *orderService) MarkPaid(userID uuid.UUID, orderID string) (*models.Order, error) {
	order, err := s.GetOrder(userID, false, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderUnpaid {
		return nil, apperr.Newf(apperr.Validation, "order_not_payable", "order %s is not awaiting payment", orderID)
	}
	payAmount := order.OriginalPrice.Sub(order.CouponAmount).Add(order.ShippingFare)
	now := s.clock()
	order.PayAmount = decimal.NewNullDecimal(payAmount)
	order.PayTime = &now
	order.Status = models.OrderPaid
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}
