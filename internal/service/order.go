package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/store"
)

// OrderService owns the order lifecycle: creation in pending state, admin
// status transitions, and payment reference attachment. Status transitions
// are deliberately unconstrained; any status can move to any other.
type OrderService interface {
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) (*model.Order, error)
	AttachPaymentIntent(ctx context.Context, id string, paymentIntentID string) (*model.Order, error)
}

type orderServiceImpl struct {
	storage store.Storage
}

func NewOrderService(storage store.Storage) OrderService {
	return &orderServiceImpl{
		storage: storage,
	}
}

func (s *orderServiceImpl) Create(ctx context.Context, req *dto.CreateOrderRequest) (*model.Order, error) {
	if req.CustomerName == "" {
		return nil, fmt.Errorf("%w: customerName is required", ErrValidation)
	}
	if req.CustomerEmail == "" {
		return nil, fmt.Errorf("%w: customerEmail is required", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items must not be empty", ErrValidation)
	}
	if _, err := decimal.NewFromString(req.Total); err != nil {
		return nil, fmt.Errorf("%w: total %q is not a decimal", ErrValidation, req.Total)
	}

	// Status is forced to pending by the store regardless of input.
	return s.storage.CreateOrder(ctx, &model.Order{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Items:           req.Items,
		Total:           req.Total,
	})
}

func (s *orderServiceImpl) Get(ctx context.Context, id string) (*model.Order, error) {
	return s.storage.GetOrder(ctx, id)
}

func (s *orderServiceImpl) List(ctx context.Context) ([]*model.Order, error) {
	return s.storage.GetAllOrders(ctx)
}

func (s *orderServiceImpl) UpdateStatus(ctx context.Context, id string, status string) (*model.Order, error) {
	orderStatus := model.OrderStatus(status)
	if !orderStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	return s.storage.UpdateOrderStatus(ctx, id, orderStatus)
}

func (s *orderServiceImpl) AttachPaymentIntent(ctx context.Context, id string, paymentIntentID string) (*model.Order, error) {
	return s.storage.UpdateOrderStripePayment(ctx, id, paymentIntentID)
}
