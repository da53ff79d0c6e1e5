package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"storefront/internal/client"
	"storefront/internal/dto"
	"storefront/internal/store"
)

// CheckoutService runs the whole checkout: validation, server-side total
// computation over the submitted cart snapshot, user resolution, order
// creation, and the payment intent request.
type CheckoutService interface {
	Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	storage      store.Storage
	orderService OrderService
	stripeClient client.StripeClient
	currency     string
}

func NewCheckoutService(
	storage store.Storage,
	orderService OrderService,
	stripeClient client.StripeClient,
	currency string,
) CheckoutService {
	return &checkoutServiceImpl{
		storage:      storage,
		orderService: orderService,
		stripeClient: stripeClient,
		currency:     currency,
	}
}

func (s *checkoutServiceImpl) Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items must not be empty", ErrValidation)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if req.CustomerName == "" {
		return nil, fmt.Errorf("%w: customerName is required", ErrValidation)
	}

	// The snapshot's submitted prices are authoritative for this store; they
	// are summed server-side but not re-checked against the catalog.
	total := decimal.Zero
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", ErrValidation)
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if _, err := s.storage.GetOrCreateUser(ctx, req.Email); err != nil {
		return nil, fmt.Errorf("get or create user: %w", err)
	}

	order, err := s.orderService.Create(ctx, &dto.CreateOrderRequest{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.Email,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Items:           req.Items,
		Total:           total.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// If this call fails the order stays pending with no payment reference
	// and is picked up by admin reconciliation; there is no rollback.
	amountMinor := total.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	intent, err := s.stripeClient.CreatePaymentIntent(ctx, amountMinor, s.currency, order.ID, req.Email)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	if _, err := s.orderService.AttachPaymentIntent(ctx, order.ID, intent.ID); err != nil {
		return nil, fmt.Errorf("attach payment intent: %w", err)
	}

	return &dto.CheckoutResponse{
		ClientSecret: intent.ClientSecret,
		OrderID:      order.ID,
	}, nil
}
