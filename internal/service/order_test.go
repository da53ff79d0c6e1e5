package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/store"
)

func TestOrderCreateForcesPending(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(store.NewMemoryStorage())

	order, err := svc.Create(ctx, &dto.CreateOrderRequest{
		CustomerName:  "A",
		CustomerEmail: "a@b.com",
		Items:         []model.CartItem{{ID: "1", Price: decimal.NewFromInt(100), Quantity: 1}},
		Total:         "100",
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, order.Status)
}

func TestOrderCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(store.NewMemoryStorage())

	_, err := svc.Create(ctx, &dto.CreateOrderRequest{
		CustomerEmail: "a@b.com",
		Items:         []model.CartItem{{ID: "1", Price: decimal.NewFromInt(1), Quantity: 1}},
		Total:         "1",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, &dto.CreateOrderRequest{
		CustomerName:  "A",
		CustomerEmail: "a@b.com",
		Items:         []model.CartItem{{ID: "1", Price: decimal.NewFromInt(1), Quantity: 1}},
		Total:         "not-a-number",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOrderUpdateStatus(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemoryStorage()
	svc := NewOrderService(storage)

	order, err := svc.Create(ctx, &dto.CreateOrderRequest{
		CustomerName:  "A",
		CustomerEmail: "a@b.com",
		Items:         []model.CartItem{{ID: "1", Price: decimal.NewFromInt(1), Quantity: 1}},
		Total:         "1",
	})
	require.NoError(t, err)

	// pending -> shipped directly; no forward-only enforcement
	updated, err := svc.UpdateStatus(ctx, order.ID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, updated.Status)

	// and back again
	updated, err = svc.UpdateStatus(ctx, order.ID, "processing")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusProcessing, updated.Status)

	_, err = svc.UpdateStatus(ctx, order.ID, "vanished")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateStatus(ctx, "no-such-id", "shipped")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProductServiceValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(store.NewMemoryStorage())

	_, err := svc.Create(ctx, &dto.CreateProductRequest{
		Name:     "Mystery Sweet",
		Price:    "4.99",
		Category: "Vegetables",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, &dto.CreateProductRequest{
		Name:     "Sour Gummy Worms",
		Price:    "cheap",
		Category: "Gummies",
	})
	assert.ErrorIs(t, err, ErrValidation)

	product, err := svc.Create(ctx, &dto.CreateProductRequest{
		Name:     "Sour Gummy Worms",
		Price:    "7.99",
		Category: "Gummies",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
}

func TestContactServiceValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewContactService(store.NewMemoryStorage())

	_, err := svc.Create(ctx, &dto.CreateSubmissionRequest{Email: "a@b.com", Message: "hi"})
	assert.ErrorIs(t, err, ErrValidation)

	submission, err := svc.Create(ctx, &dto.CreateSubmissionRequest{
		Name:    "A",
		Email:   "a@b.com",
		Message: "hi",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, submission.ID)
}
