package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/client"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/store"
)

type fakeStripeClient struct {
	err       error
	lastOrder string
	lastEmail string
	lastMinor int64
	calls     int
}

func (f *fakeStripeClient) CreatePaymentIntent(ctx context.Context, amountMinor int64, currency, orderID, receiptEmail string) (*client.PaymentIntent, error) {
	f.calls++
	f.lastMinor = amountMinor
	f.lastOrder = orderID
	f.lastEmail = receiptEmail
	if f.err != nil {
		return nil, f.err
	}
	return &client.PaymentIntent{
		ID:           "pi_test_1",
		ClientSecret: "pi_test_1_secret_abc",
	}, nil
}

func newCheckoutFixture(stripe *fakeStripeClient) (CheckoutService, store.Storage) {
	storage := store.NewMemoryStorage()
	orderService := NewOrderService(storage)
	return NewCheckoutService(storage, orderService, stripe, "inr"), storage
}

func TestCheckoutHappyPath(t *testing.T) {
	ctx := context.Background()
	stripe := &fakeStripeClient{}
	svc, storage := newCheckoutFixture(stripe)

	resp, err := svc.Checkout(ctx, &dto.CheckoutRequest{
		Items: []model.CartItem{
			{ID: "1", Name: "Dark Chocolate Truffle", Price: decimal.NewFromInt(299), Quantity: 2},
		},
		Email:           "a@b.com",
		CustomerName:    "A",
		ShippingAddress: "12 Candy Lane",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ClientSecret)
	require.NotEmpty(t, resp.OrderID)

	order, err := storage.GetOrder(ctx, resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "598", order.Total)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, "pi_test_1", order.StripePaymentIntentID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// the intent is tagged for reconciliation and priced in minor units
	assert.Equal(t, resp.OrderID, stripe.lastOrder)
	assert.Equal(t, "a@b.com", stripe.lastEmail)
	assert.Equal(t, int64(59800), stripe.lastMinor)

	// checkout lazily creates the user by email
	user, err := storage.GetOrCreateUser(ctx, "a@b.com")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestCheckoutDecimalTotals(t *testing.T) {
	ctx := context.Background()
	stripe := &fakeStripeClient{}
	svc, storage := newCheckoutFixture(stripe)

	price, err := decimal.NewFromString("12.99")
	require.NoError(t, err)

	resp, err := svc.Checkout(ctx, &dto.CheckoutRequest{
		Items: []model.CartItem{
			{ID: "1", Name: "Truffle", Price: price, Quantity: 3},
		},
		Email:        "a@b.com",
		CustomerName: "A",
	})
	require.NoError(t, err)

	order, err := storage.GetOrder(ctx, resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "38.97", order.Total)
	assert.Equal(t, int64(3897), stripe.lastMinor)
}

func TestCheckoutValidation(t *testing.T) {
	ctx := context.Background()
	stripe := &fakeStripeClient{}
	svc, storage := newCheckoutFixture(stripe)

	cases := []struct {
		name string
		req  dto.CheckoutRequest
	}{
		{"empty items", dto.CheckoutRequest{Email: "a@b.com", CustomerName: "A"}},
		{"missing email", dto.CheckoutRequest{
			Items:        []model.CartItem{{ID: "1", Price: decimal.NewFromInt(1), Quantity: 1}},
			CustomerName: "A",
		}},
		{"missing name", dto.CheckoutRequest{
			Items: []model.CartItem{{ID: "1", Price: decimal.NewFromInt(1), Quantity: 1}},
			Email: "a@b.com",
		}},
		{"zero quantity", dto.CheckoutRequest{
			Items:        []model.CartItem{{ID: "1", Price: decimal.NewFromInt(1), Quantity: 0}},
			Email:        "a@b.com",
			CustomerName: "A",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Checkout(ctx, &tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// nothing was persisted and the provider was never called
	orders, err := storage.GetAllOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Zero(t, stripe.calls)
}

func TestCheckoutProviderFailureLeavesOrphanedOrder(t *testing.T) {
	ctx := context.Background()
	stripe := &fakeStripeClient{err: errors.New("stripe error 502: bad gateway")}
	svc, storage := newCheckoutFixture(stripe)

	_, err := svc.Checkout(ctx, &dto.CheckoutRequest{
		Items:        []model.CartItem{{ID: "1", Price: decimal.NewFromInt(100), Quantity: 1}},
		Email:        "a@b.com",
		CustomerName: "A",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)

	// the created order is not rolled back; it stays pending with no
	// payment reference for admin reconciliation
	orders, err := storage.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusPending, orders[0].Status)
	assert.Empty(t, orders[0].StripePaymentIntentID)
}
