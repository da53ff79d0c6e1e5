package store

import (
	"context"
	"errors"

	"storefront/internal/model"
)

// ErrNotFound is returned when the requested row does not exist. Callers map
// it to a 404; it is distinct from storage being unavailable.
var ErrNotFound = errors.New("record not found")

// ProductPatch enumerates the fields an admin may change on a product. Nil
// fields are left untouched by the update.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *string
	Category    *string
	ImageURL    *string
}

// Storage is the persistence contract shared by the durable (gorm) and
// in-memory implementations. Both must behave identically from the caller's
// point of view; only the gorm one survives a restart.
type Storage interface {
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]*model.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)

	GetOrder(ctx context.Context, id string) (*model.Order, error)
	GetAllOrders(ctx context.Context) ([]*model.Order, error)
	// CreateOrder assigns a fresh identifier and forces status to pending
	// regardless of what the caller supplied.
	CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	UpdateOrderStripePayment(ctx context.Context, id string, paymentIntentID string) (*model.Order, error)

	// GetOrCreateUser is idempotent: repeated calls with the same email
	// return the same user.
	GetOrCreateUser(ctx context.Context, email string) (*model.User, error)
	UpdateUserStripeInfo(ctx context.Context, userID, customerID, subscriptionID string) (*model.User, error)

	GetAllContactSubmissions(ctx context.Context) ([]*model.ContactSubmission, error)
	CreateContactSubmission(ctx context.Context, submission *model.ContactSubmission) (*model.ContactSubmission, error)
}

func (p ProductPatch) apply(product *model.Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.ImageURL != nil {
		product.ImageURL = *p.ImageURL
	}
}
