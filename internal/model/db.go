package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// Categories the storefront sells. Product writes are validated against this set.
var Categories = []string{"Chocolates", "Gummies", "Gift Boxes", "Candies"}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Product struct {
	ID          string    `gorm:"primaryKey;size:64;not null" json:"id"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       string    `gorm:"size:32;not null" json:"price"` // decimal string, e.g. "12.99"
	Category    string    `gorm:"size:32;index;not null" json:"category"`
	ImageURL    string    `gorm:"size:512" json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CartItem is one line of the cart snapshot serialized onto an order. It is a
// copy taken at checkout time, never a reference to a Product row, so later
// product edits do not affect historical orders.
type CartItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type Order struct {
	ID                    string      `gorm:"primaryKey;size:64;not null" json:"id"`
	CustomerName          string      `gorm:"size:128;not null" json:"customerName"`
	CustomerEmail         string      `gorm:"size:128;index;not null" json:"customerEmail"`
	CustomerPhone         string      `gorm:"size:32" json:"customerPhone"`
	ShippingAddress       string      `gorm:"type:text" json:"shippingAddress"`
	Items                 []CartItem  `gorm:"serializer:json;type:text" json:"items"`
	Total                 string      `gorm:"size:32;not null" json:"total"`
	Status                OrderStatus `gorm:"size:32;index;not null" json:"status"`
	StripePaymentIntentID string      `gorm:"size:128" json:"stripePaymentIntentId"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
}

type ContactSubmission struct {
	ID        string    `gorm:"primaryKey;size:64;not null" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Email     string    `gorm:"size:128;not null" json:"email"`
	Subject   string    `gorm:"size:256" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type User struct {
	ID                   string    `gorm:"primaryKey;size:64;not null" json:"id"`
	Email                string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	StripeCustomerID     string    `gorm:"size:128" json:"stripeCustomerId"`
	StripeSubscriptionID string    `gorm:"size:128" json:"stripeSubscriptionId"`
	CreatedAt            time.Time `json:"createdAt"`
}
