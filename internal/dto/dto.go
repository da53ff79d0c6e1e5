package dto

import "storefront/internal/model"

type CheckoutRequest struct {
	Items           []model.CartItem `json:"items"`
	Email           string           `json:"email"`
	CustomerName    string           `json:"customerName"`
	CustomerPhone   string           `json:"customerPhone"`
	ShippingAddress string           `json:"shippingAddress"`
}

type CheckoutResponse struct {
	ClientSecret string `json:"clientSecret"`
	OrderID      string `json:"orderId"`
}

type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

// UpdateProductRequest carries only the fields present in the request body;
// omitted fields stay nil and are not written.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
}

type CreateOrderRequest struct {
	CustomerName    string           `json:"customerName"`
	CustomerEmail   string           `json:"customerEmail"`
	CustomerPhone   string           `json:"customerPhone"`
	ShippingAddress string           `json:"shippingAddress"`
	Items           []model.CartItem `json:"items"`
	Total           string           `json:"total"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type CreateSubmissionRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type DeleteProductResponse struct {
	Success bool `json:"success"`
}

type PublishableKeyResponse struct {
	PublishableKey string `json:"publishableKey"`
}
