package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/internal/model"
)

// memoryStorage keeps everything in process-local maps. It exists for local
// iteration without a database; state is lost on restart and it must not be
// shared across processes.
type memoryStorage struct {
	mu          sync.RWMutex
	products    map[string]*model.Product
	orders      map[string]*model.Order
	users       map[string]*model.User // keyed by email
	submissions []*model.ContactSubmission
}

func NewMemoryStorage() Storage {
	return &memoryStorage{
		products: make(map[string]*model.Product),
		orders:   make(map[string]*model.Order),
		users:    make(map[string]*model.User),
	}
}

func (s *memoryStorage) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}

	return copyProduct(product), nil
}

func (s *memoryStorage) GetAllProducts(ctx context.Context) ([]*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*model.Product, 0, len(s.products))
	for _, product := range s.products {
		products = append(products, copyProduct(product))
	}

	return products, nil
}

func (s *memoryStorage) GetProductsByCategory(ctx context.Context, category string) ([]*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var products []*model.Product
	for _, product := range s.products {
		if product.Category == category {
			products = append(products, copyProduct(product))
		}
	}

	return products, nil
}

func (s *memoryStorage) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := copyProduct(product)
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()
	s.products[created.ID] = created

	return copyProduct(created), nil
}

func (s *memoryStorage) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}

	patch.apply(product)

	return copyProduct(product), nil
}

func (s *memoryStorage) DeleteProduct(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)

	return true, nil
}

func (s *memoryStorage) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}

	return copyOrder(order), nil
}

func (s *memoryStorage) GetAllOrders(ctx context.Context) ([]*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*model.Order, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, copyOrder(order))
	}

	return orders, nil
}

func (s *memoryStorage) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := copyOrder(order)
	created.ID = uuid.NewString()
	created.Status = model.OrderStatusPending
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.orders[created.ID] = created

	return copyOrder(created), nil
}

func (s *memoryStorage) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()

	return copyOrder(order), nil
}

func (s *memoryStorage) UpdateOrderStripePayment(ctx context.Context, id string, paymentIntentID string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	order.StripePaymentIntentID = paymentIntentID
	order.UpdatedAt = time.Now()

	return copyOrder(order), nil
}

func (s *memoryStorage) GetOrCreateUser(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[email]; ok {
		return copyUser(user), nil
	}

	user := &model.User{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now(),
	}
	s.users[email] = user

	return copyUser(user), nil
}

func (s *memoryStorage) UpdateUserStripeInfo(ctx context.Context, userID, customerID, subscriptionID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == userID {
			user.StripeCustomerID = customerID
			user.StripeSubscriptionID = subscriptionID
			return copyUser(user), nil
		}
	}

	return nil, ErrNotFound
}

func (s *memoryStorage) GetAllContactSubmissions(ctx context.Context) ([]*model.ContactSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	submissions := make([]*model.ContactSubmission, 0, len(s.submissions))
	for _, submission := range s.submissions {
		copied := *submission
		submissions = append(submissions, &copied)
	}

	return submissions, nil
}

func (s *memoryStorage) CreateContactSubmission(ctx context.Context, submission *model.ContactSubmission) (*model.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *submission
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()
	s.submissions = append(s.submissions, &created)

	copied := created
	return &copied, nil
}

// Reads hand out copies so callers can never mutate store state through a
// returned pointer.
func copyProduct(product *model.Product) *model.Product {
	copied := *product
	return &copied
}

func copyOrder(order *model.Order) *model.Order {
	copied := *order
	copied.Items = make([]model.CartItem, len(order.Items))
	copy(copied.Items, order.Items)
	return &copied
}

func copyUser(user *model.User) *model.User {
	copied := *user
	return &copied
}
