package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/model"
)

type gormStorage struct {
	db *gorm.DB
}

// NewGormStorage opens the durable store and migrates the schema. A DSN of
// the form user:pass@tcp(host)/db selects mysql; anything else is treated as
// a sqlite path.
func NewGormStorage(databaseURL string) (Storage, error) {
	var dialector gorm.Dialector
	if strings.Contains(databaseURL, "@tcp(") {
		dialector = mysql.Open(databaseURL)
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.ContactSubmission{},
		&model.User{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &gormStorage{db: db}, nil
}

func (s *gormStorage) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, translate(err)
	}

	return &product, nil
}

func (s *gormStorage) GetAllProducts(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := s.db.WithContext(ctx).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (s *gormStorage) GetProductsByCategory(ctx context.Context, category string) ([]*model.Product, error) {
	var products []*model.Product
	err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (s *gormStorage) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	product.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}

	return product, nil
}

func (s *gormStorage) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&product).Error; err != nil {
			return err
		}

		patch.apply(&product)
		return tx.Save(&product).Error
	})
	if err != nil {
		return nil, translate(err)
	}

	return &product, nil
}

func (s *gormStorage) DeleteProduct(ctx context.Context, id string) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Product{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (s *gormStorage) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, translate(err)
	}

	return &order, nil
}

func (s *gormStorage) GetAllOrders(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := s.db.WithContext(ctx).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (s *gormStorage) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	order.ID = uuid.NewString()
	order.Status = model.OrderStatusPending
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}

	return order, nil
}

func (s *gormStorage) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	return s.updateOrder(ctx, id, map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
}

func (s *gormStorage) UpdateOrderStripePayment(ctx context.Context, id string, paymentIntentID string) (*model.Order, error) {
	return s.updateOrder(ctx, id, map[string]interface{}{
		"stripe_payment_intent_id": paymentIntentID,
		"updated_at":               time.Now(),
	})
}

func (s *gormStorage) updateOrder(ctx context.Context, id string, assignments map[string]interface{}) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&order).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Order{}).
			Where("id = ?", id).
			Updates(assignments).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).First(&order).Error
	})
	if err != nil {
		return nil, translate(err)
	}

	return &order, nil
}

func (s *gormStorage) GetOrCreateUser(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Concurrent first checkouts can race on the unique email index, so the
	// insert tolerates conflicts and the row is re-read afterwards.
	created := model.User{
		ID:    uuid.NewString(),
		Email: email,
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&created).Error
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *gormStorage) UpdateUserStripeInfo(ctx context.Context, userID, customerID, subscriptionID string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.User{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{
				"stripe_customer_id":     customerID,
				"stripe_subscription_id": subscriptionID,
			}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", userID).First(&user).Error
	})
	if err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

func (s *gormStorage) GetAllContactSubmissions(ctx context.Context) ([]*model.ContactSubmission, error) {
	var submissions []*model.ContactSubmission
	err := s.db.WithContext(ctx).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}

	return submissions, nil
}

func (s *gormStorage) CreateContactSubmission(ctx context.Context, submission *model.ContactSubmission) (*model.ContactSubmission, error) {
	submission.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(submission).Error; err != nil {
		return nil, err
	}

	return submission, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
