package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/store"
)

type ProductService interface {
	List(ctx context.Context, category string) ([]*model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, req *dto.CreateProductRequest) (*model.Product, error)
	Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type productServiceImpl struct {
	storage store.Storage
}

func NewProductService(storage store.Storage) ProductService {
	return &productServiceImpl{
		storage: storage,
	}
}

func (s *productServiceImpl) List(ctx context.Context, category string) ([]*model.Product, error) {
	if category != "" {
		return s.storage.GetProductsByCategory(ctx, category)
	}
	return s.storage.GetAllProducts(ctx)
}

func (s *productServiceImpl) Get(ctx context.Context, id string) (*model.Product, error) {
	return s.storage.GetProduct(ctx, id)
}

func (s *productServiceImpl) Create(ctx context.Context, req *dto.CreateProductRequest) (*model.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}
	if !model.ValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, req.Category)
	}

	return s.storage.CreateProduct(ctx, &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.Image,
	})
}

func (s *productServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*model.Product, error) {
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.Category != nil && !model.ValidCategory(*req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, *req.Category)
	}

	return s.storage.UpdateProduct(ctx, id, store.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.Image,
	})
}

func (s *productServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	return s.storage.DeleteProduct(ctx, id)
}

func validatePrice(price string) error {
	if price == "" {
		return fmt.Errorf("%w: price is required", ErrValidation)
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("%w: price %q is not a decimal", ErrValidation, price)
	}
	if d.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}
