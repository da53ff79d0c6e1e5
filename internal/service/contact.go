package service

import (
	"context"
	"fmt"

	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/store"
)

type ContactService interface {
	List(ctx context.Context) ([]*model.ContactSubmission, error)
	Create(ctx context.Context, req *dto.CreateSubmissionRequest) (*model.ContactSubmission, error)
}

type contactServiceImpl struct {
	storage store.Storage
}

func NewContactService(storage store.Storage) ContactService {
	return &contactServiceImpl{
		storage: storage,
	}
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	return s.storage.GetAllContactSubmissions(ctx)
}

func (s *contactServiceImpl) Create(ctx context.Context, req *dto.CreateSubmissionRequest) (*model.ContactSubmission, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if req.Message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	return s.storage.CreateContactSubmission(ctx, &model.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
}
