package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=profile
type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*Profile, error)

	// UpsertName writes the display name, creating the row on first touch.
	UpsertName(ctx context.Context, id uuid.UUID, fullName string) (*Profile, error)
	SetStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the profile, or an empty one when the user never saved a name.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	p, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return &Profile{ID: id}, nil
	}

	return p, err
}

func (s *Service) UpdateName(ctx context.Context, id uuid.UUID, fullName string) (*Profile, error) {
	if fullName == "" {
		return nil, validation.NewError("full_name")
	}

	return s.repo.UpsertName(ctx, id, fullName)
}

func (s *Service) SetStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) error {
	return s.repo.SetStripeCustomerID(ctx, id, customerID)
}
