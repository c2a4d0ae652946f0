package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/profile"
)

// Profiles is the slice of the profile service billing needs.
//
//go:generate mockgen -source=service.go -destination=profiles_mock.go -package=billing
type Profiles interface {
	Get(ctx context.Context, id uuid.UUID) (*profile.Profile, error)
	SetStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) error
}

type Service struct {
	provider Provider
	profiles Profiles
}

func NewService(provider Provider, profiles Profiles) *Service {
	return &Service{provider: provider, profiles: profiles}
}

// ensureCustomer returns the stored provider customer id, creating and
// persisting one on first contact.
func (s *Service) ensureCustomer(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("loading profile: %w", err)
	}

	if p.StripeCustomerID != "" {
		return p.StripeCustomerID, nil
	}

	customerID, err := s.provider.CreateCustomer(ctx, email)
	if err != nil {
		return "", fmt.Errorf("creating customer: %w", err)
	}

	if err := s.profiles.SetStripeCustomerID(ctx, userID, customerID); err != nil {
		return "", fmt.Errorf("storing customer id: %w", err)
	}

	return customerID, nil
}

// CheckoutURL returns the URL of a fresh subscription checkout session.
func (s *Service) CheckoutURL(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	customerID, err := s.ensureCustomer(ctx, userID, email)
	if err != nil {
		return "", err
	}

	url, err := s.provider.CreateCheckoutSession(ctx, customerID)
	if err != nil {
		return "", fmt.Errorf("creating checkout session: %w", err)
	}

	return url, nil
}

// PortalURL returns the URL of the provider's subscription management portal.
func (s *Service) PortalURL(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	customerID, err := s.ensureCustomer(ctx, userID, email)
	if err != nil {
		return "", err
	}

	url, err := s.provider.CreatePortalSession(ctx, customerID)
	if err != nil {
		return "", fmt.Errorf("creating portal session: %w", err)
	}

	return url, nil
}
