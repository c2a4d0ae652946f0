// Package billing gates the subscription flow behind an external payment
// provider. The provider is an interface so the rest of the app, and the
// tests, never touch the real Stripe API.
package billing

import "context"

//go:generate mockgen -source=billing.go -destination=provider_mock.go -package=billing
type Provider interface {
	// CreateCustomer registers the user with the payment provider and
	// returns the provider's customer id.
	CreateCustomer(ctx context.Context, email string) (string, error)

	// CreateCheckoutSession opens a subscription checkout for the customer
	// and returns the URL the user should be sent to.
	CreateCheckoutSession(ctx context.Context, customerID string) (string, error)

	// CreatePortalSession opens the provider's self-service portal where the
	// customer manages or cancels the subscription.
	CreatePortalSession(ctx context.Context, customerID string) (string, error)
}
