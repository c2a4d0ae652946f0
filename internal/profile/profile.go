package profile

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

// Profile is per-user display data keyed by the identity provider's user id.
// It rides along the external auth system, which owns credentials.
type Profile struct {
	ID               uuid.UUID
	FullName         string
	StripeCustomerID string
	UpdatedAt        time.Time
}
