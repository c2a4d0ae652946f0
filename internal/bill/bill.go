package bill

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("bill not found")

// Status represents the payment state of a monthly bill instance.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// FixedBill is a recurring bill template (rent, internet, ...). It is never
// physically removed: deactivation keeps the paid history intact.
type FixedBill struct {
	ID          uuid.UUID
	SpaceID     uuid.UUID
	Title       string
	Amount      int64 // Amount in cents
	Category    string
	DueDay      int // 1-31, clamped to the month's last day on generation
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// MonthlyBill is one concrete month's instance of a FixedBill. It is payable
// and editable on its own without touching the template.
type MonthlyBill struct {
	ID          uuid.UUID
	FixedBillID uuid.UUID
	SpaceID     uuid.UUID
	Title       string
	Amount      int64
	DueDate     time.Time // date-only, within the month it was generated for
	Status      Status
	Description string
	Category    string // carried from the template for display
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
