package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("transaction not found")

// Type tells income from expense. The sign of Amount always agrees with it:
// expenses are stored negative, income positive.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

type Transaction struct {
	ID          uuid.UUID
	SpaceID     uuid.UUID
	ProfileID   uuid.UUID
	Amount      int64 // cents, signed
	Description string
	Category    string
	Type        Type
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
