package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("appointment not found")

// Type separates money events from plain tasks on the calendar.
type Type string

const (
	TypeBill Type = "bill"
	TypeTask Type = "task"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Appointment is a one-off scheduled event, the lightweight alternative to a
// full recurring bill. A task carries no amount.
type Appointment struct {
	ID        uuid.UUID
	SpaceID   uuid.UUID
	Title     string
	Amount    int64 // cents, zero for tasks
	Date      time.Time
	Type      Type
	Status    Status
	CreatedAt time.Time
}
