package goal

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("goal not found")

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Goal is a savings target. CurrentAmount is only ever moved through atomic
// increments, so concurrent deposits from two members both count.
type Goal struct {
	ID            uuid.UUID
	SpaceID       uuid.UUID
	Title         string
	TargetAmount  int64 // cents
	CurrentAmount int64 // cents, may exceed TargetAmount
	Icon          string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Progress returns completion as a percentage clamped to [0, 100] for
// display. The stored amount itself is never clamped.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}

	pct := float64(g.CurrentAmount) / float64(g.TargetAmount) * 100

	if pct < 0 {
		return 0
	}

	if pct > 100 {
		return 100
	}

	return pct
}
