package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	Create(ctx context.Context, tx *Transaction) error
	Get(ctx context.Context, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, spaceID uuid.UUID, filter Filter) ([]*Transaction, error)
	Update(ctx context.Context, tx *Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Filter narrows List results; zero values mean "no constraint".
type Filter struct {
	Start    time.Time
	End      time.Time
	Type     Type
	Category string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	SpaceID     uuid.UUID
	ProfileID   uuid.UUID
	Amount      int64
	Description string
	Category    string
	Type        Type
	Date        time.Time
}

func (p CreateParams) validate() error {
	var missing []string

	if p.Description == "" {
		missing = append(missing, "description")
	}

	if p.Amount == 0 {
		missing = append(missing, "amount")
	}

	if p.Category == "" {
		missing = append(missing, "category")
	}

	if p.Type != TypeIncome && p.Type != TypeExpense {
		missing = append(missing, "type")
	}

	if p.Date.IsZero() {
		missing = append(missing, "date")
	}

	if len(missing) > 0 {
		return validation.NewError(missing...)
	}

	return nil
}

// normalizeAmount forces the sign to agree with the type, whatever the caller
// sent. An expense entered as -50 or 50 both land as -50.
func normalizeAmount(amount int64, t Type) int64 {
	if amount < 0 {
		amount = -amount
	}

	if t == TypeExpense {
		return -amount
	}

	return amount
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	tx := &Transaction{
		SpaceID:     params.SpaceID,
		ProfileID:   params.ProfileID,
		Amount:      normalizeAmount(params.Amount, params.Type),
		Description: params.Description,
		Category:    params.Category,
		Type:        params.Type,
		Date:        params.Date,
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// UpdateParams carries partial edits; nil fields are left alone. Amount goes
// through the same sign normalization as Create, against the stored type.
type UpdateParams struct {
	Amount      *int64
	Description *string
	Category    *string
	Date        *time.Time
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Transaction, error) {
	tx, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Amount != nil {
		tx.Amount = normalizeAmount(*params.Amount, tx.Type)
	}

	if params.Description != nil {
		tx.Description = *params.Description
	}

	if params.Category != nil {
		tx.Category = *params.Category
	}

	if params.Date != nil {
		tx.Date = *params.Date
	}

	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// ReminderPrefix marks ledger entries created through CreateReminder.
const ReminderPrefix = "Lembrete: "

// CreateReminder records a dated note on the ledger as an expense. The
// amount is optional: zero leaves a pure note, anything else is normalized
// like a regular expense. Either way the entry shows up on the calendar for
// its day.
func (s *Service) CreateReminder(ctx context.Context, spaceID, profileID uuid.UUID, title string, amount int64, date time.Time) (*Transaction, error) {
	var missing []string

	if title == "" {
		missing = append(missing, "title")
	}

	if date.IsZero() {
		missing = append(missing, "date")
	}

	if len(missing) > 0 {
		return nil, validation.NewError(missing...)
	}

	if amount != 0 {
		amount = normalizeAmount(amount, TypeExpense)
	}

	tx := &Transaction{
		SpaceID:     spaceID,
		ProfileID:   profileID,
		Amount:      amount,
		Description: ReminderPrefix + title,
		Category:    "Outros",
		Type:        TypeExpense,
		Date:        date,
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// Delete removes the transaction permanently. Unlike bill templates there is
// no history to preserve, a deleted entry is gone.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, spaceID uuid.UUID, filter Filter) ([]*Transaction, error) {
	return s.repo.List(ctx, spaceID, filter)
}
