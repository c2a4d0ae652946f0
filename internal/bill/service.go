package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/validation"
)

// monthsAhead is how far past the current month generation reaches, giving
// 13 instances in total (current month included).
const monthsAhead = 12

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bill
type Repository interface {
	CreateFixedBill(ctx context.Context, fb *FixedBill) error
	GetFixedBill(ctx context.Context, id uuid.UUID) (*FixedBill, error)
	ListFixedBills(ctx context.Context, spaceID uuid.UUID) ([]*FixedBill, error)
	UpdateFixedBill(ctx context.Context, fb *FixedBill) error
	DeactivateFixedBill(ctx context.Context, id uuid.UUID) error

	// InsertMonthlyBill inserts the instance unless its month is already
	// taken for the same template; it reports whether a row was created.
	InsertMonthlyBill(ctx context.Context, mb *MonthlyBill) (bool, error)
	GetMonthlyBill(ctx context.Context, id uuid.UUID) (*MonthlyBill, error)
	ListMonthlyBills(ctx context.Context, spaceID uuid.UUID, start, end time.Time) ([]*MonthlyBill, error)
	ListPendingFrom(ctx context.Context, fixedBillID uuid.UUID, from time.Time) ([]*MonthlyBill, error)
	UpdateMonthlyBill(ctx context.Context, mb *MonthlyBill) error
	DeletePendingFrom(ctx context.Context, fixedBillID uuid.UUID, from time.Time) (int64, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	SpaceID     uuid.UUID
	Title       string
	Amount      int64
	Category    string
	DueDay      int
	Description string
}

func (p CreateParams) validate() error {
	var missing []string

	if p.Title == "" {
		missing = append(missing, "title")
	}

	if p.Amount == 0 {
		missing = append(missing, "amount")
	}

	if p.Category == "" {
		missing = append(missing, "category")
	}

	if p.DueDay < 1 || p.DueDay > 31 {
		missing = append(missing, "due_day")
	}

	if len(missing) > 0 {
		return validation.NewError(missing...)
	}

	return nil
}

// CreateFixedBill stores the template and immediately expands it into
// monthly instances.
func (s *Service) CreateFixedBill(ctx context.Context, params CreateParams) (*FixedBill, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	fb := &FixedBill{
		SpaceID:     params.SpaceID,
		Title:       params.Title,
		Amount:      params.Amount,
		Category:    params.Category,
		DueDay:      params.DueDay,
		Description: params.Description,
		IsActive:    true,
	}

	if err := s.repo.CreateFixedBill(ctx, fb); err != nil {
		return nil, err
	}

	if err := s.GenerateInstances(ctx, fb.ID); err != nil {
		return nil, fmt.Errorf("generating monthly bills: %w", err)
	}

	return fb, nil
}

// GenerateInstances expands the template into one pending instance per month
// for the current month plus the next twelve. Months that already have an
// instance are skipped, so repeated calls never duplicate; the store
// enforces this with a uniqueness guarantee on (template, month).
func (s *Service) GenerateInstances(ctx context.Context, fixedBillID uuid.UUID) error {
	fb, err := s.repo.GetFixedBill(ctx, fixedBillID)
	if err != nil {
		return err
	}

	now := s.now()

	for i := 0; i <= monthsAhead; i++ {
		target := time.Date(now.Year(), now.Month()+time.Month(i), 1, 0, 0, 0, 0, time.UTC)

		mb := &MonthlyBill{
			FixedBillID: fb.ID,
			SpaceID:     fb.SpaceID,
			Title:       fb.Title,
			Amount:      fb.Amount,
			DueDate:     dueDateFor(target.Year(), target.Month(), fb.DueDay),
			Status:      StatusPending,
			Description: fb.Description,
		}

		if _, err := s.repo.InsertMonthlyBill(ctx, mb); err != nil {
			return fmt.Errorf("inserting bill for %s: %w", target.Format("2006-01"), err)
		}
	}

	return nil
}

type UpdateParams struct {
	Title       string
	Amount      int64
	Category    string
	DueDay      int
	Description string
}

// UpdateFixedBill rewrites the template and propagates the change to future
// pending instances only. Each affected instance keeps its month: the new
// due day is re-clamped inside it. Paid instances and anything due before
// today are history and stay untouched.
func (s *Service) UpdateFixedBill(ctx context.Context, id uuid.UUID, params UpdateParams) (*FixedBill, error) {
	if err := (CreateParams{
		Title:    params.Title,
		Amount:   params.Amount,
		Category: params.Category,
		DueDay:   params.DueDay,
	}).validate(); err != nil {
		return nil, err
	}

	fb, err := s.repo.GetFixedBill(ctx, id)
	if err != nil {
		return nil, err
	}

	fb.Title = params.Title
	fb.Amount = params.Amount
	fb.Category = params.Category
	fb.DueDay = params.DueDay
	fb.Description = params.Description

	if err := s.repo.UpdateFixedBill(ctx, fb); err != nil {
		return nil, err
	}

	today := startOfDay(s.now())

	future, err := s.repo.ListPendingFrom(ctx, id, today)
	if err != nil {
		return nil, fmt.Errorf("listing future bills: %w", err)
	}

	for _, mb := range future {
		mb.Title = params.Title
		mb.Amount = params.Amount
		mb.Description = params.Description
		mb.DueDate = dueDateFor(mb.DueDate.Year(), mb.DueDate.Month(), params.DueDay)

		if err := s.repo.UpdateMonthlyBill(ctx, mb); err != nil {
			return nil, fmt.Errorf("updating bill %s: %w", mb.ID, err)
		}
	}

	return fb, nil
}

// Archive deactivates the template and removes its future pending instances.
// Paid instances and past-due pending ones survive permanently.
func (s *Service) Archive(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeactivateFixedBill(ctx, id); err != nil {
		return err
	}

	today := startOfDay(s.now())

	if _, err := s.repo.DeletePendingFrom(ctx, id, today); err != nil {
		return fmt.Errorf("purging future bills: %w", err)
	}

	return nil
}

// InstanceUpdate carries per-instance edits; nil fields are left alone.
type InstanceUpdate struct {
	Status      *Status
	Amount      *int64
	Description *string
}

// UpdateInstance edits a single monthly bill without touching the template.
func (s *Service) UpdateInstance(ctx context.Context, id uuid.UUID, upd InstanceUpdate) (*MonthlyBill, error) {
	mb, err := s.repo.GetMonthlyBill(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil {
		mb.Status = *upd.Status
	}

	if upd.Amount != nil {
		mb.Amount = *upd.Amount
	}

	if upd.Description != nil {
		mb.Description = *upd.Description
	}

	if err := s.repo.UpdateMonthlyBill(ctx, mb); err != nil {
		return nil, err
	}

	return mb, nil
}

func (s *Service) ListFixedBills(ctx context.Context, spaceID uuid.UUID) ([]*FixedBill, error) {
	return s.repo.ListFixedBills(ctx, spaceID)
}

func (s *Service) ListMonthlyBills(ctx context.Context, spaceID uuid.UUID, start, end time.Time) ([]*MonthlyBill, error) {
	return s.repo.ListMonthlyBills(ctx, spaceID, start, end)
}
