package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=appointment
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	Get(ctx context.Context, id uuid.UUID) (*Appointment, error)
	List(ctx context.Context, spaceID uuid.UUID, start, end time.Time) ([]*Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	SpaceID uuid.UUID
	Title   string
	Amount  int64
	Type    Type
	DueDay  int // 1-31, placed on the next occurrence
}

func (p CreateParams) validate() error {
	var missing []string

	if p.Title == "" {
		missing = append(missing, "title")
	}

	if p.Type != TypeBill && p.Type != TypeTask {
		missing = append(missing, "type")
	}

	if p.DueDay < 1 || p.DueDay > 31 {
		missing = append(missing, "due_day")
	}

	if p.Type == TypeBill && p.Amount == 0 {
		missing = append(missing, "amount")
	}

	if len(missing) > 0 {
		return validation.NewError(missing...)
	}

	return nil
}

// Create schedules the appointment on the next occurrence of the due day:
// this month if the day has not passed yet (today included), otherwise next
// month. Days past the end of the target month clamp to its last day.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Appointment, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	a := &Appointment{
		SpaceID: params.SpaceID,
		Title:   params.Title,
		Amount:  params.Amount,
		Date:    s.nextOccurrence(params.DueDay),
		Type:    params.Type,
		Status:  StatusPending,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) nextOccurrence(dueDay int) time.Time {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	date := placeInMonth(now.Year(), now.Month(), dueDay)
	if date.Before(today) {
		next := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC)
		date = placeInMonth(next.Year(), next.Month(), dueDay)
	}

	return date
}

// placeInMonth puts day inside (year, month), clamping to the month's last
// day instead of rolling over.
func placeInMonth(year int, month time.Month, day int) time.Time {
	if last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day(); day > last {
		day = last
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if status != StatusPending && status != StatusPaid {
		return validation.NewError("status")
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, spaceID uuid.UUID, start, end time.Time) ([]*Appointment, error) {
	return s.repo.List(ctx, spaceID, start, end)
}
