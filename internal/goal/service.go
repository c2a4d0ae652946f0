package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=goal
type Repository interface {
	Create(ctx context.Context, g *Goal) error
	Get(ctx context.Context, id uuid.UUID) (*Goal, error)
	List(ctx context.Context, spaceID uuid.UUID) ([]*Goal, error)
	Update(ctx context.Context, g *Goal) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AddToCurrent increments the stored amount in a single statement and
	// returns the resulting goal, so concurrent deposits never lose updates.
	AddToCurrent(ctx context.Context, id uuid.UUID, delta int64) (*Goal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	SpaceID      uuid.UUID
	Title        string
	TargetAmount int64
	Icon         string
}

func (p CreateParams) validate() error {
	var missing []string

	if p.Title == "" {
		missing = append(missing, "title")
	}

	if p.TargetAmount <= 0 {
		missing = append(missing, "target_amount")
	}

	if len(missing) > 0 {
		return validation.NewError(missing...)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Goal, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	g := &Goal{
		SpaceID:      params.SpaceID,
		Title:        params.Title,
		TargetAmount: params.TargetAmount,
		Icon:         params.Icon,
		Status:       StatusActive,
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

// Deposit adds amount to the goal. Negative amounts are withdrawals; both go
// through the repository's atomic increment.
func (s *Service) Deposit(ctx context.Context, id uuid.UUID, amount int64) (*Goal, error) {
	if amount == 0 {
		return nil, validation.NewError("amount")
	}

	return s.repo.AddToCurrent(ctx, id, amount)
}

type UpdateParams struct {
	Title        *string
	TargetAmount *int64
	Icon         *string
	Status       *Status
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Goal, error) {
	g, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		g.Title = *params.Title
	}

	if params.TargetAmount != nil {
		g.TargetAmount = *params.TargetAmount
	}

	if params.Icon != nil {
		g.Icon = *params.Icon
	}

	if params.Status != nil {
		g.Status = *params.Status
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Goal, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, spaceID uuid.UUID) ([]*Goal, error) {
	return s.repo.List(ctx, spaceID)
}
