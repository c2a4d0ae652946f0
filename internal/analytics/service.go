package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/goal"
	"github.com/carteira-app/carteira/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=listers_mock.go -package=analytics
type TransactionLister interface {
	List(ctx context.Context, spaceID uuid.UUID, filter transaction.Filter) ([]*transaction.Transaction, error)
}

type GoalLister interface {
	List(ctx context.Context, spaceID uuid.UUID) ([]*goal.Goal, error)
}

type Service struct {
	transactions TransactionLister
	goals        GoalLister
	now          func() time.Time
}

func NewService(transactions TransactionLister, goals GoalLister) *Service {
	return &Service{
		transactions: transactions,
		goals:        goals,
		now:          time.Now,
	}
}

// Summary loads the space's full ledger plus its goals and derives the
// dashboard numbers. The fetch is unbounded because totals and the category
// ranking run over every movement, not a window. Nothing is cached.
func (s *Service) Summary(ctx context.Context, spaceID uuid.UUID) (Summary, error) {
	now := s.now()

	txs, err := s.transactions.List(ctx, spaceID, transaction.Filter{})
	if err != nil {
		return Summary{}, fmt.Errorf("listing transactions: %w", err)
	}

	goals, err := s.goals.List(ctx, spaceID)
	if err != nil {
		return Summary{}, fmt.Errorf("listing goals: %w", err)
	}

	return Compute(txs, goals, now), nil
}
