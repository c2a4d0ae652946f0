package space

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=space
type Repository interface {
	FindMembershipSpace(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	FindOwnedSpace(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	CreateWithMember(ctx context.Context, sp *Space, role string) error
	GetSpace(ctx context.Context, id uuid.UUID) (*Space, error)
	JoinByCode(ctx context.Context, code string, userID uuid.UUID) (*JoinResult, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Resolve returns the id of the space the user's data belongs to.
// Membership wins over ownership; first match is taken in both lookups.
func (s *Service) Resolve(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	id, err := s.repo.FindMembershipSpace(ctx, userID)
	if err == nil {
		return id, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return uuid.Nil, fmt.Errorf("looking up membership: %w", err)
	}

	id, err = s.repo.FindOwnedSpace(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return uuid.Nil, ErrNotFound
		}

		return uuid.Nil, fmt.Errorf("looking up owned space: %w", err)
	}

	return id, nil
}

// ResolveOrCreate resolves like Resolve, creating a personal space with an
// admin membership when the user has none yet. The space and membership are
// written atomically; a failure here is fatal for the calling operation
// since every domain write requires a space.
func (s *Service) ResolveOrCreate(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	id, err := s.Resolve(ctx, userID)
	if err == nil {
		return id, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return uuid.Nil, err
	}

	sp := &Space{Name: DefaultName, OwnerID: userID}
	if err := s.repo.CreateWithMember(ctx, sp, RoleAdmin); err != nil {
		return uuid.Nil, fmt.Errorf("could not create workspace: %w", err)
	}

	return sp.ID, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Space, error) {
	return s.repo.GetSpace(ctx, id)
}

// JoinByCode adds the user to the space behind the invite code via the
// join_space_by_code database function.
func (s *Service) JoinByCode(ctx context.Context, code string, userID uuid.UUID) (*JoinResult, error) {
	res, err := s.repo.JoinByCode(ctx, code, userID)
	if err != nil {
		return nil, fmt.Errorf("joining space: %w", err)
	}

	return res, nil
}
