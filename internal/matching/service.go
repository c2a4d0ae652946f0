package matching

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type Repository interface {
	FindCategory(ctx context.Context, description string) (string, error)
	CreateMapping(ctx context.Context, pattern, category string) error
}

// Service suggests a category for a transaction description based on
// patterns learned from earlier imports.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the learned category for the description, or empty string
// when nothing matches.
func (s *Service) Suggest(ctx context.Context, description string) (string, error) {
	return s.repo.FindCategory(ctx, description)
}

// Learn remembers that descriptions containing pattern belong to category.
func (s *Service) Learn(ctx context.Context, pattern, category string) error {
	return s.repo.CreateMapping(ctx, pattern, category)
}
