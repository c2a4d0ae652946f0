package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/profile"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	query := `SELECT id, full_name, stripe_customer_id, updated_at FROM profiles WHERE id = $1`

	var p profile.Profile

	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.FullName, &p.StripeCustomerID, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrNotFound
		}

		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return &p, nil
}

func (s *Store) UpsertName(ctx context.Context, id uuid.UUID, fullName string) (*profile.Profile, error) {
	query := `
		INSERT INTO profiles (id, full_name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET full_name = EXCLUDED.full_name, updated_at = NOW()
		RETURNING id, full_name, stripe_customer_id, updated_at
	`

	var p profile.Profile

	err := s.db.QueryRowContext(ctx, query, id, fullName).
		Scan(&p.ID, &p.FullName, &p.StripeCustomerID, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upserting profile name: %w", err)
	}

	return &p, nil
}

func (s *Store) SetStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) error {
	query := `
		INSERT INTO profiles (id, stripe_customer_id)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET stripe_customer_id = EXCLUDED.stripe_customer_id, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, id, customerID); err != nil {
		return fmt.Errorf("setting stripe customer id: %w", err)
	}

	return nil
}
