package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/space"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindMembershipSpace(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	query := `
		SELECT space_id
		FROM space_members
		WHERE user_id = $1
		ORDER BY created_at ASC
		LIMIT 1
	`

	var id uuid.UUID

	err := s.db.QueryRowContext(ctx, query, userID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return uuid.Nil, space.ErrNotFound
		}

		return uuid.Nil, fmt.Errorf("finding membership: %w", err)
	}

	return id, nil
}

func (s *Store) FindOwnedSpace(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	query := `
		SELECT id
		FROM spaces
		WHERE owner_id = $1
		ORDER BY created_at ASC
		LIMIT 1
	`

	var id uuid.UUID

	err := s.db.QueryRowContext(ctx, query, userID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return uuid.Nil, space.ErrNotFound
		}

		return uuid.Nil, fmt.Errorf("finding owned space: %w", err)
	}

	return id, nil
}

// CreateWithMember inserts the space and the owner's membership in a single
// database transaction so the resolved id is never valid without both rows.
func (s *Store) CreateWithMember(ctx context.Context, sp *space.Space, role string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	spaceQuery := `
		INSERT INTO spaces (name, owner_id)
		VALUES ($1, $2)
		RETURNING id, invite_code, created_at
	`

	if err := tx.QueryRowContext(ctx, spaceQuery, sp.Name, sp.OwnerID).
		Scan(&sp.ID, &sp.InviteCode, &sp.CreatedAt); err != nil {
		return fmt.Errorf("creating space: %w", err)
	}

	memberQuery := `
		INSERT INTO space_members (space_id, user_id, role)
		VALUES ($1, $2, $3)
	`

	if _, err := tx.ExecContext(ctx, memberQuery, sp.ID, sp.OwnerID, role); err != nil {
		return fmt.Errorf("creating membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing space creation: %w", err)
	}

	return nil
}

func (s *Store) GetSpace(ctx context.Context, id uuid.UUID) (*space.Space, error) {
	query := `
		SELECT id, name, owner_id, invite_code, created_at
		FROM spaces
		WHERE id = $1
	`

	var sp space.Space

	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&sp.ID, &sp.Name, &sp.OwnerID, &sp.InviteCode, &sp.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, space.ErrNotFound
		}

		return nil, fmt.Errorf("getting space: %w", err)
	}

	return &sp, nil
}

func (s *Store) JoinByCode(ctx context.Context, code string, userID uuid.UUID) (*space.JoinResult, error) {
	var raw []byte

	err := s.db.QueryRowContext(ctx, `SELECT join_space_by_code($1, $2)`, code, userID).Scan(&raw)
	if err != nil {
		return nil, fmt.Errorf("calling join_space_by_code: %w", err)
	}

	var res space.JoinResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decoding join result: %w", err)
	}

	return &res, nil
}
