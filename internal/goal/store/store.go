package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/goal"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGoal(s scanner) (*goal.Goal, error) {
	var g goal.Goal

	var statusStr string

	if err := s.Scan(
		&g.ID, &g.SpaceID, &g.Title, &g.TargetAmount, &g.CurrentAmount,
		&g.Icon, &statusStr, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}

	g.Status = goal.Status(statusStr)

	return &g, nil
}

const selectColumns = `
	id, space_id, title, target_amount, current_amount, icon, status, created_at, updated_at
`

func (s *Store) Create(ctx context.Context, g *goal.Goal) error {
	query := `
		INSERT INTO goals (space_id, title, target_amount, icon, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, current_amount, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		g.SpaceID,
		g.Title,
		g.TargetAmount,
		g.Icon,
		g.Status,
	).Scan(&g.ID, &g.CurrentAmount, &g.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating goal: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*goal.Goal, error) {
	query := `SELECT ` + selectColumns + ` FROM goals WHERE id = $1`

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("getting goal: %w", err)
	}

	return g, nil
}

func (s *Store) List(ctx context.Context, spaceID uuid.UUID) ([]*goal.Goal, error) {
	query := `SELECT ` + selectColumns + `
		FROM goals
		WHERE space_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, spaceID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*goal.Goal

	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}

		goals = append(goals, g)
	}

	return goals, rows.Err()
}

func (s *Store) Update(ctx context.Context, g *goal.Goal) error {
	query := `
		UPDATE goals
		SET title = $1, target_amount = $2, icon = $3, status = $4, updated_at = NOW()
		WHERE id = $5
	`

	_, err := s.db.ExecContext(ctx, query,
		g.Title,
		g.TargetAmount,
		g.Icon,
		g.Status,
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("counting deleted goals: %w", err)
	}

	if n == 0 {
		return goal.ErrNotFound
	}

	return nil
}

// AddToCurrent increments in place rather than read-modify-write, so two
// members depositing at the same time both land.
func (s *Store) AddToCurrent(ctx context.Context, id uuid.UUID, delta int64) (*goal.Goal, error) {
	query := `
		UPDATE goals
		SET current_amount = current_amount + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + selectColumns

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, delta, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("depositing to goal: %w", err)
	}

	return g, nil
}
