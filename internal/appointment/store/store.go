package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/appointment"
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

func scanAppointment(s scanner) (*appointment.Appointment, error) {
	var a appointment.Appointment

	var typeStr, statusStr string

	if err := s.Scan(
		&a.ID, &a.SpaceID, &a.Title, &a.Amount, &a.Date, &typeStr, &statusStr, &a.CreatedAt,
	); err != nil {
		return nil, err
	}

	a.Type = appointment.Type(typeStr)
	a.Status = appointment.Status(statusStr)

	return &a, nil
}

const selectColumns = `
	id, space_id, title, amount, date, type, status, created_at
`

func (s *Store) Create(ctx context.Context, a *appointment.Appointment) error {
	query := `
		INSERT INTO appointments (space_id, title, amount, date, type, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.SpaceID,
		a.Title,
		a.Amount,
		a.Date,
		a.Type,
		a.Status,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating appointment: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	query := `SELECT ` + selectColumns + ` FROM appointments WHERE id = $1`

	a, err := scanAppointment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appointment.ErrNotFound
		}

		return nil, fmt.Errorf("getting appointment: %w", err)
	}

	return a, nil
}

func (s *Store) List(ctx context.Context, spaceID uuid.UUID, start, end time.Time) ([]*appointment.Appointment, error) {
	query := `SELECT ` + selectColumns + `
		FROM appointments
		WHERE space_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC`

	rows, err := s.db.QueryContext(ctx, query, spaceID, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	defer rows.Close()

	var apts []*appointment.Appointment

	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning appointment: %w", err)
		}

		apts = append(apts, a)
	}

	return apts, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status appointment.Status) error {
	res, err := s.db.ExecContext(ctx, `UPDATE appointments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("updating appointment status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("counting updated appointments: %w", err)
	}

	if n == 0 {
		return appointment.ErrNotFound
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting appointment: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("counting deleted appointments: %w", err)
	}

	if n == 0 {
		return appointment.ErrNotFound
	}

	return nil
}
