package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/bill"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanFixedBill(s scanner) (*bill.FixedBill, error) {
	var fb bill.FixedBill

	if err := s.Scan(
		&fb.ID, &fb.SpaceID, &fb.Title, &fb.Amount, &fb.Category, &fb.DueDay,
		&fb.Description, &fb.IsActive, &fb.CreatedAt, &fb.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &fb, nil
}

const selectFixedBillColumns = `
	id, space_id, title, amount, category, due_day, description, is_active, created_at, updated_at
`

func (s *Store) CreateFixedBill(ctx context.Context, fb *bill.FixedBill) error {
	query := `
		INSERT INTO fixed_bills (space_id, title, amount, category, due_day, description, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		fb.SpaceID,
		fb.Title,
		fb.Amount,
		fb.Category,
		fb.DueDay,
		fb.Description,
		fb.IsActive,
	).Scan(&fb.ID, &fb.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating fixed bill: %w", err)
	}

	return nil
}

func (s *Store) GetFixedBill(ctx context.Context, id uuid.UUID) (*bill.FixedBill, error) {
	query := `SELECT ` + selectFixedBillColumns + ` FROM fixed_bills WHERE id = $1`

	fb, err := scanFixedBill(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bill.ErrNotFound
		}

		return nil, fmt.Errorf("getting fixed bill: %w", err)
	}

	return fb, nil
}

func (s *Store) ListFixedBills(ctx context.Context, spaceID uuid.UUID) ([]*bill.FixedBill, error) {
	query := `SELECT ` + selectFixedBillColumns + `
		FROM fixed_bills
		WHERE space_id = $1 AND is_active
		ORDER BY due_day ASC, title ASC`

	rows, err := s.db.QueryContext(ctx, query, spaceID)
	if err != nil {
		return nil, fmt.Errorf("listing fixed bills: %w", err)
	}
	defer rows.Close()

	var bills []*bill.FixedBill

	for rows.Next() {
		fb, err := scanFixedBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fixed bill: %w", err)
		}

		bills = append(bills, fb)
	}

	return bills, rows.Err()
}

func (s *Store) UpdateFixedBill(ctx context.Context, fb *bill.FixedBill) error {
	query := `
		UPDATE fixed_bills
		SET title = $1, amount = $2, category = $3, due_day = $4, description = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		fb.Title,
		fb.Amount,
		fb.Category,
		fb.DueDay,
		fb.Description,
		fb.ID,
	)
	if err != nil {
		return fmt.Errorf("updating fixed bill: %w", err)
	}

	return nil
}

func (s *Store) DeactivateFixedBill(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE fixed_bills
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivating fixed bill: %w", err)
	}

	return nil
}

// InsertMonthlyBill relies on the unique index over
// (fixed_bill_id, month of due_date): a second instance for the same month
// hits the conflict and is silently skipped, making generation idempotent
// without a read-before-write.
func (s *Store) InsertMonthlyBill(ctx context.Context, mb *bill.MonthlyBill) (bool, error) {
	query := `
		INSERT INTO monthly_bills (fixed_bill_id, space_id, title, amount, due_date, status, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (fixed_bill_id, date_trunc('month', due_date)) DO NOTHING
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		mb.FixedBillID,
		mb.SpaceID,
		mb.Title,
		mb.Amount,
		mb.DueDate,
		mb.Status,
		mb.Description,
	).Scan(&mb.ID, &mb.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}

		return false, fmt.Errorf("inserting monthly bill: %w", err)
	}

	return true, nil
}

func scanMonthlyBill(s scanner) (*bill.MonthlyBill, error) {
	var mb bill.MonthlyBill

	var statusStr string

	var category sql.NullString

	if err := s.Scan(
		&mb.ID, &mb.FixedBillID, &mb.SpaceID, &mb.Title, &mb.Amount, &mb.DueDate,
		&statusStr, &mb.Description, &category, &mb.CreatedAt, &mb.UpdatedAt,
	); err != nil {
		return nil, err
	}

	mb.Status = bill.Status(statusStr)
	mb.Category = category.String

	return &mb, nil
}

const selectMonthlyBillColumns = `
	m.id, m.fixed_bill_id, m.space_id, m.title, m.amount, m.due_date,
	m.status, m.description, f.category, m.created_at, m.updated_at
`

func (s *Store) GetMonthlyBill(ctx context.Context, id uuid.UUID) (*bill.MonthlyBill, error) {
	query := `SELECT ` + selectMonthlyBillColumns + `
		FROM monthly_bills m
		JOIN fixed_bills f ON m.fixed_bill_id = f.id
		WHERE m.id = $1`

	mb, err := scanMonthlyBill(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bill.ErrNotFound
		}

		return nil, fmt.Errorf("getting monthly bill: %w", err)
	}

	return mb, nil
}

func (s *Store) ListMonthlyBills(ctx context.Context, spaceID uuid.UUID, start, end time.Time) ([]*bill.MonthlyBill, error) {
	query := `SELECT ` + selectMonthlyBillColumns + `
		FROM monthly_bills m
		JOIN fixed_bills f ON m.fixed_bill_id = f.id
		WHERE m.space_id = $1 AND m.due_date >= $2 AND m.due_date <= $3
		ORDER BY m.due_date ASC`

	return s.queryMonthlyBills(ctx, query, spaceID, start, end)
}

func (s *Store) ListPendingFrom(ctx context.Context, fixedBillID uuid.UUID, from time.Time) ([]*bill.MonthlyBill, error) {
	query := `SELECT ` + selectMonthlyBillColumns + `
		FROM monthly_bills m
		JOIN fixed_bills f ON m.fixed_bill_id = f.id
		WHERE m.fixed_bill_id = $1 AND m.status = 'pending' AND m.due_date >= $2
		ORDER BY m.due_date ASC`

	return s.queryMonthlyBills(ctx, query, fixedBillID, from)
}

func (s *Store) queryMonthlyBills(ctx context.Context, query string, args ...any) ([]*bill.MonthlyBill, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing monthly bills: %w", err)
	}
	defer rows.Close()

	var bills []*bill.MonthlyBill

	for rows.Next() {
		mb, err := scanMonthlyBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning monthly bill: %w", err)
		}

		bills = append(bills, mb)
	}

	return bills, rows.Err()
}

func (s *Store) UpdateMonthlyBill(ctx context.Context, mb *bill.MonthlyBill) error {
	query := `
		UPDATE monthly_bills
		SET title = $1, amount = $2, due_date = $3, status = $4, description = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		mb.Title,
		mb.Amount,
		mb.DueDate,
		mb.Status,
		mb.Description,
		mb.ID,
	)
	if err != nil {
		return fmt.Errorf("updating monthly bill: %w", err)
	}

	return nil
}

func (s *Store) DeletePendingFrom(ctx context.Context, fixedBillID uuid.UUID, from time.Time) (int64, error) {
	query := `
		DELETE FROM monthly_bills
		WHERE fixed_bill_id = $1 AND status = 'pending' AND due_date >= $2
	`

	res, err := s.db.ExecContext(ctx, query, fixedBillID, from)
	if err != nil {
		return 0, fmt.Errorf("deleting future bills: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted bills: %w", err)
	}

	return n, nil
}
