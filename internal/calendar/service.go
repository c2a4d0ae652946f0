package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/carteira-app/carteira/internal/appointment"
	"github.com/carteira-app/carteira/internal/bill"
	"github.com/carteira-app/carteira/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=listers_mock.go -package=calendar
type BillLister interface {
	ListMonthlyBills(ctx context.Context, spaceID uuid.UUID, start, end time.Time) ([]*bill.MonthlyBill, error)
}

type TransactionLister interface {
	List(ctx context.Context, spaceID uuid.UUID, filter transaction.Filter) ([]*transaction.Transaction, error)
}

type AppointmentLister interface {
	List(ctx context.Context, spaceID uuid.UUID, start, end time.Time) ([]*appointment.Appointment, error)
}

// Service is a read-side composition over the three event sources. It owns
// no storage of its own.
type Service struct {
	bills        BillLister
	transactions TransactionLister
	appointments AppointmentLister
}

func NewService(bills BillLister, transactions TransactionLister, appointments AppointmentLister) *Service {
	return &Service{
		bills:        bills,
		transactions: transactions,
		appointments: appointments,
	}
}

// ListEvents merges all three sources for the window into one stream sorted
// by date.
func (s *Service) ListEvents(ctx context.Context, spaceID uuid.UUID, start, end time.Time) ([]Event, error) {
	txs, err := s.transactions.List(ctx, spaceID, transaction.Filter{Start: start, End: end})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	bills, err := s.bills.ListMonthlyBills(ctx, spaceID, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing monthly bills: %w", err)
	}

	apts, err := s.appointments.List(ctx, spaceID, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}

	events := make([]Event, 0, len(txs)+len(bills)+len(apts))

	for _, tx := range txs {
		events = append(events, Event{
			ID:       tx.ID,
			Source:   SourceTransaction,
			Title:    tx.Description,
			Amount:   tx.Amount,
			Date:     tx.Date,
			Type:     string(tx.Type),
			Category: tx.Category,
			IsPaid:   true,
		})
	}

	for _, mb := range bills {
		events = append(events, Event{
			ID:       mb.ID,
			Source:   SourceMonthlyBill,
			Title:    mb.Title,
			Amount:   mb.Amount,
			Date:     mb.DueDate,
			Type:     "bill",
			Category: mb.Category,
			IsPaid:   mb.Status == bill.StatusPaid,
		})
	}

	for _, a := range apts {
		events = append(events, Event{
			ID:     a.ID,
			Source: SourceAppointment,
			Title:  a.Title,
			Amount: a.Amount,
			Date:   a.Date,
			Type:   string(a.Type),
			IsPaid: a.Status == appointment.StatusPaid,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	return events, nil
}

// EventsByDay groups the window's events under their YYYY-MM-DD key.
func (s *Service) EventsByDay(ctx context.Context, spaceID uuid.UUID, start, end time.Time) (map[string][]Event, error) {
	events, err := s.ListEvents(ctx, spaceID, start, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]Event)

	for _, e := range events {
		day := e.Day()
		byDay[day] = append(byDay[day], e)
	}

	return byDay, nil
}
