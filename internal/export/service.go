// Package export renders a space's ledger as a CSV statement for download.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carteira-app/carteira/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=lister_mock.go -package=export
type TransactionLister interface {
	List(ctx context.Context, spaceID uuid.UUID, filter transaction.Filter) ([]*transaction.Transaction, error)
}

type Service struct {
	transactions TransactionLister
}

func NewService(transactions TransactionLister) *Service {
	return &Service{transactions: transactions}
}

var header = []string{"data", "descricao", "categoria", "tipo", "valor"}

// WriteCSV streams the space's movements in the window to w, newest first,
// amounts in reais with two decimals.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, spaceID uuid.UUID, filter transaction.Filter) error {
	txs, err := s.transactions.List(ctx, spaceID, filter)
	if err != nil {
		return fmt.Errorf("listing transactions: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		record := []string{
			tx.Date.In(time.UTC).Format(time.DateOnly),
			tx.Description,
			tx.Category,
			string(tx.Type),
			formatAmount(tx.Amount),
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// formatAmount renders signed cents as "-123.45".
func formatAmount(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// Filename suggests a download name for the statement.
func Filename(now time.Time) string {
	return "extrato-" + now.Format("2006-01") + ".csv"
}
