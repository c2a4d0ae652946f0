package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/carteira-app/carteira/internal/importer/extrato"
	"github.com/carteira-app/carteira/internal/importer/nubank"
	"github.com/carteira-app/carteira/internal/transaction"
)

// CategorySuggester fills in categories for rows the bank file left blank.
//
//go:generate mockgen -source=service.go -destination=suggester_mock.go -package=importer
type CategorySuggester interface {
	Suggest(ctx context.Context, description string) (string, error)
}

type Service struct {
	parsers    map[Bank]Parser
	categories CategorySuggester
}

func NewService(categories CategorySuggester) *Service {
	return &Service{
		parsers: map[Bank]Parser{
			BankNubank:  nubank.NewParser(),
			BankExtrato: extrato.NewParser(),
		},
		categories: categories,
	}
}

// Import parses the statement and resolves missing categories from learned
// mappings. Rows that stay uncategorized default to "Outros".
func (s *Service) Import(ctx context.Context, bank Bank, r io.Reader) ([]transaction.CreateParams, error) {
	parser, ok := s.parsers[bank]
	if !ok {
		return nil, fmt.Errorf("unknown bank: %s", bank)
	}

	txs, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s statement: %w", bank, err)
	}

	for i := range txs {
		if txs[i].Category != "" {
			continue
		}

		category, err := s.categories.Suggest(ctx, txs[i].Description)
		if err != nil {
			return nil, fmt.Errorf("suggesting category: %w", err)
		}

		if category == "" {
			category = "Outros"
		}

		txs[i].Category = category
	}

	return txs, nil
}
