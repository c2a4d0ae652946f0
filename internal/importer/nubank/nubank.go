// Package nubank parses Nubank CSV exports: UTF-8, comma separated, header
// "date,category,title,amount", ISO dates and dot-decimal amounts in reais.
// Negative amounts are charges.
package nubank

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carteira-app/carteira/internal/transaction"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	cols := headerIndex(rows[0])

	for _, required := range []string{"date", "amount"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("not a nubank export: missing %q column", required)
		}
	}

	var txs []transaction.CreateParams

	for _, row := range rows[1:] {
		date, ok := parseDate(cell(row, index(cols, "date")))
		if !ok {
			continue
		}

		cents, err := parseAmount(cell(row, index(cols, "amount")))
		if err != nil || cents == 0 {
			continue
		}

		txType := transaction.TypeIncome
		if cents < 0 {
			txType = transaction.TypeExpense
		}

		txs = append(txs, transaction.CreateParams{
			Amount:      cents,
			Type:        txType,
			Description: cell(row, index(cols, "title")),
			Category:    cell(row, index(cols, "category")),
			Date:        date,
		})
	}

	return txs, nil
}

func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))

	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	return cols
}

func index(cols map[string]int, name string) int {
	if i, ok := cols[name]; ok {
		return i
	}

	return -1
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// parseAmount converts "123.45" or "-12.5" in reais to signed cents.
func parseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
