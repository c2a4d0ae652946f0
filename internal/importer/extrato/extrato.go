// Package extrato parses generic Brazilian bank extrato CSVs: semicolon
// separated, European amounts ("1.234,56"), dd/mm/yyyy dates, arbitrary junk
// above the header, legacy encodings. The header row is found by landmark
// columns rather than assumed to be first.
package extrato

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/carteira-app/carteira/internal/encoding"
	"github.com/carteira-app/carteira/internal/transaction"
)

const (
	colDate   = "Data"
	colDesc   = "Descrição"
	colAmount = "Valor"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	cols, headerIdx := findHeader(rows)
	if cols == nil {
		return nil, fmt.Errorf("no extrato header found: expected %q, %q and %q columns", colDate, colDesc, colAmount)
	}

	var txs []transaction.CreateParams

	for _, row := range rows[headerIdx+1:] {
		date, ok := parseDate(cell(row, cols[colDate]))
		if !ok {
			// Footer or blank separator row.
			continue
		}

		desc := cell(row, cols[colDesc])
		if desc == "" {
			continue
		}

		cents, err := parseEuropeanAmount(cell(row, cols[colAmount]))
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
			Description: desc,
			Date:        date,
		})
	}

	return txs, nil
}

// findHeader scans for the first row carrying all landmark columns.
func findHeader(rows [][]string) (map[string]int, int) {
	for rowIdx, row := range rows {
		cols := make(map[string]int)

		for i, name := range row {
			if name = strings.TrimSpace(name); name != "" {
				cols[name] = i
			}
		}

		_, hasDate := cols[colDate]
		_, hasDesc := cols[colDesc]
		_, hasAmount := cols[colAmount]

		if hasDate && hasDesc && hasAmount {
			return cols, rowIdx
		}
	}

	return nil, 0
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// parseEuropeanAmount converts "1.234,56" to 123456 cents, keeping the sign.
func parseEuropeanAmount(s string) (int64, error) {
	clean := strings.ReplaceAll(s, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
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
