package importer

import (
	"io"

	"github.com/carteira-app/carteira/internal/transaction"
)

// Bank identifies a supported statement format.
type Bank string

const (
	BankNubank  Bank = "nubank"
	BankExtrato Bank = "extrato"
)

// Parser turns one bank's CSV export into transaction params ready for the
// ledger. Parsers never write anything themselves.
type Parser interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}
