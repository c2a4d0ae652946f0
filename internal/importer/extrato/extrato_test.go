package extrato_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carteira-app/carteira/internal/importer/extrato"
	"github.com/carteira-app/carteira/internal/transaction"
)

func TestParser_Parse(t *testing.T) {
	// Banks love decorating the file before the actual header.
	input := strings.Join([]string{
		"Extrato de conta corrente;;",
		"Período: 01/03/2024 a 31/03/2024;;",
		"",
		"Data;Descrição;Valor",
		"05/03/2024;TED RECEBIDA;3.000,00",
		"10/03/2024;SUPERMERCADO BOM PREÇO;-234,56",
		"Saldo final;;2.765,44",
	}, "\n")

	txs, err := extrato.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, int64(300000), txs[0].Amount)
	assert.Equal(t, transaction.TypeIncome, txs[0].Type)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), txs[0].Date)

	assert.Equal(t, int64(-23456), txs[1].Amount)
	assert.Equal(t, transaction.TypeExpense, txs[1].Type)
	assert.Equal(t, "SUPERMERCADO BOM PREÇO", txs[1].Description)
}

func TestParser_Parse_Windows1252Input(t *testing.T) {
	// "Descrição" and a row with "CARTÃO" encoded in Windows-1252.
	var buf bytes.Buffer

	buf.WriteString("Data;Descri")
	buf.Write([]byte{0xE7, 0xE3}) // çã
	buf.WriteString("o;Valor\n10/03/2024;CART")
	buf.Write([]byte{0xC3}) // Ã
	buf.WriteString("O LOJA;-50,00\n")

	txs, err := extrato.NewParser().Parse(&buf)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "CARTÃO LOJA", txs[0].Description)
	assert.Equal(t, int64(-5000), txs[0].Amount)
}

func TestParser_Parse_NoHeader(t *testing.T) {
	_, err := extrato.NewParser().Parse(strings.NewReader("a;b;c\n1;2;3\n"))
	assert.Error(t, err)
}
