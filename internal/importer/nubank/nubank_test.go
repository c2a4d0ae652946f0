package nubank_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carteira-app/carteira/internal/importer/nubank"
	"github.com/carteira-app/carteira/internal/transaction"
)

func TestParser_Parse(t *testing.T) {
	input := strings.Join([]string{
		"date,category,title,amount",
		"2024-03-15,Alimentação,Padaria Pão Quente,-25.90",
		"2024-03-16,,Pix recebido,1500.00",
		"2024-03-17,Transporte,Uber,-18.50",
	}, "\n")

	txs, err := nubank.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.Equal(t, int64(-2590), txs[0].Amount)
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)
	assert.Equal(t, "Padaria Pão Quente", txs[0].Description)
	assert.Equal(t, "Alimentação", txs[0].Category)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), txs[0].Date)

	assert.Equal(t, int64(150000), txs[1].Amount)
	assert.Equal(t, transaction.TypeIncome, txs[1].Type)
	assert.Empty(t, txs[1].Category)
}

func TestParser_Parse_SkipsMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		"date,category,title,amount",
		"not-a-date,Outros,Linha quebrada,-10.00",
		"2024-03-15,Outros,Sem valor,",
		"2024-03-16,Outros,Válida,-10.00",
	}, "\n")

	txs, err := nubank.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Válida", txs[0].Description)
}

func TestParser_Parse_RejectsForeignFormat(t *testing.T) {
	input := "Data;Descrição;Valor\n15/03/2024;Mercado;-10,00\n"

	_, err := nubank.NewParser().Parse(strings.NewReader(input))
	assert.Error(t, err)
}
