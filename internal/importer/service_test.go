package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Import_FillsMissingCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	suggester := NewMockCategorySuggester(ctrl)

	svc := NewService(suggester)

	input := strings.Join([]string{
		"date,category,title,amount",
		"2024-03-15,Alimentação,Padaria,-25.90",
		"2024-03-16,,IFOOD RESTAURANTE,-42.00",
		"2024-03-17,,LOJA DESCONHECIDA,-10.00",
	}, "\n")

	// Only rows without a category hit the suggester.
	suggester.EXPECT().Suggest(gomock.Any(), "IFOOD RESTAURANTE").Return("Alimentação", nil)
	suggester.EXPECT().Suggest(gomock.Any(), "LOJA DESCONHECIDA").Return("", nil)

	txs, err := svc.Import(context.Background(), BankNubank, strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.Equal(t, "Alimentação", txs[0].Category)
	assert.Equal(t, "Alimentação", txs[1].Category)
	assert.Equal(t, "Outros", txs[2].Category)
}

func TestService_Import_UnknownBank(t *testing.T) {
	ctrl := gomock.NewController(t)
	suggester := NewMockCategorySuggester(ctrl)

	svc := NewService(suggester)

	_, err := svc.Import(context.Background(), Bank("itau"), strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown bank")
}
