package export_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carteira-app/carteira/internal/export"
	"github.com/carteira-app/carteira/internal/transaction"
)

func TestService_WriteCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := export.NewMockTransactionLister(ctrl)

	svc := export.NewService(lister)

	spaceID := uuid.New()

	lister.EXPECT().
		List(gomock.Any(), spaceID, gomock.Any()).
		Return([]*transaction.Transaction{
			{
				Description: "Salário",
				Category:    "Salário",
				Type:        transaction.TypeIncome,
				Amount:      300000,
				Date:        time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC),
			},
			{
				Description: "Mercado, com vírgula",
				Category:    "Alimentação",
				Type:        transaction.TypeExpense,
				Amount:      -2590,
				Date:        time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			},
		}, nil)

	var buf bytes.Buffer

	err := svc.WriteCSV(context.Background(), &buf, spaceID, transaction.Filter{})
	require.NoError(t, err)

	want := "data,descricao,categoria,tipo,valor\n" +
		"2024-03-05,Salário,Salário,income,3000.00\n" +
		"2024-03-10,\"Mercado, com vírgula\",Alimentação,expense,-25.90\n"

	assert.Equal(t, want, buf.String())
}

func TestService_WriteCSV_EmptyLedgerStillWritesHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := export.NewMockTransactionLister(ctrl)

	svc := export.NewService(lister)

	spaceID := uuid.New()

	lister.EXPECT().List(gomock.Any(), spaceID, gomock.Any()).Return(nil, nil)

	var buf bytes.Buffer

	err := svc.WriteCSV(context.Background(), &buf, spaceID, transaction.Filter{})
	require.NoError(t, err)
	assert.Equal(t, "data,descricao,categoria,tipo,valor\n", buf.String())
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "extrato-2024-03.csv", export.Filename(now))
}
