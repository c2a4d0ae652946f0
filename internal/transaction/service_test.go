package transaction_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carteira-app/carteira/internal/transaction"
	"github.com/carteira-app/carteira/internal/validation"
)

func TestService_Create_SignNormalization(t *testing.T) {
	testCases := []struct {
		name       string
		amount     int64
		txType     transaction.Type
		wantAmount int64
	}{
		{
			name:       "ExpenseEnteredNegativeStaysNegative",
			amount:     -5000,
			txType:     transaction.TypeExpense,
			wantAmount: -5000,
		},
		{
			name:       "ExpenseEnteredPositiveFlipsNegative",
			amount:     5000,
			txType:     transaction.TypeExpense,
			wantAmount: -5000,
		},
		{
			name:       "IncomeEnteredNegativeFlipsPositive",
			amount:     -300000,
			txType:     transaction.TypeIncome,
			wantAmount: 300000,
		},
		{
			name:       "IncomeEnteredPositiveStaysPositive",
			amount:     300000,
			txType:     transaction.TypeIncome,
			wantAmount: 300000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := transaction.NewMockRepository(ctrl)

			svc := transaction.NewService(repo)

			repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
					assert.Equal(t, tc.wantAmount, tx.Amount)
					assert.Equal(t, tc.txType, tx.Type)

					tx.ID = uuid.New()

					return nil
				})

			tx, err := svc.Create(context.Background(), transaction.CreateParams{
				SpaceID:     uuid.New(),
				ProfileID:   uuid.New(),
				Amount:      tc.amount,
				Description: "Mercado",
				Category:    "Alimentação",
				Type:        tc.txType,
				Date:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantAmount, tx.Amount)
		})
	}
}

func TestService_Create_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		params        transaction.CreateParams
		missingFields []string
	}{
		{
			name:          "Empty",
			params:        transaction.CreateParams{},
			missingFields: []string{"description", "amount", "category", "type", "date"},
		},
		{
			name: "BadType",
			params: transaction.CreateParams{
				Description: "Mercado",
				Amount:      1000,
				Category:    "Alimentação",
				Type:        transaction.Type("transfer"),
				Date:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			},
			missingFields: []string{"type"},
		},
		{
			name: "NoCategory",
			params: transaction.CreateParams{
				Description: "Mercado",
				Amount:      1000,
				Type:        transaction.TypeExpense,
				Date:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			},
			missingFields: []string{"category"},
		},
		{
			name: "NoDate",
			params: transaction.CreateParams{
				Description: "Mercado",
				Amount:      1000,
				Category:    "Alimentação",
				Type:        transaction.TypeExpense,
			},
			missingFields: []string{"date"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := transaction.NewMockRepository(ctrl)

			svc := transaction.NewService(repo)

			_, err := svc.Create(context.Background(), tc.params)

			var vErr *validation.Error

			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.missingFields, vErr.Fields)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)

	svc := transaction.NewService(repo)

	id := uuid.New()

	stored := &transaction.Transaction{
		ID:          id,
		Amount:      -5000,
		Description: "Mercado",
		Category:    "Alimentação",
		Type:        transaction.TypeExpense,
		Date:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}

	repo.EXPECT().Get(gomock.Any(), id).Return(stored, nil)

	newAmount := int64(7500)
	newDate := time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			// Amount is re-normalized against the stored type, and untouched
			// fields keep their values.
			assert.Equal(t, int64(-7500), tx.Amount)
			assert.Equal(t, "Mercado", tx.Description)
			assert.Equal(t, newDate, tx.Date)

			return nil
		})

	tx, err := svc.Update(context.Background(), id, transaction.UpdateParams{
		Amount: &newAmount,
		Date:   &newDate,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-7500), tx.Amount)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)

	svc := transaction.NewService(repo)

	id := uuid.New()

	repo.EXPECT().Get(gomock.Any(), id).Return(nil, transaction.ErrNotFound)

	_, err := svc.Update(context.Background(), id, transaction.UpdateParams{})
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestService_CreateReminder(t *testing.T) {
	testCases := []struct {
		name       string
		amount     int64
		wantAmount int64
	}{
		{
			name:       "WithoutAmount",
			amount:     0,
			wantAmount: 0,
		},
		{
			name:       "WithAmountStoredAsExpense",
			amount:     120000,
			wantAmount: -120000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := transaction.NewMockRepository(ctrl)

			svc := transaction.NewService(repo)

			date := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)

			repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
					assert.Equal(t, "Lembrete: Pagar IPTU", tx.Description)
					assert.Equal(t, "Outros", tx.Category)
					assert.Equal(t, transaction.TypeExpense, tx.Type)
					assert.Equal(t, tc.wantAmount, tx.Amount)
					assert.Equal(t, date, tx.Date)

					return nil
				})

			_, err := svc.CreateReminder(context.Background(), uuid.New(), uuid.New(), "Pagar IPTU", tc.amount, date)
			assert.NoError(t, err)
		})
	}
}

func TestService_CreateReminder_RequiresTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)

	svc := transaction.NewService(repo)

	_, err := svc.CreateReminder(context.Background(), uuid.New(), uuid.New(), "", 0, time.Time{})

	var vErr *validation.Error

	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"title", "date"}, vErr.Fields)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)

	svc := transaction.NewService(repo)

	id := uuid.New()

	repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), id))
}

func TestService_List_PassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)

	svc := transaction.NewService(repo)

	spaceID := uuid.New()
	filter := transaction.Filter{
		Start: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		Type:  transaction.TypeExpense,
	}

	want := []*transaction.Transaction{{ID: uuid.New()}}

	repo.EXPECT().List(gomock.Any(), spaceID, filter).Return(want, nil)

	got, err := svc.List(context.Background(), spaceID, filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
