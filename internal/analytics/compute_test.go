package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carteira-app/carteira/internal/goal"
	"github.com/carteira-app/carteira/internal/transaction"
)

func tx(amount int64, category string, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		ID:       uuid.New(),
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

func TestCompute_Totals(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)

	txs := []*transaction.Transaction{
		tx(300000, "Salário", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
		tx(-80000, "Alimentação", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)),
		tx(-20000, "Lazer", time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)),
		// Previous month still counts: totals run over the whole ledger.
		tx(-50000, "Alimentação", time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)),
	}

	goals := []*goal.Goal{
		{CurrentAmount: 40000},
		{CurrentAmount: 10000},
	}

	s := Compute(txs, goals, now)

	assert.Equal(t, int64(300000), s.TotalIncome)
	assert.Equal(t, int64(150000), s.TotalExpense)
	assert.Equal(t, int64(50000), s.TotalInvested)
	assert.Equal(t, int64(100000), s.AvailableBalance)
}

func TestCompute_TotalsIncludePastMonths(t *testing.T) {
	// Every movement sits in May; the summary is computed mid-June. Totals
	// and the category ranking still see them, only the variable-spend
	// forecast is scoped to June.
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	txs := []*transaction.Transaction{
		tx(300000, "Salário", time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC)),
		tx(-40000, "Alimentação", time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)),
	}

	s := Compute(txs, nil, now)

	assert.Equal(t, int64(300000), s.TotalIncome)
	assert.Equal(t, int64(40000), s.TotalExpense)

	require.Len(t, s.TopCategories, 1)
	assert.Equal(t, "Alimentação", s.TopCategories[0].Category)
	assert.Equal(t, int64(40000), s.TopCategories[0].Total)

	assert.Zero(t, s.Forecast.VariableSpend)
}

func TestCompute_TopCategories(t *testing.T) {
	now := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	txs := []*transaction.Transaction{
		tx(-10000, "Alimentação", day),
		tx(-30000, "Lazer", day),
		tx(-5000, "Transporte", day),
		tx(-20000, "Casa", day),
		tx(-1000, "Saúde", day),
		tx(-500, "Pets", day),
	}

	s := Compute(txs, nil, now)

	// Top four by absolute spend, descending.
	require.Len(t, s.TopCategories, 4)
	assert.Equal(t, "Lazer", s.TopCategories[0].Category)
	assert.Equal(t, int64(30000), s.TopCategories[0].Total)
	assert.Equal(t, "Casa", s.TopCategories[1].Category)
	assert.Equal(t, "Alimentação", s.TopCategories[2].Category)
	assert.Equal(t, "Transporte", s.TopCategories[3].Category)
}

func TestCompute_ForecastStatus(t *testing.T) {
	// Last day of the month: no days remain, so the projection equals what
	// was already spent and the thresholds can be hit exactly.
	now := time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		spend      int64
		income     int64
		wantStatus ForecastStatus
	}{
		{
			name:       "DangerAbove80Percent",
			spend:      90000,
			income:     100000,
			wantStatus: StatusDanger,
		},
		{
			name:       "WarningAbove50Percent",
			spend:      60000,
			income:     100000,
			wantStatus: StatusWarning,
		},
		{
			name:       "SafeBelowHalf",
			spend:      10000,
			income:     100000,
			wantStatus: StatusSafe,
		},
		{
			name:       "NoIncomeNoGrade",
			spend:      90000,
			income:     0,
			wantStatus: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			txs := []*transaction.Transaction{
				// "Lazer" is not a fixed category, so it all counts as
				// variable spend.
				tx(-tc.spend, "Lazer", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)),
			}

			if tc.income > 0 {
				txs = append(txs, tx(tc.income, "Salário", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)))
			}

			s := Compute(txs, nil, now)

			assert.Equal(t, tc.wantStatus, s.Forecast.Status)
			assert.Equal(t, tc.spend, s.Forecast.VariableSpend)
		})
	}
}

func TestCompute_ForecastExcludesFixedCategories(t *testing.T) {
	// Day 10 of a 31-day month: 21 days remain.
	now := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	txs := []*transaction.Transaction{
		tx(-200000, "Aluguel", day),   // fixed, ignored by the forecast
		tx(-10000, "Alimentação", day), // variable
	}

	s := Compute(txs, nil, now)

	assert.Equal(t, int64(10000), s.Forecast.VariableSpend)
	assert.Equal(t, int64(1000), s.Forecast.DailyBurnRate)
	assert.Equal(t, int64(10000+1000*21), s.Forecast.ForecastedSpend)
}

func TestCompute_ForecastRoundsProjection(t *testing.T) {
	// Day 3 of a 31-day month with 100 cents spent: the daily rate is 33.33
	// cents, so the 28 remaining days project to 933 cents, not the 924 an
	// integer rate would give.
	now := time.Date(2024, time.March, 3, 8, 0, 0, 0, time.UTC)

	txs := []*transaction.Transaction{
		tx(-100, "Lazer", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
	}

	s := Compute(txs, nil, now)

	assert.Equal(t, int64(33), s.Forecast.DailyBurnRate)
	assert.Equal(t, int64(1033), s.Forecast.ForecastedSpend)
}

func TestCompute_Insights(t *testing.T) {
	now := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("OverspendingWarnsAndNoGoalsTips", func(t *testing.T) {
		s := Compute([]*transaction.Transaction{
			tx(100000, "Salário", day),
			tx(-150000, "Alimentação", day),
		}, nil, now)

		require.Len(t, s.Insights, 2)
		assert.Equal(t, InsightWarning, s.Insights[0].Kind)
		assert.Equal(t, InsightTip, s.Insights[1].Kind)
	})

	t.Run("HealthyMonthGetsSuccess", func(t *testing.T) {
		s := Compute([]*transaction.Transaction{
			tx(500000, "Salário", day),
			tx(-100000, "Alimentação", day),
		}, []*goal.Goal{{CurrentAmount: 50000}}, now)

		require.Len(t, s.Insights, 1)
		assert.Equal(t, InsightSuccess, s.Insights[0].Kind)
	})

	t.Run("LeisureOnTopGetsTip", func(t *testing.T) {
		s := Compute([]*transaction.Transaction{
			tx(500000, "Salário", day),
			tx(-100000, "Lazer", day),
			tx(-50000, "Alimentação", day),
		}, []*goal.Goal{{CurrentAmount: 1}}, now)

		var kinds []InsightKind
		for _, in := range s.Insights {
			kinds = append(kinds, in.Kind)
		}

		assert.Contains(t, kinds, InsightTip)
	})
}

func TestCompute_MonthlyFlow(t *testing.T) {
	now := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

	txs := []*transaction.Transaction{
		tx(300000, "Salário", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
		tx(-50000, "Alimentação", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)),
		tx(200000, "Salário", time.Date(2023, time.October, 5, 0, 0, 0, 0, time.UTC)),
		// Older than the chart window, absent from the flow bars.
		tx(-99999, "Alimentação", time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC)),
	}

	s := Compute(txs, nil, now)

	require.Len(t, s.MonthlyFlow, 6)
	assert.Equal(t, "2023-10", s.MonthlyFlow[0].Month)
	assert.Equal(t, int64(200000), s.MonthlyFlow[0].Income)
	assert.Equal(t, "2024-01", s.MonthlyFlow[3].Month)
	assert.Equal(t, int64(50000), s.MonthlyFlow[3].Expense)
	assert.Equal(t, "2024-03", s.MonthlyFlow[5].Month)
	assert.Equal(t, int64(300000), s.MonthlyFlow[5].Income)
}

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)

	txLister := NewMockTransactionLister(ctrl)
	goalLister := NewMockGoalLister(ctrl)

	svc := NewService(txLister, goalLister)
	svc.now = func() time.Time {
		return time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	}

	spaceID := uuid.New()

	// The fetch is unbounded so totals can see the whole ledger.
	txLister.EXPECT().
		List(gomock.Any(), spaceID, transaction.Filter{}).
		Return([]*transaction.Transaction{
			tx(300000, "Salário", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
			tx(100000, "Salário", time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC)),
		}, nil)

	goalLister.EXPECT().
		List(gomock.Any(), spaceID).
		Return([]*goal.Goal{{CurrentAmount: 10000}}, nil)

	s, err := svc.Summary(context.Background(), spaceID)
	require.NoError(t, err)
	assert.Equal(t, int64(400000), s.TotalIncome)
	assert.Equal(t, int64(10000), s.TotalInvested)
}
