package analytics

import (
	"sort"
	"time"

	"github.com/carteira-app/carteira/internal/goal"
	"github.com/carteira-app/carteira/internal/transaction"
)

// flowMonths is how many months of history the dashboard chart shows.
const flowMonths = 6

// topCategoryLimit caps the category breakdown on the dashboard.
const topCategoryLimit = 4

// fixedCategories are excluded from the variable-spend forecast: they are
// committed money, not day-to-day burn.
var fixedCategories = map[string]bool{
	"Contas":   true,
	"Casa":     true,
	"Salário":  true,
	"Aluguel":  true,
	"Internet": true,
	"Luz":      true,
	"Água":     true,
}

// Compute derives the dashboard summary from raw rows. txs must be the
// space's whole transaction set: totals, category ranking and balance run
// over everything, only the variable-spend forecast is scoped to the month
// of now. Pure, deterministic, clock passed in.
func Compute(txs []*transaction.Transaction, goals []*goal.Goal, now time.Time) Summary {
	var s Summary

	year, month, day := now.In(time.UTC).Date()

	byCategory := make(map[string]int64)

	var variableSpend int64

	for _, tx := range txs {
		switch {
		case tx.Amount > 0:
			s.TotalIncome += tx.Amount
		case tx.Amount < 0:
			spent := -tx.Amount
			s.TotalExpense += spent
			byCategory[tx.Category] += spent

			txYear, txMonth, _ := tx.Date.In(time.UTC).Date()
			if txYear == year && txMonth == month && !fixedCategories[tx.Category] {
				variableSpend += spent
			}
		}
	}

	for _, g := range goals {
		s.TotalInvested += g.CurrentAmount
	}

	s.AvailableBalance = s.TotalIncome - s.TotalExpense - s.TotalInvested
	s.TopCategories = topCategories(byCategory)
	s.Forecast = forecast(variableSpend, s.TotalIncome, day, daysIn(year, month))
	s.Insights = insights(s)
	s.MonthlyFlow = monthlyFlow(txs, year, month)

	return s
}

func topCategories(byCategory map[string]int64) []CategoryTotal {
	totals := make([]CategoryTotal, 0, len(byCategory))

	for cat, total := range byCategory {
		totals = append(totals, CategoryTotal{Category: cat, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}

		return totals[i].Category < totals[j].Category
	})

	if len(totals) > topCategoryLimit {
		totals = totals[:topCategoryLimit]
	}

	return totals
}

func forecast(variableSpend, income int64, day, daysInMonth int) Forecast {
	if day < 1 {
		day = 1
	}

	// The rate stays fractional until projection so early-month cents are
	// not truncated away.
	rate := float64(variableSpend) / float64(day)
	projected := variableSpend + int64(rate*float64(daysInMonth-day)+0.5)

	f := Forecast{
		VariableSpend:   variableSpend,
		DailyBurnRate:   int64(rate + 0.5),
		ForecastedSpend: projected,
	}

	// Without income there is no ratio to grade against.
	if income <= 0 {
		return f
	}

	ratio := float64(projected) / float64(income)

	switch {
	case ratio > 0.8:
		f.Status = StatusDanger
	case ratio > 0.5:
		f.Status = StatusWarning
	default:
		f.Status = StatusSafe
	}

	return f
}

func insights(s Summary) []Insight {
	var out []Insight

	if s.TotalExpense > s.TotalIncome {
		out = append(out, Insight{
			Kind:    InsightWarning,
			Message: "Suas despesas superaram suas receitas.",
		})
	}

	if len(s.TopCategories) > 0 && s.TopCategories[0].Category == "Lazer" {
		out = append(out, Insight{
			Kind:    InsightTip,
			Message: "Lazer é sua maior categoria de gastos. Que tal definir um limite?",
		})
	}

	if s.TotalInvested == 0 {
		out = append(out, Insight{
			Kind:    InsightTip,
			Message: "Você ainda não guardou nada para suas metas.",
		})
	}

	if s.AvailableBalance > 0 && s.TotalInvested > 0 {
		out = append(out, Insight{
			Kind:    InsightSuccess,
			Message: "Saldo positivo e metas em andamento. Continue assim!",
		})
	}

	return out
}

func monthlyFlow(txs []*transaction.Transaction, year int, month time.Month) []MonthFlow {
	flows := make([]MonthFlow, flowMonths)
	index := make(map[string]int, flowMonths)

	// Oldest first, current month last.
	for i := 0; i < flowMonths; i++ {
		m := time.Date(year, month-time.Month(flowMonths-1-i), 1, 0, 0, 0, 0, time.UTC)
		key := m.Format("2006-01")
		flows[i] = MonthFlow{Month: key}
		index[key] = i
	}

	for _, tx := range txs {
		key := tx.Date.In(time.UTC).Format("2006-01")

		i, ok := index[key]
		if !ok {
			continue
		}

		if tx.Amount > 0 {
			flows[i].Income += tx.Amount
		} else {
			flows[i].Expense += -tx.Amount
		}
	}

	return flows
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
