package analytics

// ForecastStatus grades the month-end spending projection against income.
type ForecastStatus string

const (
	StatusSafe    ForecastStatus = "safe"
	StatusWarning ForecastStatus = "warning"
	StatusDanger  ForecastStatus = "danger"
)

type CategoryTotal struct {
	Category string
	Total    int64 // cents, absolute
}

// Forecast projects month-end variable spending from the average daily burn
// so far. Status is empty when there is no income to compare against.
type Forecast struct {
	VariableSpend   int64 // cents spent outside fixed categories this month
	DailyBurnRate   int64 // cents per elapsed day
	ForecastedSpend int64
	Status          ForecastStatus
}

type InsightKind string

const (
	InsightWarning InsightKind = "warning"
	InsightTip     InsightKind = "tip"
	InsightSuccess InsightKind = "success"
)

type Insight struct {
	Kind    InsightKind
	Message string
}

// MonthFlow is one bar of the income/expense history chart.
type MonthFlow struct {
	Month   string // YYYY-MM
	Income  int64
	Expense int64 // cents, absolute
}

// Summary is the full dashboard payload, recomputed on every load.
type Summary struct {
	TotalIncome      int64
	TotalExpense     int64 // cents, absolute
	TotalInvested    int64
	AvailableBalance int64
	TopCategories    []CategoryTotal
	Forecast         Forecast
	Insights         []Insight
	MonthlyFlow      []MonthFlow
}
