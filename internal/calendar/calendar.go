package calendar

import (
	"time"

	"github.com/google/uuid"
)

// Source tells which table an event came from.
type Source string

const (
	SourceTransaction Source = "transaction"
	SourceMonthlyBill Source = "monthly_bill"
	SourceAppointment Source = "appointment"
)

// Event is the normalized union the calendar renders. Transactions are
// realized money movements, so they always arrive with IsPaid true; bills
// and appointments carry their own status.
type Event struct {
	ID       uuid.UUID
	Source   Source
	Title    string
	Amount   int64 // cents, signed for transactions
	Date     time.Time
	Type     string // income, expense, bill or task
	Category string
	IsPaid   bool
}

// Day returns the calendar-day bucket key for the event. Bucketing happens
// on the YYYY-MM-DD rendering of the stored timestamp, never on local
// datetime comparison, so an evening event cannot drift into the next day.
func (e Event) Day() string {
	return e.Date.In(time.UTC).Format(time.DateOnly)
}
