package bill

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDueDateFor(t *testing.T) {
	testCases := []struct {
		name   string
		year   int
		month  time.Month
		dueDay int
		want   time.Time
	}{
		{
			name:   "DayFitsInMonth",
			year:   2024,
			month:  time.March,
			dueDay: 15,
			want:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "Day31ClampsToNovember30",
			year:   2024,
			month:  time.November,
			dueDay: 31,
			want:   time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "Day31ClampsToFebruary29OnLeapYear",
			year:   2024,
			month:  time.February,
			dueDay: 31,
			want:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "Day30ClampsToFebruary28",
			year:   2023,
			month:  time.February,
			dueDay: 30,
			want:   time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "LastDayExactly",
			year:   2024,
			month:  time.April,
			dueDay: 30,
			want:   time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := dueDateFor(tc.year, tc.month, tc.dueDay)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, time.March, 15, 18, 42, 7, 123, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), startOfDay(in))
}
