package view

import (
	"time"

	"github.com/MrJamesThe3rd/cashup/internal/statement"
)

type dateFilter int

const (
	dateAll dateFilter = iota
	dateThisMonth
	dateLastMonth
	dateLastWeek
	dateFilterCount
)

func (f dateFilter) String() string {
	switch f {
	case dateThisMonth:
		return "This Month"
	case dateLastMonth:
		return "Last Month"
	case dateLastWeek:
		return "Last Week"
	}

	return "All Time"
}

// dateRange returns the inclusive range for f, or nil for all time.
func (f dateFilter) dateRange(today time.Time) *statement.Range {
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	switch f {
	case dateThisMonth:
		return new(statement.NewRange(first, first.AddDate(0, 1, -1)))
	case dateLastMonth:
		prev := first.AddDate(0, -1, 0)
		return new(statement.NewRange(prev, first.AddDate(0, 0, -1)))
	case dateLastWeek:
		rng, err := statement.ParseWeek(statement.PreviousWeek(today))
		if err != nil {
			return nil
		}

		return &rng
	}

	return nil
}

// shiftWeek moves a YYYY-Www key by n weeks.
func shiftWeek(week string, n int) string {
	rng, err := statement.ParseWeek(week)
	if err != nil {
		return week
	}

	return statement.WeekKey(rng.Start.AddDate(0, 0, 7*n))
}
