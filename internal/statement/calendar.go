package statement

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
)

// Range is a span of whole calendar days. End is the last instant of the
// last day so that trips on that day are included.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewRange spans the days from first to last, inclusive.
func NewRange(first, last time.Time) Range {
	return Range{Start: Day(first), End: Day(last).AddDate(0, 0, 1).Add(-time.Nanosecond)}
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Days lists every calendar day in the range.
func (r Range) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return days
}

// Day truncates t to the start of its calendar day in UTC. Trip dates are
// stored and compared as UTC days.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekOneMonday is the first Monday after the 1st of January. A year starting
// on a Monday begins week one on the 8th.
func WeekOneMonday(year int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	daysToMonday := 8 - int(jan1.Weekday())
	if jan1.Weekday() == time.Sunday {
		daysToMonday = 1
	}

	return jan1.AddDate(0, 0, daysToMonday)
}

// WeekNumber returns the week-numbering year and week of t. Days before week
// one belong to the last week of the previous year.
func WeekNumber(t time.Time) (int, int) {
	day := Day(t)
	year := day.Year()

	start := WeekOneMonday(year)
	if day.Before(start) {
		year--
		start = WeekOneMonday(year)
	}

	days := int(day.Sub(start).Hours() / 24)

	return year, days/7 + 1
}

// WeekKey formats t's week as YYYY-Www.
func WeekKey(t time.Time) string {
	year, week := WeekNumber(t)
	return fmt.Sprintf("%d-W%02d", year, week)
}

var weekPattern = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

// ParseWeek reads a YYYY-Www week into its Monday to Sunday range.
func ParseWeek(s string) (Range, error) {
	m := weekPattern.FindStringSubmatch(s)
	if m == nil {
		return Range{}, apperr.Validation("invalid week %q, use YYYY-Wnn", s)
	}

	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])

	if week < 1 || week > 53 {
		return Range{}, apperr.Validation("invalid week %q, week must be between 01 and 53", s)
	}

	monday := WeekOneMonday(year).AddDate(0, 0, (week-1)*7)

	return NewRange(monday, monday.AddDate(0, 0, 6)), nil
}

// ParseMonth reads a YYYY-MM month into its first to last day.
func ParseMonth(s string) (Range, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Range{}, apperr.Validation("invalid month %q, use YYYY-MM", s)
	}

	return NewRange(t, t.AddDate(0, 1, -1)), nil
}

// ParseYear reads a YYYY year into the 1st of January to the 31st of December.
func ParseYear(s string) (Range, error) {
	t, err := time.Parse("2006", s)
	if err != nil {
		return Range{}, apperr.Validation("invalid year %q, use YYYY", s)
	}

	return NewRange(t, t.AddDate(1, 0, -1)), nil
}

// CustomRange reads two YYYY-MM-DD dates. The end day is included.
func CustomRange(start, end string) (Range, error) {
	s, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return Range{}, apperr.Validation("invalid start date %q, use YYYY-MM-DD", start)
	}

	e, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return Range{}, apperr.Validation("invalid end date %q, use YYYY-MM-DD", end)
	}

	if e.Before(s) {
		return Range{}, apperr.Validation("end date must not be before start date")
	}

	return NewRange(s, e), nil
}

// PreviousWeek returns the key of the Monday to Sunday week before the one
// today falls in.
func PreviousWeek(today time.Time) string {
	day := Day(today)

	back := int(day.Weekday()) + 6
	if day.Weekday() == time.Sunday {
		back = 6
	}

	return WeekKey(day.AddDate(0, 0, -back))
}
