package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
	"github.com/MrJamesThe3rd/cashup/internal/statement"
	"github.com/MrJamesThe3rd/cashup/internal/trip"
)

type Kind string

const (
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
)

const (
	RoleLeader = "Trip Leader"
	RoleGuide  = "Guide"
)

// Request asks for a guide's invoice over one week (YYYY-Www) or one month
// (YYYY-MM).
type Request struct {
	Kind   Kind
	Period string
}

// resolve returns the request's date range and display label.
func (r Request) resolve() (statement.Range, string, error) {
	switch r.Kind {
	case KindWeekly:
		if r.Period == "" {
			return statement.Range{}, "", apperr.Validation("week is required for weekly invoices")
		}

		rng, err := statement.ParseWeek(r.Period)
		if err != nil {
			return statement.Range{}, "", err
		}

		year, week := statement.WeekNumber(rng.Start)

		return rng, fmt.Sprintf("Week %d, %d", week, year), nil
	case KindMonthly:
		if r.Period == "" {
			return statement.Range{}, "", apperr.Validation("month is required for monthly invoices")
		}

		rng, err := statement.ParseMonth(r.Period)
		if err != nil {
			return statement.Range{}, "", err
		}

		return rng, r.Period, nil
	}

	return statement.Range{}, "", apperr.Validation("invalid invoice type %q", r.Kind)
}

func (r Request) noun() string {
	if r.Kind == KindWeekly {
		return "week"
	}

	return "month"
}

// Line is one trip the guide is invoicing for.
type Line struct {
	TripID   uuid.UUID       `json:"tripId"`
	Date     time.Time       `json:"date"`
	LeadName string          `json:"leadName"`
	TotalPax int             `json:"totalPax"`
	Role     string          `json:"role"`
	Earnings decimal.Decimal `json:"earnings"`
}

// Subtotal groups lines by day on weekly invoices and by week on monthly ones.
type Subtotal struct {
	Label    string          `json:"label"`
	Trips    int             `json:"trips"`
	Earnings decimal.Decimal `json:"earnings"`
}

type Invoice struct {
	ID          uuid.UUID       `json:"id"`
	GuideID     uuid.UUID       `json:"guideId"`
	GuideName   string          `json:"guideName"`
	GuideRank   guide.Rank      `json:"guideRank"`
	GuideEmail  *string         `json:"guideEmail,omitempty"`
	Kind        Kind            `json:"kind"`
	Period      string          `json:"period"`
	PeriodLabel string          `json:"periodLabel"`
	Range       statement.Range `json:"range"`
	Lines       []Line          `json:"lines"`
	Subtotals   []Subtotal      `json:"subtotals"`
	TotalTrips  int             `json:"totalTrips"`
	Total       decimal.Decimal `json:"total"`
	SubmittedAt time.Time       `json:"submittedAt"`
}

// Build prices g's part in each trip. Trips are expected in date order.
func Build(g *guide.Guide, kind Kind, period, label string, rng statement.Range, trips []*trip.Trip) *Invoice {
	inv := &Invoice{
		ID:          uuid.New(),
		GuideID:     g.ID,
		GuideName:   g.Name,
		GuideRank:   g.Rank,
		GuideEmail:  g.Email,
		Kind:        kind,
		Period:      period,
		PeriodLabel: label,
		Range:       rng,
		Total:       decimal.Zero,
	}

	index := map[string]int{}

	for _, t := range trips {
		earnings := decimal.Zero
		if tg, ok := t.Guide(g.ID); ok {
			earnings = tg.FeeAmount
		}

		role := RoleGuide
		if t.IsLeader(g.ID) {
			role = RoleLeader
		}

		day := statement.Day(t.TripDate)

		inv.Lines = append(inv.Lines, Line{
			TripID:   t.ID,
			Date:     day,
			LeadName: t.LeadName,
			TotalPax: t.TotalPax,
			Role:     role,
			Earnings: earnings,
		})

		inv.TotalTrips++
		inv.Total = inv.Total.Add(earnings)

		key := day.Format(time.DateOnly)
		if kind == KindMonthly {
			_, week := statement.WeekNumber(day)
			key = fmt.Sprintf("Week %d", week)
		}

		i, ok := index[key]
		if !ok {
			i = len(inv.Subtotals)
			index[key] = i
			inv.Subtotals = append(inv.Subtotals, Subtotal{Label: key, Earnings: decimal.Zero})
		}

		inv.Subtotals[i].Trips++
		inv.Subtotals[i].Earnings = inv.Subtotals[i].Earnings.Add(earnings)
	}

	return inv
}

// Subject is the notification subject line for the invoice.
func (inv *Invoice) Subject() string {
	kind := "Monthly"
	if inv.Kind == KindWeekly {
		kind = "Weekly"
	}

	return fmt.Sprintf("%s Invoice from %s - %s", kind, inv.GuideName, inv.PeriodLabel)
}

// Summary renders the invoice lines as plain text.
func (inv *Invoice) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s (%s), %s: %d trips, R %s\n\n", inv.GuideName, inv.GuideRank, inv.PeriodLabel, inv.TotalTrips, inv.Total.StringFixed(2))

	for _, l := range inv.Lines {
		fmt.Fprintf(&sb, "* %s | %s | %d pax | %s | R %s\n", l.Date.Format(time.DateOnly), l.LeadName, l.TotalPax, l.Role, l.Earnings.StringFixed(2))
	}

	return sb.String()
}

func openExceptionsError(n int) error {
	return apperr.Conflict("You have %d unresolved cash/card/EFT handover(s). Please hand over and let admin confirm first.", n).
		WithDetails(map[string]any{"openExceptions": n})
}
