package statement

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
	"github.com/MrJamesThe3rd/cashup/internal/trip"
)

// Bucket is the sub-period trips are grouped into.
type Bucket string

const (
	BucketDay   Bucket = "day"
	BucketWeek  Bucket = "week"
	BucketMonth Bucket = "month"
	BucketYear  Bucket = "year"
)

func ParseBucket(s string) (Bucket, error) {
	b := Bucket(strings.ToLower(strings.TrimSpace(s)))

	switch b {
	case BucketDay, BucketWeek, BucketMonth, BucketYear:
		return b, nil
	case "":
		return BucketDay, nil
	}

	return "", apperr.Validation("invalid bucket %q", s)
}

// key returns the bucket key and display label for day.
func (b Bucket) key(day time.Time) (string, string) {
	switch b {
	case BucketWeek:
		_, week := WeekNumber(day)
		return WeekKey(day), fmt.Sprintf("Week %d", week)
	case BucketMonth:
		return day.Format("2006-01"), day.Format("January 2006")
	case BucketYear:
		return day.Format("2006"), day.Format("2006")
	}

	return day.Format(time.DateOnly), day.Format(time.DateOnly)
}

// Row is one trip as it appears on a statement.
type Row struct {
	TripID        uuid.UUID       `json:"tripId"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
	LeadName      string          `json:"leadName"`
	Status        trip.Status     `json:"status"`
	TotalPax      int             `json:"totalPax"`
	Seniors       int             `json:"seniors"`
	Intermediates int             `json:"intermediates"`
	Juniors       int             `json:"juniors"`
	Trainees      int             `json:"trainees"`
	Cash          decimal.Decimal `json:"cash"`
	PhonePouches  decimal.Decimal `json:"phonePouches"`
	Water         decimal.Decimal `json:"water"`
	Sunglasses    decimal.Decimal `json:"sunglasses"`
	Discounts     decimal.Decimal `json:"discounts"`
	NetTotal      decimal.Decimal `json:"netTotal"`
}

// BucketTotal sums the trips of one sub-period.
type BucketTotal struct {
	Key      string          `json:"key"`
	Label    string          `json:"label"`
	Trips    int             `json:"trips"`
	Pax      int             `json:"pax"`
	Cash     decimal.Decimal `json:"cash"`
	NetTotal decimal.Decimal `json:"netTotal"`
}

// RunningRow is one line of the running total. Days without trips that have
// already passed get a row with no trip.
type RunningRow struct {
	Date         time.Time       `json:"date"`
	TripID       *uuid.UUID      `json:"tripId,omitempty"`
	LeadName     string          `json:"leadName"`
	NetTotal     decimal.Decimal `json:"netTotal"`
	RunningTotal decimal.Decimal `json:"runningTotal"`
}

// NoTrips labels gap rows in the running total.
const NoTrips = "No trips logged"

func (r RunningRow) IsGap() bool { return r.TripID == nil }

type GuideSummary struct {
	GuideID     uuid.UUID       `json:"guideId"`
	Name        string          `json:"name"`
	Rank        guide.Rank      `json:"rank"`
	Trips       int             `json:"trips"`
	LeaderTrips int             `json:"leaderTrips"`
	Earnings    decimal.Decimal `json:"earnings"`
}

type Totals struct {
	Trips    int             `json:"trips"`
	Pax      int             `json:"pax"`
	Cash     decimal.Decimal `json:"cash"`
	NetTotal decimal.Decimal `json:"netTotal"`
}

// Report is the data a renderer turns into a statement document.
type Report struct {
	Range   Range          `json:"range"`
	Bucket  Bucket         `json:"bucket"`
	Rows    []Row          `json:"rows"`
	Buckets []BucketTotal  `json:"buckets"`
	Running []RunningRow   `json:"running"`
	Guides  []GuideSummary `json:"guides"`
	Totals  Totals         `json:"totals"`
}

// Build aggregates trips over r. Trips outside r are ignored. today decides
// which empty days get a gap row in the running total.
func Build(trips []*trip.Trip, r Range, bucket Bucket, today time.Time) *Report {
	rows := make([]Row, 0, len(trips))
	for _, t := range trips {
		if r.Contains(t.TripDate) {
			rows = append(rows, newRow(t))
		}
	}

	slices.SortStableFunc(rows, func(a, b Row) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	})

	report := &Report{
		Range:   r,
		Bucket:  bucket,
		Rows:    rows,
		Buckets: buckets(rows, bucket),
		Running: running(rows, r, Day(today)),
		Guides:  summarize(trips, r),
		Totals:  Totals{Cash: decimal.Zero, NetTotal: decimal.Zero},
	}

	for _, row := range rows {
		report.Totals.Trips++
		report.Totals.Pax += row.TotalPax
		report.Totals.Cash = report.Totals.Cash.Add(row.Cash)
		report.Totals.NetTotal = report.Totals.NetTotal.Add(row.NetTotal)
	}

	return report
}

func newRow(t *trip.Trip) Row {
	row := Row{
		TripID:       t.ID,
		Date:         Day(t.TripDate),
		CreatedAt:    t.CreatedAt,
		LeadName:     t.LeadName,
		Status:       t.Status,
		TotalPax:     t.TotalPax,
		Cash:         t.Payments.CashReceived,
		PhonePouches: t.Payments.PhonePouches,
		Water:        t.Payments.WaterSales,
		Sunglasses:   t.Payments.SunglassesSales,
		Discounts:    t.DiscountTotal(),
		NetTotal:     t.NetTotal(),
	}

	for _, tg := range t.Guides {
		switch tg.GuideRank {
		case guide.RankSenior:
			row.Seniors++
		case guide.RankIntermediate:
			row.Intermediates++
		case guide.RankJunior:
			row.Juniors++
		case guide.RankTrainee:
			row.Trainees++
		}
	}

	return row
}

// buckets groups rows, which must already be in date order.
func buckets(rows []Row, bucket Bucket) []BucketTotal {
	var (
		out   []BucketTotal
		index = map[string]int{}
	)

	for _, row := range rows {
		key, label := bucket.key(row.Date)

		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, BucketTotal{Key: key, Label: label, Cash: decimal.Zero, NetTotal: decimal.Zero})
		}

		b := &out[i]
		b.Trips++
		b.Pax += row.TotalPax
		b.Cash = b.Cash.Add(row.Cash)
		b.NetTotal = b.NetTotal.Add(row.NetTotal)
	}

	return out
}

// running walks every day of r in order, accumulating net totals. Empty days
// up to and including today get a zero row; later empty days are left out.
func running(rows []Row, r Range, today time.Time) []RunningRow {
	byDay := make(map[time.Time][]Row)
	for _, row := range rows {
		byDay[row.Date] = append(byDay[row.Date], row)
	}

	var (
		out   []RunningRow
		total = decimal.Zero
	)

	for _, day := range r.Days() {
		dayRows := byDay[day]

		if len(dayRows) == 0 {
			if !day.After(today) {
				out = append(out, RunningRow{Date: day, LeadName: NoTrips, NetTotal: decimal.Zero, RunningTotal: total})
			}

			continue
		}

		for _, row := range dayRows {
			total = total.Add(row.NetTotal)
			out = append(out, RunningRow{
				Date:         day,
				TripID:       &row.TripID,
				LeadName:     row.LeadName,
				NetTotal:     row.NetTotal,
				RunningTotal: total,
			})
		}
	}

	return out
}

// summarize totals each rostered guide's trips and earnings, sorted by name.
func summarize(trips []*trip.Trip, r Range) []GuideSummary {
	index := map[uuid.UUID]*GuideSummary{}

	for _, t := range trips {
		if !r.Contains(t.TripDate) {
			continue
		}

		for _, tg := range t.Guides {
			s, ok := index[tg.GuideID]
			if !ok {
				s = &GuideSummary{GuideID: tg.GuideID, Name: tg.GuideName, Rank: tg.GuideRank, Earnings: decimal.Zero}
				index[tg.GuideID] = s
			}

			s.Trips++
			s.Earnings = s.Earnings.Add(tg.FeeAmount)

			if t.IsLeader(tg.GuideID) {
				s.LeaderTrips++
			}
		}
	}

	out := make([]GuideSummary, 0, len(index))
	for _, s := range index {
		out = append(out, *s)
	}

	slices.SortFunc(out, func(a, b GuideSummary) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}

		return strings.Compare(a.GuideID.String(), b.GuideID.String())
	})

	return out
}
