package statement_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cashup/internal/guide"
	"github.com/MrJamesThe3rd/cashup/internal/statement"
	"github.com/MrJamesThe3rd/cashup/internal/trip"
)

var (
	sipho = uuid.New()
	anna  = uuid.New()
	jo    = uuid.New()
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func tripGuide(id uuid.UUID, name string, rank guide.Rank, fee string) *trip.TripGuide {
	return &trip.TripGuide{ID: uuid.New(), GuideID: id, GuideName: name, GuideRank: rank, FeeAmount: dec(fee)}
}

// weekTrips returns a Monday trip netting 100 and a Wednesday trip netting
// -20 in 2025-W03.
func weekTrips() []*trip.Trip {
	monday := &trip.Trip{
		ID:           uuid.New(),
		TripDate:     time.Date(2025, time.January, 20, 8, 0, 0, 0, time.UTC),
		CreatedAt:    time.Date(2025, time.January, 20, 16, 0, 0, 0, time.UTC),
		LeadName:     "Morning paddle",
		Status:       trip.StatusApproved,
		TotalPax:     6,
		TripLeaderID: &sipho,
		Payments:     trip.PaymentBreakdown{CashReceived: dec("80"), PhonePouches: dec("20"), WaterSales: decimal.Zero, SunglassesSales: decimal.Zero},
		Guides: []*trip.TripGuide{
			tripGuide(sipho, "Sipho", guide.RankSenior, "810"),
			tripGuide(anna, "Anna", guide.RankIntermediate, "550"),
		},
	}

	wednesday := &trip.Trip{
		ID:        uuid.New(),
		TripDate:  time.Date(2025, time.January, 22, 8, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, time.January, 22, 15, 0, 0, 0, time.UTC),
		LeadName:  "Comped group",
		Status:    trip.StatusSubmitted,
		TotalPax:  2,
		Payments:  trip.PaymentBreakdown{CashReceived: dec("30"), PhonePouches: decimal.Zero, WaterSales: decimal.Zero, SunglassesSales: decimal.Zero},
		Discounts: []trip.DiscountLine{{Amount: dec("50"), Reason: "voucher"}},
		Guides: []*trip.TripGuide{
			tripGuide(anna, "Anna", guide.RankIntermediate, "550"),
			tripGuide(jo, "Jo", guide.RankJunior, "350"),
		},
	}

	return []*trip.Trip{wednesday, monday}
}

func runningTotals(rows []statement.RunningRow, gaps bool) []string {
	var out []string
	for _, r := range rows {
		if r.IsGap() == gaps {
			out = append(out, r.RunningTotal.String())
		}
	}

	return out
}

func TestBuild_RunningTotal(t *testing.T) {
	week, err := statement.ParseWeek("2025-W03")
	require.NoError(t, err)

	type testCase struct {
		name      string
		today     time.Time
		wantDates []int
		wantGaps  []string
	}

	tests := []testCase{
		{
			name:      "MidWeekFillsElapsedDays",
			today:     time.Date(2025, time.January, 23, 9, 0, 0, 0, time.UTC),
			wantDates: []int{20, 21, 22, 23},
			wantGaps:  []string{"100", "80"},
		},
		{
			name:      "TuesdayInTheFuture",
			today:     time.Date(2025, time.January, 20, 12, 0, 0, 0, time.UTC),
			wantDates: []int{20, 22},
		},
		{
			name:      "WeekOver",
			today:     time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantDates: []int{20, 21, 22, 23, 24, 25, 26},
			wantGaps:  []string{"100", "80", "80", "80", "80"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := statement.Build(weekTrips(), week, statement.BucketDay, tt.today)

			assert.Equal(t, []string{"100", "80"}, runningTotals(report.Running, false))
			assert.Equal(t, tt.wantGaps, runningTotals(report.Running, true))

			var days []int
			for _, r := range report.Running {
				days = append(days, r.Date.Day())

				if r.IsGap() {
					assert.Equal(t, statement.NoTrips, r.LeadName)
					assert.True(t, r.NetTotal.IsZero())
				}
			}

			assert.Equal(t, tt.wantDates, days)
		})
	}
}

func TestBuild_RowsAndTotals(t *testing.T) {
	week, err := statement.ParseWeek("2025-W03")
	require.NoError(t, err)

	outside := &trip.Trip{ID: uuid.New(), TripDate: time.Date(2025, time.January, 27, 8, 0, 0, 0, time.UTC), Payments: trip.PaymentBreakdown{CashReceived: dec("999")}}

	report := statement.Build(append(weekTrips(), outside), week, statement.BucketDay, week.End)

	require.Len(t, report.Rows, 2)

	mon := report.Rows[0]
	assert.Equal(t, "Morning paddle", mon.LeadName)
	assert.Equal(t, trip.StatusApproved, mon.Status)
	assert.Equal(t, 1, mon.Seniors)
	assert.Equal(t, 1, mon.Intermediates)
	assert.Equal(t, "100", mon.NetTotal.String())

	wed := report.Rows[1]
	assert.Equal(t, trip.StatusSubmitted, wed.Status)
	assert.Equal(t, 1, wed.Juniors)
	assert.Equal(t, "50", wed.Discounts.String())
	assert.Equal(t, "-20", wed.NetTotal.String())

	assert.Equal(t, 2, report.Totals.Trips)
	assert.Equal(t, 8, report.Totals.Pax)
	assert.Equal(t, "110", report.Totals.Cash.String())
	assert.Equal(t, "80", report.Totals.NetTotal.String())

	require.Len(t, report.Guides, 3)
	assert.Equal(t, anna, report.Guides[0].GuideID)
	assert.Equal(t, guide.RankIntermediate, report.Guides[0].Rank)
	assert.Equal(t, 2, report.Guides[0].Trips)
	assert.Zero(t, report.Guides[0].LeaderTrips)
	assert.Equal(t, "1100", report.Guides[0].Earnings.String())
	assert.Equal(t, "Jo", report.Guides[1].Name)
	assert.Equal(t, 1, report.Guides[2].LeaderTrips)
	assert.Equal(t, "810", report.Guides[2].Earnings.String())
}

func TestBuild_Buckets(t *testing.T) {
	month, err := statement.ParseMonth("2025-01")
	require.NoError(t, err)

	early := &trip.Trip{
		ID:       uuid.New(),
		TripDate: time.Date(2025, time.January, 7, 8, 0, 0, 0, time.UTC),
		Payments: trip.PaymentBreakdown{CashReceived: dec("40")},
	}

	type testCase struct {
		bucket     statement.Bucket
		wantLabels []string
		wantNet    []string
	}

	tests := []testCase{
		{bucket: statement.BucketDay, wantLabels: []string{"2025-01-07", "2025-01-20", "2025-01-22"}, wantNet: []string{"40", "100", "-20"}},
		{bucket: statement.BucketWeek, wantLabels: []string{"Week 1", "Week 3"}, wantNet: []string{"40", "80"}},
		{bucket: statement.BucketMonth, wantLabels: []string{"January 2025"}, wantNet: []string{"120"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			report := statement.Build(append(weekTrips(), early), month, tt.bucket, month.End)

			var labels, nets []string
			for _, b := range report.Buckets {
				labels = append(labels, b.Label)
				nets = append(nets, b.NetTotal.String())
			}

			assert.Equal(t, tt.wantLabels, labels)
			assert.Equal(t, tt.wantNet, nets)
		})
	}
}

func TestBuild_SameDayOrderedByCreation(t *testing.T) {
	day := statement.NewRange(time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC))
	tripDate := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	late := &trip.Trip{ID: uuid.New(), LeadName: "late", TripDate: tripDate, CreatedAt: tripDate.Add(5 * time.Hour), Payments: trip.PaymentBreakdown{CashReceived: dec("10")}}
	early := &trip.Trip{ID: uuid.New(), LeadName: "early", TripDate: tripDate, CreatedAt: tripDate.Add(time.Hour), Payments: trip.PaymentBreakdown{CashReceived: dec("5")}}

	report := statement.Build([]*trip.Trip{late, early}, day, statement.BucketDay, tripDate)

	require.Len(t, report.Running, 2)
	assert.Equal(t, "early", report.Running[0].LeadName)
	assert.Equal(t, "5", report.Running[0].RunningTotal.String())
	assert.Equal(t, "15", report.Running[1].RunningTotal.String())
}

func TestParseBucket(t *testing.T) {
	b, err := statement.ParseBucket("")
	require.NoError(t, err)
	assert.Equal(t, statement.BucketDay, b)

	b, err = statement.ParseBucket(" Week ")
	require.NoError(t, err)
	assert.Equal(t, statement.BucketWeek, b)

	_, err = statement.ParseBucket("fortnight")
	assert.Error(t, err)
}
