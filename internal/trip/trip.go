package trip

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
)

// Status is a label on a trip that admins may always override.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusLocked    Status = "LOCKED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected, StatusLocked:
		return true
	}

	return false
}

// Trip is one cash-up: who guided, who led, and what was collected.
type Trip struct {
	ID            uuid.UUID        `json:"id"`
	TripDate      time.Time        `json:"tripDate"`
	LeadName      string           `json:"leadName"`
	Notes         string           `json:"notes"`
	TotalPax      int              `json:"totalPax"`
	TripLeaderID  *uuid.UUID       `json:"tripLeaderId"`
	PaymentsMade  bool             `json:"paymentsMade"`
	PicsUploaded  bool             `json:"picsUploaded"`
	TripEmailSent bool             `json:"tripEmailSent"`
	TripReport    string           `json:"tripReport"`
	Suggestions   string           `json:"suggestions"`
	Status        Status           `json:"status"`
	CreatedByID   uuid.UUID        `json:"createdById"`
	Payments      PaymentBreakdown `json:"payments"`
	Discounts     []DiscountLine   `json:"discounts"`
	Guides        []*TripGuide     `json:"guides"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     *time.Time       `json:"updatedAt,omitempty"`
}

// TripGuide is a guide's participation in a trip and what they earned for it.
type TripGuide struct {
	ID        uuid.UUID       `json:"id"`
	TripID    uuid.UUID       `json:"tripId"`
	GuideID   uuid.UUID       `json:"guideId"`
	GuideName string          `json:"guideName"`
	GuideRank guide.Rank      `json:"guideRank"`
	PaxCount  int             `json:"paxCount"`
	FeeAmount decimal.Decimal `json:"feeAmount"`
}

// PaymentBreakdown is what was collected on a trip. It is always replaced
// as a whole.
type PaymentBreakdown struct {
	ID              uuid.UUID       `json:"id"`
	CashReceived    decimal.Decimal `json:"cashReceived"`
	PhonePouches    decimal.Decimal `json:"phonePouches"`
	WaterSales      decimal.Decimal `json:"waterSales"`
	SunglassesSales decimal.Decimal `json:"sunglassesSales"`
}

// Gross is cash plus ancillary sales.
func (p PaymentBreakdown) Gross() decimal.Decimal {
	return p.CashReceived.Add(p.PhonePouches).Add(p.WaterSales).Add(p.SunglassesSales)
}

// Ancillary is the non-cash sales categories.
func (p PaymentBreakdown) Ancillary() decimal.Decimal {
	return p.PhonePouches.Add(p.WaterSales).Add(p.SunglassesSales)
}

type DiscountLine struct {
	ID     uuid.UUID       `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

func (t *Trip) DiscountTotal() decimal.Decimal {
	total := decimal.Zero
	for _, d := range t.Discounts {
		total = total.Add(d.Amount)
	}

	return total
}

// NetTotal is gross payments minus discounts. It may be negative.
func (t *Trip) NetTotal() decimal.Decimal {
	return t.Payments.Gross().Sub(t.DiscountTotal())
}

func (t *Trip) Guide(guideID uuid.UUID) (*TripGuide, bool) {
	for _, tg := range t.Guides {
		if tg.GuideID == guideID {
			return tg, true
		}
	}

	return nil, false
}

func (t *Trip) IsLeader(guideID uuid.UUID) bool {
	return t.TripLeaderID != nil && *t.TripLeaderID == guideID
}

// LeaderMissing reports a trip whose leader is not on its roster.
func (t *Trip) LeaderMissing() bool {
	if t.TripLeaderID == nil {
		return false
	}

	_, ok := t.Guide(*t.TripLeaderID)

	return !ok
}

var (
	ErrNotFound          = apperr.NotFound("trip not found")
	ErrTripGuideNotFound = apperr.NotFound("trip guide not found")
	ErrLeaderRank        = apperr.Validation("trip leader must be SENIOR or INTERMEDIATE")
	ErrLocked            = apperr.Conflict("trip is locked")
)
