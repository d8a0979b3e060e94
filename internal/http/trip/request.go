package trip

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/http/rest"
	"github.com/MrJamesThe3rd/cashup/internal/trip"
)

var errDateRequired = apperr.Validation("tripDate: is required")

type paymentsRequest struct {
	CashReceived    decimal.Decimal `json:"cashReceived"`
	PhonePouches    decimal.Decimal `json:"phonePouches"`
	WaterSales      decimal.Decimal `json:"waterSales"`
	SunglassesSales decimal.Decimal `json:"sunglassesSales"`
}

type discountRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason" validate:"max=500"`
}

// tripRequest is the full trip body shared by create, replace and cash-up.
type tripRequest struct {
	TripDate      string            `json:"tripDate" validate:"required"`
	LeadName      string            `json:"leadName" validate:"required,max=200"`
	Notes         string            `json:"notes"`
	TotalPax      int               `json:"totalPax" validate:"gte=0"`
	TripLeaderID  *uuid.UUID        `json:"tripLeaderId"`
	PaymentsMade  bool              `json:"paymentsMade"`
	PicsUploaded  bool              `json:"picsUploaded"`
	TripEmailSent bool              `json:"tripEmailSent"`
	TripReport    string            `json:"tripReport"`
	Suggestions   string            `json:"suggestions"`
	Status        trip.Status       `json:"status"`
	GuideIDs      []uuid.UUID       `json:"guideIds"`
	Payments      paymentsRequest   `json:"payments"`
	Discounts     []discountRequest `json:"discounts" validate:"dive"`
}

func (req tripRequest) params() (trip.CreateParams, error) {
	date, err := rest.Date("tripDate", req.TripDate)
	if err != nil {
		return trip.CreateParams{}, err
	}

	if date == nil {
		return trip.CreateParams{}, errDateRequired
	}

	p := trip.CreateParams{
		TripDate:      *date,
		LeadName:      req.LeadName,
		Notes:         req.Notes,
		TotalPax:      req.TotalPax,
		TripLeaderID:  req.TripLeaderID,
		PaymentsMade:  req.PaymentsMade,
		PicsUploaded:  req.PicsUploaded,
		TripEmailSent: req.TripEmailSent,
		TripReport:    req.TripReport,
		Suggestions:   req.Suggestions,
		Status:        req.Status,
		GuideIDs:      req.GuideIDs,
		Payments: trip.PaymentBreakdown{
			CashReceived:    req.Payments.CashReceived,
			PhonePouches:    req.Payments.PhonePouches,
			WaterSales:      req.Payments.WaterSales,
			SunglassesSales: req.Payments.SunglassesSales,
		},
	}

	for _, d := range req.Discounts {
		p.Discounts = append(p.Discounts, trip.DiscountLine{Amount: d.Amount, Reason: d.Reason})
	}

	return p, nil
}

type patchTripRequest struct {
	TripDate      *string      `json:"tripDate"`
	LeadName      *string      `json:"leadName" validate:"omitempty,max=200"`
	Notes         *string      `json:"notes"`
	TotalPax      *int         `json:"totalPax" validate:"omitempty,gte=0"`
	PaymentsMade  *bool        `json:"paymentsMade"`
	PicsUploaded  *bool        `json:"picsUploaded"`
	TripEmailSent *bool        `json:"tripEmailSent"`
	Status        *trip.Status `json:"status"`
}

func (req patchTripRequest) params() (trip.PatchParams, error) {
	p := trip.PatchParams{
		LeadName:      req.LeadName,
		Notes:         req.Notes,
		TotalPax:      req.TotalPax,
		PaymentsMade:  req.PaymentsMade,
		PicsUploaded:  req.PicsUploaded,
		TripEmailSent: req.TripEmailSent,
		Status:        req.Status,
	}

	if req.TripDate != nil {
		date, err := rest.Date("tripDate", *req.TripDate)
		if err != nil {
			return trip.PatchParams{}, err
		}

		if date == nil {
			return trip.PatchParams{}, errDateRequired
		}

		p.TripDate = date
	}

	return p, nil
}

type statusRequest struct {
	Status trip.Status `json:"status" validate:"required"`
}

type adjustFeeRequest struct {
	FeeAmount decimal.Decimal `json:"feeAmount"`
	Reason    string          `json:"reason" validate:"required"`
}

// cashUpRequest is a guide's trip plus an optional off-process payment taken
// on it.
type cashUpRequest struct {
	tripRequest
	Exception *inlineExceptionRequest `json:"exception"`
}

type inlineExceptionRequest struct {
	Type       string           `json:"type" validate:"required"`
	Reference  *string          `json:"reference"`
	AmountHint *decimal.Decimal `json:"amountHint"`
	Note       *string          `json:"note"`
}
