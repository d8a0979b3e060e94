package exception

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
)

// Type is how the off-process payment was taken.
type Type string

const (
	TypeCash Type = "CASH"
	TypeCard Type = "CARD"
	TypeEFT  Type = "EFT"
)

func (t Type) Valid() bool {
	switch t {
	case TypeCash, TypeCard, TypeEFT:
		return true
	}

	return false
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", apperr.Validation("invalid exception type %q", s)
	}

	return t, nil
}

const ResolutionHandoverConfirmed = "HANDOVER_CONFIRMED"

// Exception is a payment a guide accepted outside the admin-collected flow.
// It stays open until an admin confirms the handover.
type Exception struct {
	ID           uuid.UUID        `json:"id"`
	Type         Type             `json:"type"`
	Reference    *string          `json:"reference,omitempty"`
	AmountHint   *decimal.Decimal `json:"amountHint,omitempty"`
	Note         *string          `json:"note,omitempty"`
	GuideID      uuid.UUID        `json:"guideId"`
	GuideName    string           `json:"guideName,omitempty"`
	TripID       *uuid.UUID       `json:"tripId,omitempty"`
	TripLeadName *string          `json:"tripLeadName,omitempty"`
	CreatedByID  uuid.UUID        `json:"createdById"`
	CreatedAt    time.Time        `json:"createdAt"`
	ResolvedAt   *time.Time       `json:"resolvedAt"`
	Resolution   *string          `json:"resolution"`
	Handover     *Handover        `json:"handover,omitempty"`
}

func (e *Exception) IsOpen() bool { return e.ResolvedAt == nil }

// Handover is the admin's confirmation that the money reached them.
type Handover struct {
	ID            uuid.UUID        `json:"id"`
	ExceptionID   uuid.UUID        `json:"exceptionId"`
	ReceivedByID  uuid.UUID        `json:"receivedById"`
	CountedAmount *decimal.Decimal `json:"countedAmount,omitempty"`
	Comment       *string          `json:"comment,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

var (
	ErrNotFound        = apperr.NotFound("exception not found")
	ErrAlreadyResolved = apperr.Conflict("already resolved")
)
