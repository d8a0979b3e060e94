package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Action tags what kind of mutation an entry describes.
type Action string

const (
	ActionAccountCreated    Action = "ACCOUNT_CREATED"
	ActionSignIn            Action = "SIGN_IN"
	ActionAccountLinked     Action = "ACCOUNT_LINKED"
	ActionCreate            Action = "CREATE"
	ActionUpdate            Action = "UPDATE"
	ActionPatch             Action = "PATCH"
	ActionDelete            Action = "DELETE"
	ActionStatusChange      Action = "STATUS_CHANGE"
	ActionFeeAdjusted       Action = "FEE_ADJUSTED"
	ActionFeesRecalculated  Action = "FEES_RECALCULATED"
	ActionLeaderBackfill    Action = "LEADER_BACKFILL"
	ActionExceptionCreated  Action = "EXCEPTION_CREATED"
	ActionHandoverConfirmed Action = "HANDOVER_CONFIRMED"
	ActionInvoiceSubmitted  Action = "INVOICE_SUBMITTED"
	ActionGuideCreated      Action = "GUIDE_CREATED"
	ActionGuideUpdated      Action = "GUIDE_UPDATED"
	ActionGuideDeactivated  Action = "GUIDE_DEACTIVATED"
	ActionGuideDeleted      Action = "GUIDE_DELETED"
)

// Entity types.
const (
	EntityAccount   = "Account"
	EntityGuide     = "Guide"
	EntityTrip      = "Trip"
	EntityTripGuide = "TripGuide"
	EntityException = "PaymentException"
	EntityInvoice   = "Invoice"
)

// Entry is one immutable audit record.
type Entry struct {
	ID         uuid.UUID
	EntityType string
	EntityID   string
	Action     Action
	Before     json.RawMessage
	After      json.RawMessage
	ActorID    *uuid.UUID
	CreatedAt  time.Time
}

// NewEntry snapshots before and after as JSON. Either may be nil.
func NewEntry(entityType string, entityID uuid.UUID, action Action, before, after any, actor uuid.UUID) (*Entry, error) {
	e := &Entry{
		EntityType: entityType,
		EntityID:   entityID.String(),
		Action:     action,
	}

	if actor != uuid.Nil {
		e.ActorID = &actor
	}

	var err error

	if e.Before, err = snapshot(before); err != nil {
		return nil, fmt.Errorf("encoding before snapshot: %w", err)
	}

	if e.After, err = snapshot(after); err != nil {
		return nil, fmt.Errorf("encoding after snapshot: %w", err)
	}

	return e, nil
}

func snapshot(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}

	if raw, ok := v.(json.RawMessage); ok {
		return raw, nil
	}

	return json.Marshal(v)
}
