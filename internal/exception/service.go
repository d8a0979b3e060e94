package exception

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/audit"
	"github.com/MrJamesThe3rd/cashup/internal/auth"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=exception
type Repository interface {
	GetException(ctx context.Context, id uuid.UUID) (*Exception, error)
	ListExceptions(ctx context.Context, filter ListFilter) ([]*Exception, error)
	OpenCount(ctx context.Context, guideID uuid.UUID) (int, error)

	Begin(ctx context.Context) (Tx, error)
}

type Tx interface {
	GuideExists(ctx context.Context, id uuid.UUID) (bool, error)
	TripExists(ctx context.Context, id uuid.UUID) (bool, error)
	InsertException(ctx context.Context, e *Exception) error

	// LockForResolve takes the owning guide's ledger lock, then the row.
	LockForResolve(ctx context.Context, id uuid.UUID) (*Exception, error)
	InsertHandover(ctx context.Context, h *Handover) error
	MarkResolved(ctx context.Context, e *Exception, resolution string) error

	Record(ctx context.Context, e *audit.Entry) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	// GuideID is honoured for admins only; guides always create for themselves.
	GuideID    *uuid.UUID
	Type       Type
	Reference  *string
	AmountHint *decimal.Decimal
	Note       *string
	TripID     *uuid.UUID
}

type ResolveParams struct {
	CountedAmount *decimal.Decimal
	Comment       *string
}

type ListFilter struct {
	GuideID  *uuid.UUID
	OpenOnly bool
}

func (s *Service) Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Exception, error) {
	e, err := s.repo.GetException(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && !actor.IsGuide(e.GuideID) {
		return nil, apperr.Forbidden("you do not have access to this exception")
	}

	return e, nil
}

// List returns exceptions open first, then newest first. Guides only see
// their own.
func (s *Service) List(ctx context.Context, actor auth.Actor, filter ListFilter) ([]*Exception, error) {
	if !actor.IsAdmin() {
		guideID, err := actor.RequireGuide()
		if err != nil {
			return nil, err
		}

		filter.GuideID = &guideID
	}

	return s.repo.ListExceptions(ctx, filter)
}

// OpenCount is the number of unresolved exceptions blocking guideID's invoices.
func (s *Service) OpenCount(ctx context.Context, actor auth.Actor, guideID uuid.UUID) (int, error) {
	if !actor.IsAdmin() && !actor.IsGuide(guideID) {
		return 0, apperr.Forbidden("you do not have access to this guide")
	}

	return s.repo.OpenCount(ctx, guideID)
}

func (s *Service) Create(ctx context.Context, actor auth.Actor, params CreateParams) (*Exception, error) {
	guideID, err := owner(actor, params.GuideID)
	if err != nil {
		return nil, err
	}

	if !params.Type.Valid() {
		return nil, apperr.Validation("invalid exception type %q", params.Type)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create exception: %w", err)
	}
	defer tx.Rollback()

	ok, err := tx.GuideExists(ctx, guideID)
	if err != nil {
		return nil, fmt.Errorf("check guide: %w", err)
	}

	if !ok {
		return nil, apperr.NotFound("guide %s not found", guideID)
	}

	if params.TripID != nil {
		ok, err := tx.TripExists(ctx, *params.TripID)
		if err != nil {
			return nil, fmt.Errorf("check trip: %w", err)
		}

		if !ok {
			return nil, apperr.Validation("trip %s does not exist", *params.TripID)
		}
	}

	e := &Exception{
		Type:        params.Type,
		Reference:   trimmed(params.Reference),
		AmountHint:  params.AmountHint,
		Note:        trimmed(params.Note),
		GuideID:     guideID,
		TripID:      params.TripID,
		CreatedByID: actor.AccountID,
	}

	if err := tx.InsertException(ctx, e); err != nil {
		return nil, fmt.Errorf("insert exception: %w", err)
	}

	if err := record(ctx, tx, e.ID, audit.ActionExceptionCreated, nil, e, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create exception: %w", err)
	}

	slog.InfoContext(ctx, "payment exception created", "exception_id", e.ID, "guide_id", guideID, "type", e.Type, "actor", actor.AccountID)

	return e, nil
}

// Resolve confirms the handover for an open exception. It is the only way an
// exception is ever closed.
func (s *Service) Resolve(ctx context.Context, actor auth.Actor, id uuid.UUID, params ResolveParams) (*Handover, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	if params.CountedAmount != nil && params.CountedAmount.IsNegative() {
		return nil, apperr.Validation("counted amount cannot be negative")
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin resolve exception: %w", err)
	}
	defer tx.Rollback()

	e, err := tx.LockForResolve(ctx, id)
	if err != nil {
		return nil, err
	}

	if !e.IsOpen() {
		return nil, ErrAlreadyResolved
	}

	before := map[string]any{"resolvedAt": nil, "resolution": nil}

	h := &Handover{
		ExceptionID:   e.ID,
		ReceivedByID:  actor.AccountID,
		CountedAmount: params.CountedAmount,
		Comment:       trimmed(params.Comment),
	}

	if err := tx.InsertHandover(ctx, h); err != nil {
		return nil, fmt.Errorf("insert handover: %w", err)
	}

	if err := tx.MarkResolved(ctx, e, ResolutionHandoverConfirmed); err != nil {
		return nil, fmt.Errorf("mark exception resolved: %w", err)
	}

	after := map[string]any{"resolvedAt": e.ResolvedAt, "resolution": e.Resolution, "handover": h}
	if err := record(ctx, tx, e.ID, audit.ActionHandoverConfirmed, before, after, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit resolve exception: %w", err)
	}

	slog.InfoContext(ctx, "handover confirmed", "exception_id", e.ID, "guide_id", e.GuideID, "actor", actor.AccountID)

	return h, nil
}

func owner(actor auth.Actor, requested *uuid.UUID) (uuid.UUID, error) {
	if actor.IsAdmin() && requested != nil {
		return *requested, nil
	}

	guideID, err := actor.RequireGuide()
	if err != nil {
		return uuid.Nil, err
	}

	if requested != nil && *requested != guideID {
		return uuid.Nil, apperr.Forbidden("guides can only record exceptions for themselves")
	}

	return guideID, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}

	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}

	return &v
}

func record(ctx context.Context, tx Tx, id uuid.UUID, action audit.Action, before, after any, actor auth.Actor) error {
	entry, err := audit.NewEntry(audit.EntityException, id, action, before, after, actor.AccountID)
	if err != nil {
		return fmt.Errorf("build audit entry: %w", err)
	}

	if err := tx.Record(ctx, entry); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}

	return nil
}
