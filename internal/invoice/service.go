package invoice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/audit"
	"github.com/MrJamesThe3rd/cashup/internal/auth"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
	"github.com/MrJamesThe3rd/cashup/internal/notify"
	"github.com/MrJamesThe3rd/cashup/internal/statement"
	"github.com/MrJamesThe3rd/cashup/internal/trip"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	Begin(ctx context.Context) (Tx, error)
}

// Tx is a unit of work serialized per guide by LockGuide.
type Tx interface {
	LockGuide(ctx context.Context, guideID uuid.UUID) (*guide.Guide, error)
	OpenExceptions(ctx context.Context, guideID uuid.UUID) (int, error)
	GuideTrips(ctx context.Context, guideID uuid.UUID, r statement.Range) ([]*trip.Trip, error)

	Record(ctx context.Context, e *audit.Entry) error
	Commit() error
	Rollback() error
}

type Notifier interface {
	Send(ctx context.Context, msg notify.Message) error
}

var errNoRecipients = errors.New("no invoice recipients configured")

type Service struct {
	repo       Repository
	notifier   Notifier
	recipients []string
}

func NewService(repo Repository, notifier Notifier, recipients []string) *Service {
	return &Service{repo: repo, notifier: notifier, recipients: recipients}
}

// Submit invoices the caller's guide for a week or month and sends it on.
// Submission is refused while the guide has unresolved exceptions.
func (s *Service) Submit(ctx context.Context, actor auth.Actor, req Request) (*Invoice, error) {
	guideID, err := actor.RequireGuide()
	if err != nil {
		return nil, err
	}

	rng, label, err := req.resolve()
	if err != nil {
		return nil, err
	}

	if len(s.recipients) == 0 {
		return nil, errNoRecipients
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin invoice: %w", err)
	}
	defer tx.Rollback()

	g, err := tx.LockGuide(ctx, guideID)
	if err != nil {
		return nil, err
	}

	open, err := tx.OpenExceptions(ctx, guideID)
	if err != nil {
		return nil, fmt.Errorf("count open exceptions: %w", err)
	}

	if open > 0 {
		return nil, openExceptionsError(open)
	}

	trips, err := tx.GuideTrips(ctx, guideID, rng)
	if err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}

	if len(trips) == 0 {
		return nil, apperr.NotFound("No trips found for this %s", req.noun())
	}

	inv := Build(g, req.Kind, req.Period, label, rng, trips)
	inv.SubmittedAt = time.Now()

	after := map[string]any{
		"guideId": g.ID,
		"kind":    inv.Kind,
		"period":  inv.Period,
		"trips":   inv.TotalTrips,
		"total":   inv.Total,
	}

	entry, err := audit.NewEntry(audit.EntityInvoice, inv.ID, audit.ActionInvoiceSubmitted, nil, after, actor.AccountID)
	if err != nil {
		return nil, fmt.Errorf("build audit entry: %w", err)
	}

	if err := tx.Record(ctx, entry); err != nil {
		return nil, fmt.Errorf("record audit entry: %w", err)
	}

	msg := notify.Message{
		Kind:    notify.KindInvoice,
		Subject: inv.Subject(),
		To:      s.recipients,
		Summary: inv.Summary(),
		Payload: inv,
	}

	if g.Email != nil {
		msg.ReplyTo = *g.Email
	}

	if err := s.notifier.Send(ctx, msg); err != nil {
		return nil, fmt.Errorf("sending invoice: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit invoice: %w", err)
	}

	slog.InfoContext(ctx, "invoice submitted", "guide_id", g.ID, "period", inv.Period, "trips", inv.TotalTrips, "total", inv.Total, "account_id", actor.AccountID)

	return inv, nil
}
