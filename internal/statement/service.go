package statement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/auth"
	"github.com/MrJamesThe3rd/cashup/internal/notify"
	"github.com/MrJamesThe3rd/cashup/internal/trip"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=statement
type Repository interface {
	ListTrips(ctx context.Context, filter trip.ListFilter) ([]*trip.Trip, error)
}

type Notifier interface {
	Send(ctx context.Context, msg notify.Message) error
}

var errNoRecipients = errors.New("no statement recipients configured")

type Service struct {
	repo       Repository
	notifier   Notifier
	recipients []string
	now        func() time.Time
}

// NewService creates the statement service. Handed-off statements go to
// recipients. now defaults to time.Now.
func NewService(repo Repository, notifier Notifier, recipients []string, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{repo: repo, notifier: notifier, recipients: recipients, now: now}
}

// Period aggregates every trip in r.
func (s *Service) Period(ctx context.Context, actor auth.Actor, r Range, bucket Bucket) (*Report, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	trips, err := s.repo.ListTrips(ctx, trip.ListFilter{Start: &r.Start, End: &r.End, Ascending: true})
	if err != nil {
		return nil, fmt.Errorf("loading trips: %w", err)
	}

	return Build(trips, r, bucket, s.now()), nil
}

// HandOff sends a finished week's statement to the recipients. An empty week
// means the week before this one.
func (s *Service) HandOff(ctx context.Context, actor auth.Actor, week string) (*Report, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	today := Day(s.now())

	if week == "" {
		week = PreviousWeek(today)
	}

	r, err := ParseWeek(week)
	if err != nil {
		return nil, err
	}

	if !r.End.Before(today) {
		return nil, apperr.Conflict("week %s has not finished yet", week)
	}

	if len(s.recipients) == 0 {
		return nil, errNoRecipients
	}

	report, err := s.Period(ctx, actor, r, BucketDay)
	if err != nil {
		return nil, err
	}

	msg := notify.Message{
		Kind:    notify.KindStatement,
		Subject: "Weekly Cash Ups Report - " + week,
		To:      s.recipients,
		Summary: report.Summary(),
		Payload: report,
	}

	if err := s.notifier.Send(ctx, msg); err != nil {
		return nil, fmt.Errorf("sending statement: %w", err)
	}

	slog.InfoContext(ctx, "weekly statement handed off", "week", week, "trips", report.Totals.Trips, "account_id", actor.AccountID)

	return report, nil
}

// Summary renders the report as plain text, one line per running row.
func (r *Report) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s to %s: %d trips, %d pax, cash R %s, net R %s\n\n",
		r.Range.Start.Format(time.DateOnly), r.Range.End.Format(time.DateOnly),
		r.Totals.Trips, r.Totals.Pax, r.Totals.Cash.StringFixed(2), r.Totals.NetTotal.StringFixed(2))

	for _, row := range r.Running {
		fmt.Fprintf(&sb, "* %s | %s | R %s | R %s\n",
			row.Date.Format(time.DateOnly), row.LeadName, row.NetTotal.StringFixed(2), row.RunningTotal.StringFixed(2))
	}

	return sb.String()
}
