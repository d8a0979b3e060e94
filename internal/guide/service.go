package guide

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/audit"
	"github.com/MrJamesThe3rd/cashup/internal/auth"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=guide
type Repository interface {
	GetGuide(ctx context.Context, id uuid.UUID) (*Guide, error)
	ListGuides(ctx context.Context, activeOnly bool) ([]*Guide, error)

	Begin(ctx context.Context) (Tx, error)
}

type Tx interface {
	LockGuide(ctx context.Context, id uuid.UUID) (*Guide, error)
	GuideByName(ctx context.Context, name string) (*Guide, error)
	InsertGuide(ctx context.Context, g *Guide) error
	UpdateGuide(ctx context.Context, g *Guide) error
	CountTrips(ctx context.Context, id uuid.UUID) (int, error)
	CountLedTrips(ctx context.Context, id uuid.UUID) (int, error)
	CountExceptions(ctx context.Context, id uuid.UUID) (int, error)
	UnlinkAccounts(ctx context.Context, id uuid.UUID) error
	DeleteGuide(ctx context.Context, id uuid.UUID) error

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
	Name  string
	Rank  Rank
	Email *string
}

type UpdateParams struct {
	Name  *string
	Rank  *Rank
	Email *string
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Guide, error) {
	return s.repo.GetGuide(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]*Guide, error) {
	return s.repo.ListGuides(ctx, activeOnly)
}

func (s *Service) Create(ctx context.Context, actor auth.Actor, params CreateParams) (*Guide, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	g, err := newGuide(params)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create guide: %w", err)
	}
	defer tx.Rollback()

	if err := s.insert(ctx, tx, actor, g); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create guide: %w", err)
	}

	return g, nil
}

// Update changes a guide's details. Past trip fees are not repriced; that
// happens only through an explicit recalculation.
func (s *Service) Update(ctx context.Context, actor auth.Actor, id uuid.UUID, params UpdateParams) (*Guide, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update guide: %w", err)
	}
	defer tx.Rollback()

	g, err := tx.LockGuide(ctx, id)
	if err != nil {
		return nil, err
	}

	before := *g

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, apperr.Validation("name is required")
		}

		if !strings.EqualFold(name, g.Name) {
			if err := ensureNameFree(ctx, tx, name); err != nil {
				return nil, err
			}
		}

		g.Name = name
	}

	if params.Rank != nil {
		if !params.Rank.Valid() {
			return nil, apperr.Validation("invalid rank %q", *params.Rank)
		}

		if !params.Rank.CanLead() && g.Rank.CanLead() {
			led, err := tx.CountLedTrips(ctx, g.ID)
			if err != nil {
				return nil, err
			}

			if led > 0 {
				return nil, apperr.Conflict("%s leads %d trip(s) and cannot become %s", g.Name, led, *params.Rank).
					WithDetails(map[string]any{"ledTrips": led})
			}
		}

		g.Rank = *params.Rank
	}

	if params.Email != nil {
		g.Email = normalizeEmail(params.Email)
	}

	if err := tx.UpdateGuide(ctx, g); err != nil {
		return nil, fmt.Errorf("update guide: %w", err)
	}

	if err := record(ctx, tx, g.ID, audit.ActionGuideUpdated, before, g, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update guide: %w", err)
	}

	return g, nil
}

func (s *Service) Deactivate(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Guide, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin deactivate guide: %w", err)
	}
	defer tx.Rollback()

	g, err := tx.LockGuide(ctx, id)
	if err != nil {
		return nil, err
	}

	if !g.Active {
		return g, nil
	}

	g.Active = false

	if err := tx.UpdateGuide(ctx, g); err != nil {
		return nil, fmt.Errorf("update guide: %w", err)
	}

	if err := record(ctx, tx, g.ID, audit.ActionGuideDeactivated, map[string]bool{"active": true}, map[string]bool{"active": false}, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit deactivate guide: %w", err)
	}

	return g, nil
}

// Delete hard-deletes a guide that has never been on a trip.
func (s *Service) Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete guide: %w", err)
	}
	defer tx.Rollback()

	g, err := tx.LockGuide(ctx, id)
	if err != nil {
		return err
	}

	trips, err := tx.CountTrips(ctx, id)
	if err != nil {
		return fmt.Errorf("count guide trips: %w", err)
	}

	if trips > 0 {
		return ErrHasTrips.WithDetails(map[string]any{"trips": trips})
	}

	exceptions, err := tx.CountExceptions(ctx, id)
	if err != nil {
		return fmt.Errorf("count guide exceptions: %w", err)
	}

	if exceptions > 0 {
		return ErrHasExceptions.WithDetails(map[string]any{"exceptions": exceptions})
	}

	if err := tx.UnlinkAccounts(ctx, id); err != nil {
		return fmt.Errorf("unlink accounts: %w", err)
	}

	if err := tx.DeleteGuide(ctx, id); err != nil {
		return fmt.Errorf("delete guide: %w", err)
	}

	if err := record(ctx, tx, g.ID, audit.ActionGuideDeleted, g, nil, actor); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete guide: %w", err)
	}

	slog.InfoContext(ctx, "guide deleted", "guide_id", id, "actor", actor.AccountID)

	return nil
}

type SkippedRow struct {
	Name   string
	Reason string
}

type ImportResult struct {
	Created []*Guide
	Skipped []SkippedRow
}

// ImportRoster creates every guide in rows that does not exist yet. Existing
// names are reported as skipped, not updated.
func (s *Service) ImportRoster(ctx context.Context, actor auth.Actor, rows []CreateParams) (*ImportResult, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin roster import: %w", err)
	}
	defer tx.Rollback()

	res := &ImportResult{}
	seen := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		g, err := newGuide(row)
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedRow{Name: row.Name, Reason: err.Error()})
			continue
		}

		key := strings.ToLower(g.Name)
		if _, dup := seen[key]; dup {
			res.Skipped = append(res.Skipped, SkippedRow{Name: g.Name, Reason: "duplicate row"})
			continue
		}

		seen[key] = struct{}{}

		if err := s.insert(ctx, tx, actor, g); err != nil {
			if errors.Is(err, ErrNameTaken) {
				res.Skipped = append(res.Skipped, SkippedRow{Name: g.Name, Reason: "already exists"})
				continue
			}

			return nil, err
		}

		res.Created = append(res.Created, g)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit roster import: %w", err)
	}

	slog.InfoContext(ctx, "roster imported", "created", len(res.Created), "skipped", len(res.Skipped))

	return res, nil
}

func (s *Service) insert(ctx context.Context, tx Tx, actor auth.Actor, g *Guide) error {
	if err := ensureNameFree(ctx, tx, g.Name); err != nil {
		return err
	}

	if err := tx.InsertGuide(ctx, g); err != nil {
		return fmt.Errorf("insert guide: %w", err)
	}

	return record(ctx, tx, g.ID, audit.ActionGuideCreated, nil, g, actor)
}

func ensureNameFree(ctx context.Context, tx Tx, name string) error {
	_, err := tx.GuideByName(ctx, name)

	switch {
	case err == nil:
		return ErrNameTaken
	case errors.Is(err, ErrNotFound):
		return nil
	default:
		return fmt.Errorf("look up guide name: %w", err)
	}
}

func newGuide(p CreateParams) (*Guide, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}

	if !p.Rank.Valid() {
		return nil, apperr.Validation("invalid rank %q", p.Rank)
	}

	return &Guide{
		Name:   name,
		Rank:   p.Rank,
		Active: true,
		Email:  normalizeEmail(p.Email),
	}, nil
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}

	e := strings.ToLower(strings.TrimSpace(*email))
	if e == "" {
		return nil
	}

	return &e
}

func record(ctx context.Context, tx Tx, id uuid.UUID, action audit.Action, before, after any, actor auth.Actor) error {
	entry, err := audit.NewEntry(audit.EntityGuide, id, action, before, after, actor.AccountID)
	if err != nil {
		return fmt.Errorf("build audit entry: %w", err)
	}

	if err := tx.Record(ctx, entry); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}

	return nil
}
