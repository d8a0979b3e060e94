package account

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
	"github.com/MrJamesThe3rd/cashup/internal/guide"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)

	Begin(ctx context.Context) (Tx, error)
}

type Tx interface {
	LockAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	AccountByGuide(ctx context.Context, guideID uuid.UUID) (*Account, error)
	InsertAccount(ctx context.Context, a *Account) error
	UpdateAccount(ctx context.Context, a *Account) error

	GetGuide(ctx context.Context, id uuid.UUID) (*guide.Guide, error)
	GuideByEmail(ctx context.Context, email string) (*guide.Guide, error)
	GuideByName(ctx context.Context, name string) (*guide.Guide, error)
	SetGuideEmail(ctx context.Context, guideID uuid.UUID, email string) error

	Record(ctx context.Context, e *audit.Entry) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo   Repository
	admins map[string]struct{}
}

// NewService creates the account service. Accounts signing in with one of
// adminEmails are made admins.
func NewService(repo Repository, adminEmails []string) *Service {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if e = normalizeEmail(e); e != "" {
			admins[e] = struct{}{}
		}
	}

	return &Service{repo: repo, admins: admins}
}

func (s *Service) Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Account, error) {
	if !actor.IsAdmin() && actor.AccountID != id {
		return nil, apperr.Forbidden("you do not have access to this account")
	}

	return s.repo.GetAccount(ctx, id)
}

// SignIn records a session the identity provider has authenticated. The
// account is created on first sight and auto-linked to a guide by email, then
// by name.
func (s *Service) SignIn(ctx context.Context, id Identity) (*Account, error) {
	email := normalizeEmail(id.Email)
	name := strings.TrimSpace(id.Name)

	if id.AccountID == uuid.Nil {
		return nil, apperr.Validation("account id is required")
	}

	if email == "" {
		return nil, apperr.Validation("email is required")
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin sign in: %w", err)
	}
	defer tx.Rollback()

	a, err := tx.LockAccount(ctx, id.AccountID)

	switch {
	case errors.Is(err, ErrNotFound):
		a, err = s.create(ctx, tx, id.AccountID, email, name)
	case err != nil:
		err = fmt.Errorf("load account: %w", err)
	default:
		err = s.refresh(ctx, tx, a, name)
	}

	if err != nil {
		return nil, err
	}

	if err := record(ctx, tx, a.ID, audit.ActionSignIn, nil, map[string]string{"email": a.Email, "name": a.Name}, a.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit sign in: %w", err)
	}

	slog.InfoContext(ctx, "signed in", "account_id", a.ID, "role", a.Role, "guide_linked", a.GuideID != nil)

	return a, nil
}

func (s *Service) create(ctx context.Context, tx Tx, id uuid.UUID, email, name string) (*Account, error) {
	a := &Account{ID: id, Email: email, Role: auth.RoleUser, Active: true}
	if s.isAdmin(email) {
		a.Role = auth.RoleAdmin
	}

	g, err := s.matchGuide(ctx, tx, email, name)
	if err != nil {
		return nil, err
	}

	switch {
	case g != nil:
		a.GuideID = &g.ID
		a.Name = g.Name
	case name != "":
		a.Name = name
	default:
		a.Name, _, _ = strings.Cut(email, "@")
	}

	if err := tx.InsertAccount(ctx, a); err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}

	if err := record(ctx, tx, a.ID, audit.ActionAccountCreated, nil, a, a.ID); err != nil {
		return nil, err
	}

	return a, nil
}

// refresh brings an existing account up to date: guide-linked accounts carry
// their guide's name, unlinked ones are linked if a guide now matches.
func (s *Service) refresh(ctx context.Context, tx Tx, a *Account, name string) error {
	if !a.Active {
		return ErrInactive
	}

	changed := false

	if a.GuideID != nil {
		g, err := tx.GetGuide(ctx, *a.GuideID)
		if err != nil {
			return fmt.Errorf("load linked guide: %w", err)
		}

		if name != "" && !strings.EqualFold(name, g.Name) {
			return apperr.Validation("Incorrect name for this email address. Please use exactly: %s", g.Name)
		}

		if a.Name != g.Name {
			a.Name = g.Name
			changed = true
		}
	} else {
		g, err := s.matchGuide(ctx, tx, a.Email, name)
		if err != nil {
			return err
		}

		if g != nil {
			a.GuideID = &g.ID
			a.Name = g.Name
			changed = true

			after := map[string]any{"guideId": g.ID, "name": g.Name, "source": "sign-in"}
			if err := record(ctx, tx, a.ID, audit.ActionAccountLinked, map[string]any{"guideId": nil}, after, a.ID); err != nil {
				return err
			}
		}
	}

	if s.isAdmin(a.Email) && a.Role != auth.RoleAdmin {
		a.Role = auth.RoleAdmin
		changed = true
	}

	if !changed {
		return nil
	}

	if err := tx.UpdateAccount(ctx, a); err != nil {
		return fmt.Errorf("update account: %w", err)
	}

	return nil
}

// matchGuide finds the active guide an account should be linked to. A name
// match is only used when that guide has no email or the same email, and it
// claims the guide's email for the account.
func (s *Service) matchGuide(ctx context.Context, tx Tx, email, name string) (*guide.Guide, error) {
	g, err := tx.GuideByEmail(ctx, email)

	switch {
	case err == nil && g.Active:
		return s.unclaimed(ctx, tx, g)
	case err != nil && !errors.Is(err, guide.ErrNotFound):
		return nil, fmt.Errorf("match guide by email: %w", err)
	}

	if name == "" {
		return nil, nil
	}

	g, err = tx.GuideByName(ctx, name)

	switch {
	case errors.Is(err, guide.ErrNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("match guide by name: %w", err)
	case !g.Active:
		return nil, nil
	case g.Email != nil && *g.Email != email:
		return nil, nil
	}

	if g.Email == nil {
		if err := tx.SetGuideEmail(ctx, g.ID, email); err != nil {
			return nil, fmt.Errorf("set guide email: %w", err)
		}

		g.Email = &email
	}

	return s.unclaimed(ctx, tx, g)
}

// unclaimed returns g unless another account is already linked to it.
func (s *Service) unclaimed(ctx context.Context, tx Tx, g *guide.Guide) (*guide.Guide, error) {
	_, err := tx.AccountByGuide(ctx, g.ID)

	switch {
	case errors.Is(err, ErrNotFound):
		return g, nil
	case err != nil:
		return nil, fmt.Errorf("check guide link: %w", err)
	}

	slog.WarnContext(ctx, "guide already linked to another account", "guide_id", g.ID)

	return nil, nil
}

// LinkGuide sets or clears an account's guide. The guide's name is copied
// onto the account; nothing else changes on either side.
func (s *Service) LinkGuide(ctx context.Context, actor auth.Actor, accountID uuid.UUID, guideID *uuid.UUID) (*Account, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin link guide: %w", err)
	}
	defer tx.Rollback()

	a, err := tx.LockAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	before := map[string]any{"guideId": a.GuideID, "name": a.Name}

	if guideID == nil {
		a.GuideID = nil
	} else {
		g, err := tx.GetGuide(ctx, *guideID)
		if err != nil {
			return nil, err
		}

		other, err := tx.AccountByGuide(ctx, g.ID)

		switch {
		case err == nil && other.ID != a.ID:
			return nil, ErrGuideClaimed
		case err != nil && !errors.Is(err, ErrNotFound):
			return nil, fmt.Errorf("check guide link: %w", err)
		}

		a.GuideID = &g.ID
		a.Name = g.Name
	}

	if err := tx.UpdateAccount(ctx, a); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}

	after := map[string]any{"guideId": a.GuideID, "name": a.Name}
	if err := record(ctx, tx, a.ID, audit.ActionAccountLinked, before, after, actor.AccountID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit link guide: %w", err)
	}

	return a, nil
}

func (s *Service) isAdmin(email string) bool {
	_, ok := s.admins[email]
	return ok
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func record(ctx context.Context, tx Tx, id uuid.UUID, action audit.Action, before, after any, actor uuid.UUID) error {
	entry, err := audit.NewEntry(audit.EntityAccount, id, action, before, after, actor)
	if err != nil {
		return fmt.Errorf("build audit entry: %w", err)
	}

	if err := tx.Record(ctx, entry); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}

	return nil
}
