package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Actor is the caller of an operation as asserted by the identity provider.
type Actor struct {
	AccountID uuid.UUID
	Role      Role
	GuideID   *uuid.UUID
	Email     string
	Name      string
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// IsGuide reports whether the actor's account is linked to guide id.
func (a Actor) IsGuide(id uuid.UUID) bool {
	return a.GuideID != nil && *a.GuideID == id
}

// RequireAdmin returns an authorization error unless the actor is an admin.
func (a Actor) RequireAdmin() error {
	if !a.IsAdmin() {
		return apperr.Forbidden("admin access required")
	}

	return nil
}

// RequireGuide returns the actor's linked guide id or an authorization error.
func (a Actor) RequireGuide() (uuid.UUID, error) {
	if a.GuideID == nil {
		return uuid.Nil, apperr.Forbidden("your account is not linked to a guide")
	}

	return *a.GuideID, nil
}

type ctxKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

func FromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(ctxKey{}).(Actor)
	return a, ok
}
