package account

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/auth"
)

// Account is a signed-in user as the ledger knows them. The link to a guide
// is a lookup only; neither side owns the other.
type Account struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      auth.Role  `json:"role"`
	GuideID   *uuid.UUID `json:"guideId"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Actor is the identity later requests from this account act as.
func (a *Account) Actor() auth.Actor {
	return auth.Actor{
		AccountID: a.ID,
		Role:      a.Role,
		GuideID:   a.GuideID,
		Email:     a.Email,
		Name:      a.Name,
	}
}

// Identity is what the identity provider asserts at sign-in.
type Identity struct {
	AccountID uuid.UUID
	Email     string
	Name      string
}

var (
	ErrNotFound     = apperr.NotFound("account not found")
	ErrInactive     = apperr.Forbidden("this account has been deactivated")
	ErrGuideClaimed = apperr.Conflict("guide is already linked to another account")
)
