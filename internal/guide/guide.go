package guide

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
)

// Rank is a guide's seniority, which drives the fee they earn per trip.
type Rank string

const (
	RankTrainee      Rank = "TRAINEE"
	RankJunior       Rank = "JUNIOR"
	RankIntermediate Rank = "INTERMEDIATE"
	RankSenior       Rank = "SENIOR"
)

// Ranks lists every rank, most junior first.
var Ranks = []Rank{RankTrainee, RankJunior, RankIntermediate, RankSenior}

func (r Rank) Valid() bool {
	switch r {
	case RankTrainee, RankJunior, RankIntermediate, RankSenior:
		return true
	}

	return false
}

// CanLead reports whether a guide of this rank may be a trip leader.
func (r Rank) CanLead() bool {
	return r == RankSenior || r == RankIntermediate
}

// ParseRank accepts any casing and surrounding whitespace.
func ParseRank(s string) (Rank, error) {
	r := Rank(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", apperr.Validation("invalid rank %q", s)
	}

	return r, nil
}

// Guide is a person who can be rostered on trips.
type Guide struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Rank      Rank       `json:"rank"`
	Active    bool       `json:"active"`
	Email     *string    `json:"email,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

var (
	ErrNotFound  = apperr.NotFound("guide not found")
	ErrHasTrips  = apperr.Conflict("guide has trips and cannot be deleted; deactivate instead")
	ErrNameTaken = apperr.Conflict("a guide with this name already exists")

	ErrHasExceptions = apperr.Conflict("guide has payment exceptions and cannot be deleted; deactivate instead")
)
