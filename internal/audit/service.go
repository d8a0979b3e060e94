package audit

import (
	"context"

	"github.com/MrJamesThe3rd/cashup/internal/auth"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=audit
type Repository interface {
	ListEntries(ctx context.Context, filter ListFilter) ([]*Entry, error)
}

type ListFilter struct {
	EntityType string
	EntityID   string
	Limit      int
}

const defaultLimit = 200

// Service reads the audit trail. Entries are written by the stores inside
// the transaction of the mutation they describe.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, actor auth.Actor, filter ListFilter) ([]*Entry, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	if filter.Limit <= 0 || filter.Limit > defaultLimit {
		filter.Limit = defaultLimit
	}

	return s.repo.ListEntries(ctx, filter)
}
