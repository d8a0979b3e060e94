package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cashup/internal/audit"
	auditstore "github.com/MrJamesThe3rd/cashup/internal/audit/store"
	"github.com/MrJamesThe3rd/cashup/internal/database"
	exceptionstore "github.com/MrJamesThe3rd/cashup/internal/exception/store"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
	guidestore "github.com/MrJamesThe3rd/cashup/internal/guide/store"
	"github.com/MrJamesThe3rd/cashup/internal/invoice"
	"github.com/MrJamesThe3rd/cashup/internal/statement"
	"github.com/MrJamesThe3rd/cashup/internal/trip"
	tripstore "github.com/MrJamesThe3rd/cashup/internal/trip/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type invoiceTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (invoice.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning invoice tx: %w", err)
	}

	return &invoiceTx{tx: dbTx}, nil
}

func (itx *invoiceTx) Commit() error   { return itx.tx.Commit() }
func (itx *invoiceTx) Rollback() error { return itx.tx.Rollback() }

func (itx *invoiceTx) Record(ctx context.Context, e *audit.Entry) error {
	return auditstore.Append(ctx, itx.tx, e)
}

// LockGuide takes the guide's ledger lock, the same one exception resolution
// takes, and loads the guide.
func (itx *invoiceTx) LockGuide(ctx context.Context, guideID uuid.UUID) (*guide.Guide, error) {
	if err := database.AdvisoryLock(ctx, itx.tx, database.GuideLockKey(guideID)); err != nil {
		return nil, err
	}

	guides, err := guidestore.ByIDs(ctx, itx.tx, []uuid.UUID{guideID})
	if err != nil {
		return nil, err
	}

	g, ok := guides[guideID]
	if !ok {
		return nil, guide.ErrNotFound
	}

	return g, nil
}

func (itx *invoiceTx) OpenExceptions(ctx context.Context, guideID uuid.UUID) (int, error) {
	return exceptionstore.OpenCount(ctx, itx.tx, guideID)
}

func (itx *invoiceTx) GuideTrips(ctx context.Context, guideID uuid.UUID, r statement.Range) ([]*trip.Trip, error) {
	return tripstore.LoadTrips(ctx, itx.tx, trip.ListFilter{
		GuideID:   &guideID,
		Start:     &r.Start,
		End:       &r.End,
		Ascending: true,
	})
}
