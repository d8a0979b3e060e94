package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/cashup/internal/audit"
	auditstore "github.com/MrJamesThe3rd/cashup/internal/audit/store"
	"github.com/MrJamesThe3rd/cashup/internal/database"
	"github.com/MrJamesThe3rd/cashup/internal/exception"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectExceptionColumns = `
	e.id, e.type, e.reference, e.amount_hint, e.note, e.guide_id, g.name, e.trip_id, t.lead_name,
	e.created_by, e.created_at, e.resolved_at, e.resolution,
	h.id, h.received_by, h.counted_amount, h.comment, h.created_at
`

const fromExceptions = `
	FROM payment_exceptions e
	JOIN guides g ON g.id = e.guide_id
	LEFT JOIN trips t ON t.id = e.trip_id
	LEFT JOIN cash_handovers h ON h.exception_id = e.id
`

func scanException(s scanner) (*exception.Exception, error) {
	var (
		e          exception.Exception
		typ        string
		hint       decimal.NullDecimal
		handoverID *uuid.UUID
		receivedBy *uuid.UUID
		counted    decimal.NullDecimal
		comment    *string
		handedAt   sql.NullTime
	)

	if err := s.Scan(
		&e.ID, &typ, &e.Reference, &hint, &e.Note, &e.GuideID, &e.GuideName, &e.TripID, &e.TripLeadName,
		&e.CreatedByID, &e.CreatedAt, &e.ResolvedAt, &e.Resolution,
		&handoverID, &receivedBy, &counted, &comment, &handedAt,
	); err != nil {
		return nil, err
	}

	e.Type = exception.Type(typ)

	if hint.Valid {
		e.AmountHint = &hint.Decimal
	}

	if handoverID != nil {
		h := &exception.Handover{ID: *handoverID, ExceptionID: e.ID, Comment: comment, CreatedAt: handedAt.Time}
		if receivedBy != nil {
			h.ReceivedByID = *receivedBy
		}

		if counted.Valid {
			h.CountedAmount = &counted.Decimal
		}

		e.Handover = h
	}

	return &e, nil
}

func getException(ctx context.Context, q database.Querier, id uuid.UUID, forUpdate bool) (*exception.Exception, error) {
	query := `SELECT ` + selectExceptionColumns + fromExceptions + ` WHERE e.id = $1`
	if forUpdate {
		query += ` FOR UPDATE OF e`
	}

	e, err := scanException(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exception.ErrNotFound
		}

		return nil, fmt.Errorf("getting exception: %w", err)
	}

	return e, nil
}

// OpenCount counts guideID's unresolved exceptions through q.
func OpenCount(ctx context.Context, q database.Querier, guideID uuid.UUID) (int, error) {
	var n int

	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM payment_exceptions WHERE guide_id = $1 AND resolved_at IS NULL`, guideID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting open exceptions: %w", err)
	}

	return n, nil
}

func (s *Store) GetException(ctx context.Context, id uuid.UUID) (*exception.Exception, error) {
	return getException(ctx, s.db, id, false)
}

func (s *Store) OpenCount(ctx context.Context, guideID uuid.UUID) (int, error) {
	return OpenCount(ctx, s.db, guideID)
}

func (s *Store) ListExceptions(ctx context.Context, filter exception.ListFilter) ([]*exception.Exception, error) {
	query := `SELECT ` + selectExceptionColumns + fromExceptions + ` WHERE 1 = 1`

	var args []any

	if filter.GuideID != nil {
		args = append(args, *filter.GuideID)
		query += fmt.Sprintf(" AND e.guide_id = $%d", len(args))
	}

	if filter.OpenOnly {
		query += " AND e.resolved_at IS NULL"
	}

	query += " ORDER BY e.resolved_at ASC NULLS FIRST, e.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing exceptions: %w", err)
	}
	defer rows.Close()

	var out []*exception.Exception

	for rows.Next() {
		e, err := scanException(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning exception: %w", err)
		}

		out = append(out, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exceptions: %w", err)
	}

	return out, nil
}

type exceptionTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (exception.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning exception tx: %w", err)
	}

	return &exceptionTx{tx: dbTx}, nil
}

func (etx *exceptionTx) Commit() error   { return etx.tx.Commit() }
func (etx *exceptionTx) Rollback() error { return etx.tx.Rollback() }

func (etx *exceptionTx) Record(ctx context.Context, e *audit.Entry) error {
	return auditstore.Append(ctx, etx.tx, e)
}

func (etx *exceptionTx) exists(ctx context.Context, query string, id uuid.UUID) (bool, error) {
	var ok bool
	if err := etx.tx.QueryRowContext(ctx, query, id).Scan(&ok); err != nil {
		return false, err
	}

	return ok, nil
}

func (etx *exceptionTx) GuideExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return etx.exists(ctx, `SELECT EXISTS (SELECT 1 FROM guides WHERE id = $1)`, id)
}

func (etx *exceptionTx) TripExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return etx.exists(ctx, `SELECT EXISTS (SELECT 1 FROM trips WHERE id = $1)`, id)
}

func (etx *exceptionTx) InsertException(ctx context.Context, e *exception.Exception) error {
	query := `
		INSERT INTO payment_exceptions (type, reference, amount_hint, note, guide_id, trip_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	var hint any
	if e.AmountHint != nil {
		hint = *e.AmountHint
	}

	err := etx.tx.QueryRowContext(ctx, query,
		e.Type, e.Reference, hint, e.Note, e.GuideID, e.TripID, e.CreatedByID,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting exception: %w", err)
	}

	return nil
}

// LockForResolve serializes with invoice submission for the same guide: the
// guide's advisory lock is taken before the exception row.
func (etx *exceptionTx) LockForResolve(ctx context.Context, id uuid.UUID) (*exception.Exception, error) {
	var guideID uuid.UUID

	err := etx.tx.QueryRowContext(ctx, `SELECT guide_id FROM payment_exceptions WHERE id = $1`, id).Scan(&guideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, exception.ErrNotFound
		}

		return nil, fmt.Errorf("finding exception owner: %w", err)
	}

	if err := database.AdvisoryLock(ctx, etx.tx, database.GuideLockKey(guideID)); err != nil {
		return nil, err
	}

	return getException(ctx, etx.tx, id, true)
}

func (etx *exceptionTx) InsertHandover(ctx context.Context, h *exception.Handover) error {
	query := `
		INSERT INTO cash_handovers (exception_id, received_by, counted_amount, comment, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	var counted any
	if h.CountedAmount != nil {
		counted = *h.CountedAmount
	}

	err := etx.tx.QueryRowContext(ctx, query, h.ExceptionID, h.ReceivedByID, counted, h.Comment).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting handover: %w", err)
	}

	return nil
}

// MarkResolved closes e. The WHERE clause keeps a resolved exception from
// ever being resolved again.
func (etx *exceptionTx) MarkResolved(ctx context.Context, e *exception.Exception, resolution string) error {
	query := `
		UPDATE payment_exceptions
		SET resolved_at = NOW(), resolution = $1
		WHERE id = $2 AND resolved_at IS NULL
		RETURNING resolved_at
	`

	err := etx.tx.QueryRowContext(ctx, query, resolution, e.ID).Scan(&e.ResolvedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return exception.ErrAlreadyResolved
		}

		return fmt.Errorf("resolving exception: %w", err)
	}

	e.Resolution = &resolution

	return nil
}
