package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cashup/internal/audit"
	auditstore "github.com/MrJamesThe3rd/cashup/internal/audit/store"
	"github.com/MrJamesThe3rd/cashup/internal/database"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectGuideColumns = `g.id, g.name, g.rank, g.active, g.email, g.created_at, g.updated_at`

func scanGuide(s scanner) (*guide.Guide, error) {
	var (
		g     guide.Guide
		rank  string
		email sql.NullString
	)

	if err := s.Scan(&g.ID, &g.Name, &rank, &g.Active, &email, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}

	g.Rank = guide.Rank(rank)

	if email.Valid {
		g.Email = &email.String
	}

	return &g, nil
}

func getOne(ctx context.Context, q database.Querier, where string, args ...any) (*guide.Guide, error) {
	query := `SELECT ` + selectGuideColumns + ` FROM guides g WHERE ` + where

	g, err := scanGuide(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, guide.ErrNotFound
		}

		return nil, fmt.Errorf("getting guide: %w", err)
	}

	return g, nil
}

// ByIDs loads the guides with the given ids, keyed by id. Missing ids are
// simply absent from the result.
func ByIDs(ctx context.Context, q database.Querier, ids []uuid.UUID) (map[uuid.UUID]*guide.Guide, error) {
	query := `SELECT ` + selectGuideColumns + ` FROM guides g WHERE g.id = ANY($1::uuid[])`

	rows, err := q.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("loading guides: %w", err)
	}
	defer rows.Close()

	guides := make(map[uuid.UUID]*guide.Guide, len(ids))

	for rows.Next() {
		g, err := scanGuide(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning guide: %w", err)
		}

		guides[g.ID] = g
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating guides: %w", err)
	}

	return guides, nil
}

// ByName matches a guide's display name case-insensitively.
func ByName(ctx context.Context, q database.Querier, name string) (*guide.Guide, error) {
	return getOne(ctx, q, `LOWER(g.name) = LOWER($1)`, name)
}

// ByEmail matches a guide's linked email case-insensitively.
func ByEmail(ctx context.Context, q database.Querier, email string) (*guide.Guide, error) {
	return getOne(ctx, q, `LOWER(g.email) = LOWER($1)`, email)
}

func (s *Store) GetGuide(ctx context.Context, id uuid.UUID) (*guide.Guide, error) {
	return getOne(ctx, s.db, `g.id = $1`, id)
}

func (s *Store) ListGuides(ctx context.Context, activeOnly bool) ([]*guide.Guide, error) {
	query := `SELECT ` + selectGuideColumns + ` FROM guides g`
	if activeOnly {
		query += ` WHERE g.active`
	}

	query += ` ORDER BY g.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing guides: %w", err)
	}
	defer rows.Close()

	var guides []*guide.Guide

	for rows.Next() {
		g, err := scanGuide(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning guide: %w", err)
		}

		guides = append(guides, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating guides: %w", err)
	}

	return guides, nil
}

type guideTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (guide.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning guide tx: %w", err)
	}

	return &guideTx{tx: dbTx}, nil
}

func (gtx *guideTx) Commit() error   { return gtx.tx.Commit() }
func (gtx *guideTx) Rollback() error { return gtx.tx.Rollback() }

func (gtx *guideTx) Record(ctx context.Context, e *audit.Entry) error {
	return auditstore.Append(ctx, gtx.tx, e)
}

func (gtx *guideTx) LockGuide(ctx context.Context, id uuid.UUID) (*guide.Guide, error) {
	return getOne(ctx, gtx.tx, `g.id = $1 FOR UPDATE`, id)
}

func (gtx *guideTx) GuideByName(ctx context.Context, name string) (*guide.Guide, error) {
	return ByName(ctx, gtx.tx, name)
}

func (gtx *guideTx) InsertGuide(ctx context.Context, g *guide.Guide) error {
	query := `
		INSERT INTO guides (name, rank, active, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at
	`

	if err := gtx.tx.QueryRowContext(ctx, query, g.Name, g.Rank, g.Active, g.Email).Scan(&g.ID, &g.CreatedAt); err != nil {
		return fmt.Errorf("inserting guide: %w", err)
	}

	return nil
}

func (gtx *guideTx) UpdateGuide(ctx context.Context, g *guide.Guide) error {
	query := `
		UPDATE guides
		SET name = $1, rank = $2, active = $3, email = $4, updated_at = NOW()
		WHERE id = $5
	`

	if _, err := gtx.tx.ExecContext(ctx, query, g.Name, g.Rank, g.Active, g.Email, g.ID); err != nil {
		return fmt.Errorf("updating guide: %w", err)
	}

	return nil
}

// CountTrips counts the trips a guide is rostered on or leads.
func (gtx *guideTx) CountTrips(ctx context.Context, id uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*) FROM (
			SELECT trip_id FROM trip_guides WHERE guide_id = $1
			UNION
			SELECT id FROM trips WHERE trip_leader_id = $1
		) t
	`

	var n int
	if err := gtx.tx.QueryRowContext(ctx, query, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting guide trips: %w", err)
	}

	return n, nil
}

func (gtx *guideTx) CountLedTrips(ctx context.Context, id uuid.UUID) (int, error) {
	var n int
	if err := gtx.tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM trips WHERE trip_leader_id = $1`, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting led trips: %w", err)
	}

	return n, nil
}

func (gtx *guideTx) UnlinkAccounts(ctx context.Context, id uuid.UUID) error {
	if _, err := gtx.tx.ExecContext(ctx, `UPDATE accounts SET guide_id = NULL, updated_at = NOW() WHERE guide_id = $1`, id); err != nil {
		return fmt.Errorf("unlinking accounts: %w", err)
	}

	return nil
}

func (gtx *guideTx) CountExceptions(ctx context.Context, id uuid.UUID) (int, error) {
	var n int
	if err := gtx.tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM payment_exceptions WHERE guide_id = $1`, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting guide exceptions: %w", err)
	}

	return n, nil
}

func (gtx *guideTx) DeleteGuide(ctx context.Context, id uuid.UUID) error {
	if _, err := gtx.tx.ExecContext(ctx, `DELETE FROM guides WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting guide: %w", err)
	}

	return nil
}
