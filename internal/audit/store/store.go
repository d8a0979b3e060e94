package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cashup/internal/audit"
	"github.com/MrJamesThe3rd/cashup/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Append writes e through q, which is normally the *sql.Tx of the mutation
// being recorded so both commit or fail together.
func Append(ctx context.Context, q database.Querier, e *audit.Entry) error {
	query := `
		INSERT INTO audit_logs (entity_type, entity_id, action, before_json, after_json, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRowContext(ctx, query,
		e.EntityType,
		e.EntityID,
		e.Action,
		nullJSON(e.Before),
		nullJSON(e.After),
		e.ActorID,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("appending audit entry: %w", err)
	}

	return nil
}

func nullJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}

	return string(b)
}

func (s *Store) ListEntries(ctx context.Context, filter audit.ListFilter) ([]*audit.Entry, error) {
	query := `
		SELECT id, entity_type, entity_id, action, before_json, after_json, actor_id, created_at
		FROM audit_logs
		WHERE 1 = 1`

	var args []any

	argIdx := 1

	if filter.EntityType != "" {
		query += fmt.Sprintf(" AND entity_type = $%d", argIdx)

		args = append(args, filter.EntityType)
		argIdx++
	}

	if filter.EntityID != "" {
		query += fmt.Sprintf(" AND entity_id = $%d", argIdx)

		args = append(args, filter.EntityID)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argIdx)

	args = append(args, filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*audit.Entry

	for rows.Next() {
		var (
			e             audit.Entry
			action        string
			before, after []byte
			actor         *uuid.UUID
		)

		if err := rows.Scan(&e.ID, &e.EntityType, &e.EntityID, &action, &before, &after, &actor, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}

		e.Action = audit.Action(action)
		e.Before = before
		e.After = after
		e.ActorID = actor

		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit entries: %w", err)
	}

	return entries, nil
}
