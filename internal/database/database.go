package database

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func New(connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// LockKey derives a pg_advisory_xact_lock key from a scope name and its parts.
func LockKey(scope string, parts ...string) int64 {
	h := fnv.New64a()
	h.Write([]byte(scope))

	for _, p := range parts {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}

	return int64(h.Sum64())
}

// AdvisoryLock takes a transaction-scoped advisory lock, released on commit or rollback.
func AdvisoryLock(ctx context.Context, tx *sql.Tx, key int64) error {
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", key); err != nil {
		return fmt.Errorf("acquiring advisory lock: %w", err)
	}

	return nil
}

// GuideLockKey scopes the lock shared by invoice submission and exception resolution.
func GuideLockKey(guideID uuid.UUID) int64 {
	return LockKey("guide-ledger", guideID.String())
}

