package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/cashup/internal/account"
	"github.com/MrJamesThe3rd/cashup/internal/audit"
	auditstore "github.com/MrJamesThe3rd/cashup/internal/audit/store"
	"github.com/MrJamesThe3rd/cashup/internal/auth"
	"github.com/MrJamesThe3rd/cashup/internal/database"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
	guidestore "github.com/MrJamesThe3rd/cashup/internal/guide/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectAccountColumns = `id, email, name, role, guide_id, active, created_at, updated_at`

func getOne(ctx context.Context, q database.Querier, where string, args ...any) (*account.Account, error) {
	var (
		a    account.Account
		role string
	)

	err := q.QueryRowContext(ctx, `SELECT `+selectAccountColumns+` FROM accounts WHERE `+where, args...).
		Scan(&a.ID, &a.Email, &a.Name, &role, &a.GuideID, &a.Active, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	a.Role = auth.Role(role)

	return &a, nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return getOne(ctx, s.db, `id = $1`, id)
}

type accountTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (account.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning account tx: %w", err)
	}

	return &accountTx{tx: dbTx}, nil
}

func (atx *accountTx) Commit() error   { return atx.tx.Commit() }
func (atx *accountTx) Rollback() error { return atx.tx.Rollback() }

func (atx *accountTx) Record(ctx context.Context, e *audit.Entry) error {
	return auditstore.Append(ctx, atx.tx, e)
}

func (atx *accountTx) LockAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return getOne(ctx, atx.tx, `id = $1 FOR UPDATE`, id)
}

func (atx *accountTx) AccountByGuide(ctx context.Context, guideID uuid.UUID) (*account.Account, error) {
	return getOne(ctx, atx.tx, `guide_id = $1`, guideID)
}

func (atx *accountTx) InsertAccount(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO accounts (id, email, name, role, guide_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at
	`

	if err := atx.tx.QueryRowContext(ctx, query, a.ID, a.Email, a.Name, a.Role, a.GuideID, a.Active).Scan(&a.CreatedAt); err != nil {
		return fmt.Errorf("inserting account: %w", err)
	}

	return nil
}

func (atx *accountTx) UpdateAccount(ctx context.Context, a *account.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, role = $2, guide_id = $3, active = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	if err := atx.tx.QueryRowContext(ctx, query, a.Name, a.Role, a.GuideID, a.Active, a.ID).Scan(&a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return account.ErrNotFound
		}

		return fmt.Errorf("updating account: %w", err)
	}

	return nil
}

func (atx *accountTx) GetGuide(ctx context.Context, id uuid.UUID) (*guide.Guide, error) {
	guides, err := guidestore.ByIDs(ctx, atx.tx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}

	g, ok := guides[id]
	if !ok {
		return nil, guide.ErrNotFound
	}

	return g, nil
}

func (atx *accountTx) GuideByEmail(ctx context.Context, email string) (*guide.Guide, error) {
	return guidestore.ByEmail(ctx, atx.tx, email)
}

func (atx *accountTx) GuideByName(ctx context.Context, name string) (*guide.Guide, error) {
	return guidestore.ByName(ctx, atx.tx, name)
}

func (atx *accountTx) SetGuideEmail(ctx context.Context, guideID uuid.UUID, email string) error {
	if _, err := atx.tx.ExecContext(ctx, `UPDATE guides SET email = $1, updated_at = NOW() WHERE id = $2`, email, guideID); err != nil {
		return fmt.Errorf("setting guide email: %w", err)
	}

	return nil
}
