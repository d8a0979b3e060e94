package store_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cashup/internal/database"
	"github.com/MrJamesThe3rd/cashup/internal/database/dbtest"
	"github.com/MrJamesThe3rd/cashup/internal/exception"
	"github.com/MrJamesThe3rd/cashup/internal/exception/store"
)

var exceptionColumns = []string{
	"id", "type", "reference", "amount_hint", "note", "guide_id", "name", "trip_id", "lead_name",
	"created_by", "created_at", "resolved_at", "resolution",
	"h_id", "received_by", "counted_amount", "comment", "h_created_at",
}

func TestTx_LockForResolve_TakesGuideLockFirst(t *testing.T) {
	db, mock, err := dbtest.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	guideID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT guide_id FROM payment_exceptions WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"guide_id"}).AddRow(guideID.String()))
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WithArgs(database.GuideLockKey(guideID)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`FROM payment_exceptions e .* WHERE e\.id = \$1 FOR UPDATE OF e`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(exceptionColumns).AddRow(
			id.String(), "CASH", nil, "120.50", nil, guideID.String(), "Sipho", nil, nil,
			uuid.NewString(), now, nil, nil,
			nil, nil, nil, nil, nil,
		))
	mock.ExpectRollback()

	tx, err := store.New(db).Begin(context.Background())
	require.NoError(t, err)

	e, err := tx.LockForResolve(context.Background(), id)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	assert.True(t, e.IsOpen())
	assert.Equal(t, "Sipho", e.GuideName)
	assert.Equal(t, "120.5", e.AmountHint.String())
	assert.Nil(t, e.Handover)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTx_LockForResolve_NotFound(t *testing.T) {
	db, mock, err := dbtest.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT guide_id FROM payment_exceptions").WillReturnError(sql.ErrNoRows)

	tx, err := store.New(db).Begin(context.Background())
	require.NoError(t, err)

	_, err = tx.LockForResolve(context.Background(), uuid.New())
	assert.ErrorIs(t, err, exception.ErrNotFound)
}

func TestTx_MarkResolved_AlreadyResolved(t *testing.T) {
	db, mock, err := dbtest.New()
	require.NoError(t, err)
	defer db.Close()

	e := &exception.Exception{ID: uuid.New()}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $2 AND resolved_at IS NULL")).
		WithArgs(exception.ResolutionHandoverConfirmed, e.ID).
		WillReturnError(sql.ErrNoRows)

	tx, err := store.New(db).Begin(context.Background())
	require.NoError(t, err)

	err = tx.MarkResolved(context.Background(), e, exception.ResolutionHandoverConfirmed)
	assert.ErrorIs(t, err, exception.ErrAlreadyResolved)
	assert.Nil(t, e.Resolution)
}

func TestStore_ListExceptions_OpenFirst(t *testing.T) {
	db, mock, err := dbtest.New()
	require.NoError(t, err)
	defer db.Close()

	guideID := uuid.New()
	exID := uuid.New()
	handoverID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`WHERE 1 = 1 AND e\.guide_id = \$1 ORDER BY e\.resolved_at ASC NULLS FIRST, e\.created_at DESC`).
		WithArgs(guideID).
		WillReturnRows(sqlmock.NewRows(exceptionColumns).AddRow(
			exID.String(), "EFT", "REF-9", nil, "late", guideID.String(), "Anna", nil, nil,
			uuid.NewString(), now, now, exception.ResolutionHandoverConfirmed,
			handoverID.String(), uuid.NewString(), "300", "counted", now,
		))

	got, err := store.New(db).ListExceptions(context.Background(), exception.ListFilter{GuideID: &guideID})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.False(t, got[0].IsOpen())
	assert.Equal(t, "REF-9", *got[0].Reference)
	require.NotNil(t, got[0].Handover)
	assert.Equal(t, handoverID, got[0].Handover.ID)
	assert.Equal(t, "300", got[0].Handover.CountedAmount.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenCount(t *testing.T) {
	db, mock, err := dbtest.New()
	require.NoError(t, err)
	defer db.Close()

	guideID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("resolved_at IS NULL")).
		WithArgs(guideID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := store.OpenCount(context.Background(), db, guideID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
