package store_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cashup/internal/database"
	"github.com/MrJamesThe3rd/cashup/internal/database/dbtest"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
	"github.com/MrJamesThe3rd/cashup/internal/invoice/store"
	"github.com/MrJamesThe3rd/cashup/internal/statement"
)

func TestTx_GateRunsUnderGuideLock(t *testing.T) {
	db, mock, err := dbtest.New()
	require.NoError(t, err)
	defer db.Close()

	guideID := uuid.New()
	now := time.Now()

	week, err := statement.ParseWeek("2025-W03")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WithArgs(database.GuideLockKey(guideID)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM guides g WHERE g.id = ANY($1::uuid[])")).
		WithArgs([]uuid.UUID{guideID}).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "rank", "active", "email", "created_at", "updated_at"}).
			AddRow(guideID.String(), "Sipho", "SENIOR", true, "sipho@example.com", now, nil))
	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_exceptions WHERE guide_id = $1 AND resolved_at IS NULL")).
		WithArgs(guideID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`FROM trips t .* t\.trip_date >= \$1 AND t\.trip_date <= \$2 AND EXISTS .* x\.guide_id = \$3\) ORDER BY t\.trip_date ASC`).
		WithArgs(week.Start, week.End, guideID).
		WillReturnRows(sqlmock.NewRows(nil))
	mock.ExpectCommit()

	tx, err := store.New(db).Begin(context.Background())
	require.NoError(t, err)

	g, err := tx.LockGuide(context.Background(), guideID)
	require.NoError(t, err)
	assert.Equal(t, "Sipho", g.Name)
	assert.Equal(t, guide.RankSenior, g.Rank)

	open, err := tx.OpenExceptions(context.Background(), guideID)
	require.NoError(t, err)
	assert.Zero(t, open)

	trips, err := tx.GuideTrips(context.Background(), guideID, week)
	require.NoError(t, err)
	assert.Empty(t, trips)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTx_LockGuide_Missing(t *testing.T) {
	db, mock, err := dbtest.New()
	require.NoError(t, err)
	defer db.Close()

	guideID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM guides g")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "rank", "active", "email", "created_at", "updated_at"}))

	tx, err := store.New(db).Begin(context.Background())
	require.NoError(t, err)

	_, err = tx.LockGuide(context.Background(), guideID)
	assert.ErrorIs(t, err, guide.ErrNotFound)
}
