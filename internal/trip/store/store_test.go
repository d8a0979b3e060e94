package store_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cashup/internal/database/dbtest"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
	"github.com/MrJamesThe3rd/cashup/internal/trip"
	"github.com/MrJamesThe3rd/cashup/internal/trip/store"
)

var tripColumns = []string{
	"id", "trip_date", "lead_name", "notes", "total_pax", "trip_leader_id",
	"payments_made", "pics_uploaded", "trip_email_sent", "trip_report", "suggestions",
	"status", "created_by", "created_at", "updated_at",
	"payment_id", "cash_received", "phone_pouches", "water_sales", "sunglasses_sales",
}

func TestStore_GetTrip(t *testing.T) {
	db, mock := dbtest.NewMock(t)

	tripID := uuid.New()
	leaderID := uuid.New()
	creator := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM trips t")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows(tripColumns).AddRow(
			tripID.String(), date, "Smith", "", 12, leaderID.String(),
			false, false, false, "", "",
			"APPROVED", creator.String(), date, nil,
			uuid.NewString(), "1000", "20", "0", "0",
		))

	mock.ExpectQuery(regexp.QuoteMeta("FROM trip_guides tg")).
		WithArgs([]uuid.UUID{tripID}).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "guide_id", "name", "rank", "pax_count", "fee_amount"}).
			AddRow(uuid.NewString(), tripID.String(), leaderID.String(), "Sipho", "SENIOR", 0, "810"))

	mock.ExpectQuery(regexp.QuoteMeta("FROM discount_lines")).
		WithArgs([]uuid.UUID{tripID}).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "amount", "reason"}).
			AddRow(uuid.NewString(), tripID.String(), "50", "local"))

	got, err := store.New(db).GetTrip(context.Background(), tripID)
	require.NoError(t, err)

	assert.Equal(t, tripID, got.ID)
	assert.Equal(t, trip.StatusApproved, got.Status)
	assert.Equal(t, &leaderID, got.TripLeaderID)
	require.Len(t, got.Guides, 1)
	assert.Equal(t, guide.RankSenior, got.Guides[0].GuideRank)
	assert.True(t, got.Guides[0].FeeAmount.Equal(decimal.NewFromInt(810)))
	require.Len(t, got.Discounts, 1)
	assert.True(t, got.NetTotal().Equal(decimal.NewFromInt(970)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetTrip_NotFound(t *testing.T) {
	db, mock := dbtest.NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM trips t")).WillReturnError(sql.ErrNoRows)

	_, err := store.New(db).GetTrip(context.Background(), uuid.New())
	assert.ErrorIs(t, err, trip.ErrNotFound)
}

func TestStore_ListTrips_Filters(t *testing.T) {
	db, mock := dbtest.NewMock(t)

	account := uuid.New()
	guideID := uuid.New()
	status := trip.StatusSubmitted

	mock.ExpectQuery(`lead_name ILIKE .* \$1 .* t\.status = \$2 AND \(t\.created_by = \$3 OR EXISTS .*x\.guide_id = \$4\)\) ORDER BY t\.trip_date ASC`).
		WithArgs("smi", status, account, guideID).
		WillReturnRows(sqlmock.NewRows(tripColumns))

	got, err := store.New(db).ListTrips(context.Background(), trip.ListFilter{
		Lead:       "smi",
		Status:     &status,
		Visibility: &trip.Visibility{AccountID: account, GuideID: &guideID},
		Ascending:  true,
	})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTx_DeleteTrip_CascadesChildrenFirst(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM trip_guides WHERE trip_id = $1")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM discount_lines WHERE trip_id = $1")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM payment_breakdowns WHERE trip_id = $1")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM trips WHERE id = $1")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := store.New(db).Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, tx.DeleteTrip(context.Background(), id))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTx_DeleteTrip_Missing(t *testing.T) {
	db, mock := dbtest.NewMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM trip_guides").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM discount_lines").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM payment_breakdowns").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM trips").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	tx, err := store.New(db).Begin(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, tx.DeleteTrip(context.Background(), uuid.New()), trip.ErrNotFound)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTx_ReplaceChildren_FailureRollsBack(t *testing.T) {
	db, mock := dbtest.NewMock(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM trip_guides").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM discount_lines").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM payment_breakdowns").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO payment_breakdowns").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	tx, err := store.New(db).Begin(context.Background())
	require.NoError(t, err)

	err = tx.ReplaceChildren(context.Background(), &trip.Trip{ID: id})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inserting payment breakdown")

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTx_InsertTrip(t *testing.T) {
	db, mock := dbtest.NewMock(t)

	tripID := uuid.New()
	guideID := uuid.New()
	tgID := uuid.New()
	now := time.Now()

	tr := &trip.Trip{
		TripDate:    now,
		LeadName:    "Smith",
		Status:      trip.StatusApproved,
		CreatedByID: uuid.New(),
		Payments:    trip.PaymentBreakdown{CashReceived: decimal.NewFromInt(100)},
		Discounts:   []trip.DiscountLine{{Amount: decimal.NewFromInt(10), Reason: "kids"}},
		Guides:      []*trip.TripGuide{{GuideID: guideID, FeeAmount: decimal.NewFromInt(550)}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO trips").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(tripID.String(), now, now))
	mock.ExpectQuery("INSERT INTO payment_breakdowns").
		WithArgs(tripID, tr.Payments.CashReceived, decimal.Zero, decimal.Zero, decimal.Zero).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectQuery("INSERT INTO discount_lines").
		WithArgs(tripID, decimal.NewFromInt(10), "kids").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectQuery("INSERT INTO trip_guides").
		WithArgs(tripID, guideID, 0, decimal.NewFromInt(550)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(tgID.String()))
	mock.ExpectCommit()

	tx, err := store.New(db).Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, tx.InsertTrip(context.Background(), tr))
	require.NoError(t, tx.Commit())

	assert.Equal(t, tripID, tr.ID)
	assert.Equal(t, tripID, tr.Guides[0].TripID)
	assert.Equal(t, tgID, tr.Guides[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
