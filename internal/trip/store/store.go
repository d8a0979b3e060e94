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
	guidestore "github.com/MrJamesThe3rd/cashup/internal/guide/store"
	"github.com/MrJamesThe3rd/cashup/internal/trip"
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

// Expected column order matches selectTripColumns.
func scanTrip(s scanner) (*trip.Trip, error) {
	var (
		t         trip.Trip
		status    string
		paymentID *uuid.UUID
	)

	if err := s.Scan(
		&t.ID, &t.TripDate, &t.LeadName, &t.Notes, &t.TotalPax, &t.TripLeaderID,
		&t.PaymentsMade, &t.PicsUploaded, &t.TripEmailSent, &t.TripReport, &t.Suggestions,
		&status, &t.CreatedByID, &t.CreatedAt, &t.UpdatedAt,
		&paymentID, &t.Payments.CashReceived, &t.Payments.PhonePouches, &t.Payments.WaterSales, &t.Payments.SunglassesSales,
	); err != nil {
		return nil, err
	}

	t.Status = trip.Status(status)

	if paymentID != nil {
		t.Payments.ID = *paymentID
	}

	return &t, nil
}

const selectTripColumns = `
	t.id, t.trip_date, t.lead_name, t.notes, t.total_pax, t.trip_leader_id,
	t.payments_made, t.pics_uploaded, t.trip_email_sent, t.trip_report, t.suggestions,
	t.status, t.created_by, t.created_at, t.updated_at,
	p.id, COALESCE(p.cash_received, 0), COALESCE(p.phone_pouches, 0), COALESCE(p.water_sales, 0), COALESCE(p.sunglasses_sales, 0)
`

const fromTrips = `
	FROM trips t
	LEFT JOIN payment_breakdowns p ON p.trip_id = t.id
`

// LoadTrips reads the trips matching filter, with their children, through q.
func LoadTrips(ctx context.Context, q database.Querier, filter trip.ListFilter) ([]*trip.Trip, error) {
	query := `SELECT ` + selectTripColumns + fromTrips + ` WHERE 1 = 1`

	var args []any

	argIdx := 1

	if filter.Lead != "" {
		query += fmt.Sprintf(" AND t.lead_name ILIKE '%%' || $%d || '%%'", argIdx)

		args = append(args, filter.Lead)
		argIdx++
	}

	if filter.Note != "" {
		query += fmt.Sprintf(" AND t.notes ILIKE '%%' || $%d || '%%'", argIdx)

		args = append(args, filter.Note)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND t.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Start != nil {
		query += fmt.Sprintf(" AND t.trip_date >= $%d", argIdx)

		args = append(args, *filter.Start)
		argIdx++
	}

	if filter.End != nil {
		query += fmt.Sprintf(" AND t.trip_date <= $%d", argIdx)

		args = append(args, *filter.End)
		argIdx++
	}

	if filter.GuideID != nil {
		query += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM trip_guides x WHERE x.trip_id = t.id AND x.guide_id = $%d)", argIdx)

		args = append(args, *filter.GuideID)
		argIdx++
	}

	if v := filter.Visibility; v != nil {
		if v.GuideID != nil {
			query += fmt.Sprintf(" AND (t.created_by = $%d OR EXISTS (SELECT 1 FROM trip_guides x WHERE x.trip_id = t.id AND x.guide_id = $%d))", argIdx, argIdx+1)

			args = append(args, v.AccountID, *v.GuideID)
			argIdx += 2
		} else {
			query += fmt.Sprintf(" AND t.created_by = $%d", argIdx)

			args = append(args, v.AccountID)
		}
	}

	if filter.Ascending {
		query += " ORDER BY t.trip_date ASC, t.created_at ASC"
	} else {
		query += " ORDER BY t.trip_date DESC, t.created_at DESC"
	}

	return queryTrips(ctx, q, query, args...)
}

func queryTrips(ctx context.Context, q database.Querier, query string, args ...any) ([]*trip.Trip, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing trips: %w", err)
	}

	var trips []*trip.Trip

	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning trip: %w", err)
		}

		trips = append(trips, t)
	}

	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating trips: %w", err)
	}

	rows.Close()

	if err := loadChildren(ctx, q, trips); err != nil {
		return nil, err
	}

	return trips, nil
}

func getTrip(ctx context.Context, q database.Querier, id uuid.UUID, forUpdate bool) (*trip.Trip, error) {
	query := `SELECT ` + selectTripColumns + fromTrips + ` WHERE t.id = $1`
	if forUpdate {
		query += ` FOR UPDATE OF t`
	}

	t, err := scanTrip(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trip.ErrNotFound
		}

		return nil, fmt.Errorf("getting trip: %w", err)
	}

	if err := loadChildren(ctx, q, []*trip.Trip{t}); err != nil {
		return nil, err
	}

	return t, nil
}

// loadChildren fills in the roster and discounts of trips.
func loadChildren(ctx context.Context, q database.Querier, trips []*trip.Trip) error {
	if len(trips) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*trip.Trip, len(trips))
	ids := make([]uuid.UUID, len(trips))

	for i, t := range trips {
		byID[t.ID] = t
		ids[i] = t.ID
		t.Guides = []*trip.TripGuide{}
		t.Discounts = []trip.DiscountLine{}
	}

	guideQuery := `
		SELECT tg.id, tg.trip_id, tg.guide_id, g.name, g.rank, tg.pax_count, tg.fee_amount
		FROM trip_guides tg
		JOIN guides g ON g.id = tg.guide_id
		WHERE tg.trip_id = ANY($1::uuid[])
		ORDER BY g.name ASC
	`

	rows, err := q.QueryContext(ctx, guideQuery, ids)
	if err != nil {
		return fmt.Errorf("loading trip guides: %w", err)
	}

	for rows.Next() {
		var (
			tg   trip.TripGuide
			rank string
		)

		if err := rows.Scan(&tg.ID, &tg.TripID, &tg.GuideID, &tg.GuideName, &rank, &tg.PaxCount, &tg.FeeAmount); err != nil {
			rows.Close()
			return fmt.Errorf("scanning trip guide: %w", err)
		}

		tg.GuideRank = guide.Rank(rank)

		if t, ok := byID[tg.TripID]; ok {
			t.Guides = append(t.Guides, &tg)
		}
	}

	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterating trip guides: %w", err)
	}

	rows.Close()

	discountQuery := `
		SELECT id, trip_id, amount, reason
		FROM discount_lines
		WHERE trip_id = ANY($1::uuid[])
	`

	rows, err = q.QueryContext(ctx, discountQuery, ids)
	if err != nil {
		return fmt.Errorf("loading discounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			d      trip.DiscountLine
			tripID uuid.UUID
		)

		if err := rows.Scan(&d.ID, &tripID, &d.Amount, &d.Reason); err != nil {
			return fmt.Errorf("scanning discount: %w", err)
		}

		if t, ok := byID[tripID]; ok {
			t.Discounts = append(t.Discounts, d)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating discounts: %w", err)
	}

	return nil
}

func (s *Store) GetTrip(ctx context.Context, id uuid.UUID) (*trip.Trip, error) {
	return getTrip(ctx, s.db, id, false)
}

func (s *Store) ListTrips(ctx context.Context, filter trip.ListFilter) ([]*trip.Trip, error) {
	return LoadTrips(ctx, s.db, filter)
}

func (s *Store) TripIDForGuideRecord(ctx context.Context, tripGuideID uuid.UUID) (uuid.UUID, error) {
	var tripID uuid.UUID

	err := s.db.QueryRowContext(ctx, `SELECT trip_id FROM trip_guides WHERE id = $1`, tripGuideID).Scan(&tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, trip.ErrTripGuideNotFound
		}

		return uuid.Nil, fmt.Errorf("getting trip guide: %w", err)
	}

	return tripID, nil
}

type tripTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (trip.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning trip tx: %w", err)
	}

	return &tripTx{tx: dbTx}, nil
}

func (ttx *tripTx) Commit() error   { return ttx.tx.Commit() }
func (ttx *tripTx) Rollback() error { return ttx.tx.Rollback() }

func (ttx *tripTx) Record(ctx context.Context, e *audit.Entry) error {
	return auditstore.Append(ctx, ttx.tx, e)
}

func (ttx *tripTx) Guides(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*guide.Guide, error) {
	return guidestore.ByIDs(ctx, ttx.tx, ids)
}

func (ttx *tripTx) LockTrip(ctx context.Context, id uuid.UUID) (*trip.Trip, error) {
	return getTrip(ctx, ttx.tx, id, true)
}

func (ttx *tripTx) LockTrips(ctx context.Context) ([]*trip.Trip, error) {
	query := `SELECT ` + selectTripColumns + fromTrips + ` ORDER BY t.trip_date ASC, t.created_at ASC FOR UPDATE OF t`

	return queryTrips(ctx, ttx.tx, query)
}

func (ttx *tripTx) InsertTrip(ctx context.Context, t *trip.Trip) error {
	query := `
		INSERT INTO trips (
			trip_date, lead_name, notes, total_pax, trip_leader_id,
			payments_made, pics_uploaded, trip_email_sent, trip_report, suggestions,
			status, created_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := ttx.tx.QueryRowContext(ctx, query,
		t.TripDate, t.LeadName, t.Notes, t.TotalPax, t.TripLeaderID,
		t.PaymentsMade, t.PicsUploaded, t.TripEmailSent, t.TripReport, t.Suggestions,
		t.Status, t.CreatedByID,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting trip: %w", err)
	}

	return ttx.insertChildren(ctx, t)
}

func (ttx *tripTx) UpdateTrip(ctx context.Context, t *trip.Trip) error {
	query := `
		UPDATE trips
		SET trip_date = $1, lead_name = $2, notes = $3, total_pax = $4, trip_leader_id = $5,
			payments_made = $6, pics_uploaded = $7, trip_email_sent = $8, trip_report = $9,
			suggestions = $10, status = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING updated_at
	`

	err := ttx.tx.QueryRowContext(ctx, query,
		t.TripDate, t.LeadName, t.Notes, t.TotalPax, t.TripLeaderID,
		t.PaymentsMade, t.PicsUploaded, t.TripEmailSent, t.TripReport,
		t.Suggestions, t.Status, t.ID,
	).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return trip.ErrNotFound
		}

		return fmt.Errorf("updating trip: %w", err)
	}

	return nil
}

// ReplaceChildren deletes and recreates the roster, discounts and payments.
func (ttx *tripTx) ReplaceChildren(ctx context.Context, t *trip.Trip) error {
	if err := ttx.deleteChildren(ctx, t.ID); err != nil {
		return err
	}

	return ttx.insertChildren(ctx, t)
}

func (ttx *tripTx) deleteChildren(ctx context.Context, tripID uuid.UUID) error {
	for _, table := range []string{"trip_guides", "discount_lines", "payment_breakdowns"} {
		if _, err := ttx.tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE trip_id = $1`, tripID); err != nil {
			return fmt.Errorf("deleting %s: %w", table, err)
		}
	}

	return nil
}

func (ttx *tripTx) insertChildren(ctx context.Context, t *trip.Trip) error {
	paymentQuery := `
		INSERT INTO payment_breakdowns (trip_id, cash_received, phone_pouches, water_sales, sunglasses_sales)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	p := &t.Payments
	if err := ttx.tx.QueryRowContext(ctx, paymentQuery,
		t.ID, p.CashReceived, p.PhonePouches, p.WaterSales, p.SunglassesSales,
	).Scan(&p.ID); err != nil {
		return fmt.Errorf("inserting payment breakdown: %w", err)
	}

	discountQuery := `INSERT INTO discount_lines (trip_id, amount, reason) VALUES ($1, $2, $3) RETURNING id`

	for i := range t.Discounts {
		d := &t.Discounts[i]
		if err := ttx.tx.QueryRowContext(ctx, discountQuery, t.ID, d.Amount, d.Reason).Scan(&d.ID); err != nil {
			return fmt.Errorf("inserting discount: %w", err)
		}
	}

	for _, tg := range t.Guides {
		tg.TripID = t.ID
		if err := ttx.InsertTripGuide(ctx, tg); err != nil {
			return err
		}
	}

	return nil
}

func (ttx *tripTx) InsertTripGuide(ctx context.Context, tg *trip.TripGuide) error {
	query := `
		INSERT INTO trip_guides (trip_id, guide_id, pax_count, fee_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := ttx.tx.QueryRowContext(ctx, query, tg.TripID, tg.GuideID, tg.PaxCount, tg.FeeAmount).Scan(&tg.ID); err != nil {
		return fmt.Errorf("inserting trip guide: %w", err)
	}

	return nil
}

// SaveFees writes every fee, including unchanged values.
func (ttx *tripTx) SaveFees(ctx context.Context, guides []*trip.TripGuide) error {
	for _, tg := range guides {
		if _, err := ttx.tx.ExecContext(ctx, `UPDATE trip_guides SET fee_amount = $1 WHERE id = $2`, tg.FeeAmount, tg.ID); err != nil {
			return fmt.Errorf("updating fee for trip guide %s: %w", tg.ID, err)
		}
	}

	return nil
}

// DeleteTrip removes children before the trip itself.
func (ttx *tripTx) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	if err := ttx.deleteChildren(ctx, id); err != nil {
		return err
	}

	res, err := ttx.tx.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting trip: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return trip.ErrNotFound
	}

	return nil
}
