package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/audit"
	"github.com/MrJamesThe3rd/cashup/internal/auth"
	"github.com/MrJamesThe3rd/cashup/internal/fee"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=trip
type Repository interface {
	GetTrip(ctx context.Context, id uuid.UUID) (*Trip, error)
	ListTrips(ctx context.Context, filter ListFilter) ([]*Trip, error)
	TripIDForGuideRecord(ctx context.Context, tripGuideID uuid.UUID) (uuid.UUID, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx is one atomic unit of work over the ledger. Locked trips stay locked
// until Commit or Rollback.
type Tx interface {
	Guides(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*guide.Guide, error)
	LockTrip(ctx context.Context, id uuid.UUID) (*Trip, error)
	LockTrips(ctx context.Context) ([]*Trip, error)

	InsertTrip(ctx context.Context, t *Trip) error
	UpdateTrip(ctx context.Context, t *Trip) error
	ReplaceChildren(ctx context.Context, t *Trip) error
	SaveFees(ctx context.Context, guides []*TripGuide) error
	InsertTripGuide(ctx context.Context, tg *TripGuide) error
	DeleteTrip(ctx context.Context, id uuid.UUID) error

	Record(ctx context.Context, e *audit.Entry) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
	fees *fee.Engine
}

func NewService(repo Repository, fees *fee.Engine) *Service {
	return &Service{repo: repo, fees: fees}
}

type CreateParams struct {
	TripDate      time.Time
	LeadName      string
	Notes         string
	TotalPax      int
	TripLeaderID  *uuid.UUID
	PaymentsMade  bool
	PicsUploaded  bool
	TripEmailSent bool
	TripReport    string
	Suggestions   string
	Status        Status
	GuideIDs      []uuid.UUID
	Payments      PaymentBreakdown
	Discounts     []DiscountLine
}

type PatchParams struct {
	TripDate      *time.Time
	LeadName      *string
	Notes         *string
	TotalPax      *int
	PaymentsMade  *bool
	PicsUploaded  *bool
	TripEmailSent *bool
	Status        *Status
}

// Visibility restricts a listing to trips an account created or whose guide
// is rostered on.
type Visibility struct {
	AccountID uuid.UUID
	GuideID   *uuid.UUID
}

type ListFilter struct {
	Lead       string
	Note       string
	Status     *Status
	Start      *time.Time
	End        *time.Time
	GuideID    *uuid.UUID
	Visibility *Visibility
	Ascending  bool
}

func (s *Service) Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Trip, error) {
	t, err := s.repo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canView(actor, t) {
		return nil, apperr.Forbidden("you do not have access to this trip")
	}

	return t, nil
}

// List returns trips newest first. Non-admins, and admins that did not ask
// for everything, only see their own trips.
func (s *Service) List(ctx context.Context, actor auth.Actor, filter ListFilter, all bool) ([]*Trip, error) {
	if !all || !actor.IsAdmin() {
		filter.Visibility = &Visibility{AccountID: actor.AccountID, GuideID: actor.GuideID}
	}

	if filter.End != nil {
		filter.End = new(EndOfDay(*filter.End))
	}

	return s.repo.ListTrips(ctx, filter)
}

// Create records a trip. The trip leader is always added to the roster and
// every rostered guide is priced.
func (s *Service) Create(ctx context.Context, actor auth.Actor, params CreateParams) (*Trip, error) {
	if params.Status == "" {
		params.Status = StatusApproved
	}

	if err := validateParams(params); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create trip: %w", err)
	}
	defer tx.Rollback()

	t := newTrip(params)
	t.CreatedByID = actor.AccountID

	if err := s.assignRoster(ctx, tx, t, params.GuideIDs); err != nil {
		return nil, err
	}

	if err := tx.InsertTrip(ctx, t); err != nil {
		return nil, fmt.Errorf("insert trip: %w", err)
	}

	if err := record(ctx, tx, audit.EntityTrip, t.ID, audit.ActionCreate, nil, t, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create trip: %w", err)
	}

	slog.InfoContext(ctx, "trip created", "trip_id", t.ID, "status", t.Status, "guides", len(t.Guides), "actor", actor.AccountID)

	return t, nil
}

// SubmitCashUp is a guide logging their own trip for review. The caller's
// account must be linked to a guide.
func (s *Service) SubmitCashUp(ctx context.Context, actor auth.Actor, params CreateParams) (*Trip, error) {
	if _, err := actor.RequireGuide(); err != nil {
		return nil, err
	}

	if len(params.GuideIDs) == 0 {
		return nil, apperr.Validation("at least one guide is required")
	}

	params.Status = StatusSubmitted

	return s.Create(ctx, actor, params)
}

// Replace overwrites a trip and all of its children, repricing every guide.
func (s *Service) Replace(ctx context.Context, actor auth.Actor, id uuid.UUID, params CreateParams) (*Trip, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin replace trip: %w", err)
	}
	defer tx.Rollback()

	cur, err := tx.LockTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canEdit(actor, cur) {
		return nil, apperr.Forbidden("only an admin, the trip's creator or its trip leader can edit this trip")
	}

	if cur.Status == StatusLocked && !actor.IsAdmin() {
		return nil, ErrLocked
	}

	switch {
	case params.Status == "":
		params.Status = cur.Status
	case params.Status != cur.Status && !actor.IsAdmin():
		return nil, apperr.Forbidden("only an admin can change a trip's status")
	}

	before, err := json.Marshal(cur)
	if err != nil {
		return nil, fmt.Errorf("snapshot trip: %w", err)
	}

	t := newTrip(params)
	t.ID = cur.ID
	t.CreatedByID = cur.CreatedByID
	t.CreatedAt = cur.CreatedAt

	if err := s.assignRoster(ctx, tx, t, params.GuideIDs); err != nil {
		return nil, err
	}

	if err := tx.UpdateTrip(ctx, t); err != nil {
		return nil, fmt.Errorf("update trip: %w", err)
	}

	if err := tx.ReplaceChildren(ctx, t); err != nil {
		return nil, fmt.Errorf("replace trip children: %w", err)
	}

	if err := record(ctx, tx, audit.EntityTrip, t.ID, audit.ActionUpdate, json.RawMessage(before), t, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit replace trip: %w", err)
	}

	slog.InfoContext(ctx, "trip updated", "trip_id", t.ID, "actor", actor.AccountID)

	return t, nil
}

// Patch updates a restricted set of fields. A changed pax count reprices
// every guide on the trip.
func (s *Service) Patch(ctx context.Context, actor auth.Actor, id uuid.UUID, params PatchParams) (*Trip, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	if err := validatePatch(params); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin patch trip: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.LockTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.LeaderMissing() {
		if err := s.backfillLeader(ctx, tx, t, actor); err != nil {
			return nil, err
		}
	}

	before, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("snapshot trip: %w", err)
	}

	paxChanged := params.TotalPax != nil && *params.TotalPax != t.TotalPax

	applyPatch(t, params)

	if paxChanged {
		s.reprice(t)

		if err := tx.SaveFees(ctx, t.Guides); err != nil {
			return nil, fmt.Errorf("save fees: %w", err)
		}
	}

	if err := tx.UpdateTrip(ctx, t); err != nil {
		return nil, fmt.Errorf("update trip: %w", err)
	}

	if err := record(ctx, tx, audit.EntityTrip, t.ID, audit.ActionPatch, json.RawMessage(before), t, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit patch trip: %w", err)
	}

	return t, nil
}

// Delete removes a trip and its children after recording its final state.
func (s *Service) Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete trip: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.LockTrip(ctx, id)
	if err != nil {
		return err
	}

	if err := record(ctx, tx, audit.EntityTrip, t.ID, audit.ActionDelete, t, nil, actor); err != nil {
		return err
	}

	if err := tx.DeleteTrip(ctx, t.ID); err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete trip: %w", err)
	}

	slog.InfoContext(ctx, "trip deleted", "trip_id", id, "actor", actor.AccountID)

	return nil
}

func (s *Service) SetStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status Status) (*Trip, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	if !status.Valid() {
		return nil, apperr.Validation("invalid status %q", status)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin set status: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.LockTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	before := map[string]Status{"status": t.Status}
	t.Status = status

	if err := tx.UpdateTrip(ctx, t); err != nil {
		return nil, fmt.Errorf("update trip: %w", err)
	}

	after := map[string]Status{"status": status}
	if err := record(ctx, tx, audit.EntityTrip, t.ID, audit.ActionStatusChange, before, after, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit set status: %w", err)
	}

	return t, nil
}

// AdjustFee overrides one guide's fee on a trip. A reason is mandatory.
func (s *Service) AdjustFee(ctx context.Context, actor auth.Actor, tripGuideID uuid.UUID, amount decimal.Decimal, reason string) (*TripGuide, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperr.Validation("a reason is required to adjust a fee")
	}

	if amount.IsNegative() {
		return nil, apperr.Validation("fee amount must be zero or more")
	}

	tripID, err := s.repo.TripIDForGuideRecord(ctx, tripGuideID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin adjust fee: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.LockTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	var tg *TripGuide

	for _, g := range t.Guides {
		if g.ID == tripGuideID {
			tg = g
			break
		}
	}

	if tg == nil {
		return nil, ErrTripGuideNotFound
	}

	if !actor.IsAdmin() && !actor.IsGuide(tg.GuideID) && !(actor.GuideID != nil && t.IsLeader(*actor.GuideID)) {
		return nil, apperr.Forbidden("only an admin, the guide or the trip leader can adjust this fee")
	}

	if t.Status == StatusLocked && !actor.IsAdmin() {
		return nil, ErrLocked
	}

	before := map[string]any{
		"feeAmount":    tg.FeeAmount,
		"tripId":       t.ID,
		"guideId":      tg.GuideID,
		"guideName":    tg.GuideName,
		"tripDate":     t.TripDate,
		"tripLeadName": t.LeadName,
	}

	adjustedBy := "GUIDE"
	if actor.IsAdmin() {
		adjustedBy = "ADMIN"
	}

	tg.FeeAmount = amount

	if err := tx.SaveFees(ctx, []*TripGuide{tg}); err != nil {
		return nil, fmt.Errorf("save fee: %w", err)
	}

	after := map[string]any{
		"feeAmount":  amount,
		"reason":     reason,
		"adjustedBy": adjustedBy,
	}
	if err := record(ctx, tx, audit.EntityTripGuide, tg.ID, audit.ActionFeeAdjusted, before, after, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit adjust fee: %w", err)
	}

	return tg, nil
}

type RecalculateResult struct {
	RateVersion string
	Trips       int
	Guides      int
	Changed     int
}

// RecalculateFees rewrites every fee on every trip from the current rate table.
func (s *Service) RecalculateFees(ctx context.Context, actor auth.Actor) (*RecalculateResult, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin recalculate: %w", err)
	}
	defer tx.Rollback()

	trips, err := tx.LockTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("lock trips: %w", err)
	}

	res := &RecalculateResult{RateVersion: s.fees.Version()}

	for _, t := range trips {
		if len(t.Guides) == 0 {
			continue
		}

		before := feeSnapshot(t, "")

		res.Changed += s.reprice(t)
		res.Guides += len(t.Guides)
		res.Trips++

		if err := tx.SaveFees(ctx, t.Guides); err != nil {
			return nil, fmt.Errorf("save fees for trip %s: %w", t.ID, err)
		}

		after := feeSnapshot(t, res.RateVersion)
		if err := record(ctx, tx, audit.EntityTrip, t.ID, audit.ActionFeesRecalculated, before, after, actor); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit recalculate: %w", err)
	}

	slog.InfoContext(ctx, "fees recalculated",
		"rate_version", res.RateVersion, "trips", res.Trips, "guides", res.Guides, "changed", res.Changed)

	return res, nil
}

type BackfillResult struct {
	Fixed          []uuid.UUID
	AlreadyCorrect int
}

// BackfillLeaders adds the trip leader to every roster that is missing them.
func (s *Service) BackfillLeaders(ctx context.Context, actor auth.Actor) (*BackfillResult, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin backfill: %w", err)
	}
	defer tx.Rollback()

	trips, err := tx.LockTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("lock trips: %w", err)
	}

	res := &BackfillResult{}

	for _, t := range trips {
		if t.TripLeaderID == nil {
			continue
		}

		if !t.LeaderMissing() {
			res.AlreadyCorrect++
			continue
		}

		if err := s.backfillLeader(ctx, tx, t, actor); err != nil {
			return nil, err
		}

		res.Fixed = append(res.Fixed, t.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit backfill: %w", err)
	}

	slog.InfoContext(ctx, "trip leaders backfilled", "fixed", len(res.Fixed), "already_correct", res.AlreadyCorrect)

	return res, nil
}

// backfillLeader repairs a roster missing its trip leader and records the
// repair as its own audit action.
func (s *Service) backfillLeader(ctx context.Context, tx Tx, t *Trip, actor auth.Actor) error {
	leaderID := *t.TripLeaderID

	guides, err := tx.Guides(ctx, []uuid.UUID{leaderID})
	if err != nil {
		return fmt.Errorf("load trip leader: %w", err)
	}

	g, ok := guides[leaderID]
	if !ok {
		return apperr.Integrity("trip %s references trip leader %s which does not exist", t.ID, leaderID)
	}

	tg := &TripGuide{
		TripID:    t.ID,
		GuideID:   g.ID,
		GuideName: g.Name,
		GuideRank: g.Rank,
		FeeAmount: s.fees.Fee(g.Rank, true, g.Name),
	}

	if err := tx.InsertTripGuide(ctx, tg); err != nil {
		return fmt.Errorf("insert trip leader: %w", err)
	}

	t.Guides = append(t.Guides, tg)

	if err := record(ctx, tx, audit.EntityTrip, t.ID, audit.ActionLeaderBackfill, nil, tg, actor); err != nil {
		return err
	}

	slog.WarnContext(ctx, "trip leader was missing from roster", "trip_id", t.ID, "guide_id", g.ID)

	return nil
}

// assignRoster resolves the roster, checks the leader's rank, and prices
// every guide.
func (s *Service) assignRoster(ctx context.Context, tx Tx, t *Trip, guideIDs []uuid.UUID) error {
	ids := rosterIDs(guideIDs, t.TripLeaderID)

	if len(ids) == 0 {
		if t.Status != StatusDraft {
			return apperr.Validation("at least one guide is required")
		}

		return nil
	}

	guides, err := tx.Guides(ctx, ids)
	if err != nil {
		return fmt.Errorf("load guides: %w", err)
	}

	for _, id := range ids {
		if _, ok := guides[id]; !ok {
			return apperr.Validation("guide %s does not exist", id)
		}
	}

	if t.TripLeaderID != nil && !guides[*t.TripLeaderID].Rank.CanLead() {
		return ErrLeaderRank
	}

	t.Guides = make([]*TripGuide, 0, len(ids))

	for _, id := range ids {
		g := guides[id]
		t.Guides = append(t.Guides, &TripGuide{
			TripID:    t.ID,
			GuideID:   g.ID,
			GuideName: g.Name,
			GuideRank: g.Rank,
		})
	}

	s.reprice(t)

	return nil
}

// reprice recomputes every guide's fee and reports how many values changed.
func (s *Service) reprice(t *Trip) int {
	changed := 0

	for _, tg := range t.Guides {
		amount := s.fees.Fee(tg.GuideRank, t.IsLeader(tg.GuideID), tg.GuideName)
		if !amount.Equal(tg.FeeAmount) {
			changed++
		}

		tg.FeeAmount = amount
	}

	return changed
}

func rosterIDs(guideIDs []uuid.UUID, leaderID *uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(guideIDs)+1)
	ids := make([]uuid.UUID, 0, len(guideIDs)+1)

	for _, id := range guideIDs {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if leaderID != nil {
		if _, ok := seen[*leaderID]; !ok {
			ids = append(ids, *leaderID)
		}
	}

	return ids
}

func feeSnapshot(t *Trip, rateVersion string) map[string]any {
	fees := make(map[string]decimal.Decimal, len(t.Guides))
	for _, tg := range t.Guides {
		fees[tg.GuideID.String()] = tg.FeeAmount
	}

	snap := map[string]any{"fees": fees}
	if rateVersion != "" {
		snap["rateVersion"] = rateVersion
	}

	return snap
}

func newTrip(p CreateParams) *Trip {
	discounts := make([]DiscountLine, len(p.Discounts))
	for i, d := range p.Discounts {
		discounts[i] = DiscountLine{Amount: d.Amount, Reason: strings.TrimSpace(d.Reason)}
	}

	return &Trip{
		TripDate:      p.TripDate,
		LeadName:      strings.TrimSpace(p.LeadName),
		Notes:         p.Notes,
		TotalPax:      p.TotalPax,
		TripLeaderID:  p.TripLeaderID,
		PaymentsMade:  p.PaymentsMade,
		PicsUploaded:  p.PicsUploaded,
		TripEmailSent: p.TripEmailSent,
		TripReport:    p.TripReport,
		Suggestions:   p.Suggestions,
		Status:        p.Status,
		Payments: PaymentBreakdown{
			CashReceived:    p.Payments.CashReceived,
			PhonePouches:    p.Payments.PhonePouches,
			WaterSales:      p.Payments.WaterSales,
			SunglassesSales: p.Payments.SunglassesSales,
		},
		Discounts: discounts,
	}
}

func applyPatch(t *Trip, p PatchParams) {
	if p.TripDate != nil {
		t.TripDate = *p.TripDate
	}

	if p.LeadName != nil {
		t.LeadName = strings.TrimSpace(*p.LeadName)
	}

	if p.Notes != nil {
		t.Notes = *p.Notes
	}

	if p.TotalPax != nil {
		t.TotalPax = *p.TotalPax
	}

	if p.PaymentsMade != nil {
		t.PaymentsMade = *p.PaymentsMade
	}

	if p.PicsUploaded != nil {
		t.PicsUploaded = *p.PicsUploaded
	}

	if p.TripEmailSent != nil {
		t.TripEmailSent = *p.TripEmailSent
	}

	if p.Status != nil {
		t.Status = *p.Status
	}
}

func validateParams(p CreateParams) error {
	if p.TripDate.IsZero() {
		return apperr.Validation("trip date is required")
	}

	if strings.TrimSpace(p.LeadName) == "" {
		return apperr.Validation("lead name is required")
	}

	if p.TotalPax < 0 {
		return apperr.Validation("total pax cannot be negative")
	}

	if p.Status != "" && !p.Status.Valid() {
		return apperr.Validation("invalid status %q", p.Status)
	}

	pay := p.Payments
	for _, amount := range []decimal.Decimal{pay.CashReceived, pay.PhonePouches, pay.WaterSales, pay.SunglassesSales} {
		if amount.IsNegative() {
			return apperr.Validation("payment amounts cannot be negative")
		}
	}

	for _, d := range p.Discounts {
		if d.Amount.IsNegative() {
			return apperr.Validation("discount amounts cannot be negative")
		}
	}

	return nil
}

func validatePatch(p PatchParams) error {
	if p.TripDate != nil && p.TripDate.IsZero() {
		return apperr.Validation("trip date is required")
	}

	if p.LeadName != nil && strings.TrimSpace(*p.LeadName) == "" {
		return apperr.Validation("lead name is required")
	}

	if p.TotalPax != nil && *p.TotalPax < 0 {
		return apperr.Validation("total pax cannot be negative")
	}

	if p.Status != nil && !p.Status.Valid() {
		return apperr.Validation("invalid status %q", *p.Status)
	}

	return nil
}

func canEdit(actor auth.Actor, t *Trip) bool {
	if actor.IsAdmin() || actor.AccountID == t.CreatedByID {
		return true
	}

	return actor.GuideID != nil && t.IsLeader(*actor.GuideID)
}

func canView(actor auth.Actor, t *Trip) bool {
	if canEdit(actor, t) {
		return true
	}

	if actor.GuideID == nil {
		return false
	}

	_, ok := t.Guide(*actor.GuideID)

	return ok
}

func record(ctx context.Context, tx Tx, entityType string, id uuid.UUID, action audit.Action, before, after any, actor auth.Actor) error {
	entry, err := audit.NewEntry(entityType, id, action, before, after, actor.AccountID)
	if err != nil {
		return fmt.Errorf("build audit entry: %w", err)
	}

	if err := tx.Record(ctx, entry); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}

	return nil
}

// EndOfDay returns the last instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
