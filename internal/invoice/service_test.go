package invoice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/audit"
	"github.com/MrJamesThe3rd/cashup/internal/auth"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
	"github.com/MrJamesThe3rd/cashup/internal/invoice"
	"github.com/MrJamesThe3rd/cashup/internal/notify"
	"github.com/MrJamesThe3rd/cashup/internal/statement"
	"github.com/MrJamesThe3rd/cashup/internal/trip"
)

var (
	guideID   = uuid.New()
	otherID   = uuid.New()
	sipho     = &guide.Guide{ID: guideID, Name: "Sipho", Rank: guide.RankSenior, Active: true, Email: new("sipho@example.com")}
	guideUser = auth.Actor{AccountID: uuid.New(), Role: auth.RoleUser, GuideID: &guideID}
	admins    = []string{"boss@example.com"}
)

func newService(t *testing.T) (*invoice.Service, *invoice.MockRepository, *invoice.MockTx, *invoice.MockNotifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := invoice.NewMockRepository(ctrl)
	tx := invoice.NewMockTx(ctrl)
	notifier := invoice.NewMockNotifier(ctrl)

	return invoice.NewService(repo, notifier, admins), repo, tx, notifier
}

func guideTrips() []*trip.Trip {
	return []*trip.Trip{
		{
			ID:           uuid.New(),
			TripDate:     time.Date(2025, time.January, 20, 8, 0, 0, 0, time.UTC),
			LeadName:     "Smith",
			TotalPax:     8,
			TripLeaderID: &guideID,
			Guides: []*trip.TripGuide{
				{GuideID: guideID, GuideName: "Sipho", GuideRank: guide.RankSenior, FeeAmount: decimal.NewFromInt(810)},
				{GuideID: otherID, GuideName: "Anna", GuideRank: guide.RankIntermediate, FeeAmount: decimal.NewFromInt(550)},
			},
		},
		{
			ID:           uuid.New(),
			TripDate:     time.Date(2025, time.January, 20, 14, 0, 0, 0, time.UTC),
			LeadName:     "Jones",
			TotalPax:     4,
			TripLeaderID: &otherID,
			Guides: []*trip.TripGuide{
				{GuideID: guideID, GuideName: "Sipho", GuideRank: guide.RankSenior, FeeAmount: decimal.NewFromInt(550)},
			},
		},
		{
			ID:       uuid.New(),
			TripDate: time.Date(2025, time.January, 24, 8, 0, 0, 0, time.UTC),
			LeadName: "Naidoo",
			TotalPax: 3,
			Guides: []*trip.TripGuide{
				{GuideID: guideID, GuideName: "Sipho", GuideRank: guide.RankSenior, FeeAmount: decimal.NewFromInt(550)},
			},
		},
	}
}

func TestService_Submit(t *testing.T) {
	weekly := invoice.Request{Kind: invoice.KindWeekly, Period: "2025-W03"}

	type args struct {
		actor auth.Actor
		req   invoice.Request
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(repo *invoice.MockRepository, tx *invoice.MockTx, notifier *invoice.MockNotifier)
		wantErr   error
		wantMsg   string
	}

	begin := func(repo *invoice.MockRepository, tx *invoice.MockTx) {
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().Rollback().Return(nil)
		tx.EXPECT().LockGuide(gomock.Any(), guideID).Return(sipho, nil)
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{actor: guideUser, req: weekly},
			setupMock: func(repo *invoice.MockRepository, tx *invoice.MockTx, notifier *invoice.MockNotifier) {
				begin(repo, tx)
				tx.EXPECT().OpenExceptions(gomock.Any(), guideID).Return(0, nil)
				tx.EXPECT().GuideTrips(gomock.Any(), guideID, gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID, r statement.Range) ([]*trip.Trip, error) {
					assert.Equal(t, time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), r.Start)
					return guideTrips(), nil
				})
				tx.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *audit.Entry) error {
					assert.Equal(t, audit.ActionInvoiceSubmitted, e.Action)
					assert.Equal(t, audit.EntityInvoice, e.EntityType)
					assert.Equal(t, guideUser.AccountID, *e.ActorID)

					return nil
				})
				notifier.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg notify.Message) error {
					assert.Equal(t, notify.KindInvoice, msg.Kind)
					assert.Equal(t, "Weekly Invoice from Sipho - Week 3, 2025", msg.Subject)
					assert.Equal(t, admins, msg.To)
					assert.Equal(t, "sipho@example.com", msg.ReplyTo)
					assert.Contains(t, msg.Summary, "Smith | 8 pax | Trip Leader | R 810.00")

					return nil
				})
				tx.EXPECT().Commit().Return(nil)
			},
		},
		{
			name: "OpenExceptionsBlock",
			args: args{actor: guideUser, req: weekly},
			setupMock: func(repo *invoice.MockRepository, tx *invoice.MockTx, _ *invoice.MockNotifier) {
				begin(repo, tx)
				tx.EXPECT().OpenExceptions(gomock.Any(), guideID).Return(2, nil)
			},
			wantErr: apperr.ErrConflict,
			wantMsg: "You have 2 unresolved cash/card/EFT handover(s). Please hand over and let admin confirm first.",
		},
		{
			name: "NoTrips",
			args: args{actor: guideUser, req: invoice.Request{Kind: invoice.KindMonthly, Period: "2025-02"}},
			setupMock: func(repo *invoice.MockRepository, tx *invoice.MockTx, _ *invoice.MockNotifier) {
				begin(repo, tx)
				tx.EXPECT().OpenExceptions(gomock.Any(), guideID).Return(0, nil)
				tx.EXPECT().GuideTrips(gomock.Any(), guideID, gomock.Any()).Return(nil, nil)
			},
			wantErr: apperr.ErrNotFound,
			wantMsg: "No trips found for this month",
		},
		{
			name: "NotifierFailureRollsBack",
			args: args{actor: guideUser, req: weekly},
			setupMock: func(repo *invoice.MockRepository, tx *invoice.MockTx, notifier *invoice.MockNotifier) {
				begin(repo, tx)
				tx.EXPECT().OpenExceptions(gomock.Any(), guideID).Return(0, nil)
				tx.EXPECT().GuideTrips(gomock.Any(), guideID, gomock.Any()).Return(guideTrips(), nil)
				tx.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("renderer down"))
			},
			wantMsg: "sending invoice: renderer down",
		},
		{
			name:      "Unlinked",
			args:      args{actor: auth.Actor{AccountID: uuid.New(), Role: auth.RoleAdmin}, req: weekly},
			setupMock: func(*invoice.MockRepository, *invoice.MockTx, *invoice.MockNotifier) {},
			wantErr:   apperr.ErrAuthorization,
		},
		{
			name:      "MissingWeek",
			args:      args{actor: guideUser, req: invoice.Request{Kind: invoice.KindWeekly}},
			setupMock: func(*invoice.MockRepository, *invoice.MockTx, *invoice.MockNotifier) {},
			wantErr:   apperr.ErrValidation,
			wantMsg:   "week is required for weekly invoices",
		},
		{
			name:      "BadKind",
			args:      args{actor: guideUser, req: invoice.Request{Kind: "daily", Period: "2025-01-01"}},
			setupMock: func(*invoice.MockRepository, *invoice.MockTx, *invoice.MockNotifier) {},
			wantErr:   apperr.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, tx, notifier := newService(t)
			tt.setupMock(repo, tx, notifier)

			inv, err := svc.Submit(context.Background(), tt.args.actor, tt.args.req)

			if tt.wantErr == nil && tt.wantMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, 3, inv.TotalTrips)
				assert.Equal(t, "1910", inv.Total.String())
				assert.Equal(t, invoice.RoleLeader, inv.Lines[0].Role)
				assert.Equal(t, invoice.RoleGuide, inv.Lines[1].Role)
				assert.False(t, inv.SubmittedAt.IsZero())

				return
			}

			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestService_Submit_AfterHandoversResolved(t *testing.T) {
	svc, repo, tx, notifier := newService(t)
	req := invoice.Request{Kind: invoice.KindMonthly, Period: "2025-01"}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil).Times(2)
	tx.EXPECT().Rollback().Return(nil).Times(2)
	tx.EXPECT().LockGuide(gomock.Any(), guideID).Return(sipho, nil).Times(2)

	gomock.InOrder(
		tx.EXPECT().OpenExceptions(gomock.Any(), guideID).Return(1, nil),
		tx.EXPECT().OpenExceptions(gomock.Any(), guideID).Return(0, nil),
	)

	tx.EXPECT().GuideTrips(gomock.Any(), guideID, gomock.Any()).Return(guideTrips(), nil)
	tx.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
	notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)

	_, err := svc.Submit(context.Background(), guideUser, req)
	require.ErrorIs(t, err, apperr.ErrConflict)

	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, 1, e.Details["openExceptions"])

	inv, err := svc.Submit(context.Background(), guideUser, req)
	require.NoError(t, err)
	assert.Equal(t, "2025-01", inv.PeriodLabel)
}

func TestBuild_MonthlyGroupsByWeek(t *testing.T) {
	month, err := statement.ParseMonth("2025-01")
	require.NoError(t, err)

	inv := invoice.Build(sipho, invoice.KindMonthly, "2025-01", "2025-01", month, guideTrips())

	require.Len(t, inv.Subtotals, 1)
	assert.Equal(t, "Week 3", inv.Subtotals[0].Label)
	assert.Equal(t, 3, inv.Subtotals[0].Trips)
	assert.Equal(t, "Monthly Invoice from Sipho - 2025-01", inv.Subject())

	weekly := invoice.Build(sipho, invoice.KindWeekly, "2025-W03", "Week 3, 2025", month, guideTrips())

	require.Len(t, weekly.Subtotals, 2)
	assert.Equal(t, "2025-01-20", weekly.Subtotals[0].Label)
	assert.Equal(t, "1360", weekly.Subtotals[0].Earnings.String())
	assert.Equal(t, "2025-01-24", weekly.Subtotals[1].Label)
}
