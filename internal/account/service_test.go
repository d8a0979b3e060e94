package account_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/cashup/internal/account"
	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/audit"
	"github.com/MrJamesThe3rd/cashup/internal/auth"
	"github.com/MrJamesThe3rd/cashup/internal/guide"
)

func newService(t *testing.T) (*account.Service, *account.MockRepository, *account.MockTx) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := account.NewMockRepository(ctrl)
	tx := account.NewMockTx(ctrl)

	return account.NewService(repo, []string{" Boss@Example.com", ""}), repo, tx
}

// recordActions collects audit actions in the order they are written.
func recordActions(tx *account.MockTx) *[]audit.Action {
	var actions []audit.Action

	tx.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *audit.Entry) error {
		actions = append(actions, e.Action)
		return nil
	}).AnyTimes()

	return &actions
}

func TestService_SignIn(t *testing.T) {
	linked := &guide.Guide{ID: uuid.New(), Name: "Sipho Ndlovu", Rank: guide.RankSenior, Active: true}

	type testCase struct {
		name        string
		identity    account.Identity
		setupMock   func(tx *account.MockTx, id uuid.UUID)
		wantErr     error
		wantRole    auth.Role
		wantName    string
		wantGuide   *uuid.UUID
		wantActions []audit.Action
	}

	tests := []testCase{
		{
			name:     "NewAdminLinkedByEmail",
			identity: account.Identity{Email: " boss@example.COM ", Name: "Boss"},
			setupMock: func(tx *account.MockTx, id uuid.UUID) {
				tx.EXPECT().LockAccount(gomock.Any(), id).Return(nil, account.ErrNotFound)
				tx.EXPECT().GuideByEmail(gomock.Any(), "boss@example.com").Return(linked, nil)
				tx.EXPECT().AccountByGuide(gomock.Any(), linked.ID).Return(nil, account.ErrNotFound)
				tx.EXPECT().InsertAccount(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
			},
			wantRole:    auth.RoleAdmin,
			wantName:    "Sipho Ndlovu",
			wantGuide:   &linked.ID,
			wantActions: []audit.Action{audit.ActionAccountCreated, audit.ActionSignIn},
		},
		{
			name:     "NewLinkedByNameClaimsEmail",
			identity: account.Identity{Email: "sipho@example.com", Name: "sipho ndlovu"},
			setupMock: func(tx *account.MockTx, id uuid.UUID) {
				byName := *linked

				tx.EXPECT().LockAccount(gomock.Any(), id).Return(nil, account.ErrNotFound)
				tx.EXPECT().GuideByEmail(gomock.Any(), "sipho@example.com").Return(nil, guide.ErrNotFound)
				tx.EXPECT().GuideByName(gomock.Any(), "sipho ndlovu").Return(&byName, nil)
				tx.EXPECT().SetGuideEmail(gomock.Any(), linked.ID, "sipho@example.com").Return(nil)
				tx.EXPECT().AccountByGuide(gomock.Any(), linked.ID).Return(nil, account.ErrNotFound)
				tx.EXPECT().InsertAccount(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
			},
			wantRole:    auth.RoleUser,
			wantName:    "Sipho Ndlovu",
			wantGuide:   &linked.ID,
			wantActions: []audit.Action{audit.ActionAccountCreated, audit.ActionSignIn},
		},
		{
			name:     "NewUnmatchedUsesEmailLocalPart",
			identity: account.Identity{Email: "visitor@example.com"},
			setupMock: func(tx *account.MockTx, id uuid.UUID) {
				tx.EXPECT().LockAccount(gomock.Any(), id).Return(nil, account.ErrNotFound)
				tx.EXPECT().GuideByEmail(gomock.Any(), "visitor@example.com").Return(nil, guide.ErrNotFound)
				tx.EXPECT().InsertAccount(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
			},
			wantRole:    auth.RoleUser,
			wantName:    "visitor",
			wantActions: []audit.Action{audit.ActionAccountCreated, audit.ActionSignIn},
		},
		{
			name:     "NameMatchOwnedByOtherEmail",
			identity: account.Identity{Email: "imposter@example.com", Name: "Sipho Ndlovu"},
			setupMock: func(tx *account.MockTx, id uuid.UUID) {
				owned := *linked
				owned.Email = new("sipho@example.com")

				tx.EXPECT().LockAccount(gomock.Any(), id).Return(nil, account.ErrNotFound)
				tx.EXPECT().GuideByEmail(gomock.Any(), gomock.Any()).Return(nil, guide.ErrNotFound)
				tx.EXPECT().GuideByName(gomock.Any(), "Sipho Ndlovu").Return(&owned, nil)
				tx.EXPECT().InsertAccount(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
			},
			wantRole:    auth.RoleUser,
			wantName:    "Sipho Ndlovu",
			wantActions: []audit.Action{audit.ActionAccountCreated, audit.ActionSignIn},
		},
		{
			name:     "ExistingSyncsGuideName",
			identity: account.Identity{Email: "sipho@example.com"},
			setupMock: func(tx *account.MockTx, id uuid.UUID) {
				tx.EXPECT().LockAccount(gomock.Any(), id).Return(&account.Account{
					ID: id, Email: "sipho@example.com", Name: "Sipho", Role: auth.RoleUser, GuideID: &linked.ID, Active: true,
				}, nil)
				tx.EXPECT().GetGuide(gomock.Any(), linked.ID).Return(linked, nil)
				tx.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
			},
			wantRole:    auth.RoleUser,
			wantName:    "Sipho Ndlovu",
			wantGuide:   &linked.ID,
			wantActions: []audit.Action{audit.ActionSignIn},
		},
		{
			name:     "ExistingLinkedLater",
			identity: account.Identity{Email: "sipho@example.com"},
			setupMock: func(tx *account.MockTx, id uuid.UUID) {
				tx.EXPECT().LockAccount(gomock.Any(), id).Return(&account.Account{
					ID: id, Email: "sipho@example.com", Name: "sipho", Role: auth.RoleUser, Active: true,
				}, nil)
				tx.EXPECT().GuideByEmail(gomock.Any(), "sipho@example.com").Return(linked, nil)
				tx.EXPECT().AccountByGuide(gomock.Any(), linked.ID).Return(nil, account.ErrNotFound)
				tx.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
			},
			wantRole:    auth.RoleUser,
			wantName:    "Sipho Ndlovu",
			wantGuide:   &linked.ID,
			wantActions: []audit.Action{audit.ActionAccountLinked, audit.ActionSignIn},
		},
		{
			name:     "ExistingWrongName",
			identity: account.Identity{Email: "sipho@example.com", Name: "Sipho"},
			setupMock: func(tx *account.MockTx, id uuid.UUID) {
				tx.EXPECT().LockAccount(gomock.Any(), id).Return(&account.Account{
					ID: id, Email: "sipho@example.com", Name: "Sipho Ndlovu", GuideID: &linked.ID, Active: true,
				}, nil)
				tx.EXPECT().GetGuide(gomock.Any(), linked.ID).Return(linked, nil)
			},
			wantErr: apperr.ErrValidation,
		},
		{
			name:     "Deactivated",
			identity: account.Identity{Email: "gone@example.com"},
			setupMock: func(tx *account.MockTx, id uuid.UUID) {
				tx.EXPECT().LockAccount(gomock.Any(), id).Return(&account.Account{ID: id, Email: "gone@example.com"}, nil)
			},
			wantErr: account.ErrInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, tx := newService(t)

			id := uuid.New()
			tt.identity.AccountID = id

			repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
			tx.EXPECT().Rollback().Return(nil).AnyTimes()
			actions := recordActions(tx)
			tt.setupMock(tx, id)

			got, err := svc.SignIn(context.Background(), tt.identity)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
			assert.Equal(t, tt.wantRole, got.Role)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantGuide, got.GuideID)
			assert.Equal(t, tt.wantActions, *actions)
		})
	}
}

func TestService_SignIn_Validation(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.SignIn(context.Background(), account.Identity{AccountID: uuid.New(), Email: "  "})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.SignIn(context.Background(), account.Identity{Email: "a@b.c"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestService_LinkGuide(t *testing.T) {
	admin := auth.Actor{AccountID: uuid.New(), Role: auth.RoleAdmin}
	g := &guide.Guide{ID: uuid.New(), Name: "Anna", Rank: guide.RankJunior, Active: true}

	t.Run("Link", func(t *testing.T) {
		svc, repo, tx := newService(t)
		acc := &account.Account{ID: uuid.New(), Name: "anna k", Active: true}

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().LockAccount(gomock.Any(), acc.ID).Return(acc, nil)
		tx.EXPECT().GetGuide(gomock.Any(), g.ID).Return(g, nil)
		tx.EXPECT().AccountByGuide(gomock.Any(), g.ID).Return(nil, account.ErrNotFound)
		tx.EXPECT().UpdateAccount(gomock.Any(), acc).Return(nil)
		tx.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *audit.Entry) error {
			assert.Equal(t, audit.ActionAccountLinked, e.Action)
			assert.Equal(t, &admin.AccountID, e.ActorID)
			assert.JSONEq(t, `{"guideId":null,"name":"anna k"}`, string(e.Before))
			return nil
		})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		got, err := svc.LinkGuide(context.Background(), admin, acc.ID, &g.ID)
		require.NoError(t, err)
		assert.Equal(t, &g.ID, got.GuideID)
		assert.Equal(t, "Anna", got.Name)
	})

	t.Run("AlreadyClaimed", func(t *testing.T) {
		svc, repo, tx := newService(t)
		acc := &account.Account{ID: uuid.New(), Active: true}

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().LockAccount(gomock.Any(), acc.ID).Return(acc, nil)
		tx.EXPECT().GetGuide(gomock.Any(), g.ID).Return(g, nil)
		tx.EXPECT().AccountByGuide(gomock.Any(), g.ID).Return(&account.Account{ID: uuid.New()}, nil)
		tx.EXPECT().Rollback().Return(nil)

		_, err := svc.LinkGuide(context.Background(), admin, acc.ID, &g.ID)
		assert.ErrorIs(t, err, account.ErrGuideClaimed)
	})

	t.Run("Unlink", func(t *testing.T) {
		svc, repo, tx := newService(t)
		acc := &account.Account{ID: uuid.New(), Name: "Anna", GuideID: &g.ID, Active: true}

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().LockAccount(gomock.Any(), acc.ID).Return(acc, nil)
		tx.EXPECT().UpdateAccount(gomock.Any(), acc).Return(nil)
		tx.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		got, err := svc.LinkGuide(context.Background(), admin, acc.ID, nil)
		require.NoError(t, err)
		assert.Nil(t, got.GuideID)
		assert.Equal(t, "Anna", got.Name)
	})

	t.Run("NotAdmin", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.LinkGuide(context.Background(), auth.Actor{AccountID: uuid.New(), Role: auth.RoleUser}, uuid.New(), nil)
		assert.ErrorIs(t, err, apperr.ErrAuthorization)
	})
}

func TestAccount_Actor(t *testing.T) {
	gid := uuid.New()
	a := &account.Account{ID: uuid.New(), Email: "x@y.z", Name: "X", Role: auth.RoleAdmin, GuideID: &gid}

	actor := a.Actor()
	assert.True(t, actor.IsAdmin())
	assert.True(t, actor.IsGuide(gid))
	assert.Equal(t, a.ID, actor.AccountID)
}
