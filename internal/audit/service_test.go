package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/cashup/internal/apperr"
	"github.com/MrJamesThe3rd/cashup/internal/audit"
	"github.com/MrJamesThe3rd/cashup/internal/auth"
)

func TestService_List(t *testing.T) {
	admin := auth.Actor{AccountID: uuid.New(), Role: auth.RoleAdmin}
	user := auth.Actor{AccountID: uuid.New(), Role: auth.RoleUser}

	type args struct {
		actor  auth.Actor
		filter audit.ListFilter
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *audit.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "AdminDefaultLimit",
			args: args{actor: admin, filter: audit.ListFilter{EntityType: audit.EntityTrip}},
			setupMock: func(m *audit.MockRepository) {
				m.EXPECT().
					ListEntries(gomock.Any(), audit.ListFilter{EntityType: audit.EntityTrip, Limit: 200}).
					Return([]*audit.Entry{{Action: audit.ActionCreate}}, nil)
			},
		},
		{
			name:    "NonAdmin",
			args:    args{actor: user},
			wantErr: apperr.ErrAuthorization,
		},
		{
			name: "RepoError",
			args: args{actor: admin, filter: audit.ListFilter{Limit: 10}},
			setupMock: func(m *audit.MockRepository) {
				m.EXPECT().ListEntries(gomock.Any(), audit.ListFilter{Limit: 10}).Return(nil, errors.New("db"))
			},
			wantErr: errors.New("db"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := audit.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := audit.NewService(repo).List(context.Background(), tt.args.actor, tt.args.filter)
			if tt.wantErr != nil {
				require.Error(t, err)

				if errors.Is(tt.wantErr, apperr.ErrAuthorization) {
					assert.ErrorIs(t, err, apperr.ErrAuthorization)
				}

				return
			}

			require.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}
}

func TestNewEntry(t *testing.T) {
	actor := uuid.New()
	id := uuid.New()

	e, err := audit.NewEntry(audit.EntityTripGuide, id, audit.ActionFeeAdjusted,
		map[string]any{"feeAmount": "550"}, map[string]any{"feeAmount": "600", "reason": "extra hour"}, actor)
	require.NoError(t, err)

	assert.Equal(t, id.String(), e.EntityID)
	assert.JSONEq(t, `{"feeAmount":"550"}`, string(e.Before))
	assert.JSONEq(t, `{"feeAmount":"600","reason":"extra hour"}`, string(e.After))
	require.NotNil(t, e.ActorID)
	assert.Equal(t, actor, *e.ActorID)

	created, err := audit.NewEntry(audit.EntityTrip, id, audit.ActionCreate, nil, map[string]int{"x": 1}, uuid.Nil)
	require.NoError(t, err)
	assert.Nil(t, created.Before)
	assert.Nil(t, created.ActorID)
}
