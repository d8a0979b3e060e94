package store_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cashup/internal/audit"
	"github.com/MrJamesThe3rd/cashup/internal/audit/store"
	"github.com/MrJamesThe3rd/cashup/internal/database/dbtest"
)

func TestAppend(t *testing.T) {
	db, mock, err := dbtest.New()
	require.NoError(t, err)
	defer db.Close()

	actor := uuid.New()
	tripID := uuid.New()

	entry, err := audit.NewEntry(audit.EntityTrip, tripID, audit.ActionDelete, map[string]any{"leadName": "Sam"}, nil, actor)
	require.NoError(t, err)

	newID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO audit_logs")).
		WithArgs(audit.EntityTrip, tripID.String(), audit.ActionDelete, `{"leadName":"Sam"}`, nil, &actor).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(newID.String(), time.Now()))

	require.NoError(t, store.Append(context.Background(), db, entry))
	assert.Equal(t, newID, entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_Error(t *testing.T) {
	db, mock, err := dbtest.New()
	require.NoError(t, err)
	defer db.Close()

	entry, err := audit.NewEntry(audit.EntityTrip, uuid.New(), audit.ActionCreate, nil, map[string]any{}, uuid.New())
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO audit_logs")).WillReturnError(errors.New("boom"))

	assert.Error(t, store.Append(context.Background(), db, entry))
}

func TestStore_ListEntries(t *testing.T) {
	db, mock, err := dbtest.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM audit_logs")).
		WithArgs(audit.EntityTrip, "abc", 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "entity_type", "entity_id", "action", "before_json", "after_json", "actor_id", "created_at"}).
			AddRow(id.String(), audit.EntityTrip, "abc", "DELETE", []byte(`{"a":1}`), nil, nil, time.Now()))

	entries, err := store.New(db).ListEntries(context.Background(), audit.ListFilter{EntityType: audit.EntityTrip, EntityID: "abc", Limit: 50})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ActionDelete, entries[0].Action)
	assert.JSONEq(t, `{"a":1}`, string(entries[0].Before))
	assert.NoError(t, mock.ExpectationsWereMet())
}
