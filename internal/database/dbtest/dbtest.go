// Package dbtest sets up sqlmock connections that accept the same argument
// types as the pgx driver.
package dbtest

import (
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// arrayConverter lets uuid slices through unchanged, as pgx encodes them as
// Postgres arrays itself.
type arrayConverter struct{}

func (arrayConverter) ConvertValue(v any) (driver.Value, error) {
	if ids, ok := v.([]uuid.UUID); ok {
		return ids, nil
	}

	return driver.DefaultParameterConverter.ConvertValue(v)
}

// New is sqlmock.New with uuid slice arguments allowed.
func New() (*sql.DB, sqlmock.Sqlmock, error) {
	return sqlmock.New(sqlmock.ValueConverterOption(arrayConverter{}))
}

// NewMock opens a mock connection that is closed when t finishes.
func NewMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, mock
}
