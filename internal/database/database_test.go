package database_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/cashup/internal/database"
)

func TestLockKey(t *testing.T) {
	a := uuid.MustParse("6f1c2a8e-3f4b-4c1d-9a55-0c1f6e2b7d10")
	b := uuid.MustParse("0b9e8d7c-6a5b-4c3d-8e2f-1a0b9c8d7e6f")

	assert.Equal(t, database.GuideLockKey(a), database.GuideLockKey(a))
	assert.NotEqual(t, database.GuideLockKey(a), database.GuideLockKey(b))
	assert.NotEqual(t, database.LockKey("x", "ab", "c"), database.LockKey("x", "a", "bc"))
}
