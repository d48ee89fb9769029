package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserDefaults(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	u := NewUser("jordan@example.com", "", "", now)

	assert.Equal(t, "jordan", u.Name)
	assert.Equal(t, "2024-01-15", u.RecoveryDate)
	assert.Equal(t, "jordan@example.com", u.Email)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, now.Format(time.RFC3339), u.JoinedDate)
}

func TestNewUserProvidedFieldsWin(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	u := NewUser("jordan@example.com", "Jordan R.", "2023-06-01", now)

	assert.Equal(t, "Jordan R.", u.Name)
	assert.Equal(t, "2023-06-01", u.RecoveryDate)
}

func TestLocalPart(t *testing.T) {
	assert.Equal(t, "jordan", LocalPart("jordan@example.com"))
	assert.Equal(t, "no-at-sign", LocalPart("no-at-sign"))
	assert.Equal(t, "first", LocalPart("first@second@third"))
}

func TestRecoveryStart(t *testing.T) {
	u := User{RecoveryDate: "2023-06-01"}
	require.False(t, u.RecoveryStart().IsZero())
	assert.Equal(t, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), u.RecoveryStart())

	bad := User{RecoveryDate: "not-a-date"}
	assert.True(t, bad.RecoveryStart().IsZero())
}
