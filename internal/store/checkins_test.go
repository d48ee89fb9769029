package store

import (
	"testing"

	"github.com/glrs/connect/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInsPutAndGet(t *testing.T) {
	mem := NewMemStorage()
	checkins := NewCheckIns(mem)

	ci := model.CheckIn{
		Date:       "2024-01-15",
		Energy:     7,
		Connection: 9,
		Win:        "slept well",
		Focus:      "exercise",
	}
	require.NoError(t, checkins.Put(ci))

	// Exactly one record, under the date's key.
	assert.Len(t, mem, 1)
	assert.Contains(t, mem, "glrs.checkin.2024-01-15")

	got, ok := checkins.Get("2024-01-15")
	require.True(t, ok)
	assert.Equal(t, ci, got)
}

func TestCheckInsGetAbsentDate(t *testing.T) {
	checkins := NewCheckIns(NewMemStorage())

	_, ok := checkins.Get("2024-01-15")
	assert.False(t, ok)
}

func TestCheckInsOneKeyPerDay(t *testing.T) {
	mem := NewMemStorage()
	checkins := NewCheckIns(mem)

	require.NoError(t, checkins.Put(model.CheckIn{Date: "2024-01-15", Energy: 5}))
	require.NoError(t, checkins.Put(model.CheckIn{Date: "2024-01-16", Energy: 8}))

	assert.Len(t, mem, 2)

	got, ok := checkins.Get("2024-01-16")
	require.True(t, ok)
	assert.Equal(t, 8, got.Energy)
}

func TestCheckInsMalformedValueReadsAsAbsent(t *testing.T) {
	mem := NewMemStorage()
	mem["glrs.checkin.2024-01-15"] = `not json at all`

	_, ok := NewCheckIns(mem).Get("2024-01-15")
	assert.False(t, ok)
}
