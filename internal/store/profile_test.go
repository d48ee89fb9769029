package store

import (
	"testing"

	"github.com/glrs/connect/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRoundTrip(t *testing.T) {
	profiles := NewProfile(NewMemStorage())

	_, ok := profiles.Load()
	assert.False(t, ok, "nothing saved yet")

	pr := model.Profile{
		Bio:       "One day at a time.",
		Interests: []string{"Meditation", "Hiking"},
	}
	require.NoError(t, profiles.Save(pr))

	got, ok := profiles.Load()
	require.True(t, ok)
	assert.Equal(t, pr, got)
}

func TestProfileMalformedValueReadsAsAbsent(t *testing.T) {
	mem := NewMemStorage()
	mem["glrs.profile"] = `[1,2,3]`

	_, ok := NewProfile(mem).Load()
	assert.False(t, ok)
}
