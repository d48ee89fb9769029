package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddInterest(t *testing.T) {
	interests := []string{"Meditation", "Hiking", "Music"}

	got := AddInterest(interests, "Yoga")
	assert.Equal(t, []string{"Meditation", "Hiking", "Music", "Yoga"}, got)

	// Adding again is a no-op.
	got = AddInterest(got, "Yoga")
	assert.Equal(t, []string{"Meditation", "Hiking", "Music", "Yoga"}, got)
}

func TestAddInterestTrimsInput(t *testing.T) {
	got := AddInterest(nil, "  Yoga  ")
	assert.Equal(t, []string{"Yoga"}, got)
}

func TestAddInterestIgnoresBlank(t *testing.T) {
	interests := []string{"Music"}

	assert.Equal(t, interests, AddInterest(interests, ""))
	assert.Equal(t, interests, AddInterest(interests, "   "))
}

func TestAddInterestMatchIsCaseSensitive(t *testing.T) {
	got := AddInterest([]string{"Yoga"}, "yoga")
	assert.Equal(t, []string{"Yoga", "yoga"}, got)
}

func TestRemoveInterest(t *testing.T) {
	got := RemoveInterest([]string{"Meditation", "Music", "Hiking"}, "Music")
	assert.Equal(t, []string{"Meditation", "Hiking"}, got)
}

func TestRemoveInterestUnknownIsNoop(t *testing.T) {
	interests := []string{"Meditation"}
	assert.Equal(t, interests, RemoveInterest(interests, "Surfing"))
}
