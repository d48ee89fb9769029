package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRosterReturnsFreshCopies(t *testing.T) {
	r := SeedRoster()
	r.Accept(1)
	r.Connect(3)

	fresh := SeedRoster()
	assert.Len(t, fresh.Requests, 2)
	assert.Len(t, fresh.Connections, 2)
}

func TestSeedThreadUnknownConversationIsEmpty(t *testing.T) {
	assert.Empty(t, SeedThread(999))
}

func TestSeedThreadsMatchConversations(t *testing.T) {
	for _, c := range SeedConversations() {
		th := SeedThread(c.ID)
		require.NotEmpty(t, th, "conversation %d has no transcript", c.ID)
		// The preview echoes the last message of the transcript.
		assert.Contains(t, c.Preview, th[len(th)-1].Text)
	}
}
