package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAppendsMessage(t *testing.T) {
	th := Thread{
		{ID: 1, Sender: "Emma T.", Text: "Hey!", Time: "9:12 AM"},
	}
	now := time.Date(2024, 1, 15, 14, 5, 0, 0, time.UTC)

	ok := th.Send("hello", now)

	require.True(t, ok)
	require.Len(t, th, 2)
	got := th[1]
	assert.Equal(t, 2, got.ID)
	assert.Equal(t, "Me", got.Sender)
	assert.Equal(t, "hello", got.Text)
	assert.Equal(t, "2:05 PM", got.Time)
	assert.True(t, got.Mine)
}

func TestSendIgnoresBlankInput(t *testing.T) {
	now := time.Now()

	for _, text := range []string{"", "   ", "\t\n"} {
		th := Thread{{ID: 1, Sender: "Emma T.", Text: "Hey!"}}
		ok := th.Send(text, now)
		assert.False(t, ok)
		assert.Len(t, th, 1)
	}
}

func TestSendKeepsLiteralText(t *testing.T) {
	var th Thread

	require.True(t, th.Send("  spaced out  ", time.Now()))
	assert.Equal(t, "  spaced out  ", th[0].Text)
}
