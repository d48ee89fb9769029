package model

import (
	"strings"
	"time"
)

// Conversation is one row in the conversation list.
type Conversation struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Preview string `json:"preview"`
	When    string `json:"when"`
	Unread  bool   `json:"unread"`
}

// Message is one entry in an open thread.
type Message struct {
	ID     int    `json:"id"`
	Sender string `json:"sender"`
	Text   string `json:"text"`
	Time   string `json:"time"`
	Mine   bool   `json:"mine"`
}

// Thread is the message list of one open conversation.
type Thread []Message

// Send appends an outgoing message and reports whether anything was
// sent. Empty or whitespace-only input is ignored. IDs are positional
// (length + 1); safe because all appends happen on the UI goroutine.
func (t *Thread) Send(text string, now time.Time) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	*t = append(*t, Message{
		ID:     len(*t) + 1,
		Sender: "Me",
		Text:   text,
		Time:   now.Format("3:04 PM"),
		Mine:   true,
	})
	return true
}
