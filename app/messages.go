package main

import (
	"time"

	"github.com/glrs/connect/internal/model"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// MessagesView is a two-level view: the conversation list, and a
// thread once one is selected. Nothing here is persisted; reloading
// returns to the seeded transcripts.
type MessagesView struct {
	app.Compo

	conversations []model.Conversation
	selected      int // 0 = list view
	thread        model.Thread
	draft         string
}

func (m *MessagesView) OnMount(ctx app.Context) {
	m.conversations = model.SeedConversations()
}

func (m *MessagesView) openConversation(id int) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		m.selected = id
		m.thread = model.SeedThread(id)
		m.draft = ""
	}
}

func (m *MessagesView) onBack(ctx app.Context, e app.Event) {
	m.selected = 0
	m.thread = nil
	m.draft = ""
}

func (m *MessagesView) onDraftInput(ctx app.Context, e app.Event) {
	m.draft = e.Get("target").Get("value").String()
}

func (m *MessagesView) onSend(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if m.thread.Send(m.draft, time.Now()) {
		m.draft = ""
	}
}

func (m *MessagesView) selectedName() string {
	for _, c := range m.conversations {
		if c.ID == m.selected {
			return c.Name
		}
	}
	return ""
}

func (m *MessagesView) Render() app.UI {
	if m.selected == 0 {
		return m.renderList()
	}
	return m.renderThread()
}

func (m *MessagesView) renderList() app.UI {
	return app.Div().Class("view messages").Body(
		app.Div().Class("card").Body(
			app.H3().Text("Messages"),
			app.Range(m.conversations).Slice(func(i int) app.UI {
				c := m.conversations[i]
				cls := "conversation-row"
				if c.Unread {
					cls += " unread"
				}
				return app.Div().
					Class(cls).
					OnClick(m.openConversation(c.ID)).
					Body(
						app.Div().Class("conversation-main").Body(
							app.Span().Class("conversation-name").Text(c.Name),
							app.Span().Class("conversation-preview").Text(c.Preview),
						),
						app.Div().Class("conversation-meta").Body(
							app.Span().Class("conversation-when").Text(c.When),
							app.If(c.Unread, func() app.UI {
								return app.Span().Class("unread-dot")
							}),
						),
					)
			}),
		),
	)
}

func (m *MessagesView) renderThread() app.UI {
	return app.Div().Class("view messages").Body(
		app.Div().Class("card thread").Body(
			app.Div().Class("thread-header").Body(
				app.Button().
					Class("btn btn-ghost btn-sm").
					Text("← Back").
					OnClick(m.onBack),
				app.H3().Text(m.selectedName()),
			),
			app.Div().Class("thread-messages").Body(
				app.Range(m.thread).Slice(func(i int) app.UI {
					msg := m.thread[i]
					cls := "bubble"
					if msg.Mine {
						cls += " mine"
					}
					return app.Div().Class(cls).Body(
						app.Span().Class("bubble-text").Text(msg.Text),
						app.Span().Class("bubble-time").Text(msg.Time),
					)
				}),
			),
			app.Form().Class("thread-compose").OnSubmit(m.onSend).Body(
				app.Input().
					Type("text").
					Class("text-input").
					Placeholder("Type a message...").
					Value(m.draft).
					OnInput(m.onDraftInput),
				app.Button().
					Type("submit").
					Class("btn btn-primary").
					Text("Send"),
			),
		),
	)
}
