package main

import (
	"github.com/glrs/connect/internal/model"
	"github.com/glrs/connect/internal/store"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// signedInAction is posted by the auth view once a user record has
// been persisted.
const signedInAction = "session/signed-in"

// tab identifies one of the five authenticated views. A closed enum:
// an unknown tab is unrepresentable.
type tab int

const (
	tabDashboard tab = iota
	tabConnections
	tabMessages
	tabProgress
	tabProfile
)

var tabs = []tab{tabDashboard, tabConnections, tabMessages, tabProgress, tabProfile}

func (t tab) label() string {
	switch t {
	case tabDashboard:
		return "Dashboard"
	case tabConnections:
		return "Connections"
	case tabMessages:
		return "Messages"
	case tabProgress:
		return "Progress"
	default:
		return "Profile"
	}
}

func (t tab) icon() string {
	switch t {
	case tabDashboard:
		return "⌂" // house
	case tabConnections:
		return "☺" // face
	case tabMessages:
		return "✉" // envelope
	case tabProgress:
		return "★" // star
	default:
		return "⚙" // gear
	}
}

// Shell composes the header, the active tab and the mobile nav. It
// owns the only cross-cutting state: whether a user is present and
// which tab is active. Switching tabs swaps the mounted view type, so
// the outgoing tab's local state is discarded.
type Shell struct {
	app.Compo

	user     model.User
	signedIn bool
	active   tab
	loaded   bool
}

func (s *Shell) OnMount(ctx app.Context) {
	ctx.Handle(signedInAction, s.handleSignedIn)

	if u, ok := store.NewSession(ctx.LocalStorage()).Load(); ok {
		s.user = u
		s.signedIn = true
	}
	s.loaded = true
}

func (s *Shell) handleSignedIn(ctx app.Context, a app.Action) {
	u, ok := a.Value.(model.User)
	if !ok {
		return
	}
	s.user = u
	s.signedIn = true
	s.active = tabDashboard
}

func (s *Shell) selectTab(t tab) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		s.active = t
	}
}

func (s *Shell) Render() app.UI {
	if !s.loaded {
		return app.Div().Class("loading-overlay").Body(
			app.Div().Class("loading-spinner"),
		)
	}

	if !s.signedIn {
		return &AuthView{}
	}

	return app.Div().Class("app").Body(
		s.renderHeader(),
		app.Main().Class("content").Body(s.renderActive()),
		s.renderBottomNav(),
	)
}

func (s *Shell) renderActive() app.UI {
	switch s.active {
	case tabConnections:
		return &ConnectionsView{}
	case tabMessages:
		return &MessagesView{}
	case tabProgress:
		return &ProgressView{User: s.user}
	case tabProfile:
		return &ProfileView{User: s.user}
	default:
		return &DashboardView{User: s.user}
	}
}

func (s *Shell) renderHeader() app.UI {
	return app.Header().Class("header").Body(
		app.Div().Class("header-inner").Body(
			app.H1().Class("brand").Text("GLRS Connect"),
			app.Nav().Class("tab-bar").Body(
				app.Range(tabs).Slice(func(i int) app.UI {
					t := tabs[i]
					cls := "tab-btn"
					if s.active == t {
						cls += " active"
					}
					return app.Button().
						Class(cls).
						Text(t.label()).
						OnClick(s.selectTab(t))
				}),
			),
			app.Span().Class("header-user").Text(s.user.Name),
		),
	)
}

// renderBottomNav renders the narrow-viewport nav. It drives the same
// active-tab state as the header tab bar; CSS decides which shows.
func (s *Shell) renderBottomNav() app.UI {
	return app.Nav().Class("bottom-nav").Body(
		app.Range(tabs).Slice(func(i int) app.UI {
			t := tabs[i]
			cls := "bottom-nav-btn"
			if s.active == t {
				cls += " active"
			}
			return app.Button().
				Class(cls).
				OnClick(s.selectTab(t)).
				Body(
					app.Span().Class("bottom-nav-icon").Text(t.icon()),
					app.Span().Class("bottom-nav-label").Text(t.label()),
				)
		}),
	)
}
