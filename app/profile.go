package main

import (
	"fmt"
	"time"

	"github.com/glrs/connect/internal/model"
	"github.com/glrs/connect/internal/store"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// ProfileView edits the bio and interest tags. Save persists both to
// local storage; logout clears the session and reloads into the auth
// screen.
type ProfileView struct {
	app.Compo

	User model.User

	profile     model.Profile
	newInterest string
	saved       bool
}

func (p *ProfileView) OnMount(ctx app.Context) {
	if pr, ok := store.NewProfile(ctx.LocalStorage()).Load(); ok {
		p.profile = pr
		return
	}
	p.profile = model.SeedProfile()
}

func (p *ProfileView) onBioInput(ctx app.Context, e app.Event) {
	p.profile.Bio = e.Get("target").Get("value").String()
	p.saved = false
}

func (p *ProfileView) onInterestInput(ctx app.Context, e app.Event) {
	p.newInterest = e.Get("target").Get("value").String()
}

func (p *ProfileView) onAddInterest(ctx app.Context, e app.Event) {
	e.PreventDefault()
	p.profile.Interests = model.AddInterest(p.profile.Interests, p.newInterest)
	p.newInterest = ""
}

func (p *ProfileView) onRemoveInterest(tag string) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		p.profile.Interests = model.RemoveInterest(p.profile.Interests, tag)
	}
}

func (p *ProfileView) onSave(ctx app.Context, e app.Event) {
	if err := store.NewProfile(ctx.LocalStorage()).Save(p.profile); err != nil {
		app.Log("error saving profile:", err)
		return
	}
	p.saved = true
}

func (p *ProfileView) onLogout(ctx app.Context, e app.Event) {
	store.NewSession(ctx.LocalStorage()).Clear()
	ctx.Reload()
}

func (p *ProfileView) joinedLabel() string {
	t, err := time.Parse(time.RFC3339, p.User.JoinedDate)
	if err != nil {
		return p.User.JoinedDate
	}
	return t.Format("January 2, 2006")
}

func (p *ProfileView) Render() app.UI {
	return app.Div().Class("view profile").Body(
		app.Div().Class("card").Body(
			app.H3().Text(p.User.Name),
			app.P().Class("profile-meta").Text(p.User.Email),
			app.P().Class("profile-meta").Text(fmt.Sprintf("Member since %s", p.joinedLabel())),
			app.P().Class("profile-meta").Text(fmt.Sprintf("Recovery start: %s", p.User.RecoveryDate)),
		),
		app.Div().Class("card").Body(
			app.H3().Text("Bio"),
			app.Textarea().
				Class("text-input").
				Placeholder("Tell peers a bit about yourself...").
				Text(p.profile.Bio).
				OnInput(p.onBioInput),
			app.Div().Class("bio-actions").Body(
				app.Button().
					Class("btn btn-primary btn-sm").
					Text("Save Bio").
					OnClick(p.onSave),
				app.If(p.saved, func() app.UI {
					return app.Span().Class("saved-note").Text("Saved")
				}),
			),
		),
		app.Div().Class("card").Body(
			app.H3().Text("Interests"),
			app.Div().Class("chips").Body(
				app.Range(p.profile.Interests).Slice(func(i int) app.UI {
					tag := p.profile.Interests[i]
					return app.Span().Class("chip chip-removable").Body(
						app.Text(tag),
						app.Button().
							Class("chip-remove").
							Text("×").
							OnClick(p.onRemoveInterest(tag)),
					)
				}),
			),
			app.Form().Class("interest-form").OnSubmit(p.onAddInterest).Body(
				app.Input().
					Type("text").
					Class("text-input").
					Placeholder("Add an interest").
					Value(p.newInterest).
					OnInput(p.onInterestInput),
				app.Button().
					Type("submit").
					Class("btn btn-primary btn-sm").
					Text("Add"),
			),
		),
		app.Div().Class("card").Body(
			app.Button().
				Class("btn btn-danger btn-block").
				Text("Log Out").
				OnClick(p.onLogout),
		),
	)
}
