package main

import (
	"strings"
	"time"

	"github.com/glrs/connect/internal/model"
	"github.com/glrs/connect/internal/store"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// AuthView collects credentials and builds the user record. There is
// no verification: any non-empty email and password signs in.
type AuthView struct {
	app.Compo

	signUp       bool
	name         string
	email        string
	password     string
	recoveryDate string
}

func (a *AuthView) toggleMode(ctx app.Context, e app.Event) {
	e.PreventDefault()
	a.signUp = !a.signUp
}

func (a *AuthView) onNameInput(ctx app.Context, e app.Event) {
	a.name = e.Get("target").Get("value").String()
}

func (a *AuthView) onEmailInput(ctx app.Context, e app.Event) {
	a.email = e.Get("target").Get("value").String()
}

func (a *AuthView) onPasswordInput(ctx app.Context, e app.Event) {
	a.password = e.Get("target").Get("value").String()
}

func (a *AuthView) onDateInput(ctx app.Context, e app.Event) {
	a.recoveryDate = e.Get("target").Get("value").String()
}

func (a *AuthView) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()

	if a.email == "" || a.password == "" {
		return
	}

	u := model.NewUser(a.email, strings.TrimSpace(a.name), a.recoveryDate, time.Now())
	if err := store.NewSession(ctx.LocalStorage()).Save(u); err != nil {
		app.Log("error saving session:", err)
	}

	ctx.NewActionWithValue(signedInAction, u)
}

func (a *AuthView) Render() app.UI {
	title := "Welcome back"
	submitLabel := "Sign In"
	toggleLabel := "New here? Create an account"
	if a.signUp {
		title = "Start your journey"
		submitLabel = "Sign Up"
		toggleLabel = "Already have an account? Sign in"
	}

	return app.Div().Class("auth-screen").Body(
		app.Div().Class("auth-card").Body(
			app.H1().Class("auth-title").Text("GLRS Recovery Connect"),
			app.P().Class("auth-subtitle").Text(title),
			app.Form().OnSubmit(a.onSubmit).Body(
				app.If(a.signUp, func() app.UI {
					return app.Div().Class("field").Body(
						app.Label().Text("Name"),
						app.Input().
							Type("text").
							Value(a.name).
							Placeholder("How peers will see you").
							OnInput(a.onNameInput),
					)
				}),
				app.Div().Class("field").Body(
					app.Label().Text("Email"),
					app.Input().
						Type("email").
						Value(a.email).
						Required(true).
						OnInput(a.onEmailInput),
				),
				app.Div().Class("field").Body(
					app.Label().Text("Password"),
					app.Input().
						Type("password").
						Value(a.password).
						Required(true).
						OnInput(a.onPasswordInput),
				),
				app.If(a.signUp, func() app.UI {
					return app.Div().Class("field").Body(
						app.Label().Text("Recovery start date"),
						app.Input().
							Type("date").
							Value(a.recoveryDate).
							OnInput(a.onDateInput),
					)
				}),
				app.Button().
					Type("submit").
					Class("btn btn-primary btn-block").
					Text(submitLabel),
			),
			app.Button().
				Class("link-btn").
				Text(toggleLabel).
				OnClick(a.toggleMode),
		),
	)
}
