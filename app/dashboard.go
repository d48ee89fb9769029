package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/glrs/connect/internal/model"
	"github.com/glrs/connect/internal/store"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// DashboardView shows the days-in-recovery count and the daily
// check-in form. If today's check-in already exists it mounts
// straight into the confirmation state.
type DashboardView struct {
	app.Compo

	User model.User

	energy     int
	connection int
	win        string
	focus      string
	checkedIn  bool
}

func (d *DashboardView) OnInit() {
	d.energy = 5
	d.connection = 5
}

func (d *DashboardView) OnMount(ctx app.Context) {
	today := time.Now().Format(model.DateLayout)
	if _, ok := store.NewCheckIns(ctx.LocalStorage()).Get(today); ok {
		d.checkedIn = true
	}
}

func (d *DashboardView) onEnergyInput(ctx app.Context, e app.Event) {
	if v, err := strconv.Atoi(e.Get("target").Get("value").String()); err == nil {
		d.energy = v
	}
}

func (d *DashboardView) onConnectionInput(ctx app.Context, e app.Event) {
	if v, err := strconv.Atoi(e.Get("target").Get("value").String()); err == nil {
		d.connection = v
	}
}

func (d *DashboardView) onWinInput(ctx app.Context, e app.Event) {
	d.win = e.Get("target").Get("value").String()
}

func (d *DashboardView) onFocusInput(ctx app.Context, e app.Event) {
	d.focus = e.Get("target").Get("value").String()
}

func (d *DashboardView) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()

	now := time.Now()
	ci := model.CheckIn{
		Date:       now.Format(model.DateLayout),
		Energy:     d.energy,
		Connection: d.connection,
		Win:        d.win,
		Focus:      d.focus,
	}
	if err := store.NewCheckIns(ctx.LocalStorage()).Put(ci); err != nil {
		app.Log("error saving check-in:", err)
		return
	}
	d.checkedIn = true
}

func (d *DashboardView) Render() app.UI {
	days := model.DaysSince(time.Now(), d.User.RecoveryStart())

	return app.Div().Class("view dashboard").Body(
		app.Div().Class("card hero").Body(
			app.P().Class("hero-label").Text("Days in recovery"),
			app.H2().Class("hero-count").Text(strconv.Itoa(days)),
			app.P().Class("hero-sub").Text(fmt.Sprintf("Keep going, %s. One day at a time.", d.User.Name)),
		),
		app.Div().Class("card").Body(
			app.H3().Text("Daily Check-in"),
			app.If(d.checkedIn, func() app.UI {
				return app.Div().Class("checkin-done").Body(
					app.Span().Class("checkin-done-mark").Text("✓"),
					app.P().Text("You're checked in for today. See you tomorrow!"),
				)
			}).Else(func() app.UI {
				return d.renderForm()
			}),
		),
	)
}

func (d *DashboardView) renderForm() app.UI {
	return app.Form().OnSubmit(d.onSubmit).Body(
		app.Div().Class("field").Body(
			app.Label().Text(fmt.Sprintf("Energy level: %d", d.energy)),
			app.Input().
				Type("range").
				Min(0).
				Max(10).
				Value(d.energy).
				OnInput(d.onEnergyInput),
		),
		app.Div().Class("field").Body(
			app.Label().Text(fmt.Sprintf("Feeling connected: %d", d.connection)),
			app.Input().
				Type("range").
				Min(0).
				Max(10).
				Value(d.connection).
				OnInput(d.onConnectionInput),
		),
		app.Div().Class("field").Body(
			app.Label().Text("Today's win"),
			app.Textarea().
				Class("text-input").
				Placeholder("Something that went well...").
				Text(d.win).
				OnInput(d.onWinInput),
		),
		app.Div().Class("field").Body(
			app.Label().Text("Tomorrow's focus"),
			app.Textarea().
				Class("text-input").
				Placeholder("What will you work on?").
				Text(d.focus).
				OnInput(d.onFocusInput),
		),
		app.Button().
			Type("submit").
			Class("btn btn-primary").
			Text("Check In"),
	)
}
