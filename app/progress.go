package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/glrs/connect/internal/model"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// ProgressView is read-only: days in recovery, the five milestones
// and the static weekly summary. Everything shown is derived at
// render time; nothing is cached.
type ProgressView struct {
	app.Compo

	User model.User
}

func (p *ProgressView) Render() app.UI {
	days := model.DaysSince(time.Now(), p.User.RecoveryStart())
	weekStats := model.SeedWeekStats()
	growthAreas := model.SeedGrowthAreas()

	return app.Div().Class("view progress").Body(
		app.Div().Class("card hero").Body(
			app.P().Class("hero-label").Text("Days in recovery"),
			app.H2().Class("hero-count").Text(strconv.Itoa(days)),
		),
		app.Div().Class("card").Body(
			app.H3().Text("Milestones"),
			app.Div().Class("milestones").Body(
				app.Range(model.Milestones).Slice(func(i int) app.UI {
					m := model.Milestones[i]
					cls := "milestone"
					if m.AchievedBy(days) {
						cls += " achieved"
					}
					return app.Div().Class(cls).Body(
						app.Span().Class("milestone-title").Text(m.Title),
						app.If(m.AchievedBy(days), func() app.UI {
							return app.Span().Class("milestone-mark").Text("✓")
						}).Else(func() app.UI {
							return app.Span().Class("milestone-remaining").
								Text(fmt.Sprintf("%d days to go", m.Days-days))
						}),
					)
				}),
			),
		),
		app.Div().Class("card").Body(
			app.H3().Text("This Week"),
			app.Div().Class("week-stats").Body(
				app.Range(weekStats).Slice(func(i int) app.UI {
					st := weekStats[i]
					return app.Div().Class("week-stat").Body(
						app.Span().Class("week-stat-value").Text(st.Value),
						app.Span().Class("week-stat-label").Text(st.Label),
					)
				}),
			),
		),
		app.Div().Class("card").Body(
			app.H3().Text("Growth Areas"),
			app.Range(growthAreas).Slice(func(i int) app.UI {
				g := growthAreas[i]
				return app.Div().Class("growth-area").Body(
					app.Div().Class("growth-area-head").Body(
						app.Span().Text(g.Name),
						app.Span().Text(fmt.Sprintf("%d%%", g.Percent)),
					),
					app.Div().Class("growth-bar").Body(
						app.Div().
							Class("growth-bar-fill").
							Style("width", fmt.Sprintf("%d%%", g.Percent)),
					),
				)
			}),
		),
	)
}
