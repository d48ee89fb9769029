package main

import (
	"fmt"

	"github.com/glrs/connect/internal/model"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// ConnectionsView renders the three peer lists: incoming requests,
// established connections and suggested matches. The lists are
// session-scoped; leaving the tab resets them to the seeds.
type ConnectionsView struct {
	app.Compo

	roster model.Roster
}

func (c *ConnectionsView) OnMount(ctx app.Context) {
	c.roster = model.SeedRoster()
}

func (c *ConnectionsView) onAccept(id int) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		c.roster.Accept(id)
	}
}

func (c *ConnectionsView) onDecline(id int) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		c.roster.Decline(id)
	}
}

func (c *ConnectionsView) onConnect(id int) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		c.roster.Connect(id)
	}
}

func (c *ConnectionsView) Render() app.UI {
	return app.Div().Class("view connections").Body(
		app.Div().Class("card").Body(
			app.H3().Text("Connection Requests"),
			app.If(len(c.roster.Requests) == 0, func() app.UI {
				return app.P().Class("empty").Text("No pending requests.")
			}).Else(func() app.UI {
				return app.Div().Body(
					app.Range(c.roster.Requests).Slice(func(i int) app.UI {
						req := c.roster.Requests[i]
						return app.Div().Class("peer-row").Body(
							peerInfo(req.Name, req.Days, req.Interests),
							app.Div().Class("peer-actions").Body(
								app.If(req.Status == model.StatusSent, func() app.UI {
									return app.Span().Class("badge badge-sent").Text("Request sent")
								}).Else(func() app.UI {
									return app.Div().Body(
										app.Button().
											Class("btn btn-primary btn-sm").
											Text("Accept").
											OnClick(c.onAccept(req.ID)),
										app.Button().
											Class("btn btn-ghost btn-sm").
											Text("Decline").
											OnClick(c.onDecline(req.ID)),
									)
								}),
							),
						)
					}),
				)
			}),
		),
		app.Div().Class("card").Body(
			app.H3().Text("My Connections"),
			app.If(len(c.roster.Connections) == 0, func() app.UI {
				return app.P().Class("empty").Text("No connections yet. Reach out below!")
			}).Else(func() app.UI {
				return app.Div().Body(
					app.Range(c.roster.Connections).Slice(func(i int) app.UI {
						conn := c.roster.Connections[i]
						return app.Div().Class("peer-row").Body(
							peerInfo(conn.Name, conn.Days, conn.Interests),
							app.Span().Class("badge badge-connected").Text("Connected"),
						)
					}),
				)
			}),
		),
		app.Div().Class("card").Body(
			app.H3().Text("Suggested Matches"),
			app.Range(c.roster.Matches).Slice(func(i int) app.UI {
				m := c.roster.Matches[i]
				return app.Div().Class("peer-row").Body(
					peerInfo(m.Name, m.Days, m.Interests),
					app.Div().Class("peer-actions").Body(
						app.Span().Class("compat").Text(fmt.Sprintf("%d%% match", m.Compatibility)),
						app.Button().
							Class("btn btn-primary btn-sm").
							Text("Connect").
							OnClick(c.onConnect(m.ID)),
					),
				)
			}),
		),
	)
}

func peerInfo(name string, days int, interests []string) app.UI {
	return app.Div().Class("peer-info").Body(
		app.Span().Class("peer-name").Text(name),
		app.Span().Class("peer-days").Text(fmt.Sprintf("%d days in recovery", days)),
		app.Div().Class("chips").Body(
			app.Range(interests).Slice(func(i int) app.UI {
				return app.Span().Class("chip").Text(interests[i])
			}),
		),
	)
}
