// Package store persists the few records GLRS Connect keeps in
// browser local storage: the session user, one check-in per calendar
// day, and the profile card. A value that fails to decode is treated
// as absent rather than surfaced as an error.
package store

// Storage is the key-value surface the stores write through. It is
// the subset of go-app's app.BrowserStorage this app uses, so
// ctx.LocalStorage() satisfies it directly in the browser while
// MemStorage stands in for tests.
type Storage interface {
	Set(k string, v any) error
	Get(k string, v any) error
	Del(k string)
}
