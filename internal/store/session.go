package store

import "github.com/glrs/connect/internal/model"

const sessionKey = "glrs.user"

// Session persists the single current user. Save and Clear are the
// only writers of the session key.
type Session struct {
	storage Storage
}

func NewSession(s Storage) *Session {
	return &Session{storage: s}
}

// Load returns the persisted user, if any. Missing or undecodable
// values read as absent.
func (s *Session) Load() (model.User, bool) {
	var u model.User
	if err := s.storage.Get(sessionKey, &u); err != nil {
		return model.User{}, false
	}
	if u.ID == "" {
		return model.User{}, false
	}
	return u, true
}

// Save persists u as the current user.
func (s *Session) Save(u model.User) error {
	return s.storage.Set(sessionKey, u)
}

// Clear removes the persisted session record.
func (s *Session) Clear() {
	s.storage.Del(sessionKey)
}
