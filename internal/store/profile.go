package store

import "github.com/glrs/connect/internal/model"

const profileKey = "glrs.profile"

// Profile persists the bio and interest tags saved from the Profile
// tab.
type Profile struct {
	storage Storage
}

func NewProfile(s Storage) *Profile {
	return &Profile{storage: s}
}

// Load returns the saved profile, if one exists.
func (p *Profile) Load() (model.Profile, bool) {
	var pr model.Profile
	if err := p.storage.Get(profileKey, &pr); err != nil {
		return model.Profile{}, false
	}
	if pr.Bio == "" && len(pr.Interests) == 0 {
		return model.Profile{}, false
	}
	return pr, true
}

// Save persists the profile card.
func (p *Profile) Save(pr model.Profile) error {
	return p.storage.Set(profileKey, pr)
}
