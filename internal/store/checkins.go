package store

import "github.com/glrs/connect/internal/model"

const checkInPrefix = "glrs.checkin."

// CheckIns stores one record per calendar day, each under its own
// date key. Records never expire.
type CheckIns struct {
	storage Storage
}

func NewCheckIns(s Storage) *CheckIns {
	return &CheckIns{storage: s}
}

// Get returns the check-in stored for a date, if any.
func (c *CheckIns) Get(date string) (model.CheckIn, bool) {
	var ci model.CheckIn
	if err := c.storage.Get(checkInPrefix+date, &ci); err != nil {
		return model.CheckIn{}, false
	}
	if ci.Date == "" {
		return model.CheckIn{}, false
	}
	return ci, true
}

// Put persists a check-in under its date key.
func (c *CheckIns) Put(ci model.CheckIn) error {
	return c.storage.Set(checkInPrefix+ci.Date, ci)
}
