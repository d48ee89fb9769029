// Package model holds the domain records and pure state transitions
// behind the GLRS Connect views: the signed-in user, daily check-ins,
// the peer connection lists, message threads and recovery milestones.
package model

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for recovery dates and
// check-in keys.
const DateLayout = "2006-01-02"

// User is the single signed-in account. Exactly one user is current
// at a time: created at sign-in, cleared at logout, persisted as the
// sole session record.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	RecoveryDate string `json:"recoveryDate"`
	JoinedDate   string `json:"joinedDate"`
}

// NewUser builds the account record at sign-in time. The name falls
// back to the email's local part, the recovery date to the sign-in
// day. Credentials are never verified; this app has no real auth.
func NewUser(email, name, recoveryDate string, now time.Time) User {
	if name == "" {
		name = LocalPart(email)
	}
	if recoveryDate == "" {
		recoveryDate = now.Format(DateLayout)
	}
	return User{
		ID:           strconv.FormatInt(now.UnixMilli(), 10),
		Email:        email,
		Name:         name,
		RecoveryDate: recoveryDate,
		JoinedDate:   now.Format(time.RFC3339),
	}
}

// LocalPart returns the part of an email address before the first @.
func LocalPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// RecoveryStart parses the stored recovery date. The zero time is
// returned for unparseable data.
func (u User) RecoveryStart() time.Time {
	t, err := time.Parse(DateLayout, u.RecoveryDate)
	if err != nil {
		return time.Time{}
	}
	return t
}
