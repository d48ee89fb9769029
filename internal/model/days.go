package model

import (
	"math"
	"time"
)

// DaysSince reports the number of whole days between start and now,
// floored. A start date in the future yields a negative count; the
// views render it as-is instead of masking a bad date entry.
func DaysSince(now, start time.Time) int {
	return int(math.Floor(now.Sub(start).Hours() / 24))
}

// Milestone is a fixed day-count threshold on the recovery timeline.
type Milestone struct {
	Days  int
	Title string
}

// Milestones are the five fixed recovery-duration achievements,
// evaluated independently of each other.
var Milestones = []Milestone{
	{Days: 30, Title: "30 Days"},
	{Days: 60, Title: "60 Days"},
	{Days: 90, Title: "90 Days"},
	{Days: 180, Title: "6 Months"},
	{Days: 365, Title: "1 Year"},
}

// AchievedBy reports whether the milestone is reached after the given
// days in recovery.
func (m Milestone) AchievedBy(days int) bool {
	return days >= m.Days
}
