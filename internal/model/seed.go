package model

// Seed data stands in for the peer-matching and messaging backends,
// which this app does not have. Each function returns a fresh copy so
// view state never aliases a shared seed between mounts.

// SeedRoster returns the initial connection lists.
func SeedRoster() Roster {
	return Roster{
		Requests: []ConnectionRequest{
			{ID: 1, Name: "Sarah M.", Days: 45, Interests: []string{"Meditation", "Hiking"}, Status: StatusPending},
			{ID: 2, Name: "James K.", Days: 120, Interests: []string{"Fitness", "Reading"}, Status: StatusPending},
		},
		Connections: []Connection{
			{ID: 101, Name: "Emma T.", Days: 365, Interests: []string{"Yoga", "Cooking"}, Status: StatusConnected},
			{ID: 102, Name: "David H.", Days: 210, Interests: []string{"Running", "Music"}, Status: StatusConnected},
		},
		Matches: []PotentialMatch{
			{ID: 3, Name: "Alex R.", Days: 90, Interests: []string{"Yoga", "Music", "Cooking"}, Compatibility: 87},
			{ID: 4, Name: "Maria L.", Days: 200, Interests: []string{"Art", "Meditation"}, Compatibility: 82},
			{ID: 5, Name: "Chris B.", Days: 30, Interests: []string{"Hiking", "Music"}, Compatibility: 75},
		},
	}
}

// SeedConversations returns the initial conversation list.
func SeedConversations() []Conversation {
	return []Conversation{
		{ID: 1, Name: "Emma T.", Preview: "See you at the meeting tomorrow!", When: "2h ago", Unread: true},
		{ID: 2, Name: "David H.", Preview: "Thanks for the support today", When: "1d ago"},
		{ID: 3, Name: "Group: Morning Circle", Preview: "Sarah: one day at a time", When: "3d ago"},
	}
}

// SeedThread returns the seeded transcript for a conversation, or an
// empty thread for an unknown ID.
func SeedThread(conversationID int) Thread {
	switch conversationID {
	case 1:
		return Thread{
			{ID: 1, Sender: "Emma T.", Text: "Hey, how are you holding up this week?", Time: "9:12 AM"},
			{ID: 2, Sender: "Me", Text: "Better than last week. The morning walks help.", Time: "9:20 AM", Mine: true},
			{ID: 3, Sender: "Emma T.", Text: "See you at the meeting tomorrow!", Time: "10:30 AM"},
		}
	case 2:
		return Thread{
			{ID: 1, Sender: "Me", Text: "Proud of you for speaking up today.", Time: "4:05 PM", Mine: true},
			{ID: 2, Sender: "David H.", Text: "Thanks for the support today", Time: "4:18 PM"},
		}
	case 3:
		return Thread{
			{ID: 1, Sender: "Sarah M.", Text: "one day at a time", Time: "8:00 AM"},
		}
	default:
		return Thread{}
	}
}

// WeekStat is one static row of the weekly summary on the Progress
// tab. Not computed from check-in history.
type WeekStat struct {
	Label string
	Value string
}

// SeedWeekStats returns the static weekly summary.
func SeedWeekStats() []WeekStat {
	return []WeekStat{
		{Label: "Check-ins", Value: "5 / 7"},
		{Label: "Avg. energy", Value: "6.8"},
		{Label: "Avg. connection", Value: "7.2"},
		{Label: "Meetings attended", Value: "3"},
	}
}

// GrowthArea is one static progress bar on the Progress tab.
type GrowthArea struct {
	Name    string
	Percent int
}

// SeedGrowthAreas returns the static growth-area percentages.
func SeedGrowthAreas() []GrowthArea {
	return []GrowthArea{
		{Name: "Mindfulness", Percent: 75},
		{Name: "Physical health", Percent: 60},
		{Name: "Social connection", Percent: 85},
	}
}

// SeedProfile returns the default profile card shown before the user
// saves their own.
func SeedProfile() Profile {
	return Profile{
		Bio:       "Taking it one day at a time and grateful for this community.",
		Interests: []string{"Meditation", "Hiking", "Music"},
	}
}
