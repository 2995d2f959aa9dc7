package profile

import "time"

// HistoryEntry records one task-shaped interaction for a user.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserProfile holds per-user preference and temporal-pattern state used to
// personalize suggestions. Profiles live for the process lifetime only.
type UserProfile struct {
	UserID              string              `json:"userId"`
	PreferredCategories []string            `json:"preferredCategories"`
	DayCategories       map[string][]string `json:"dayCategories"`
	TimeCategories      map[string][]string `json:"timeCategories"`
	History             []HistoryEntry      `json:"history"`
}

// DefaultProfile builds the lazily-created profile for a first-seen user.
// Preferred categories are always non-empty.
func DefaultProfile(userID string) UserProfile {
	return UserProfile{
		UserID:              userID,
		PreferredCategories: []string{"work", "personal", "health"},
		DayCategories: map[string][]string{
			"Saturday": {"home", "personal"},
			"Sunday":   {"personal", "health"},
		},
		TimeCategories: map[string][]string{
			"morning": {"health", "work"},
			"evening": {"personal", "learning"},
		},
	}
}
