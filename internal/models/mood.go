package models

import "time"

// MoodEntry records a day's mood, energy, and numbness ratings on a 1-5
// scale. At most one per calendar day, enforced by the store.
type MoodEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD format
	Mood      int       `json:"mood"`
	Energy    int       `json:"energy"`
	Numb      int       `json:"numb"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}
