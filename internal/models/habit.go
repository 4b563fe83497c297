package models

import (
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
)

// HygieneHabit represents a recurring hygiene task tracked per calendar day.
// Order is a manually assigned display position (max+1 on insert, gaps
// allowed). Streak is carried for backup compatibility but never recomputed.
type HygieneHabit struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Order       int                       `json:"order"`
	CreatedAt   time.Time                 `json:"createdAt"`
	Category    string                    `json:"category"`
	Difficulty  constants.HabitDifficulty `json:"difficulty"`
	Streak      int                       `json:"streak"`
}

// HygieneCompletion records whether a habit was completed on a given day.
// At most one per (habitId, date), enforced by the store.
type HygieneCompletion struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habitId"`
	Date      string    `json:"date"` // YYYY-MM-DD format
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}
