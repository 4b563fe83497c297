package tracker

import (
	"math"

	"github.com/julianstephens/lifetrack/internal/models"
)

func roundPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// completedCount returns how many of the habits have a completed completion
// in the given set. Completions for unknown habit ids are ignored.
func completedCount(habits []models.HygieneHabit, completions []models.HygieneCompletion) int {
	completed := make(map[string]bool, len(completions))
	for _, completion := range completions {
		if completion.Completed {
			completed[completion.HabitID] = true
		}
	}

	count := 0
	for _, habit := range habits {
		if completed[habit.ID] {
			count++
		}
	}
	return count
}

// HygienePercent returns the percentage of habits completed, given the
// completions recorded for one day. 0 when no habits exist.
func HygienePercent(habits []models.HygieneHabit, completions []models.HygieneCompletion) int {
	return roundPercent(completedCount(habits, completions), len(habits))
}

// DayCompletion returns the weighted completion percentage for one day:
// the dopamine status counts as one item (passed = 1, failed or missing = 0)
// alongside one item per habit. entry is nil when no entry exists for the day.
func DayCompletion(entry *models.DopamineEntry, habits []models.HygieneHabit, completions []models.HygieneCompletion) int {
	dopamine := 0
	if entry != nil && entry.Passed() {
		dopamine = 1
	}

	return roundPercent(dopamine+completedCount(habits, completions), 1+len(habits))
}
