package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

// ValidateDate checks that a date string is in YYYY-MM-DD format.
func ValidateDate(date string) error {
	if date == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	return nil
}

// ValidateStatus checks that a dopamine status is one of the known values.
func ValidateStatus(status constants.DopamineStatus) error {
	switch status {
	case constants.StatusPassed, constants.StatusFailed:
		return nil
	case "":
		return fmt.Errorf("status is required")
	default:
		return fmt.Errorf("invalid status: %q (expected %q or %q)", status, constants.StatusPassed, constants.StatusFailed)
	}
}

// ValidateDopamineEntry checks the required fields of a dopamine entry.
func ValidateDopamineEntry(entry models.DopamineEntry) error {
	if err := ValidateDate(entry.Date); err != nil {
		return err
	}
	return ValidateStatus(entry.Status)
}

// ValidateHabit checks the required fields of a hygiene habit.
func ValidateHabit(habit models.HygieneHabit) error {
	if strings.TrimSpace(habit.Name) == "" {
		return fmt.Errorf("habit name is required")
	}
	switch habit.Difficulty {
	case constants.DifficultyEasy, constants.DifficultyMedium, constants.DifficultyHard, "":
	default:
		return fmt.Errorf("invalid difficulty: %q (expected easy, medium, or hard)", habit.Difficulty)
	}
	return nil
}

// ValidateMoodEntry checks the required fields and rating bounds of a mood
// entry. Mood, energy, and numb are rated on a 1-5 scale.
func ValidateMoodEntry(entry models.MoodEntry) error {
	if err := ValidateDate(entry.Date); err != nil {
		return err
	}
	for _, rating := range []struct {
		name  string
		value int
	}{
		{"mood", entry.Mood},
		{"energy", entry.Energy},
		{"numb", entry.Numb},
	} {
		if rating.value < constants.MoodScaleMin || rating.value > constants.MoodScaleMax {
			return fmt.Errorf("%s must be between %d and %d, got %d",
				rating.name, constants.MoodScaleMin, constants.MoodScaleMax, rating.value)
		}
	}
	return nil
}
