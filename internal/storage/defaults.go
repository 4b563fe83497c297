package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

// DefaultHabits returns the hygiene habits seeded on first use.
func DefaultHabits() []models.HygieneHabit {
	now := time.Now()
	seeds := []struct {
		name        string
		description string
		difficulty  constants.HabitDifficulty
	}{
		{"Brush Teeth", "Morning and evening routine", constants.DifficultyEasy},
		{"Face Wash", "Cleanse and refresh your skin", constants.DifficultyEasy},
		{"Bath / Shower", "Full body cleanse", constants.DifficultyMedium},
		{"Hair Care", "Style and maintain hair", constants.DifficultyEasy},
		{"Perfume / Cologne", "Apply your favorite scent", constants.DifficultyEasy},
	}

	habits := make([]models.HygieneHabit, 0, len(seeds))
	for i, seed := range seeds {
		habits = append(habits, models.HygieneHabit{
			ID:          uuid.New().String(),
			Name:        seed.name,
			Description: seed.description,
			Order:       i + 1,
			CreatedAt:   now,
			Category:    constants.DefaultHabitCategory,
			Difficulty:  seed.difficulty,
		})
	}
	return habits
}
