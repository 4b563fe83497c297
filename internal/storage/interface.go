package storage

import (
	"errors"

	"github.com/julianstephens/lifetrack/internal/models"
)

// ErrNotFound is returned by lookups when no record matches. Callers that
// treat absence as a normal state check for it with errors.Is; any other
// error is a real storage failure.
var ErrNotFound = errors.New("record not found")

// Snapshot is a full copy of the five record collections, used by data
// export/import and the database viewer.
type Snapshot struct {
	DopamineEntries    []models.DopamineEntry
	HygieneHabits      []models.HygieneHabit
	HygieneCompletions []models.HygieneCompletion
	DailySummaries     []models.DailySummary
	MoodEntries        []models.MoodEntry
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Dopamine entries
	UpsertDopamineEntry(models.DopamineEntry) error
	GetDopamineEntryByDate(date string) (models.DopamineEntry, error)
	GetAllDopamineEntries() ([]models.DopamineEntry, error)
	DeleteDopamineEntry(id string) error

	// Hygiene habits
	AddHabit(models.HygieneHabit) error
	GetHabit(id string) (models.HygieneHabit, error)
	GetHabitByName(name string) (models.HygieneHabit, error)
	GetAllHabits() ([]models.HygieneHabit, error)
	UpdateHabit(models.HygieneHabit) error
	DeleteHabit(id string) error
	// MaxHabitOrder returns the highest display order across all habits,
	// or 0 when none exist.
	MaxHabitOrder() (int, error)

	// Hygiene completions
	UpsertCompletion(models.HygieneCompletion) error
	GetCompletion(habitID, date string) (models.HygieneCompletion, error)
	GetCompletionsForDate(date string) ([]models.HygieneCompletion, error)
	GetCompletionsForHabit(habitID string) ([]models.HygieneCompletion, error)
	GetAllCompletions() ([]models.HygieneCompletion, error)
	DeleteCompletion(id string) error

	// Daily summaries
	UpsertDailySummary(models.DailySummary) error
	GetDailySummary(date string) (models.DailySummary, error)
	GetAllDailySummaries() ([]models.DailySummary, error)
	DeleteDailySummary(id string) error

	// Mood entries
	UpsertMoodEntry(models.MoodEntry) error
	GetMoodEntryByDate(date string) (models.MoodEntry, error)
	GetAllMoodEntries() ([]models.MoodEntry, error)
	DeleteMoodEntry(id string) error

	// Bulk operations
	Snapshot() (Snapshot, error)
	// ReplaceAll atomically clears all five collections and loads the
	// snapshot in their place. A failed replace leaves the store untouched.
	ReplaceAll(Snapshot) error
	ClearAll() error

	// Utils
	GetConfigPath() string
}
