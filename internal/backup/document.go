package backup

import (
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

// Document is the JSON wire format for data export and import. The daily
// completion cache rides along on export but is recomputable, so imports
// accept documents without it.
type Document struct {
	DopamineEntries    []models.DopamineEntry     `json:"dopamineEntries"`
	HygieneHabits      []models.HygieneHabit      `json:"hygieneHabits"`
	MoodEntries        []models.MoodEntry         `json:"moodEntries"`
	HygieneCompletions []models.HygieneCompletion `json:"hygieneCompletions"`
	DailyCompletion    []models.DailySummary      `json:"dailyCompletion"`
	ExportDate         string                     `json:"exportDate"`
	AppVersion         string                     `json:"appVersion"`
}

func (d Document) snapshot() storage.Snapshot {
	return storage.Snapshot{
		DopamineEntries:    d.DopamineEntries,
		HygieneHabits:      d.HygieneHabits,
		HygieneCompletions: d.HygieneCompletions,
		DailySummaries:     d.DailyCompletion,
		MoodEntries:        d.MoodEntries,
	}
}
