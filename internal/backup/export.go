package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

// DefaultExportFilename returns the canonical export filename for the given
// time, e.g. "life_tracker_backup_2026-8-28.json". Month and day are not
// zero-padded.
func DefaultExportFilename(now time.Time) string {
	return fmt.Sprintf("%s%d-%d-%d%s",
		constants.ExportFilePrefix, now.Year(), int(now.Month()), now.Day(),
		constants.ExportFileSuffix)
}

// BuildDocument assembles an export document from a full store snapshot.
func BuildDocument(snap storage.Snapshot, now time.Time) Document {
	doc := Document{
		DopamineEntries:    snap.DopamineEntries,
		HygieneHabits:      snap.HygieneHabits,
		MoodEntries:        snap.MoodEntries,
		HygieneCompletions: snap.HygieneCompletions,
		DailyCompletion:    snap.DailySummaries,
		ExportDate:         now.Format(time.RFC3339),
		AppVersion:         constants.Version,
	}

	// Empty collections serialize as [] rather than null
	if doc.DopamineEntries == nil {
		doc.DopamineEntries = []models.DopamineEntry{}
	}
	if doc.HygieneHabits == nil {
		doc.HygieneHabits = []models.HygieneHabit{}
	}
	if doc.MoodEntries == nil {
		doc.MoodEntries = []models.MoodEntry{}
	}
	if doc.HygieneCompletions == nil {
		doc.HygieneCompletions = []models.HygieneCompletion{}
	}
	if doc.DailyCompletion == nil {
		doc.DailyCompletion = []models.DailySummary{}
	}

	return doc
}

// Export writes the full contents of the store to a JSON file at path and
// returns the number of bytes written.
func Export(store storage.Provider, path string, now time.Time) (int, error) {
	snap, err := store.Snapshot()
	if err != nil {
		return 0, fmt.Errorf("failed to read store contents: %w", err)
	}

	doc := BuildDocument(snap, now)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to serialize export document: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return 0, fmt.Errorf("failed to write export file: %w", err)
	}

	return len(data), nil
}
