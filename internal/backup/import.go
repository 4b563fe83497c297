package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/storage"
)

// ImportResult reports what an import loaded.
type ImportResult struct {
	DopamineEntries    int
	HygieneHabits      int
	MoodEntries        int
	HygieneCompletions int
	DailySummaries     int
}

// ValidateImportFile checks the filename before any data is read. Plain-text
// extensions are accepted because some mail clients rename attachments.
func ValidateImportFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" && ext != ".txt" {
		return fmt.Errorf("unsupported file type %q, expected a .json export", ext)
	}
	return nil
}

// ParseDocument validates and decodes an export document. The document must
// be a JSON object carrying at least one of the three primary collections
// (dopamine entries, hygiene habits, mood entries) as an array. Validation
// happens before any store mutation so a malformed file never destroys data.
func ParseDocument(data []byte) (Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("invalid backup file format: %w", err)
	}

	hasCollection := false
	for _, key := range []string{constants.CollectionDopamine, constants.CollectionHabits, constants.CollectionMood} {
		value, ok := raw[key]
		if !ok {
			continue
		}
		trimmed := strings.TrimSpace(string(value))
		if !strings.HasPrefix(trimmed, "[") {
			return Document{}, fmt.Errorf("invalid backup file format: %q is not an array", key)
		}
		hasCollection = true
	}
	if !hasCollection {
		return Document{}, fmt.Errorf("invalid backup file format: no recognized data collections found")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("invalid backup file format: %w", err)
	}

	return doc, nil
}

// normalize assigns ids and timestamps to records the source document left
// blank. Exports from older versions carried numeric auto-increment ids that
// decode to empty strings here.
func (d *Document) normalize(now time.Time) {
	for i := range d.DopamineEntries {
		if d.DopamineEntries[i].ID == "" {
			d.DopamineEntries[i].ID = uuid.New().String()
		}
		if d.DopamineEntries[i].CreatedAt.IsZero() {
			d.DopamineEntries[i].CreatedAt = now
		}
	}
	for i := range d.HygieneHabits {
		if d.HygieneHabits[i].ID == "" {
			d.HygieneHabits[i].ID = uuid.New().String()
		}
		if d.HygieneHabits[i].CreatedAt.IsZero() {
			d.HygieneHabits[i].CreatedAt = now
		}
		if d.HygieneHabits[i].Order == 0 {
			d.HygieneHabits[i].Order = i + 1
		}
		if d.HygieneHabits[i].Category == "" {
			d.HygieneHabits[i].Category = constants.DefaultHabitCategory
		}
		if d.HygieneHabits[i].Difficulty == "" {
			d.HygieneHabits[i].Difficulty = constants.DifficultyEasy
		}
	}
	for i := range d.MoodEntries {
		if d.MoodEntries[i].ID == "" {
			d.MoodEntries[i].ID = uuid.New().String()
		}
		if d.MoodEntries[i].CreatedAt.IsZero() {
			d.MoodEntries[i].CreatedAt = now
		}
	}
	for i := range d.HygieneCompletions {
		if d.HygieneCompletions[i].ID == "" {
			d.HygieneCompletions[i].ID = uuid.New().String()
		}
		if d.HygieneCompletions[i].CreatedAt.IsZero() {
			d.HygieneCompletions[i].CreatedAt = now
		}
	}
	for i := range d.DailyCompletion {
		if d.DailyCompletion[i].ID == "" {
			d.DailyCompletion[i].ID = uuid.New().String()
		}
		if d.DailyCompletion[i].CreatedAt.IsZero() {
			d.DailyCompletion[i].CreatedAt = now
		}
	}
}

// Import replaces all stored data with the contents of an export file. The
// replacement is all-or-nothing: any validation or write failure leaves the
// existing data untouched.
func Import(store storage.Provider, path string) (ImportResult, error) {
	if err := ValidateImportFile(path); err != nil {
		return ImportResult{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to read import file: %w", err)
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return ImportResult{}, err
	}
	doc.normalize(time.Now())

	if err := store.ReplaceAll(doc.snapshot()); err != nil {
		return ImportResult{}, fmt.Errorf("failed to load imported data: %w", err)
	}

	return ImportResult{
		DopamineEntries:    len(doc.DopamineEntries),
		HygieneHabits:      len(doc.HygieneHabits),
		MoodEntries:        len(doc.MoodEntries),
		HygieneCompletions: len(doc.HygieneCompletions),
		DailySummaries:     len(doc.DailyCompletion),
	}, nil
}
