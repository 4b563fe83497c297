package tracker

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

func setupEngine(t *testing.T) (*Engine, storage.Provider) {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "test.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}

	now := func() time.Time {
		return time.Date(2026, time.August, 28, 12, 0, 0, 0, time.Local)
	}

	return NewWithClock(store, now), store
}

func TestEngineUpsertEntry(t *testing.T) {
	engine, store := setupEngine(t)
	today := engine.Today()

	entry, updated, err := engine.UpsertEntry(today, constants.StatusPassed, "first try")
	if err != nil {
		t.Fatalf("UpsertEntry() error: %v", err)
	}
	if updated {
		t.Error("UpsertEntry() reported update for a new entry")
	}

	// Logging the same day again updates in place and keeps the id
	second, updated, err := engine.UpsertEntry(today, constants.StatusFailed, "")
	if err != nil {
		t.Fatalf("UpsertEntry() second call error: %v", err)
	}
	if !updated {
		t.Error("UpsertEntry() did not report update for an existing date")
	}
	if second.ID != entry.ID {
		t.Errorf("updated entry id = %s, want %s", second.ID, entry.ID)
	}
	if second.Notes != "first try" {
		t.Errorf("updated entry notes = %q, want previous notes kept", second.Notes)
	}

	entries, err := store.GetAllDopamineEntries()
	if err != nil {
		t.Fatalf("GetAllDopamineEntries() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entry count = %d, want 1 (one entry per date)", len(entries))
	}
	if entries[0].Status != constants.StatusFailed {
		t.Errorf("stored status = %s, want failed", entries[0].Status)
	}
}

func TestEngineDailySummary(t *testing.T) {
	engine, store := setupEngine(t)
	today := engine.Today()

	if _, _, err := engine.UpsertEntry(today, constants.StatusPassed, ""); err != nil {
		t.Fatalf("UpsertEntry() error: %v", err)
	}

	habits, err := store.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits() error: %v", err)
	}
	if len(habits) != 5 {
		t.Fatalf("default habit count = %d, want 5", len(habits))
	}
	for _, habit := range habits[:3] {
		if _, err := engine.ToggleCompletion(habit.ID, today); err != nil {
			t.Fatalf("ToggleCompletion() error: %v", err)
		}
	}

	summary, err := store.GetDailySummary(today)
	if err != nil {
		t.Fatalf("GetDailySummary() error: %v", err)
	}
	// round(100 * (1 passed + 3 habits) / (1 + 5 habits)) = 67
	if summary.TotalCompletion != 67 {
		t.Errorf("TotalCompletion = %d, want 67", summary.TotalCompletion)
	}
	if !summary.DopamineCompleted {
		t.Error("DopamineCompleted = false, want true")
	}
	// 3/5 = 60%, at or above the 50% threshold
	if !summary.HygieneCompleted {
		t.Error("HygieneCompleted = false, want true")
	}

	// Toggling a habit off recomputes the summary and keeps its row id
	if _, err := engine.ToggleCompletion(habits[0].ID, today); err != nil {
		t.Fatalf("ToggleCompletion() off error: %v", err)
	}
	recomputed, err := store.GetDailySummary(today)
	if err != nil {
		t.Fatalf("GetDailySummary() after toggle error: %v", err)
	}
	if recomputed.ID != summary.ID {
		t.Errorf("summary id changed on update: %s != %s", recomputed.ID, summary.ID)
	}
	// round(100 * 3 / 6) = 50
	if recomputed.TotalCompletion != 50 {
		t.Errorf("TotalCompletion after toggle = %d, want 50", recomputed.TotalCompletion)
	}
}

func TestEngineToggleCompletion(t *testing.T) {
	engine, store := setupEngine(t)
	today := engine.Today()

	habits, err := store.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits() error: %v", err)
	}
	habit := habits[0]

	completed, err := engine.ToggleCompletion(habit.ID, today)
	if err != nil {
		t.Fatalf("ToggleCompletion() error: %v", err)
	}
	if !completed {
		t.Error("first toggle = false, want true")
	}

	completed, err = engine.ToggleCompletion(habit.ID, today)
	if err != nil {
		t.Fatalf("ToggleCompletion() second call error: %v", err)
	}
	if completed {
		t.Error("second toggle = true, want false")
	}

	// Still a single record for the (habit, date) pair
	all, err := store.GetAllCompletions()
	if err != nil {
		t.Fatalf("GetAllCompletions() error: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("completion count = %d, want 1", len(all))
	}
}

func TestEngineLogMood(t *testing.T) {
	engine, store := setupEngine(t)
	today := engine.Today()

	first, updated, err := engine.LogMood(today, 4, 3, 1, "steady")
	if err != nil {
		t.Fatalf("LogMood() error: %v", err)
	}
	if updated {
		t.Error("LogMood() reported update for a new entry")
	}

	second, updated, err := engine.LogMood(today, 2, 2, 4, "")
	if err != nil {
		t.Fatalf("LogMood() second call error: %v", err)
	}
	if !updated {
		t.Error("LogMood() did not report update for an existing date")
	}
	if second.ID != first.ID {
		t.Errorf("updated mood id = %s, want %s", second.ID, first.ID)
	}

	if _, _, err := engine.LogMood(today, 9, 3, 1, ""); err == nil {
		t.Error("LogMood() accepted out-of-range mood")
	}

	entries, err := store.GetAllMoodEntries()
	if err != nil {
		t.Fatalf("GetAllMoodEntries() error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("mood entry count = %d, want 1", len(entries))
	}
}

func TestEngineMonthCompletion(t *testing.T) {
	engine, _ := setupEngine(t)

	if _, _, err := engine.UpsertEntry("2026-08-10", constants.StatusPassed, ""); err != nil {
		t.Fatalf("UpsertEntry() error: %v", err)
	}

	completion, err := engine.MonthCompletion(2026, time.August)
	if err != nil {
		t.Fatalf("MonthCompletion() error: %v", err)
	}

	// round(100 * 1 / 6) = 17 with the five default habits
	if got := completion["2026-08-10"]; got != 17 {
		t.Errorf("completion[2026-08-10] = %d, want 17", got)
	}
	if _, ok := completion["2026-08-11"]; ok {
		t.Error("day with no activity should be absent from the map")
	}
}

func TestEngineCollectStats(t *testing.T) {
	engine, _ := setupEngine(t)

	if _, _, err := engine.UpsertEntry(engine.Today(), constants.StatusPassed, ""); err != nil {
		t.Fatalf("UpsertEntry() error: %v", err)
	}

	stats, err := engine.CollectStats()
	if err != nil {
		t.Fatalf("CollectStats() error: %v", err)
	}
	if stats.DopamineEntries != 1 {
		t.Errorf("DopamineEntries = %d, want 1", stats.DopamineEntries)
	}
	if stats.HygieneHabits != 5 {
		t.Errorf("HygieneHabits = %d, want 5", stats.HygieneHabits)
	}
	if stats.TotalSizeBytes <= 0 {
		t.Errorf("TotalSizeBytes = %d, want > 0", stats.TotalSizeBytes)
	}
}

// brokenStore simulates a storage failure on entry lookups, which must be
// distinguished from the entry simply not existing.
type brokenStore struct {
	storage.Provider
}

func (s brokenStore) GetDopamineEntryByDate(date string) (models.DopamineEntry, error) {
	return models.DopamineEntry{}, errors.New("disk read failed")
}

func TestEngineDayCompletionPropagatesStorageErrors(t *testing.T) {
	engine, store := setupEngine(t)
	today := engine.Today()

	// A missing entry is not an error; the percentage just omits dopamine.
	if _, err := engine.DayCompletion(today); err != nil {
		t.Fatalf("DayCompletion() with no entry: %v", err)
	}

	broken := NewWithClock(brokenStore{Provider: store}, engine.now)
	if _, err := broken.DayCompletion(today); err == nil {
		t.Error("DayCompletion() swallowed a storage failure")
	}
	if _, _, err := broken.UpsertEntry(today, constants.StatusPassed, ""); err == nil {
		t.Error("UpsertEntry() swallowed a storage failure")
	}
}
