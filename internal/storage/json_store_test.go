package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

func setupJSONStore(t *testing.T) *JSONStore {
	t.Helper()

	store := NewJSONStore(filepath.Join(t.TempDir(), "test.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}

	return store
}

func TestJSONStoreInit(t *testing.T) {
	store := setupJSONStore(t)

	habits, err := store.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits() error: %v", err)
	}
	if len(habits) != 5 {
		t.Fatalf("default habit count = %d, want 5", len(habits))
	}

	names := []string{"Brush Teeth", "Face Wash", "Bath / Shower", "Hair Care", "Perfume / Cologne"}
	for i, want := range names {
		if habits[i].Name != want {
			t.Errorf("habit %d = %q, want %q", i, habits[i].Name, want)
		}
	}

	// Double init fails rather than wiping data
	if err := store.Init(); err == nil {
		t.Error("Init() twice should fail")
	}
}

func TestJSONStoreRequiresLoad(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "test.json"))
	if _, err := store.GetAllHabits(); err == nil {
		t.Error("reads before Load() should fail")
	}
}

func TestJSONStoreDopamineDateUnique(t *testing.T) {
	store := setupJSONStore(t)

	first := models.DopamineEntry{
		ID:        uuid.New().String(),
		Date:      "2026-08-28",
		Status:    constants.StatusPassed,
		CreatedAt: time.Now(),
	}
	if err := store.UpsertDopamineEntry(first); err != nil {
		t.Fatalf("UpsertDopamineEntry() error: %v", err)
	}

	second := first
	second.ID = uuid.New().String()
	second.Status = constants.StatusFailed
	if err := store.UpsertDopamineEntry(second); err != nil {
		t.Fatalf("UpsertDopamineEntry() replacement error: %v", err)
	}

	entries, err := store.GetAllDopamineEntries()
	if err != nil {
		t.Fatalf("GetAllDopamineEntries() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entry count = %d, want 1", len(entries))
	}
	if entries[0].Status != constants.StatusFailed {
		t.Errorf("status = %s, want failed", entries[0].Status)
	}
}

func TestJSONStoreCompletionPairUnique(t *testing.T) {
	store := setupJSONStore(t)

	habits, err := store.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits() error: %v", err)
	}

	on := models.HygieneCompletion{
		ID:        uuid.New().String(),
		HabitID:   habits[0].ID,
		Date:      "2026-08-28",
		Completed: true,
		CreatedAt: time.Now(),
	}
	if err := store.UpsertCompletion(on); err != nil {
		t.Fatalf("UpsertCompletion() error: %v", err)
	}

	off := on
	off.ID = uuid.New().String()
	off.Completed = false
	if err := store.UpsertCompletion(off); err != nil {
		t.Fatalf("UpsertCompletion() replacement error: %v", err)
	}

	all, err := store.GetAllCompletions()
	if err != nil {
		t.Fatalf("GetAllCompletions() error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("completion count = %d, want 1", len(all))
	}
	if all[0].Completed {
		t.Error("completed = true, want false after replacement")
	}
}

func TestJSONStorePersistence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}

	entry := models.DopamineEntry{
		ID:        uuid.New().String(),
		Date:      "2026-08-28",
		Status:    constants.StatusPassed,
		Notes:     "persisted",
		CreatedAt: time.Now(),
	}
	if err := store.UpsertDopamineEntry(entry); err != nil {
		t.Fatalf("UpsertDopamineEntry() error: %v", err)
	}

	// Reopen from disk
	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() after reopen error: %v", err)
	}

	got, err := reopened.GetDopamineEntryByDate("2026-08-28")
	if err != nil {
		t.Fatalf("GetDopamineEntryByDate() error: %v", err)
	}
	if got.Notes != "persisted" {
		t.Errorf("notes = %q, want persisted", got.Notes)
	}
}

func TestJSONStoreReplaceAll(t *testing.T) {
	store := setupJSONStore(t)

	entry := models.DopamineEntry{
		ID:        uuid.New().String(),
		Date:      "2026-08-28",
		Status:    constants.StatusPassed,
		CreatedAt: time.Now(),
	}
	snap := Snapshot{DopamineEntries: []models.DopamineEntry{entry}}

	if err := store.ReplaceAll(snap); err != nil {
		t.Fatalf("ReplaceAll() error: %v", err)
	}

	habits, err := store.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits() error: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("habit count after replace = %d, want 0", len(habits))
	}

	entries, err := store.GetAllDopamineEntries()
	if err != nil {
		t.Fatalf("GetAllDopamineEntries() error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("entry count after replace = %d, want 1", len(entries))
	}
}

func TestJSONStoreClearAll(t *testing.T) {
	store := setupJSONStore(t)

	if err := store.ClearAll(); err != nil {
		t.Fatalf("ClearAll() error: %v", err)
	}

	snap, err := store.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	if len(snap.HygieneHabits) != 0 || len(snap.DopamineEntries) != 0 {
		t.Errorf("snapshot after clear = %+v, want empty", snap)
	}

	// The cleared state is on disk too
	data, err := os.ReadFile(store.GetConfigPath())
	if err != nil {
		t.Fatalf("failed to read store file: %v", err)
	}
	if len(data) == 0 {
		t.Error("store file is empty, want serialized empty collections")
	}
}

func TestJSONStoreMissingLookupsReturnNotFound(t *testing.T) {
	store := setupJSONStore(t)

	if _, err := store.GetDopamineEntryByDate("2026-01-01"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetDopamineEntryByDate() error = %v, want ErrNotFound", err)
	}
	if _, err := store.GetHabitByName("No Such Habit"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetHabitByName() error = %v, want ErrNotFound", err)
	}
	if _, err := store.GetCompletion("missing-id", "2026-01-01"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetCompletion() error = %v, want ErrNotFound", err)
	}
	if _, err := store.GetMoodEntryByDate("2026-01-01"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetMoodEntryByDate() error = %v, want ErrNotFound", err)
	}
	if _, err := store.GetDailySummary("2026-01-01"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetDailySummary() error = %v, want ErrNotFound", err)
	}
}
