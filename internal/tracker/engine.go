package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/validation"
)

// Engine derives statistics from the raw record collections and performs the
// writes that keep the daily summary cache current. Display paths always
// recompute live from the raw records; the cache is write-only.
type Engine struct {
	store storage.Provider
	now   func() time.Time
}

func New(store storage.Provider) *Engine {
	return &Engine{
		store: store,
		now:   time.Now,
	}
}

// NewWithClock creates an engine with a fixed clock, for tests.
func NewWithClock(store storage.Provider, now func() time.Time) *Engine {
	return &Engine{
		store: store,
		now:   now,
	}
}

func (e *Engine) Today() string {
	return e.now().Format(constants.DateFormat)
}

// CurrentStreak returns the run of consecutive passed days ending today.
func (e *Engine) CurrentStreak() (int, error) {
	entries, err := e.store.GetAllDopamineEntries()
	if err != nil {
		return 0, fmt.Errorf("failed to read dopamine entries: %w", err)
	}
	return CurrentStreak(entries, e.now()), nil
}

// LongestStreak returns the longest run of consecutive passed entries.
func (e *Engine) LongestStreak() (int, error) {
	entries, err := e.store.GetAllDopamineEntries()
	if err != nil {
		return 0, fmt.Errorf("failed to read dopamine entries: %w", err)
	}
	return LongestStreak(entries), nil
}

// DayCompletion returns the weighted completion percentage for a date.
func (e *Engine) DayCompletion(date string) (int, error) {
	var entry *models.DopamineEntry
	found, err := e.store.GetDopamineEntryByDate(date)
	switch {
	case err == nil:
		entry = &found
	case !errors.Is(err, storage.ErrNotFound):
		return 0, fmt.Errorf("failed to read dopamine entry: %w", err)
	}

	habits, err := e.store.GetAllHabits()
	if err != nil {
		return 0, fmt.Errorf("failed to read habits: %w", err)
	}
	completions, err := e.store.GetCompletionsForDate(date)
	if err != nil {
		return 0, fmt.Errorf("failed to read completions: %w", err)
	}

	return DayCompletion(entry, habits, completions), nil
}

// HygieneCompletion returns the hygiene-only completion percentage for a date.
func (e *Engine) HygieneCompletion(date string) (int, error) {
	habits, err := e.store.GetAllHabits()
	if err != nil {
		return 0, fmt.Errorf("failed to read habits: %w", err)
	}
	completions, err := e.store.GetCompletionsForDate(date)
	if err != nil {
		return 0, fmt.Errorf("failed to read completions: %w", err)
	}

	return HygienePercent(habits, completions), nil
}

// UpdateDailySummary recomputes and upserts the cached daily completion row
// for the given date. Called after every mutation that touches the date.
func (e *Engine) UpdateDailySummary(date string) error {
	dopamineCompleted := false
	entry, err := e.store.GetDopamineEntryByDate(date)
	switch {
	case err == nil:
		dopamineCompleted = entry.Passed()
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("failed to read dopamine entry: %w", err)
	}

	hygienePct, err := e.HygieneCompletion(date)
	if err != nil {
		return err
	}

	total, err := e.DayCompletion(date)
	if err != nil {
		return err
	}

	summary := models.DailySummary{
		ID:                uuid.New().String(),
		Date:              date,
		DopamineCompleted: dopamineCompleted,
		HygieneCompleted:  hygienePct >= constants.HygieneCompletedThreshold,
		TotalCompletion:   total,
		CreatedAt:         e.now(),
	}

	// Keep the existing row id on update
	existing, err := e.store.GetDailySummary(date)
	switch {
	case err == nil:
		summary.ID = existing.ID
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("failed to read daily completion row: %w", err)
	}

	if err := e.store.UpsertDailySummary(summary); err != nil {
		return fmt.Errorf("failed to upsert daily completion row: %w", err)
	}

	logger.Debug("Updated daily summary", "date", date, "total", total)
	return nil
}

// UpsertEntry creates or updates the single dopamine entry for a date and
// refreshes the daily summary. It reports whether an existing entry was
// updated rather than a new one created.
func (e *Engine) UpsertEntry(date string, status constants.DopamineStatus, notes string) (models.DopamineEntry, bool, error) {
	entry := models.DopamineEntry{
		ID:        uuid.New().String(),
		Date:      date,
		Status:    status,
		Notes:     notes,
		CreatedAt: e.now(),
	}
	if err := validation.ValidateDopamineEntry(entry); err != nil {
		return models.DopamineEntry{}, false, err
	}

	updated := false
	existing, err := e.store.GetDopamineEntryByDate(date)
	switch {
	case err == nil:
		entry.ID = existing.ID
		if notes == "" {
			entry.Notes = existing.Notes
		}
		updated = true
	case !errors.Is(err, storage.ErrNotFound):
		return models.DopamineEntry{}, false, fmt.Errorf("failed to read dopamine entry: %w", err)
	}

	if err := e.store.UpsertDopamineEntry(entry); err != nil {
		return models.DopamineEntry{}, false, fmt.Errorf("failed to save dopamine entry: %w", err)
	}

	if err := e.UpdateDailySummary(date); err != nil {
		return models.DopamineEntry{}, false, err
	}

	return entry, updated, nil
}

// ToggleCompletion flips a habit's completion for a date, creating the
// completion record if none exists, and refreshes the daily summary.
// It returns the new completed state.
func (e *Engine) ToggleCompletion(habitID, date string) (bool, error) {
	if err := validation.ValidateDate(date); err != nil {
		return false, err
	}

	completion := models.HygieneCompletion{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Date:      date,
		Completed: true,
		CreatedAt: e.now(),
	}
	existing, err := e.store.GetCompletion(habitID, date)
	switch {
	case err == nil:
		completion.ID = existing.ID
		completion.Completed = !existing.Completed
	case !errors.Is(err, storage.ErrNotFound):
		return false, fmt.Errorf("failed to read hygiene completion: %w", err)
	}

	if err := e.store.UpsertCompletion(completion); err != nil {
		return false, fmt.Errorf("failed to save hygiene completion: %w", err)
	}

	if err := e.UpdateDailySummary(date); err != nil {
		return false, err
	}

	return completion.Completed, nil
}

// IsHabitCompleted reports whether a habit has a completed record for a date.
func (e *Engine) IsHabitCompleted(habitID, date string) (bool, error) {
	completion, err := e.store.GetCompletion(habitID, date)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read hygiene completion: %w", err)
	}
	return completion.Completed, nil
}

// AddHabit creates a habit with the next display order.
func (e *Engine) AddHabit(name, description, category string, difficulty constants.HabitDifficulty) (models.HygieneHabit, error) {
	_, err := e.store.GetHabitByName(name)
	switch {
	case err == nil:
		return models.HygieneHabit{}, fmt.Errorf("habit with name %q already exists", name)
	case !errors.Is(err, storage.ErrNotFound):
		return models.HygieneHabit{}, fmt.Errorf("failed to check habit name: %w", err)
	}

	maxOrder, err := e.store.MaxHabitOrder()
	if err != nil {
		return models.HygieneHabit{}, fmt.Errorf("failed to determine habit order: %w", err)
	}

	if category == "" {
		category = constants.DefaultHabitCategory
	}
	if difficulty == "" {
		difficulty = constants.DifficultyEasy
	}

	habit := models.HygieneHabit{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Order:       maxOrder + 1,
		CreatedAt:   e.now(),
		Category:    category,
		Difficulty:  difficulty,
	}
	if err := validation.ValidateHabit(habit); err != nil {
		return models.HygieneHabit{}, err
	}

	if err := e.store.AddHabit(habit); err != nil {
		return models.HygieneHabit{}, fmt.Errorf("failed to save habit: %w", err)
	}

	return habit, nil
}

// LogMood creates or updates the single mood entry for a date.
func (e *Engine) LogMood(date string, mood, energy, numb int, notes string) (models.MoodEntry, bool, error) {
	entry := models.MoodEntry{
		ID:        uuid.New().String(),
		Date:      date,
		Mood:      mood,
		Energy:    energy,
		Numb:      numb,
		Notes:     notes,
		CreatedAt: e.now(),
	}
	if err := validation.ValidateMoodEntry(entry); err != nil {
		return models.MoodEntry{}, false, err
	}

	updated := false
	existing, err := e.store.GetMoodEntryByDate(date)
	switch {
	case err == nil:
		entry.ID = existing.ID
		if notes == "" {
			entry.Notes = existing.Notes
		}
		updated = true
	case !errors.Is(err, storage.ErrNotFound):
		return models.MoodEntry{}, false, fmt.Errorf("failed to read mood entry: %w", err)
	}

	if err := e.store.UpsertMoodEntry(entry); err != nil {
		return models.MoodEntry{}, false, fmt.Errorf("failed to save mood entry: %w", err)
	}

	return entry, updated, nil
}

// MonthCompletion computes the per-day completion map for one month, reading
// each collection once instead of per-day.
func (e *Engine) MonthCompletion(year int, month time.Month) (map[string]int, error) {
	entries, err := e.store.GetAllDopamineEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to read dopamine entries: %w", err)
	}
	habits, err := e.store.GetAllHabits()
	if err != nil {
		return nil, fmt.Errorf("failed to read habits: %w", err)
	}
	completions, err := e.store.GetAllCompletions()
	if err != nil {
		return nil, fmt.Errorf("failed to read completions: %w", err)
	}

	entryByDate := make(map[string]models.DopamineEntry, len(entries))
	for _, entry := range entries {
		entryByDate[entry.Date] = entry
	}
	completionsByDate := make(map[string][]models.HygieneCompletion)
	for _, completion := range completions {
		completionsByDate[completion.Date] = append(completionsByDate[completion.Date], completion)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	result := make(map[string]int, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format(constants.DateFormat)
		var entry *models.DopamineEntry
		if found, ok := entryByDate[date]; ok {
			entry = &found
		}
		if pct := DayCompletion(entry, habits, completionsByDate[date]); pct > 0 {
			result[date] = pct
		}
	}

	return result, nil
}

// MonthView builds the calendar grid for one month.
func (e *Engine) MonthView(year int, month time.Month) (Month, error) {
	completion, err := e.MonthCompletion(year, month)
	if err != nil {
		return Month{}, err
	}
	return BuildMonth(year, month, e.Today(), completion), nil
}

// Stats summarizes the stored collections for the stats command and the
// backup screen.
type Stats struct {
	DopamineEntries    int
	HygieneHabits      int
	HygieneCompletions int
	MoodEntries        int
	TotalSizeBytes     int
}

// CollectStats counts the primary collections and estimates their serialized
// size.
func (e *Engine) CollectStats() (Stats, error) {
	snap, err := e.store.Snapshot()
	if err != nil {
		return Stats{}, err
	}

	serialized, err := json.Marshal(map[string]any{
		"dopamineEntries":    snap.DopamineEntries,
		"hygieneHabits":      snap.HygieneHabits,
		"moodEntries":        snap.MoodEntries,
		"hygieneCompletions": snap.HygieneCompletions,
	})
	if err != nil {
		return Stats{}, fmt.Errorf("failed to estimate data size: %w", err)
	}

	return Stats{
		DopamineEntries:    len(snap.DopamineEntries),
		HygieneHabits:      len(snap.HygieneHabits),
		HygieneCompletions: len(snap.HygieneCompletions),
		MoodEntries:        len(snap.MoodEntries),
		TotalSizeBytes:     len(serialized),
	}, nil
}
