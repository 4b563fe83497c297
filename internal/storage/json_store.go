package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/lifetrack/internal/models"
)

// fileStore is the on-disk shape of the JSON backend. Each collection is
// keyed by record id.
type fileStore struct {
	Version            int                                 `json:"version"`
	DopamineEntries    map[string]models.DopamineEntry     `json:"dopamineEntries"`
	HygieneHabits      map[string]models.HygieneHabit      `json:"hygieneHabits"`
	HygieneCompletions map[string]models.HygieneCompletion `json:"hygieneCompletions"`
	DailySummaries     map[string]models.DailySummary      `json:"dailyCompletion"`
	MoodEntries        map[string]models.MoodEntry         `json:"moodEntries"`
}

// JSONStore is a single-file alternative to the SQLite backend, selected by
// giving a .json config path. The whole store is rewritten on every mutation,
// which keeps multi-collection operations atomic-in-intent: a failed write
// never leaves a half-cleared file.
type JSONStore struct {
	path  string
	store *fileStore
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func newFileStore() *fileStore {
	return &fileStore{
		Version:            1,
		DopamineEntries:    make(map[string]models.DopamineEntry),
		HygieneHabits:      make(map[string]models.HygieneHabit),
		HygieneCompletions: make(map[string]models.HygieneCompletion),
		DailySummaries:     make(map[string]models.DailySummary),
		MoodEntries:        make(map[string]models.MoodEntry),
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = newFileStore()
	for _, habit := range DefaultHabits() {
		s.store.HygieneHabits[habit.ID] = habit
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'lifetrack init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &fileStore{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.DopamineEntries == nil {
		s.store.DopamineEntries = make(map[string]models.DopamineEntry)
	}
	if s.store.HygieneHabits == nil {
		s.store.HygieneHabits = make(map[string]models.HygieneHabit)
	}
	if s.store.HygieneCompletions == nil {
		s.store.HygieneCompletions = make(map[string]models.HygieneCompletion)
	}
	if s.store.DailySummaries == nil {
		s.store.DailySummaries = make(map[string]models.DailySummary)
	}
	if s.store.MoodEntries == nil {
		s.store.MoodEntries = make(map[string]models.MoodEntry)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

// Dopamine entries

func (s *JSONStore) UpsertDopamineEntry(entry models.DopamineEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}

	// Date uniqueness: replace any existing entry for the same date
	for id, existing := range s.store.DopamineEntries {
		if existing.Date == entry.Date && id != entry.ID {
			delete(s.store.DopamineEntries, id)
		}
	}

	s.store.DopamineEntries[entry.ID] = entry
	return s.save()
}

func (s *JSONStore) GetDopamineEntryByDate(date string) (models.DopamineEntry, error) {
	if err := s.loaded(); err != nil {
		return models.DopamineEntry{}, err
	}

	for _, entry := range s.store.DopamineEntries {
		if entry.Date == date {
			return entry, nil
		}
	}

	return models.DopamineEntry{}, fmt.Errorf("dopamine entry for date %s: %w", date, ErrNotFound)
}

func (s *JSONStore) GetAllDopamineEntries() ([]models.DopamineEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	entries := make([]models.DopamineEntry, 0, len(s.store.DopamineEntries))
	for _, entry := range s.store.DopamineEntries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	return entries, nil
}

func (s *JSONStore) DeleteDopamineEntry(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	if _, ok := s.store.DopamineEntries[id]; !ok {
		return fmt.Errorf("dopamine entry not found: %s", id)
	}

	delete(s.store.DopamineEntries, id)
	return s.save()
}

// Hygiene habits

func (s *JSONStore) AddHabit(habit models.HygieneHabit) error {
	return s.UpdateHabit(habit)
}

func (s *JSONStore) GetHabit(id string) (models.HygieneHabit, error) {
	if err := s.loaded(); err != nil {
		return models.HygieneHabit{}, err
	}

	habit, ok := s.store.HygieneHabits[id]
	if !ok {
		return models.HygieneHabit{}, fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}

	return habit, nil
}

func (s *JSONStore) GetHabitByName(name string) (models.HygieneHabit, error) {
	if err := s.loaded(); err != nil {
		return models.HygieneHabit{}, err
	}

	for _, habit := range s.store.HygieneHabits {
		if habit.Name == name {
			return habit, nil
		}
	}

	return models.HygieneHabit{}, fmt.Errorf("habit %s: %w", name, ErrNotFound)
}

func (s *JSONStore) GetAllHabits() ([]models.HygieneHabit, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	habits := make([]models.HygieneHabit, 0, len(s.store.HygieneHabits))
	for _, habit := range s.store.HygieneHabits {
		habits = append(habits, habit)
	}
	sort.Slice(habits, func(i, j int) bool {
		if habits[i].Order != habits[j].Order {
			return habits[i].Order < habits[j].Order
		}
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})

	return habits, nil
}

func (s *JSONStore) UpdateHabit(habit models.HygieneHabit) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.HygieneHabits[habit.ID] = habit
	return s.save()
}

func (s *JSONStore) DeleteHabit(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	if _, ok := s.store.HygieneHabits[id]; !ok {
		return fmt.Errorf("habit not found: %s", id)
	}

	delete(s.store.HygieneHabits, id)
	return s.save()
}

func (s *JSONStore) MaxHabitOrder() (int, error) {
	if err := s.loaded(); err != nil {
		return 0, err
	}

	max := 0
	for _, habit := range s.store.HygieneHabits {
		if habit.Order > max {
			max = habit.Order
		}
	}

	return max, nil
}

// Hygiene completions

func (s *JSONStore) UpsertCompletion(completion models.HygieneCompletion) error {
	if err := s.loaded(); err != nil {
		return err
	}

	// (habitId, date) uniqueness: replace any existing row for the pair
	for id, existing := range s.store.HygieneCompletions {
		if existing.HabitID == completion.HabitID && existing.Date == completion.Date && id != completion.ID {
			delete(s.store.HygieneCompletions, id)
		}
	}

	s.store.HygieneCompletions[completion.ID] = completion
	return s.save()
}

func (s *JSONStore) GetCompletion(habitID, date string) (models.HygieneCompletion, error) {
	if err := s.loaded(); err != nil {
		return models.HygieneCompletion{}, err
	}

	for _, completion := range s.store.HygieneCompletions {
		if completion.HabitID == habitID && completion.Date == date {
			return completion, nil
		}
	}

	return models.HygieneCompletion{}, fmt.Errorf("completion for habit %s on %s: %w", habitID, date, ErrNotFound)
}

func (s *JSONStore) GetCompletionsForDate(date string) ([]models.HygieneCompletion, error) {
	return s.filterCompletions(func(c models.HygieneCompletion) bool { return c.Date == date })
}

func (s *JSONStore) GetCompletionsForHabit(habitID string) ([]models.HygieneCompletion, error) {
	return s.filterCompletions(func(c models.HygieneCompletion) bool { return c.HabitID == habitID })
}

func (s *JSONStore) GetAllCompletions() ([]models.HygieneCompletion, error) {
	return s.filterCompletions(func(models.HygieneCompletion) bool { return true })
}

func (s *JSONStore) filterCompletions(keep func(models.HygieneCompletion) bool) ([]models.HygieneCompletion, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	var completions []models.HygieneCompletion
	for _, completion := range s.store.HygieneCompletions {
		if keep(completion) {
			completions = append(completions, completion)
		}
	}
	sort.Slice(completions, func(i, j int) bool { return completions[i].Date < completions[j].Date })

	return completions, nil
}

func (s *JSONStore) DeleteCompletion(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	if _, ok := s.store.HygieneCompletions[id]; !ok {
		return fmt.Errorf("hygiene completion not found: %s", id)
	}

	delete(s.store.HygieneCompletions, id)
	return s.save()
}

// Daily summaries

func (s *JSONStore) UpsertDailySummary(summary models.DailySummary) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for id, existing := range s.store.DailySummaries {
		if existing.Date == summary.Date && id != summary.ID {
			delete(s.store.DailySummaries, id)
		}
	}

	s.store.DailySummaries[summary.ID] = summary
	return s.save()
}

func (s *JSONStore) GetDailySummary(date string) (models.DailySummary, error) {
	if err := s.loaded(); err != nil {
		return models.DailySummary{}, err
	}

	for _, summary := range s.store.DailySummaries {
		if summary.Date == date {
			return summary, nil
		}
	}

	return models.DailySummary{}, fmt.Errorf("daily completion row for date %s: %w", date, ErrNotFound)
}

func (s *JSONStore) GetAllDailySummaries() ([]models.DailySummary, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	summaries := make([]models.DailySummary, 0, len(s.store.DailySummaries))
	for _, summary := range s.store.DailySummaries {
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Date < summaries[j].Date })

	return summaries, nil
}

func (s *JSONStore) DeleteDailySummary(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	if _, ok := s.store.DailySummaries[id]; !ok {
		return fmt.Errorf("daily completion row not found: %s", id)
	}

	delete(s.store.DailySummaries, id)
	return s.save()
}

// Mood entries

func (s *JSONStore) UpsertMoodEntry(entry models.MoodEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for id, existing := range s.store.MoodEntries {
		if existing.Date == entry.Date && id != entry.ID {
			delete(s.store.MoodEntries, id)
		}
	}

	s.store.MoodEntries[entry.ID] = entry
	return s.save()
}

func (s *JSONStore) GetMoodEntryByDate(date string) (models.MoodEntry, error) {
	if err := s.loaded(); err != nil {
		return models.MoodEntry{}, err
	}

	for _, entry := range s.store.MoodEntries {
		if entry.Date == date {
			return entry, nil
		}
	}

	return models.MoodEntry{}, fmt.Errorf("mood entry for date %s: %w", date, ErrNotFound)
}

func (s *JSONStore) GetAllMoodEntries() ([]models.MoodEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	entries := make([]models.MoodEntry, 0, len(s.store.MoodEntries))
	for _, entry := range s.store.MoodEntries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })

	return entries, nil
}

func (s *JSONStore) DeleteMoodEntry(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	if _, ok := s.store.MoodEntries[id]; !ok {
		return fmt.Errorf("mood entry not found: %s", id)
	}

	delete(s.store.MoodEntries, id)
	return s.save()
}

// Bulk operations

func (s *JSONStore) Snapshot() (Snapshot, error) {
	var snap Snapshot
	var err error

	if snap.DopamineEntries, err = s.GetAllDopamineEntries(); err != nil {
		return Snapshot{}, err
	}
	if snap.HygieneHabits, err = s.GetAllHabits(); err != nil {
		return Snapshot{}, err
	}
	if snap.HygieneCompletions, err = s.GetAllCompletions(); err != nil {
		return Snapshot{}, err
	}
	if snap.DailySummaries, err = s.GetAllDailySummaries(); err != nil {
		return Snapshot{}, err
	}
	if snap.MoodEntries, err = s.GetAllMoodEntries(); err != nil {
		return Snapshot{}, err
	}

	return snap, nil
}

// ReplaceAll stages the snapshot in a fresh store and writes it in one file
// write, so a failed replace leaves the previous contents on disk.
func (s *JSONStore) ReplaceAll(snap Snapshot) error {
	if err := s.loaded(); err != nil {
		return err
	}

	staged := newFileStore()
	for _, h := range snap.HygieneHabits {
		staged.HygieneHabits[h.ID] = h
	}
	for _, e := range snap.DopamineEntries {
		staged.DopamineEntries[e.ID] = e
	}
	for _, e := range snap.MoodEntries {
		staged.MoodEntries[e.ID] = e
	}
	for _, c := range snap.HygieneCompletions {
		staged.HygieneCompletions[c.ID] = c
	}
	for _, d := range snap.DailySummaries {
		staged.DailySummaries[d.ID] = d
	}

	previous := s.store
	s.store = staged
	if err := s.save(); err != nil {
		s.store = previous
		return err
	}

	return nil
}

func (s *JSONStore) ClearAll() error {
	return s.ReplaceAll(Snapshot{})
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
