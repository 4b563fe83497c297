package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/storage"
)

var allTables = []string{
	"dopamine_entries",
	"hygiene_habits",
	"hygiene_completions",
	"mood_entries",
	"daily_completion",
}

// Snapshot reads all five collections in full.
func (s *Store) Snapshot() (storage.Snapshot, error) {
	var snap storage.Snapshot
	var err error

	if snap.DopamineEntries, err = s.GetAllDopamineEntries(); err != nil {
		return storage.Snapshot{}, fmt.Errorf("failed to read dopamine entries: %w", err)
	}
	if snap.HygieneHabits, err = s.GetAllHabits(); err != nil {
		return storage.Snapshot{}, fmt.Errorf("failed to read hygiene habits: %w", err)
	}
	if snap.HygieneCompletions, err = s.GetAllCompletions(); err != nil {
		return storage.Snapshot{}, fmt.Errorf("failed to read hygiene completions: %w", err)
	}
	if snap.DailySummaries, err = s.GetAllDailySummaries(); err != nil {
		return storage.Snapshot{}, fmt.Errorf("failed to read daily completion rows: %w", err)
	}
	if snap.MoodEntries, err = s.GetAllMoodEntries(); err != nil {
		return storage.Snapshot{}, fmt.Errorf("failed to read mood entries: %w", err)
	}

	return snap, nil
}

// ReplaceAll clears every collection and bulk-inserts the snapshot in one
// transaction, so a failed import leaves the database untouched. Habits are
// inserted before completions to keep habit references resolvable, though no
// foreign key enforces them.
func (s *Store) ReplaceAll(snap storage.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range allTables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, h := range snap.HygieneHabits {
		_, err := tx.Exec(`
			INSERT INTO hygiene_habits (id, name, description, sort_order, created_at, category, difficulty, streak)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Description, h.Order, h.CreatedAt.Format(time.RFC3339), h.Category, h.Difficulty, h.Streak)
		if err != nil {
			return fmt.Errorf("failed to insert hygiene habit %s: %w", h.ID, err)
		}
	}

	for _, e := range snap.DopamineEntries {
		_, err := tx.Exec(`
			INSERT INTO dopamine_entries (id, date, status, notes, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.Date, e.Status, e.Notes, e.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert dopamine entry %s: %w", e.ID, err)
		}
	}

	for _, e := range snap.MoodEntries {
		_, err := tx.Exec(`
			INSERT INTO mood_entries (id, date, mood, energy, numb, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Date, e.Mood, e.Energy, e.Numb, e.Notes, e.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert mood entry %s: %w", e.ID, err)
		}
	}

	for _, c := range snap.HygieneCompletions {
		_, err := tx.Exec(`
			INSERT INTO hygiene_completions (id, habit_id, date, completed, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.HabitID, c.Date, c.Completed, c.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert hygiene completion %s: %w", c.ID, err)
		}
	}

	for _, d := range snap.DailySummaries {
		_, err := tx.Exec(`
			INSERT INTO daily_completion (id, date, dopamine_completed, hygiene_completed, total_completion, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			d.ID, d.Date, d.DopamineCompleted, d.HygieneCompleted, d.TotalCompletion, d.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert daily completion row %s: %w", d.ID, err)
		}
	}

	return tx.Commit()
}

// ClearAll wipes every collection in one transaction.
func (s *Store) ClearAll() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range allTables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	return tx.Commit()
}
