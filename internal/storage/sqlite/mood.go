package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

func scanMoodEntry(row rowScanner) (models.MoodEntry, error) {
	var e models.MoodEntry
	var createdAt string

	if err := row.Scan(&e.ID, &e.Date, &e.Mood, &e.Energy, &e.Numb, &e.Notes, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MoodEntry{}, storage.ErrNotFound
		}
		return models.MoodEntry{}, err
	}

	var err error
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return e, nil
}

// UpsertMoodEntry inserts the entry, or updates the existing row for its date.
func (s *Store) UpsertMoodEntry(entry models.MoodEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO mood_entries (id, date, mood, energy, numb, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			mood = excluded.mood,
			energy = excluded.energy,
			numb = excluded.numb,
			notes = excluded.notes,
			created_at = excluded.created_at`,
		entry.ID, entry.Date, entry.Mood, entry.Energy, entry.Numb, entry.Notes,
		entry.CreatedAt.Format(time.RFC3339))

	return err
}

func (s *Store) GetMoodEntryByDate(date string) (models.MoodEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, date, mood, energy, numb, notes, created_at
		FROM mood_entries WHERE date = ?`, date)

	return scanMoodEntry(row)
}

func (s *Store) GetAllMoodEntries() ([]models.MoodEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, date, mood, energy, numb, notes, created_at
		FROM mood_entries ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MoodEntry
	for rows.Next() {
		e, err := scanMoodEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *Store) DeleteMoodEntry(id string) error {
	result, err := s.db.Exec("DELETE FROM mood_entries WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("mood entry not found: %s", id)
	}

	return nil
}
