package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

func scanDopamineEntry(row rowScanner) (models.DopamineEntry, error) {
	var e models.DopamineEntry
	var createdAt string

	if err := row.Scan(&e.ID, &e.Date, &e.Status, &e.Notes, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DopamineEntry{}, storage.ErrNotFound
		}
		return models.DopamineEntry{}, err
	}

	var err error
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.DopamineEntry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return e, nil
}

// UpsertDopamineEntry inserts the entry, or updates the existing row for its
// date. Date uniqueness is a table constraint, not a check-then-write.
func (s *Store) UpsertDopamineEntry(entry models.DopamineEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO dopamine_entries (id, date, status, notes, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			status = excluded.status,
			notes = excluded.notes,
			created_at = excluded.created_at`,
		entry.ID, entry.Date, entry.Status, entry.Notes, entry.CreatedAt.Format(time.RFC3339))

	return err
}

func (s *Store) GetDopamineEntryByDate(date string) (models.DopamineEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, date, status, notes, created_at
		FROM dopamine_entries WHERE date = ?`, date)

	return scanDopamineEntry(row)
}

func (s *Store) GetAllDopamineEntries() ([]models.DopamineEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, date, status, notes, created_at
		FROM dopamine_entries ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.DopamineEntry
	for rows.Next() {
		e, err := scanDopamineEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *Store) DeleteDopamineEntry(id string) error {
	result, err := s.db.Exec("DELETE FROM dopamine_entries WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("dopamine entry not found: %s", id)
	}

	return nil
}
