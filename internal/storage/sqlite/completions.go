package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

func scanCompletion(row rowScanner) (models.HygieneCompletion, error) {
	var c models.HygieneCompletion
	var createdAt string

	if err := row.Scan(&c.ID, &c.HabitID, &c.Date, &c.Completed, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HygieneCompletion{}, storage.ErrNotFound
		}
		return models.HygieneCompletion{}, err
	}

	var err error
	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.HygieneCompletion{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return c, nil
}

// UpsertCompletion inserts the completion, or updates the existing row for
// its (habit, date) pair.
func (s *Store) UpsertCompletion(completion models.HygieneCompletion) error {
	_, err := s.db.Exec(`
		INSERT INTO hygiene_completions (id, habit_id, date, completed, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, date) DO UPDATE SET
			completed = excluded.completed,
			created_at = excluded.created_at`,
		completion.ID, completion.HabitID, completion.Date, completion.Completed,
		completion.CreatedAt.Format(time.RFC3339))

	return err
}

func (s *Store) GetCompletion(habitID, date string) (models.HygieneCompletion, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, date, completed, created_at
		FROM hygiene_completions WHERE habit_id = ? AND date = ?`, habitID, date)

	return scanCompletion(row)
}

func (s *Store) GetCompletionsForDate(date string) ([]models.HygieneCompletion, error) {
	return s.queryCompletions(`
		SELECT id, habit_id, date, completed, created_at
		FROM hygiene_completions WHERE date = ? ORDER BY created_at`, date)
}

func (s *Store) GetCompletionsForHabit(habitID string) ([]models.HygieneCompletion, error) {
	return s.queryCompletions(`
		SELECT id, habit_id, date, completed, created_at
		FROM hygiene_completions WHERE habit_id = ? ORDER BY date`, habitID)
}

func (s *Store) GetAllCompletions() ([]models.HygieneCompletion, error) {
	return s.queryCompletions(`
		SELECT id, habit_id, date, completed, created_at
		FROM hygiene_completions ORDER BY date`)
}

func (s *Store) queryCompletions(query string, args ...any) ([]models.HygieneCompletion, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.HygieneCompletion
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}

	return completions, rows.Err()
}

func (s *Store) DeleteCompletion(id string) error {
	result, err := s.db.Exec("DELETE FROM hygiene_completions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("hygiene completion not found: %s", id)
	}

	return nil
}
