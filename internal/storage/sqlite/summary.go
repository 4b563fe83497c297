package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

func scanSummary(row rowScanner) (models.DailySummary, error) {
	var d models.DailySummary
	var createdAt string

	err := row.Scan(&d.ID, &d.Date, &d.DopamineCompleted, &d.HygieneCompleted, &d.TotalCompletion, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DailySummary{}, storage.ErrNotFound
		}
		return models.DailySummary{}, err
	}

	d.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.DailySummary{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return d, nil
}

// UpsertDailySummary inserts the summary row, or updates the existing row
// for its date.
func (s *Store) UpsertDailySummary(summary models.DailySummary) error {
	_, err := s.db.Exec(`
		INSERT INTO daily_completion (id, date, dopamine_completed, hygiene_completed, total_completion, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			dopamine_completed = excluded.dopamine_completed,
			hygiene_completed = excluded.hygiene_completed,
			total_completion = excluded.total_completion,
			created_at = excluded.created_at`,
		summary.ID, summary.Date, summary.DopamineCompleted, summary.HygieneCompleted,
		summary.TotalCompletion, summary.CreatedAt.Format(time.RFC3339))

	return err
}

func (s *Store) GetDailySummary(date string) (models.DailySummary, error) {
	row := s.db.QueryRow(`
		SELECT id, date, dopamine_completed, hygiene_completed, total_completion, created_at
		FROM daily_completion WHERE date = ?`, date)

	return scanSummary(row)
}

func (s *Store) GetAllDailySummaries() ([]models.DailySummary, error) {
	rows, err := s.db.Query(`
		SELECT id, date, dopamine_completed, hygiene_completed, total_completion, created_at
		FROM daily_completion ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.DailySummary
	for rows.Next() {
		d, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, d)
	}

	return summaries, rows.Err()
}

func (s *Store) DeleteDailySummary(id string) error {
	result, err := s.db.Exec("DELETE FROM daily_completion WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("daily completion row not found: %s", id)
	}

	return nil
}
