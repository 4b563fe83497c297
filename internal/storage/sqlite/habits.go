package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

func scanHabit(row rowScanner) (models.HygieneHabit, error) {
	var h models.HygieneHabit
	var createdAt string

	err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Order, &createdAt, &h.Category, &h.Difficulty, &h.Streak)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HygieneHabit{}, storage.ErrNotFound
		}
		return models.HygieneHabit{}, err
	}

	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.HygieneHabit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return h, nil
}

func (s *Store) AddHabit(habit models.HygieneHabit) error {
	return s.UpdateHabit(habit)
}

func (s *Store) GetHabit(id string) (models.HygieneHabit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, description, sort_order, created_at, category, difficulty, streak
		FROM hygiene_habits WHERE id = ?`, id)

	return scanHabit(row)
}

func (s *Store) GetHabitByName(name string) (models.HygieneHabit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, description, sort_order, created_at, category, difficulty, streak
		FROM hygiene_habits WHERE name = ?`, name)

	return scanHabit(row)
}

func (s *Store) GetAllHabits() ([]models.HygieneHabit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, sort_order, created_at, category, difficulty, streak
		FROM hygiene_habits ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.HygieneHabit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.HygieneHabit) error {
	_, err := s.db.Exec(`
		INSERT INTO hygiene_habits (id, name, description, sort_order, created_at, category, difficulty, streak)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			sort_order = excluded.sort_order,
			category = excluded.category,
			difficulty = excluded.difficulty,
			streak = excluded.streak`,
		habit.ID, habit.Name, habit.Description, habit.Order,
		habit.CreatedAt.Format(time.RFC3339), habit.Category, habit.Difficulty, habit.Streak)

	return err
}

func (s *Store) DeleteHabit(id string) error {
	result, err := s.db.Exec("DELETE FROM hygiene_habits WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found: %s", id)
	}

	return nil
}

func (s *Store) MaxHabitOrder() (int, error) {
	var max sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(sort_order) FROM hygiene_habits").Scan(&max); err != nil {
		return 0, err
	}
	if !max.Valid {
		return 0, nil
	}
	return int(max.Int64), nil
}
