package tracker

import (
	"testing"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

func entry(date string, status constants.DopamineStatus) models.DopamineEntry {
	return models.DopamineEntry{
		ID:     "id-" + date,
		Date:   date,
		Status: status,
	}
}

func day(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		t.Fatalf("bad test date %s: %v", date, err)
	}
	return parsed
}

func TestCurrentStreak(t *testing.T) {
	t.Run("empty entries", func(t *testing.T) {
		if got := CurrentStreak(nil, day(t, "2026-08-28")); got != 0 {
			t.Errorf("CurrentStreak() = %d, want 0", got)
		}
	})

	t.Run("three consecutive passed days", func(t *testing.T) {
		entries := []models.DopamineEntry{
			entry("2026-08-26", constants.StatusPassed),
			entry("2026-08-27", constants.StatusPassed),
			entry("2026-08-28", constants.StatusPassed),
		}
		if got := CurrentStreak(entries, day(t, "2026-08-28")); got != 3 {
			t.Errorf("CurrentStreak() = %d, want 3", got)
		}
	})

	t.Run("today not logged", func(t *testing.T) {
		entries := []models.DopamineEntry{
			entry("2026-08-26", constants.StatusPassed),
			entry("2026-08-27", constants.StatusPassed),
		}
		if got := CurrentStreak(entries, day(t, "2026-08-28")); got != 0 {
			t.Errorf("CurrentStreak() = %d, want 0", got)
		}
	})

	t.Run("missing day breaks the streak", func(t *testing.T) {
		entries := []models.DopamineEntry{
			entry("2026-08-24", constants.StatusPassed),
			entry("2026-08-25", constants.StatusPassed),
			// no entry for 2026-08-26
			entry("2026-08-27", constants.StatusPassed),
			entry("2026-08-28", constants.StatusPassed),
		}
		if got := CurrentStreak(entries, day(t, "2026-08-28")); got != 2 {
			t.Errorf("CurrentStreak() = %d, want 2", got)
		}
	})

	t.Run("failed day breaks the streak", func(t *testing.T) {
		entries := []models.DopamineEntry{
			entry("2026-08-26", constants.StatusPassed),
			entry("2026-08-27", constants.StatusFailed),
			entry("2026-08-28", constants.StatusPassed),
		}
		if got := CurrentStreak(entries, day(t, "2026-08-28")); got != 1 {
			t.Errorf("CurrentStreak() = %d, want 1", got)
		}
	})
}

func TestLongestStreak(t *testing.T) {
	t.Run("empty entries", func(t *testing.T) {
		if got := LongestStreak(nil); got != 0 {
			t.Errorf("LongestStreak() = %d, want 0", got)
		}
	})

	t.Run("failed entry resets the run", func(t *testing.T) {
		entries := []models.DopamineEntry{
			entry("2026-08-20", constants.StatusPassed),
			entry("2026-08-21", constants.StatusPassed),
			entry("2026-08-22", constants.StatusFailed),
			entry("2026-08-23", constants.StatusPassed),
		}
		if got := LongestStreak(entries); got != 2 {
			t.Errorf("LongestStreak() = %d, want 2", got)
		}
	})

	t.Run("unsorted input", func(t *testing.T) {
		entries := []models.DopamineEntry{
			entry("2026-08-23", constants.StatusPassed),
			entry("2026-08-21", constants.StatusPassed),
			entry("2026-08-22", constants.StatusFailed),
			entry("2026-08-20", constants.StatusPassed),
		}
		if got := LongestStreak(entries); got != 2 {
			t.Errorf("LongestStreak() = %d, want 2", got)
		}
	})

	// Missing calendar days split the current streak but not the longest one.
	t.Run("gap days do not reset the longest run", func(t *testing.T) {
		entries := []models.DopamineEntry{
			entry("2026-08-20", constants.StatusPassed),
			entry("2026-08-21", constants.StatusPassed),
			// no entry for 2026-08-22
			entry("2026-08-23", constants.StatusPassed),
			entry("2026-08-24", constants.StatusPassed),
		}

		if got := LongestStreak(entries); got != 4 {
			t.Errorf("LongestStreak() = %d, want 4 (gaps skipped)", got)
		}
		if got := CurrentStreak(entries, day(t, "2026-08-24")); got != 2 {
			t.Errorf("CurrentStreak() = %d, want 2 (gap breaks)", got)
		}
	})
}
