package validation

import (
	"testing"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"valid date", "2026-08-28", false},
		{"empty", "", true},
		{"wrong format", "08/28/2026", true},
		{"not a date", "banana", true},
		{"impossible day", "2026-02-31", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.date)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDate(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
			}
		})
	}
}

func TestValidateStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  constants.DopamineStatus
		wantErr bool
	}{
		{"passed", constants.StatusPassed, false},
		{"failed", constants.StatusFailed, false},
		{"empty", "", true},
		{"unknown", "maybe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStatus(tt.status)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStatus(%q) error = %v, wantErr %v", tt.status, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHabit(t *testing.T) {
	tests := []struct {
		name    string
		habit   models.HygieneHabit
		wantErr bool
	}{
		{"valid", models.HygieneHabit{Name: "Floss", Difficulty: constants.DifficultyEasy}, false},
		{"empty difficulty allowed", models.HygieneHabit{Name: "Floss"}, false},
		{"missing name", models.HygieneHabit{Difficulty: constants.DifficultyEasy}, true},
		{"whitespace name", models.HygieneHabit{Name: "   "}, true},
		{"bad difficulty", models.HygieneHabit{Name: "Floss", Difficulty: "impossible"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHabit(tt.habit)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHabit(%+v) error = %v, wantErr %v", tt.habit, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMoodEntry(t *testing.T) {
	valid := models.MoodEntry{Date: "2026-08-28", Mood: 3, Energy: 3, Numb: 1}

	t.Run("valid entry", func(t *testing.T) {
		if err := ValidateMoodEntry(valid); err != nil {
			t.Errorf("ValidateMoodEntry() error = %v, want nil", err)
		}
	})

	t.Run("bounds", func(t *testing.T) {
		for _, mood := range []int{0, 6, -1} {
			entry := valid
			entry.Mood = mood
			if err := ValidateMoodEntry(entry); err == nil {
				t.Errorf("ValidateMoodEntry() with mood %d should fail", mood)
			}
		}

		entry := valid
		entry.Energy = 0
		if err := ValidateMoodEntry(entry); err == nil {
			t.Error("ValidateMoodEntry() with energy 0 should fail")
		}

		entry = valid
		entry.Numb = 6
		if err := ValidateMoodEntry(entry); err == nil {
			t.Error("ValidateMoodEntry() with numb 6 should fail")
		}
	})

	t.Run("missing date", func(t *testing.T) {
		entry := valid
		entry.Date = ""
		if err := ValidateMoodEntry(entry); err == nil {
			t.Error("ValidateMoodEntry() without date should fail")
		}
	})
}
