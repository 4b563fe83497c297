package tracker

import (
	"testing"
	"time"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		completion int
		want       CompletionLevel
	}{
		{0, LevelNone},
		{1, LevelFailed},
		{49, LevelFailed},
		{50, LevelWarning},
		{74, LevelWarning},
		{75, LevelPassed},
		{100, LevelPassed},
	}

	for _, tt := range tests {
		if got := levelFor(tt.completion); got != tt.want {
			t.Errorf("levelFor(%d) = %v, want %v", tt.completion, got, tt.want)
		}
	}
}

func TestBuildMonth(t *testing.T) {
	// August 2026 starts on a Saturday and has 31 days
	m := BuildMonth(2026, time.August, "2026-08-28", map[string]int{
		"2026-08-01": 80,
		"2026-08-02": 50,
		"2026-08-03": 10,
	})

	if len(m.Days) != 6+31 {
		t.Fatalf("len(Days) = %d, want 37 (6 leading blanks + 31 days)", len(m.Days))
	}

	for i := 0; i < 6; i++ {
		if !m.Days[i].Blank {
			t.Errorf("Days[%d].Blank = false, want true", i)
		}
	}

	first := m.Days[6]
	if first.Number != 1 || first.Date != "2026-08-01" {
		t.Errorf("first day = %+v, want day 1 on 2026-08-01", first)
	}
	if first.Level != LevelPassed {
		t.Errorf("first day level = %v, want LevelPassed", first.Level)
	}
	if m.Days[7].Level != LevelWarning {
		t.Errorf("day 2 level = %v, want LevelWarning", m.Days[7].Level)
	}
	if m.Days[8].Level != LevelFailed {
		t.Errorf("day 3 level = %v, want LevelFailed", m.Days[8].Level)
	}
	if m.Days[9].Level != LevelNone {
		t.Errorf("day 4 level = %v, want LevelNone", m.Days[9].Level)
	}

	today := m.Days[6+27]
	if !today.Today || today.Number != 28 {
		t.Errorf("Days[33] = %+v, want today marker on day 28", today)
	}
}

func TestMonthWeeks(t *testing.T) {
	m := BuildMonth(2026, time.August, "", nil)

	weeks := m.Weeks()
	if len(weeks) != 6 {
		t.Fatalf("len(Weeks()) = %d, want 6", len(weeks))
	}

	for i, week := range weeks {
		if len(week) != 7 {
			t.Errorf("week %d has %d cells, want 7", i, len(week))
		}
	}

	// 37 cells in 6 rows of 7 leaves 5 trailing blanks
	last := weeks[len(weeks)-1]
	if !last[6].Blank {
		t.Error("final cell should be blank padding")
	}
	if last[1].Number != 31 {
		t.Errorf("last day cell = %+v, want day 31", last[1])
	}
}
