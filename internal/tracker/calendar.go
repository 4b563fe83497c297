package tracker

import (
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
)

// CompletionLevel classifies a day cell for display.
type CompletionLevel int

const (
	LevelNone    CompletionLevel = iota // no recorded activity
	LevelFailed                         // >0% but below the warning threshold
	LevelWarning                        // at least 50%
	LevelPassed                         // at least 75%
)

// Day is one cell of a month grid. Blank cells pad the first week so that
// day-of-week columns line up.
type Day struct {
	Blank      bool
	Date       string // YYYY-MM-DD, empty for blank cells
	Number     int
	Today      bool
	Completion int
	Level      CompletionLevel
}

// Month is a calendar month laid out for rendering: leading blank cells
// followed by one cell per day, Sunday-first.
type Month struct {
	Year  int
	Month time.Month
	Days  []Day
}

func levelFor(completion int) CompletionLevel {
	switch {
	case completion >= constants.CalendarPassedThreshold:
		return LevelPassed
	case completion >= constants.CalendarWarningThreshold:
		return LevelWarning
	case completion > 0:
		return LevelFailed
	default:
		return LevelNone
	}
}

// BuildMonth lays out the given month with per-day completion percentages.
// today is the YYYY-MM-DD date to mark; completion maps date strings to
// percentages and may omit days with no activity.
func BuildMonth(year int, month time.Month, today string, completion map[string]int) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	m := Month{
		Year:  year,
		Month: month,
		Days:  make([]Day, 0, int(first.Weekday())+daysInMonth),
	}

	for i := 0; i < int(first.Weekday()); i++ {
		m.Days = append(m.Days, Day{Blank: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format(constants.DateFormat)
		pct := completion[date]
		m.Days = append(m.Days, Day{
			Date:       date,
			Number:     day,
			Today:      date == today,
			Completion: pct,
			Level:      levelFor(pct),
		})
	}

	return m
}

// Weeks splits the grid into rows of seven cells, padding the final week
// with blanks.
func (m Month) Weeks() [][]Day {
	var weeks [][]Day
	for start := 0; start < len(m.Days); start += 7 {
		end := start + 7
		if end > len(m.Days) {
			end = len(m.Days)
		}
		week := make([]Day, 7)
		copy(week, m.Days[start:end])
		for i := end - start; i < 7; i++ {
			week[i] = Day{Blank: true}
		}
		weeks = append(weeks, week)
	}
	return weeks
}
