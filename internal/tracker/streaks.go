package tracker

import (
	"sort"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

// CurrentStreak returns the number of consecutive passed days ending at asOf,
// walking backward day by day for at most StreakLookbackDays. A day with no
// entry breaks the streak the same way a failed day does.
func CurrentStreak(entries []models.DopamineEntry, asOf time.Time) int {
	byDate := make(map[string]models.DopamineEntry, len(entries))
	for _, entry := range entries {
		byDate[entry.Date] = entry
	}

	streak := 0
	for i := 0; i < constants.StreakLookbackDays; i++ {
		date := asOf.AddDate(0, 0, -i).Format(constants.DateFormat)
		entry, ok := byDate[date]
		if !ok || !entry.Passed() {
			break
		}
		streak++
	}

	return streak
}

// LongestStreak returns the longest run of consecutive passed entries in date
// order. A failed entry resets the run; dates with no entry are absent from
// the scan and neither break nor extend it. Unlike CurrentStreak, a missing
// day does not break the run.
func LongestStreak(entries []models.DopamineEntry) int {
	sorted := make([]models.DopamineEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	longest := 0
	current := 0
	for _, entry := range sorted {
		if entry.Passed() {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}

	return longest
}
