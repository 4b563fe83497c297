package tui

import (
	"strings"
	"testing"
)

func TestMoodBarOutOfRangeRatings(t *testing.T) {
	cases := map[string]struct {
		value  int
		filled int
	}{
		"min":         {1, 1},
		"max":         {5, 5},
		"zero":        {0, 0},
		"above scale": {7, 5},
		"negative":    {-2, 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			bar := moodBar(tc.value)
			if got := strings.Count(bar, "●"); got != tc.filled {
				t.Errorf("moodBar(%d) has %d filled dots, want %d", tc.value, got, tc.filled)
			}
			if got := strings.Count(bar, "○"); got != 5-tc.filled {
				t.Errorf("moodBar(%d) has %d empty dots, want %d", tc.value, got, 5-tc.filled)
			}
		})
	}
}
