package cli

import (
	"testing"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
)

func TestResolveDate(t *testing.T) {
	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ResolveDate("")
		if err != nil {
			t.Fatalf("ResolveDate(\"\") error: %v", err)
		}
		if got != time.Now().Format(constants.DateFormat) {
			t.Errorf("ResolveDate(\"\") = %s, want today", got)
		}
	})

	t.Run("valid date passes through", func(t *testing.T) {
		got, err := ResolveDate("2026-08-28")
		if err != nil {
			t.Fatalf("ResolveDate() error: %v", err)
		}
		if got != "2026-08-28" {
			t.Errorf("ResolveDate() = %s, want 2026-08-28", got)
		}
	})

	t.Run("invalid formats rejected", func(t *testing.T) {
		for _, date := range []string{"28-08-2026", "2026/08/28", "yesterday"} {
			if _, err := ResolveDate(date); err == nil {
				t.Errorf("ResolveDate(%q) should fail", date)
			}
		}
	})
}
