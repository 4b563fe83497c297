package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	stats, err := ctx.Tracker.CollectStats()
	if err != nil {
		return err
	}

	current, err := ctx.Tracker.CurrentStreak()
	if err != nil {
		return err
	}
	longest, err := ctx.Tracker.LongestStreak()
	if err != nil {
		return err
	}

	fmt.Println("Stored data:")
	fmt.Printf("  Dopamine entries:    %d\n", stats.DopamineEntries)
	fmt.Printf("  Hygiene habits:      %d\n", stats.HygieneHabits)
	fmt.Printf("  Hygiene completions: %d\n", stats.HygieneCompletions)
	fmt.Printf("  Mood entries:        %d\n", stats.MoodEntries)
	fmt.Printf("  Approximate size:    %s\n", humanize.Bytes(uint64(stats.TotalSizeBytes)))
	fmt.Printf("\nCurrent streak: %d day(s)\n", current)
	fmt.Printf("Longest streak: %d day(s)\n", longest)

	return nil
}

type ClearCmd struct {
	Force bool `help:"Skip confirmation prompts."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if !c.Force {
		fmt.Println("WARNING: This permanently deletes ALL tracked data.")
		ok, err := Confirm("Delete everything?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Clear cancelled.")
			return nil
		}
		ok, err = Confirm("Are you absolutely sure?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Clear cancelled.")
			return nil
		}
	}

	// Snapshot the database first so an accidental clear is recoverable
	ctx.PerformAutomaticBackup()

	if err := ctx.Store.ClearAll(); err != nil {
		return err
	}

	fmt.Println("✓ All data cleared.")
	return nil
}
