package cli

import (
	"fmt"
)

type StatusCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *StatusCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	fmt.Printf("Status for %s\n\n", date)

	if entry, err := ctx.Store.GetDopamineEntryByDate(date); err == nil {
		marker := "✓"
		if !entry.Passed() {
			marker = "✗"
		}
		fmt.Printf("Dopamine: %s %s\n", marker, entry.Status)
	} else {
		fmt.Println("Dopamine: not logged")
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}
	fmt.Println("\nHygiene habits:")
	if len(habits) == 0 {
		fmt.Println("  (none)")
	}
	for _, habit := range habits {
		marker := "[ ]"
		if done, err := ctx.Tracker.IsHabitCompleted(habit.ID, date); err == nil && done {
			marker = "[x]"
		}
		fmt.Printf("  %s %s\n", marker, habit.Name)
	}

	if entry, err := ctx.Store.GetMoodEntryByDate(date); err == nil {
		fmt.Printf("\nMood: %d  Energy: %d  Numb: %d\n", entry.Mood, entry.Energy, entry.Numb)
	} else {
		fmt.Println("\nMood: not logged")
	}

	total, err := ctx.Tracker.DayCompletion(date)
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

	fmt.Printf("\nDay completion: %d%%\n", total)
	fmt.Printf("Streak: %d day(s) (longest: %d)\n", current, longest)

	return nil
}
