package cli

import (
	"fmt"
)

type MoodCmd struct {
	Log  MoodLogCmd  `cmd:"" help:"Log mood, energy, and numbness for a day."`
	List MoodListCmd `cmd:"" help:"List mood entries."`
}

type MoodLogCmd struct {
	Mood   int    `arg:"" help:"Mood rating (1-5)."`
	Energy int    `help:"Energy rating (1-5)." default:"3"`
	Numb   int    `help:"Numbness rating (1-5)." default:"1"`
	Date   string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Notes  string `help:"Optional notes for this entry." default:""`
}

func (c *MoodLogCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	entry, updated, err := ctx.Tracker.LogMood(date, c.Mood, c.Energy, c.Numb, c.Notes)
	if err != nil {
		return err
	}

	verb := "Logged"
	if updated {
		verb = "Updated"
	}
	fmt.Printf("%s mood for %s: mood %d, energy %d, numb %d\n", verb, entry.Date, entry.Mood, entry.Energy, entry.Numb)

	return nil
}

type MoodListCmd struct {
	Limit int `help:"Maximum number of entries to show (0 for all)." default:"30"`
}

func (c *MoodListCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetAllMoodEntries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No mood entries found.")
		return nil
	}

	for i, entry := range entries {
		if c.Limit > 0 && i >= c.Limit {
			break
		}
		line := fmt.Sprintf("%s  mood %d  energy %d  numb %d", entry.Date, entry.Mood, entry.Energy, entry.Numb)
		if entry.Notes != "" {
			line += "  " + entry.Notes
		}
		fmt.Println(line)
	}

	return nil
}
