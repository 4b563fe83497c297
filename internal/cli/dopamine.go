package cli

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/constants"
)

type DopamineCmd struct {
	Log    DopamineLogCmd    `cmd:"" help:"Log a pass/fail result for a day."`
	List   DopamineListCmd   `cmd:"" help:"List dopamine entries."`
	Delete DopamineDeleteCmd `cmd:"" help:"Delete the entry for a day."`
}

type DopamineLogCmd struct {
	Status string `arg:"" enum:"passed,failed,pass,fail" help:"Result for the day (passed or failed)."`
	Date   string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Notes  string `help:"Optional notes for this entry." default:""`
}

func (c *DopamineLogCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	status := constants.StatusPassed
	if c.Status == "failed" || c.Status == "fail" {
		status = constants.StatusFailed
	}

	entry, updated, err := ctx.Tracker.UpsertEntry(date, status, c.Notes)
	if err != nil {
		return err
	}

	verb := "Logged"
	if updated {
		verb = "Updated"
	}
	fmt.Printf("%s %s for %s\n", verb, entry.Status, entry.Date)

	streak, err := ctx.Tracker.CurrentStreak()
	if err != nil {
		return err
	}
	fmt.Printf("Current streak: %d day(s)\n", streak)

	return nil
}

type DopamineListCmd struct {
	Limit int `help:"Maximum number of entries to show (0 for all)." default:"30"`
}

func (c *DopamineListCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetAllDopamineEntries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No dopamine entries found.")
		return nil
	}

	// Newest first
	start := 0
	if c.Limit > 0 && len(entries) > c.Limit {
		start = len(entries) - c.Limit
	}
	for i := len(entries) - 1; i >= start; i-- {
		entry := entries[i]
		marker := "✓"
		if !entry.Passed() {
			marker = "✗"
		}
		line := fmt.Sprintf("%s  %s %s", entry.Date, marker, entry.Status)
		if entry.Notes != "" {
			line += "  " + entry.Notes
		}
		fmt.Println(line)
	}

	return nil
}

type DopamineDeleteCmd struct {
	Date string `arg:"" help:"Date of the entry to delete (YYYY-MM-DD)."`
}

func (c *DopamineDeleteCmd) Run(ctx *Context) error {
	entry, err := ctx.Store.GetDopamineEntryByDate(c.Date)
	if err != nil {
		return fmt.Errorf("no dopamine entry for %s", c.Date)
	}

	if err := ctx.Store.DeleteDopamineEntry(entry.ID); err != nil {
		return err
	}

	if err := ctx.Tracker.UpdateDailySummary(c.Date); err != nil {
		return err
	}

	fmt.Printf("Deleted dopamine entry for %s\n", c.Date)
	return nil
}
