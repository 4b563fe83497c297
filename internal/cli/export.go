package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/lifetrack/internal/backup"
)

type ExportCmd struct {
	Output string `help:"Output file path (default: life_tracker_backup_<date>.json in the current directory)." short:"o" default:""`
}

func (c *ExportCmd) Run(ctx *Context) error {
	now := time.Now()
	path := c.Output
	if path == "" {
		path = backup.DefaultExportFilename(now)
	}

	size, err := backup.Export(ctx.Store, path, now)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Exported data to %s (%s)\n", path, humanize.Bytes(uint64(size)))
	return nil
}

type ImportCmd struct {
	File  string `arg:"" help:"Path to a JSON export file."`
	Force bool   `help:"Skip confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := backup.ValidateImportFile(c.File); err != nil {
		return err
	}

	if !c.Force {
		fmt.Println("WARNING: Importing replaces ALL existing data with the file contents.")
		ok, err := Confirm(fmt.Sprintf("Import from %s?", c.File))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	// Snapshot the database first so a bad import is recoverable
	ctx.PerformAutomaticBackup()

	result, err := backup.Import(ctx.Store, c.File)
	if err != nil {
		return err
	}

	fmt.Println("✓ Import complete:")
	fmt.Printf("  %d dopamine entries\n", result.DopamineEntries)
	fmt.Printf("  %d hygiene habits\n", result.HygieneHabits)
	fmt.Printf("  %d hygiene completions\n", result.HygieneCompletions)
	fmt.Printf("  %d mood entries\n", result.MoodEntries)
	fmt.Printf("  %d daily summaries\n", result.DailySummaries)

	return nil
}
