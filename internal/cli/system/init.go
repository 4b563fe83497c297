package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/lifetrack/internal/backup"
	"github.com/julianstephens/lifetrack/internal/cli"
)

type InitCmd struct {
	Force bool   `help:"Force reset by deleting existing storage before initialization."`
	From  string `help:"JSON export file to load after initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			// Close first to prevent file locking issues
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized lifetrack storage at: %s\n", ctx.Store.GetConfigPath())

	if c.From != "" {
		fmt.Printf("Loading data from: %s\n", c.From)
		result, err := backup.Import(ctx.Store, c.From)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		fmt.Printf("Loaded %d dopamine entries, %d habits, %d mood entries\n",
			result.DopamineEntries, result.HygieneHabits, result.MoodEntries)
	}

	return nil
}
