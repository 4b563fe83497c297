package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/cli/backups"
	"github.com/julianstephens/lifetrack/internal/cli/system"
	"github.com/julianstephens/lifetrack/internal/constants"
	errs "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
	"github.com/julianstephens/lifetrack/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json extension selects the JSON backend instead of SQLite." type:"path" default:"~/.config/lifetrack/lifetrack.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd  `cmd:"" help:"Initialize lifetrack storage."`
	Tui      system.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Status   cli.StatusCmd   `cmd:"" help:"Show today's dopamine, hygiene, and mood status."`
	Dopamine cli.DopamineCmd `cmd:"" help:"Track daily pass/fail results."`
	Habit    cli.HabitCmd    `cmd:"" help:"Manage hygiene habits."`
	Mood     cli.MoodCmd     `cmd:"" help:"Track mood, energy, and numbness."`
	Calendar cli.CalendarCmd `cmd:"" help:"Show a monthly completion calendar."`
	Export   cli.ExportCmd   `cmd:"" help:"Export all data to a JSON file."`
	Import   cli.ImportCmd   `cmd:"" help:"Replace all data with a JSON export."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show data statistics and streaks."`
	Clear    cli.ClearCmd    `cmd:"" help:"Delete all tracked data."`
	Db       cli.DbCmd       `cmd:"" help:"Inspect raw records."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit and mood tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Select storage backend by file extension
	var store storage.Provider
	if strings.EqualFold(filepath.Ext(CLI.Config), ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = sqlite.NewStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(store),
	}

	// Load the store before running the command (init handles its own loading)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errs.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errs.Fatal(err)
	}
}
