package cli

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new hygiene habit."`
	List   HabitListCmd   `cmd:"" help:"List hygiene habits."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its completion history."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Optional description." default:""`
	Category    string `help:"Habit category." default:"personal"`
	Difficulty  string `help:"Difficulty rating." enum:"easy,medium,hard" default:"easy"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit, err := ctx.Tracker.AddHabit(c.Name, c.Description, c.Category, constants.HabitDifficulty(c.Difficulty))
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", habit.Name)
	return nil
}

type HabitListCmd struct {
	Date string `help:"Show completion status for this date (default: today)." default:""`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		marker := "[ ]"
		if done, err := ctx.Tracker.IsHabitCompleted(habit.ID, date); err == nil && done {
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %s (%s)", marker, habit.Name, habit.Difficulty)
		if habit.Description != "" {
			line += "  " + habit.Description
		}
		fmt.Println(line)
	}

	pct, err := ctx.Tracker.HygieneCompletion(date)
	if err != nil {
		return err
	}
	fmt.Printf("\nHygiene completion for %s: %d%%\n", date, pct)

	return nil
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	completed, err := ctx.Tracker.ToggleCompletion(habit.ID, date)
	if err != nil {
		return err
	}

	if completed {
		fmt.Printf("Marked habit %q for %s\n", habit.Name, date)
	} else {
		fmt.Printf("Unmarked habit %q for %s\n", habit.Name, date)
	}

	return nil
}

type HabitDeleteCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Force bool   `help:"Skip confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	completions, err := ctx.Store.GetCompletionsForHabit(habit.ID)
	if err != nil {
		return err
	}

	if !c.Force {
		prompt := fmt.Sprintf("Delete habit %q and its %d completion record(s)?", habit.Name, len(completions))
		ok, err := Confirm(prompt)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := deleteHabitWithHistory(ctx, habit, completions); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

func deleteHabitWithHistory(ctx *Context, habit models.HygieneHabit, completions []models.HygieneCompletion) error {
	for _, completion := range completions {
		if err := ctx.Store.DeleteCompletion(completion.ID); err != nil {
			return err
		}
	}
	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	// Habit count changed, so every affected day's percentage did too
	seen := make(map[string]bool)
	for _, completion := range completions {
		if seen[completion.Date] {
			continue
		}
		seen[completion.Date] = true
		if err := ctx.Tracker.UpdateDailySummary(completion.Date); err != nil {
			return err
		}
	}

	return nil
}
