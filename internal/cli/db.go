package cli

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/constants"
)

// DbCmd exposes raw record access for troubleshooting
type DbCmd struct {
	List   DbListCmd   `cmd:"" help:"List raw records in a collection."`
	Delete DbDeleteCmd `cmd:"" help:"Delete a record by id."`
}

type DbListCmd struct {
	Collection string `arg:"" enum:"dopamineEntries,hygieneHabits,moodEntries,hygieneCompletions,dailyCompletion" help:"Collection to list."`
}

func (c *DbListCmd) Run(ctx *Context) error {
	switch c.Collection {
	case constants.CollectionDopamine:
		entries, err := ctx.Store.GetAllDopamineEntries()
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  %s  %s\n", e.ID, e.Date, e.Status)
		}
	case constants.CollectionHabits:
		habits, err := ctx.Store.GetAllHabits()
		if err != nil {
			return err
		}
		for _, h := range habits {
			fmt.Printf("%s  %d  %s\n", h.ID, h.Order, h.Name)
		}
	case constants.CollectionMood:
		entries, err := ctx.Store.GetAllMoodEntries()
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  %s  mood=%d energy=%d numb=%d\n", e.ID, e.Date, e.Mood, e.Energy, e.Numb)
		}
	case constants.CollectionCompletions:
		completions, err := ctx.Store.GetAllCompletions()
		if err != nil {
			return err
		}
		for _, cm := range completions {
			fmt.Printf("%s  %s  habit=%s completed=%t\n", cm.ID, cm.Date, cm.HabitID, cm.Completed)
		}
	case constants.CollectionDaily:
		summaries, err := ctx.Store.GetAllDailySummaries()
		if err != nil {
			return err
		}
		for _, s := range summaries {
			fmt.Printf("%s  %s  dopamine=%t hygiene=%t total=%d%%\n", s.ID, s.Date, s.DopamineCompleted, s.HygieneCompleted, s.TotalCompletion)
		}
	}

	return nil
}

type DbDeleteCmd struct {
	Collection string `arg:"" enum:"dopamineEntries,hygieneHabits,moodEntries,hygieneCompletions,dailyCompletion" help:"Collection holding the record."`
	ID         string `arg:"" help:"Record id."`
}

func (c *DbDeleteCmd) Run(ctx *Context) error {
	var err error
	switch c.Collection {
	case constants.CollectionDopamine:
		err = ctx.Store.DeleteDopamineEntry(c.ID)
	case constants.CollectionHabits:
		err = ctx.Store.DeleteHabit(c.ID)
	case constants.CollectionMood:
		err = ctx.Store.DeleteMoodEntry(c.ID)
	case constants.CollectionCompletions:
		err = ctx.Store.DeleteCompletion(c.ID)
	case constants.CollectionDaily:
		err = ctx.Store.DeleteDailySummary(c.ID)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Deleted %s record %s\n", c.Collection, c.ID)
	return nil
}
