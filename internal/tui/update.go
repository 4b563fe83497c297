package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifetrack/internal/constants"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	// Form states delegate everything to huh
	if m.form != nil {
		return m.updateForm(msg)
	}

	if m.state == constants.StateConfirmClear {
		return m.updateConfirmClear(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, tea.Batch(cmds...)
	}

	// Global keys
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Tab):
		m.state = nextState(m.state)
		return m, nil
	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = prevState(m.state)
		return m, nil
	}

	switch m.state {
	case constants.StateDashboard:
		return m.updateDashboard(keyMsg)
	case constants.StateHabits:
		return m.updateHabits(keyMsg)
	case constants.StateMood:
		return m.updateMood(keyMsg)
	case constants.StateCalendar:
		return m.updateCalendar(keyMsg)
	}

	return m, tea.Batch(cmds...)
}

func nextState(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateDashboard:
		return constants.StateHabits
	case constants.StateHabits:
		return constants.StateMood
	case constants.StateMood:
		return constants.StateCalendar
	default:
		return constants.StateDashboard
	}
}

func prevState(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateDashboard:
		return constants.StateCalendar
	case constants.StateHabits:
		return constants.StateDashboard
	case constants.StateMood:
		return constants.StateHabits
	default:
		return constants.StateMood
	}
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Pass):
		if _, _, err := m.tracker.UpsertEntry(m.today, constants.StatusPassed, ""); err == nil {
			m.refresh()
		}
	case key.Matches(msg, m.keys.Fail):
		if _, _, err := m.tracker.UpsertEntry(m.today, constants.StatusFailed, ""); err == nil {
			m.refresh()
		}
	case msg.String() == "C":
		m.previousState = m.state
		m.state = constants.StateConfirmClear
	}
	return m, nil
}

func (m Model) updateHabits(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.habits)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if m.cursor < len(m.habits) {
			habit := m.habits[m.cursor]
			if _, err := m.tracker.ToggleCompletion(habit.ID, m.today); err == nil {
				m.refresh()
			}
		}
	case key.Matches(msg, m.keys.Add):
		m.habitForm = &HabitFormModel{Difficulty: constants.DifficultyEasy}
		m.form = newHabitForm(m.habitForm)
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateMood(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Mood) {
		form := &MoodFormModel{Mood: 3, Energy: 3, Numb: 1}
		if m.mood != nil {
			form.Mood = m.mood.Mood
			form.Energy = m.mood.Energy
			form.Numb = m.mood.Numb
			form.Notes = m.mood.Notes
		}
		m.moodForm = form
		m.form = newMoodForm(form)
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.calMonth--
		if m.calMonth < 1 {
			m.calMonth = 12
			m.calYear--
		}
		m.refresh()
	case key.Matches(msg, m.keys.Right):
		m.calMonth++
		if m.calMonth > 12 {
			m.calMonth = 1
			m.calYear++
		}
		m.refresh()
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.habitForm = nil
		m.moodForm = nil
		m.formError = ""
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if m.habitForm != nil {
			_, err := m.tracker.AddHabit(m.habitForm.Name, m.habitForm.Description, "", m.habitForm.Difficulty)
			if err != nil {
				m.formError = err.Error()
			} else {
				m.formError = ""
				m.refresh()
			}
			m.habitForm = nil
		}
		if m.moodForm != nil {
			_, _, err := m.tracker.LogMood(m.today, m.moodForm.Mood, m.moodForm.Energy, m.moodForm.Numb, m.moodForm.Notes)
			if err != nil {
				m.formError = err.Error()
			} else {
				m.formError = ""
				m.refresh()
			}
			m.moodForm = nil
		}
		m.form = nil
	case huh.StateAborted:
		m.form = nil
		m.habitForm = nil
		m.moodForm = nil
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmClear(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		if err := m.store.ClearAll(); err == nil {
			m.refresh()
		}
		m.state = m.previousState
	case "n", "esc", "q":
		m.state = m.previousState
	}

	return m, nil
}

func newHabitForm(data *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&data.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&data.Description),
			huh.NewSelect[constants.HabitDifficulty]().
				Title("Difficulty").
				Options(
					huh.NewOption("Easy", constants.DifficultyEasy),
					huh.NewOption("Medium", constants.DifficultyMedium),
					huh.NewOption("Hard", constants.DifficultyHard),
				).
				Value(&data.Difficulty),
		),
	)
}

func newMoodForm(data *MoodFormModel) *huh.Form {
	scale := func() []huh.Option[int] {
		return []huh.Option[int]{
			huh.NewOption("1", 1),
			huh.NewOption("2", 2),
			huh.NewOption("3", 3),
			huh.NewOption("4", 4),
			huh.NewOption("5", 5),
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Mood").
				Options(scale()...).
				Value(&data.Mood),
			huh.NewSelect[int]().
				Title("Energy").
				Options(scale()...).
				Value(&data.Energy),
			huh.NewSelect[int]().
				Title("Numbness").
				Options(scale()...).
				Value(&data.Numb),
			huh.NewInput().
				Title("Notes").
				Value(&data.Notes),
		),
	)
}
