package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/tracker"
)

type HabitFormModel struct {
	Name        string
	Description string
	Difficulty  constants.HabitDifficulty
}

type MoodFormModel struct {
	Mood   int
	Energy int
	Numb   int
	Notes  string
}

type Model struct {
	store   storage.Provider
	tracker *tracker.Engine

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	today       string
	entry       *models.DopamineEntry
	habits      []models.HygieneHabit
	completions map[string]bool
	mood        *models.MoodEntry
	current     int
	longest     int
	completion  int

	calYear  int
	calMonth time.Month
	month    tracker.Month

	cursor    int
	form      *huh.Form
	habitForm *HabitFormModel
	moodForm  *MoodFormModel
	formError string

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, engine *tracker.Engine) Model {
	now := time.Now()

	m := Model{
		store:    store,
		tracker:  engine,
		state:    constants.StateDashboard,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		today:    now.Format(constants.DateFormat),
		calYear:  now.Year(),
		calMonth: now.Month(),
	}
	m.refresh()

	return m
}

// refresh reloads everything the views render from the store
func (m *Model) refresh() {
	if entry, err := m.store.GetDopamineEntryByDate(m.today); err == nil {
		m.entry = &entry
	} else {
		m.entry = nil
	}

	habits, err := m.store.GetAllHabits()
	if err != nil {
		habits = []models.HygieneHabit{}
	}
	m.habits = habits

	m.completions = make(map[string]bool, len(habits))
	if completions, err := m.store.GetCompletionsForDate(m.today); err == nil {
		for _, completion := range completions {
			m.completions[completion.HabitID] = completion.Completed
		}
	}

	if entry, err := m.store.GetMoodEntryByDate(m.today); err == nil {
		m.mood = &entry
	} else {
		m.mood = nil
	}

	if streak, err := m.tracker.CurrentStreak(); err == nil {
		m.current = streak
	}
	if streak, err := m.tracker.LongestStreak(); err == nil {
		m.longest = streak
	}
	if pct, err := m.tracker.DayCompletion(m.today); err == nil {
		m.completion = pct
	}

	if month, err := m.tracker.MonthView(m.calYear, m.calMonth); err == nil {
		m.month = month
	}

	if m.cursor >= len(m.habits) {
		m.cursor = 0
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateDashboard:
		keys = append(keys, m.keys.Pass, m.keys.Fail)
	case constants.StateHabits:
		keys = append(keys, m.keys.Enter, m.keys.Add)
	case constants.StateMood:
		keys = append(keys, m.keys.Mood)
	case constants.StateCalendar:
		keys = append(keys, m.keys.Left, m.keys.Right)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateDashboard:
		actions = []key.Binding{m.keys.Pass, m.keys.Fail}
	case constants.StateHabits:
		actions = []key.Binding{m.keys.Add}
	case constants.StateMood:
		actions = []key.Binding{m.keys.Mood}
	case constants.StateCalendar:
		actions = []key.Binding{m.keys.Left, m.keys.Right}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
