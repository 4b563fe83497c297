package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/tracker"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var content string
	switch m.state {
	case constants.StateDashboard:
		content = m.viewDashboard()
	case constants.StateHabits:
		content = m.viewHabits()
	case constants.StateMood:
		content = m.viewMood()
	case constants.StateCalendar:
		content = m.viewCalendar()
	case constants.StateConfirmClear:
		content = m.viewConfirmClear()
	}

	sections := []string{m.viewTabs()}
	if m.formError != "" {
		sections = append(sections, dangerStyle.Render("Error: "+m.formError))
	}
	sections = append(sections, content, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Today", "Habits", "Mood", "Calendar"}
	for i, title := range tabTitles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Today: %s\n\n", m.today))

	switch {
	case m.entry == nil:
		b.WriteString("Dopamine: " + mutedStyle.Render("not logged") + "\n")
	case m.entry.Passed():
		b.WriteString("Dopamine: " + passedStyle.Render("✓ passed") + "\n")
	default:
		b.WriteString("Dopamine: " + failedStyle.Render("✗ failed") + "\n")
	}

	b.WriteString(fmt.Sprintf("Completion: %d%%\n", m.completion))
	b.WriteString(fmt.Sprintf("Streak: %d day(s), longest %d\n", m.current, m.longest))

	done := 0
	for _, habit := range m.habits {
		if m.completions[habit.ID] {
			done++
		}
	}
	b.WriteString(fmt.Sprintf("Hygiene: %d/%d habits\n", done, len(m.habits)))

	if m.mood != nil {
		b.WriteString(fmt.Sprintf("Mood: %d  Energy: %d  Numb: %d\n", m.mood.Mood, m.mood.Energy, m.mood.Numb))
	} else {
		b.WriteString("Mood: " + mutedStyle.Render("not logged") + "\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewHabits() string {
	if len(m.habits) == 0 {
		return docStyle.Render("No habits yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, habit := range m.habits {
		marker := "[ ]"
		if m.completions[habit.ID] {
			marker = "[x]"
		}

		line := fmt.Sprintf("%s %s (%s)", marker, habit.Name, habit.Difficulty)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewMood() string {
	if m.mood == nil {
		return docStyle.Render("No mood logged for today. Press 'm' to log.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Mood for %s\n\n", m.today))
	b.WriteString(fmt.Sprintf("Mood:   %s\n", moodBar(m.mood.Mood)))
	b.WriteString(fmt.Sprintf("Energy: %s\n", moodBar(m.mood.Energy)))
	b.WriteString(fmt.Sprintf("Numb:   %s\n", moodBar(m.mood.Numb)))
	if m.mood.Notes != "" {
		b.WriteString("\n" + m.mood.Notes + "\n")
	}

	return docStyle.Render(b.String())
}

func moodBar(value int) string {
	// Imported data may carry ratings outside the scale; keep the bar in range.
	shown := min(max(value, 0), constants.MoodScaleMax)
	filled := strings.Repeat("●", shown)
	empty := strings.Repeat("○", constants.MoodScaleMax-shown)
	return fmt.Sprintf("%s%s (%d/%d)", filled, mutedStyle.Render(empty), value, constants.MoodScaleMax)
}

func (m Model) viewCalendar() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %d\n", m.month.Month.String(), m.month.Year))
	b.WriteString(mutedStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	for _, week := range m.month.Weeks() {
		var cells []string
		for _, day := range week {
			cells = append(cells, m.renderCalendarDay(day))
		}
		b.WriteString(strings.Join(cells, " ") + "\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) renderCalendarDay(d tracker.Day) string {
	if d.Blank {
		return "   "
	}

	style := lipgloss.NewStyle()
	switch d.Level {
	case tracker.LevelPassed:
		style = passedStyle
	case tracker.LevelWarning:
		style = warningStyle
	case tracker.LevelFailed:
		style = failedStyle
	}
	if d.Today {
		style = style.Underline(true)
	}

	return style.Render(fmt.Sprintf("%3d", d.Number))
}

func (m Model) viewConfirmClear() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete ALL tracked data?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
