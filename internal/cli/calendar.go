package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifetrack/internal/tracker"
)

var (
	calHeaderStyle  = lipgloss.NewStyle().Bold(true)
	calPassedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	calWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	calFailedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type CalendarCmd struct {
	Month int `help:"Month to display (1-12, default: current)." default:"0"`
	Year  int `help:"Year to display (default: current)." default:"0"`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	now := time.Now()
	year := c.Year
	if year == 0 {
		year = now.Year()
	}
	month := time.Month(c.Month)
	if c.Month == 0 {
		month = now.Month()
	}
	if c.Month < 0 || c.Month > 12 {
		return fmt.Errorf("invalid month: %d", c.Month)
	}

	view, err := ctx.Tracker.MonthView(year, month)
	if err != nil {
		return err
	}

	fmt.Println(RenderMonth(view))
	return nil
}

// RenderMonth formats a month grid with one colored cell per day
func RenderMonth(m tracker.Month) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", m.Month.String(), m.Year)
	b.WriteString(calHeaderStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(calHeaderStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	for _, week := range m.Weeks() {
		var cells []string
		for _, day := range week {
			cells = append(cells, renderDay(day))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(calPassedStyle.Render("■") + " 75%+   ")
	b.WriteString(calWarningStyle.Render("■") + " 50-74%   ")
	b.WriteString(calFailedStyle.Render("■") + " 1-49%")

	return b.String()
}

func renderDay(d tracker.Day) string {
	if d.Blank {
		return "   "
	}

	style := lipgloss.NewStyle()
	switch d.Level {
	case tracker.LevelPassed:
		style = calPassedStyle
	case tracker.LevelWarning:
		style = calWarningStyle
	case tracker.LevelFailed:
		style = calFailedStyle
	}
	if d.Today {
		style = style.Bold(true).Underline(true)
	}

	return style.Render(fmt.Sprintf("%3d", d.Number))
}
