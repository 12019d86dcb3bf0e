package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

const (
	cellWidth = 6
	barWidth  = 20
)

var (
	dayHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8")).Width(cellWidth).Align(lipgloss.Center)
	dayStyle       = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	todayStyle     = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Bold(true).Foreground(lipgloss.Color("2"))
	selectedStyle  = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	filledStyle    = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Foreground(lipgloss.Color("2"))
	emptyStyle     = lipgloss.NewStyle().Width(cellWidth)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	barStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	labelStyle     = lipgloss.NewStyle().Width(38)
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("2")).Padding(0, 1)
)

// RenderMonth draws the grid seven cells per row. Filled days carry a '*'
// and the selected day is bracketed so both survive a colourless terminal.
func RenderMonth(view *domain.MonthView) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(" " + view.Title))
	sb.WriteString("\n\n")

	for _, d := range view.Weekdays {
		sb.WriteString(dayHeaderStyle.Render(d))
	}
	sb.WriteString("\n")

	for i, cell := range view.Cells {
		sb.WriteString(renderCell(cell))
		if i%7 == 6 {
			sb.WriteString("\n")
		}
	}
	if len(view.Cells)%7 != 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render(fmt.Sprintf(" %d of %d entries filled this month", view.FilledDays, view.EntryCount)))
	sb.WriteString("\n")

	return sb.String()
}

func renderCell(c domain.CalendarCell) string {
	if c.IsPadding() {
		return emptyStyle.Render("")
	}

	text := fmt.Sprintf("%2d", c.Day)
	if c.IsFilled {
		text += "*"
	}

	switch {
	case c.IsSelected:
		return selectedStyle.Render("[" + text + "]")
	case c.IsToday:
		return todayStyle.Render(text)
	case c.IsFilled:
		return filledStyle.Render(text)
	default:
		return dayStyle.Render(text)
	}
}

func RenderStats(s *domain.HabitSummary) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Habit statistics"))
	sb.WriteString("\n\n")

	if s.TotalDays == 0 {
		sb.WriteString(mutedStyle.Render("No entries yet. Fill in your first day to see statistics."))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, st := range s.Stats {
		filled := st.Percentage * barWidth / 100
		bar := barStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", barWidth-filled))
		fmt.Fprintf(&sb, "%s %s %3d%% (%d)\n", labelStyle.Render(st.Label), bar, st.Percentage, st.Count)
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Days recorded:         %d\n", s.TotalDays)
	fmt.Fprintf(&sb, "Eco actions:           %d\n", s.TotalHabitActions)
	fmt.Fprintf(&sb, "Average actions a day: %d\n", s.AveragePerDay)

	if s.Streak != nil {
		fmt.Fprintf(&sb, "Current streak:        %d (longest %d)\n", s.Streak.Current, s.Streak.Longest)
	}

	if s.Encouragement != nil {
		sb.WriteString("\n")
		sb.WriteString(boxStyle.Render(s.Encouragement.Message))
		sb.WriteString("\n")
	}

	return sb.String()
}

func RenderContent(c domain.DailyContent) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Quote of the day"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "“%s”\n", c.Quote.Text)
	if c.Quote.Author != "" {
		sb.WriteString(mutedStyle.Render("  - " + c.Quote.Author))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render("Did you know?"))
	sb.WriteString("\n")
	sb.WriteString(c.Fact)
	sb.WriteString("\n\n")

	sb.WriteString(titleStyle.Render("Tip"))
	sb.WriteString("\n")
	sb.WriteString(c.Tip)
	sb.WriteString("\n")

	return sb.String()
}

// RenderEntry lists the catalog as a checklist for one day.
func RenderEntry(e *domain.DayEntry, catalog domain.Catalog) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(e.Date))
	sb.WriteString("\n")
	if e.Goal != "" {
		fmt.Fprintf(&sb, "Goal: %s\n", e.Goal)
	}

	for _, h := range catalog {
		mark := "[ ]"
		if e.HasHabit(h.ID) {
			mark = barStyle.Render("[x]")
		}
		fmt.Fprintf(&sb, "%s %s\n", mark, h.Label)
	}

	return sb.String()
}
