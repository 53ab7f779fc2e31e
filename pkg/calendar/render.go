package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/workout"
)

// Options controls week strip styling.
type Options struct {
	TitleStyle     lipgloss.Style
	HeaderStyle    lipgloss.Style
	EmptyStyle     lipgloss.Style
	PendingStyle   lipgloss.Style
	CompletedStyle lipgloss.Style
	FailedStyle    lipgloss.Style
	TodayStyle     lipgloss.Style
	SelectedStyle  lipgloss.Style
	ShowHeader     bool
}

// DefaultOptions returns the styling used for week rendering.
func DefaultOptions() Options {
	return Options{
		TitleStyle:     lipgloss.NewStyle().Bold(true),
		HeaderStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		PendingStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		CompletedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		FailedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		TodayStyle:     lipgloss.NewStyle().Underline(true),
		SelectedStyle:  lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		ShowHeader:     true,
	}
}

// Title names the month(s) a week spans, e.g. "May 2024" or "Apr/May 2024".
func Title(days []Day) string {
	if len(days) == 0 {
		return ""
	}
	first, last := days[0].Date, days[len(days)-1].Date
	switch {
	case first.Year() != last.Year():
		return first.Format("Jan 2006") + "/" + last.Format("Jan 2006")
	case first.Month() != last.Month():
		return first.Format("Jan") + "/" + last.Format("Jan 2006")
	default:
		return first.Format("January 2006")
	}
}

// RenderWeek produces a multi-line strip for days. Days present in marks have
// training scheduled and are styled by their status.
func RenderWeek(days []Day, marks map[timeutil.Date]workout.Status, opts Options) string {
	if len(days) == 0 {
		return ""
	}
	lines := []string{opts.TitleStyle.Render(Title(days))}
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Mo Tu We Th Fr Sa Su"))
	}
	cells := make([]string, 0, len(days))
	for _, d := range days {
		status, ok := marks[d.Date]
		cells = append(cells, renderDay(d, status, ok, opts))
	}
	lines = append(lines, strings.Join(cells, " "))
	return strings.Join(lines, "\n")
}

func renderDay(info Day, status workout.Status, scheduled bool, opts Options) string {
	text := fmt.Sprintf("%2d", info.Date.Day())

	style := opts.EmptyStyle
	if scheduled {
		switch status {
		case workout.StatusCompleted:
			style = opts.CompletedStyle
		case workout.StatusFailed:
			style = opts.FailedStyle
		default:
			style = opts.PendingStyle
		}
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}
