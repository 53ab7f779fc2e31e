package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/workout/pkg/glyph"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/viewstate"
	"tableflip.dev/workout/pkg/workout"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

const (
	dayLayout = "Monday, January 2 2006"
	// nameWidth caps exercise names so the columns stay aligned.
	nameWidth = 32
)

var (
	spacing = strings.Repeat(" ", len("12345  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, singular, plural string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " "+singular)
	default:
		_, _ = c.Fprintln(pp.out(), " "+plural)
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

func statusColor(s workout.Status) *color.Color {
	switch s {
	case workout.StatusCompleted:
		return color.New(color.FgGreen)
	case workout.StatusFailed:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

// DayHeading prints the date with its status and set totals.
func (pp *PrettyPrint) DayHeading(date timeutil.Date, status workout.Status, completed, target int) {
	pp.Title(date.Format(dayLayout))
	if status == "" {
		return
	}
	c := statusColor(status)
	if pp.ShowID {
		_, _ = c.Fprint(pp.out(), spacing)
	}
	_, _ = c.Fprintf(pp.out(), "%s %s", glyph.Status(status), status)
	_, _ = color.New(color.Faint).Fprintf(pp.out(), "  %d/%d sets\n", completed, target)
}

// Day prints one training day as shown by the day screen.
func (pp *PrettyPrint) Day(s viewstate.DayState) {
	pp.DayHeading(s.Date, s.Status, s.Completed, s.Target)
	pp.Exercises(s.Exercises...)
	if s.Reordering {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), "(saving new order)")
	}
}

// Exercises prints one row per exercise.
func (pp *PrettyPrint) Exercises(exercises ...workout.Exercise) {
	if len(exercises) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range exercises {
		name := truncate.StringWithTail(e.Name, nameWidth, "…")
		if e.Done() {
			name = glyph.Strike(name)
		}
		row := []interface{}{glyph.Exercise(e), glyph.Type(e.Type), name, amount(e.Type, e.Reps, e.Sets), fmt.Sprintf("%d/%d", e.CompletedSets, e.Sets), rest(e.Rest)}
		if pp.ShowID {
			row = append([]interface{}{color.New(color.FgHiYellow, color.Italic, color.Faint).Sprint(e.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

func amount(t workout.ExerciseType, reps, sets int) string {
	if t.IsHold() {
		return fmt.Sprintf("%ds × %d", reps, sets)
	}
	return fmt.Sprintf("%d × %d", reps, sets)
}

func rest(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	return "rest " + timeutil.FormatRest(seconds)
}

// History prints the filtered history list.
func (pp *PrettyPrint) History(s viewstate.HistoryState) {
	pp.TitleWithCount("History", len(s.Entries), "day", "days")
	if len(s.Entries) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range s.Entries {
		c := statusColor(e.Status)
		row := []interface{}{c.Sprint(glyph.Status(e.Status)), e.Day.Date.Format(dayLayout), fmt.Sprintf("%d/%d sets", e.Completed, e.Target), c.Sprint(e.Status)}
		if pp.ShowID {
			row = append([]interface{}{e.Day.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

// JSON prints v as indented JSON.
func (pp *PrettyPrint) JSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}
