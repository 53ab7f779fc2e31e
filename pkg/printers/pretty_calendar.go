package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/workout/pkg/calendar"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/viewstate"
	"tableflip.dev/workout/pkg/workout"
)

// Week prints the visible week strip of the calendar screen.
func (pp *PrettyPrint) Week(s viewstate.CalendarState) {
	_, _ = fmt.Fprintln(pp.out(), calendar.RenderWeek(s.Days, s.Marks, calendar.DefaultOptions()))
	_, _ = fmt.Fprintln(pp.out(), "")
}

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the month containing then as a Monday-first grid, each day
// colored by the status in marks.
func (pp *PrettyPrint) Month(then timeutil.Date, today timeutil.Date, marks map[timeutil.Date]workout.Status) {
	first := timeutil.NewDate(then.Year(), then.Month(), 1)
	d := StartDay(first)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	for i := 0; i < d; i++ {
		_, _ = fmt.Fprint(pp.out(), "   ")
	}

	days := DaysIn(first)
	for i := 0; i < days; i++ {
		date := first.AddDays(i)
		printer := color.New(color.Faint, color.FgWhite)
		if status, ok := marks[date]; ok {
			printer = statusColor(status).Add(color.Bold)
		}
		if date == today {
			printer = printer.Add(color.Underline)
		}
		_, _ = printer.Fprintf(pp.out(), "%2d", i+1)
		_, _ = fmt.Fprint(pp.out(), " ")

		d++
		if d == calendar.DaysPerWeek {
			d = 0
			_, _ = fmt.Fprint(pp.out(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")
}

// NextMonth returns the first day of the month after then.
func NextMonth(then timeutil.Date) timeutil.Date {
	return timeutil.NewDate(then.Year(), then.Month()+1, 1)
}

// DaysIn returns the number of days in the month of then.
func DaysIn(then timeutil.Date) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay returns the column of the first day of the month of then, with
// Monday as column 0.
func StartDay(then timeutil.Date) int {
	first := timeutil.NewDate(then.Year(), then.Month(), 1)
	return timeutil.DaysBetween(first.WeekStart(), first)
}
