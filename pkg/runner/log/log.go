package log

import (
	"context"
	"errors"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/printers"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/viewstate"
	"tableflip.dev/workout/pkg/workout"
)

// History prints every training day passing Filter, newest first.
type History struct {
	Service *app.Service
	Filter  viewstate.Filter

	ShowID bool
	JSON   bool
}

func (n *History) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log, no persistence")
	}

	m, err := viewstate.NewHistoryModel(ctx, n.Service)
	if err != nil {
		return err
	}
	defer m.Close()
	m.SetFilter(n.Filter)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	if n.JSON {
		return pp.JSON(m.State())
	}
	pp.NewLine()
	pp.History(m.State())
	return nil
}

// Week prints the week strip and the selected day below it. Without Focus
// the current week is shown. A non-zero Page moves by that many weeks and
// selects the first day shown.
type Week struct {
	Service *app.Service
	Page    int
	Focus   *timeutil.Date

	ShowID bool
	JSON   bool
}

func (n *Week) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show week, no persistence")
	}

	m, err := viewstate.NewCalendarModel(ctx, n.Service)
	if err != nil {
		return err
	}
	defer m.Close()

	if n.Focus != nil {
		m.Focus(*n.Focus)
	} else {
		m.JumpToToday()
	}
	if n.Page != 0 {
		m.Scroll(n.Page)
		m.Select(m.State().Days[0].Date)
	}
	week := m.State()

	day, err := viewstate.NewDayModel(ctx, n.Service, week.Selected)
	if err != nil {
		return err
	}
	defer day.Close()

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	if n.JSON {
		return pp.JSON(struct {
			Week viewstate.CalendarState
			Day  viewstate.DayState
		}{week, day.State()})
	}
	pp.NewLine()
	pp.Week(week)
	pp.Day(day.State())
	return nil
}

// Month prints the month grid of On colored by day status.
type Month struct {
	Service *app.Service
	On      timeutil.Date
}

func (n *Month) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show month, no persistence")
	}

	first := timeutil.NewDate(n.On.Year(), n.On.Month(), 1)
	last := printers.NextMonth(first).AddDays(-1)
	r, err := n.Service.Report(ctx, first, last)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Month(first, n.Service.Today(), marks(r))
	return nil
}

func marks(r app.ReportResult) map[timeutil.Date]workout.Status {
	m := make(map[timeutil.Date]workout.Status, len(r.Days))
	for _, d := range r.Days {
		m[d.Day.Date] = d.Status
	}
	return m
}
