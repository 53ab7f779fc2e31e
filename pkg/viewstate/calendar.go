package viewstate

import (
	"context"
	"fmt"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/calendar"
	"tableflip.dev/workout/pkg/store"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/workout"
)

// CalendarState is the visible week. Marks holds the derived status of every
// visible date that has a training day.
type CalendarState struct {
	Page     int
	Title    string
	Days     []calendar.Day
	Selected timeutil.Date
	Marks    map[timeutil.Date]workout.Status
}

// CalendarModel is the view model of the week strip.
type CalendarModel struct {
	*base[CalendarState]

	svc *app.Service

	// Guarded by base.mu.
	pager *calendar.Pager
	days  map[timeutil.Date]workout.TrainingDay
}

// NewCalendarModel shows the current week with today selected.
func NewCalendarModel(ctx context.Context, svc *app.Service) (*CalendarModel, error) {
	if svc == nil || svc.Persistence == nil {
		return nil, errNoService
	}
	m := &CalendarModel{svc: svc, pager: calendar.NewPager(clock(svc))}
	m.base = newBase(svc, m.render)

	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	days, err := store.ObserveDays(ctx, svc.Persistence, m.log)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("viewstate: observe days: %w", err)
	}
	follow(ctx, m.base, days, m.setDays, apply(m.base, m.setDays))
	return m, nil
}

func (m *CalendarModel) setDays(days []workout.TrainingDay) {
	m.days = make(map[timeutil.Date]workout.TrainingDay, len(days))
	for _, d := range days {
		m.days[d.Date] = d
	}
}

func (m *CalendarModel) render() CalendarState {
	now := clock(m.svc)
	today := timeutil.DateOf(now)
	week := m.pager.Week(now)
	marks := make(map[timeutil.Date]workout.Status)
	for _, d := range week {
		if day, ok := m.days[d.Date]; ok {
			marks[d.Date] = day.Status(today)
		}
	}
	return CalendarState{
		Page:     m.pager.Page,
		Title:    calendar.Title(week),
		Days:     week,
		Selected: m.pager.Selected,
		Marks:    marks,
	}
}

// Scroll moves by delta weeks. The selection stays put.
func (m *CalendarModel) Scroll(delta int) {
	m.intent.Lock()
	defer m.intent.Unlock()

	m.update(func() { m.pager.Scroll(delta) })
}

// Select changes the selected date without scrolling.
func (m *CalendarModel) Select(date timeutil.Date) {
	m.intent.Lock()
	defer m.intent.Unlock()

	m.update(func() { m.pager.Select(date) })
}

// Focus scrolls to the week of date and selects it.
func (m *CalendarModel) Focus(date timeutil.Date) {
	m.intent.Lock()
	defer m.intent.Unlock()

	m.update(func() {
		m.pager.ScrollTo(m.pager.Window.PageOf(date))
		m.pager.Select(date)
	})
}

// JumpToToday shows the current week and selects today, both computed at
// call time.
func (m *CalendarModel) JumpToToday() {
	m.intent.Lock()
	defer m.intent.Unlock()

	m.update(func() { m.pager.JumpToToday(clock(m.svc)) })
}

// Render draws the visible week.
func (m *CalendarModel) Render(opts calendar.Options) string {
	s := m.State()
	return calendar.RenderWeek(s.Days, s.Marks, opts)
}
