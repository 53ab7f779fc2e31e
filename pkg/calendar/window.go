// Package calendar maps an effectively infinite page index onto Monday to
// Sunday weeks, and renders a week as a styled strip.
package calendar

import (
	"math"
	"time"

	"tableflip.dev/workout/pkg/timeutil"
)

const (
	// PageCount bounds the virtual page space. Pages are [0, PageCount).
	PageCount = math.MaxInt32
	// AnchorPage is the page showing the week the window was built in.
	AnchorPage = PageCount / 2
	// DaysPerWeek is the length of a page.
	DaysPerWeek = 7
)

// Day is one cell of a rendered week.
type Day struct {
	Date       timeutil.Date
	IsToday    bool
	IsSelected bool
}

// WeekFor returns the seven dates, Monday first, shown on page.
func WeekFor(page, anchorPage int, anchorWeekStart timeutil.Date) []timeutil.Date {
	start := anchorWeekStart.WeekStart().AddWeeks(page - anchorPage)
	week := make([]timeutil.Date, DaysPerWeek)
	for i := range week {
		week[i] = start.AddDays(i)
	}
	return week
}

// Window anchors the page space on a real week.
type Window struct {
	AnchorPage      int
	AnchorWeekStart timeutil.Date
}

// NewWindow anchors AnchorPage on the week containing now.
func NewWindow(now time.Time) Window {
	return Window{
		AnchorPage:      AnchorPage,
		AnchorWeekStart: timeutil.DateOf(now).WeekStart(),
	}
}

// Dates returns the dates on page.
func (w Window) Dates(page int) []timeutil.Date {
	return WeekFor(page, w.AnchorPage, w.AnchorWeekStart)
}

// Week returns the cells of page flagged against today and selected.
func (w Window) Week(page int, today, selected timeutil.Date) []Day {
	dates := w.Dates(page)
	days := make([]Day, len(dates))
	for i, d := range dates {
		days[i] = Day{
			Date:       d,
			IsToday:    d == today,
			IsSelected: !selected.IsZero() && d == selected,
		}
	}
	return days
}

// PageOf returns the page that shows date.
func (w Window) PageOf(date timeutil.Date) int {
	return w.AnchorPage + timeutil.WeeksBetween(w.AnchorWeekStart, date)
}

// JumpToToday returns the page showing now and today's date. It is computed
// on every call since now moves across sessions.
func (w Window) JumpToToday(now time.Time) (int, timeutil.Date) {
	today := timeutil.DateOf(now)
	return w.PageOf(today), today
}

// Pager tracks the visible page and the selected date. The two only move
// together through JumpToToday.
type Pager struct {
	Window   Window
	Page     int
	Selected timeutil.Date
}

// NewPager shows the current week with today selected.
func NewPager(now time.Time) *Pager {
	w := NewWindow(now)
	page, today := w.JumpToToday(now)
	return &Pager{Window: w, Page: page, Selected: today}
}

// Scroll moves by delta pages without touching the selection. The page is
// clamped to the page space.
func (p *Pager) Scroll(delta int) {
	page := int64(p.Page) + int64(delta)
	switch {
	case page < 0:
		page = 0
	case page >= PageCount:
		page = PageCount - 1
	}
	p.Page = int(page)
}

// ScrollTo shows page without touching the selection.
func (p *Pager) ScrollTo(page int) {
	p.Scroll(page - p.Page)
}

// Select changes the selection without scrolling.
func (p *Pager) Select(date timeutil.Date) {
	p.Selected = date
}

// JumpToToday scrolls to the current week and selects today.
func (p *Pager) JumpToToday(now time.Time) {
	p.Page, p.Selected = p.Window.JumpToToday(now)
}

// Week returns the visible week.
func (p *Pager) Week(now time.Time) []Day {
	return p.Window.Week(p.Page, timeutil.DateOf(now), p.Selected)
}
