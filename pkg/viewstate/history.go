package viewstate

import (
	"context"
	"fmt"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/store"
	"tableflip.dev/workout/pkg/workout"
)

// Filter narrows the history. An empty list matches everything.
type Filter struct {
	Statuses []workout.Status
	// Types matches days holding at least one exercise of a listed type.
	Types []workout.ExerciseType
}

// Match reports whether a day with the given status passes the filter.
func (f Filter) Match(day workout.TrainingDay, status workout.Status) bool {
	if len(f.Statuses) > 0 && !contains(f.Statuses, status) {
		return false
	}
	if len(f.Types) == 0 {
		return true
	}
	for _, e := range day.Exercises {
		if contains(f.Types, e.Type) {
			return true
		}
	}
	return false
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// HistoryEntry is one day of the history list.
type HistoryEntry struct {
	Day       workout.TrainingDay
	Status    workout.Status
	Completed int
	Target    int
}

// HistoryState lists the days passing the filter, newest first. Total counts
// every day before filtering.
type HistoryState struct {
	Filter  Filter
	Entries []HistoryEntry
	Total   int
}

// HistoryModel is the view model of the training history.
type HistoryModel struct {
	*base[HistoryState]

	svc *app.Service

	// Guarded by base.mu.
	days   []workout.TrainingDay
	filter Filter
}

// NewHistoryModel follows every training day until ctx ends or Close is
// called.
func NewHistoryModel(ctx context.Context, svc *app.Service) (*HistoryModel, error) {
	if svc == nil || svc.Persistence == nil {
		return nil, errNoService
	}
	m := &HistoryModel{svc: svc}
	m.base = newBase(svc, m.render)

	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	days, err := store.ObserveDays(ctx, svc.Persistence, m.log)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("viewstate: observe days: %w", err)
	}
	set := func(d []workout.TrainingDay) { m.days = d }
	follow(ctx, m.base, days, set, apply(m.base, set))
	return m, nil
}

// SetFilter replaces the filter.
func (m *HistoryModel) SetFilter(f Filter) {
	m.intent.Lock()
	defer m.intent.Unlock()

	m.update(func() { m.filter = f })
}

func (m *HistoryModel) render() HistoryState {
	today := m.svc.Today()
	s := HistoryState{Filter: m.filter, Total: len(m.days)}
	for i := len(m.days) - 1; i >= 0; i-- {
		day := m.days[i]
		status := day.Status(today)
		if !m.filter.Match(day, status) {
			continue
		}
		completed, target := day.Progress()
		s.Entries = append(s.Entries, HistoryEntry{
			Day:       day.Clone(),
			Status:    status,
			Completed: completed,
			Target:    target,
		})
	}
	return s
}
