package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/workout/pkg/store"
	"tableflip.dev/workout/pkg/workout"
)

// Goals lists goals, oldest first.
func (s *Service) Goals(ctx context.Context) ([]workout.Goal, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	goals, err := s.Persistence.Goals(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: goals: %w", err)
	}
	return goals, nil
}

// CreateGoal stores a new goal stamped with the current time.
func (s *Service) CreateGoal(ctx context.Context, goal workout.Goal) (workout.Goal, error) {
	goal.ID = 0
	goal.Name = strings.TrimSpace(goal.Name)
	goal.CreatedAt = s.now()
	var out workout.Goal
	err := s.update(ctx, "create goal", func(tx store.Tx) error {
		var err error
		out, err = tx.PutGoal(goal)
		return err
	})
	return out, err
}

// UpdateGoal replaces the name, target, count and units of a goal.
func (s *Service) UpdateGoal(ctx context.Context, goal workout.Goal) (workout.Goal, error) {
	return s.modifyGoal(ctx, "update goal", goal.ID, func(g workout.Goal) workout.Goal {
		g.Name = strings.TrimSpace(goal.Name)
		g.Target = goal.Target
		g.Count = goal.Count
		g.Units = goal.Units
		return g
	})
}

// IncrementGoal adds by to the goal count.
func (s *Service) IncrementGoal(ctx context.Context, id int64, by int) (workout.Goal, error) {
	return s.modifyGoal(ctx, "increment goal", id, func(g workout.Goal) workout.Goal {
		g.Count += by
		if g.Count < 0 {
			g.Count = 0
		}
		return g
	})
}

// DecrementGoal subtracts by from the goal count, never going below zero.
func (s *Service) DecrementGoal(ctx context.Context, id int64, by int) (workout.Goal, error) {
	return s.IncrementGoal(ctx, id, -by)
}

// DeleteGoal removes a goal.
func (s *Service) DeleteGoal(ctx context.Context, id int64) error {
	return s.update(ctx, "delete goal", func(tx store.Tx) error {
		if _, ok, err := tx.Goal(id); err != nil {
			return err
		} else if !ok {
			return notFound("goal", id)
		}
		return tx.DeleteGoal(id)
	})
}

func (s *Service) modifyGoal(ctx context.Context, op string, id int64, fn func(workout.Goal) workout.Goal) (workout.Goal, error) {
	var out workout.Goal
	err := s.update(ctx, op, func(tx store.Tx) error {
		g, ok, err := tx.Goal(id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("goal", id)
		}
		out, err = tx.PutGoal(fn(g))
		return err
	})
	return out, err
}

// AddRecord appends a personal record stamped with the current time.
func (s *Service) AddRecord(ctx context.Context, record workout.Record) (workout.Record, error) {
	record.ID = 0
	record.Name = strings.TrimSpace(record.Name)
	record.CreatedAt = s.now()
	var out workout.Record
	err := s.update(ctx, "add record", func(tx store.Tx) error {
		var err error
		out, err = tx.PutRecord(record)
		return err
	})
	return out, err
}

// Records lists records, newest first.
func (s *Service) Records(ctx context.Context) ([]workout.Record, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	records, err := s.Persistence.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: records: %w", err)
	}
	return records, nil
}

// RecordGroup is the history of one record name.
type RecordGroup struct {
	Name    string
	Best    workout.Record
	Entries []workout.Record
}

// RecordsByName groups records by name, names sorted alphabetically and
// entries newest first.
func (s *Service) RecordsByName(ctx context.Context) ([]RecordGroup, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	best := workout.Best(records)
	byName := make(map[string][]workout.Record, len(best))
	for _, r := range records {
		byName[r.Name] = append(byName[r.Name], r)
	}
	groups := make([]RecordGroup, 0, len(byName))
	for name, entries := range byName {
		groups = append(groups, RecordGroup{Name: name, Best: best[name], Entries: entries})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups, nil
}
