package app

import (
	"context"
	"fmt"

	"tableflip.dev/workout/pkg/store"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/workout"
)

// MigrationCandidate is a failed day with the exercises that were left
// unfinished.
type MigrationCandidate struct {
	Day       workout.TrainingDay
	Remaining []workout.Exercise
}

// MigrationCandidates returns the failed days between since and until,
// inclusive, with their unfinished exercises. Warmups are never carried.
func (s *Service) MigrationCandidates(ctx context.Context, since, until timeutil.Date) ([]MigrationCandidate, error) {
	report, err := s.Report(ctx, since, until)
	if err != nil {
		return nil, err
	}
	var out []MigrationCandidate
	for _, rd := range report.Days {
		if rd.Status != workout.StatusFailed {
			continue
		}
		remaining := unfinished(rd.Day)
		if len(remaining) == 0 {
			continue
		}
		out = append(out, MigrationCandidate{Day: rd.Day, Remaining: remaining})
	}
	return out, nil
}

func unfinished(day workout.TrainingDay) []workout.Exercise {
	var out []workout.Exercise
	for _, e := range day.Exercises {
		if e.Type == workout.TypeWarmup || e.Done() {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Migrate schedules the unfinished exercises of the day on from onto to,
// with their full set targets and no progress. The source day is left as it
// was.
func (s *Service) Migrate(ctx context.Context, from, to timeutil.Date) (workout.TrainingDay, error) {
	if from == to {
		return workout.TrainingDay{}, fmt.Errorf("app: migrate: source and target are both %s", from)
	}
	var day workout.TrainingDay
	err := s.update(ctx, "migrate", func(tx store.Tx) error {
		source, ok, err := tx.Day(from)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: no training day on %s", ErrNotFound, from)
		}
		remaining := unfinished(source)
		if len(remaining) == 0 {
			day, _, err = tx.Day(to)
			return err
		}
		drafts := make([]workout.Draft, 0, len(remaining))
		for _, e := range remaining {
			drafts = append(drafts, e.Draft())
		}
		day, err = attach(tx, to, drafts)
		return err
	})
	return day, err
}
