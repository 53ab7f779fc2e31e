package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"tableflip.dev/workout/pkg/reorder"
	"tableflip.dev/workout/pkg/store"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/workout"
)

// Service provides high-level operations for training days, presets, goals
// and records. It wraps persistence so view models and the CLI share logic.
type Service struct {
	Persistence store.Persistence
	Log         logrus.FieldLogger
	// Now defaults to time.Now.
	Now func() time.Time
}

// ErrNotFound is returned when an exercise, preset, goal or required day id
// is unknown. A date without a training day is not an error for reads.
var ErrNotFound = errors.New("app: not found")

var errNoPersistence = errors.New("app: no persistence configured")

// Today is the current civil date.
func (s *Service) Today() timeutil.Date {
	if s.Now == nil {
		return timeutil.DateOf(time.Now())
	}
	return timeutil.DateOf(s.Now())
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Service) log() logrus.FieldLogger {
	if s.Log == nil {
		return logrus.StandardLogger()
	}
	return s.Log
}

func (s *Service) update(ctx context.Context, op string, fn func(tx store.Tx) error) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	if err := s.Persistence.Update(ctx, fn); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("app: %s: %w", op, err)
	}
	return nil
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, kind, id)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Day returns the training day on date, if any.
func (s *Service) Day(ctx context.Context, date timeutil.Date) (workout.TrainingDay, bool, error) {
	if s.Persistence == nil {
		return workout.TrainingDay{}, false, errNoPersistence
	}
	day, ok, err := s.Persistence.Day(ctx, date)
	if err != nil {
		return workout.TrainingDay{}, false, fmt.Errorf("app: day %s: %w", date, err)
	}
	return day, ok, nil
}

// Days returns every training day, oldest first.
func (s *Service) Days(ctx context.Context) ([]workout.TrainingDay, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	days, err := s.Persistence.Days(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: days: %w", err)
	}
	return days, nil
}

// DayOfExercise returns the training day holding the exercise id.
func (s *Service) DayOfExercise(ctx context.Context, id int64) (workout.TrainingDay, error) {
	days, err := s.Days(ctx)
	if err != nil {
		return workout.TrainingDay{}, err
	}
	for _, day := range days {
		if _, ok := day.Exercise(id); ok {
			return day, nil
		}
	}
	return workout.TrainingDay{}, notFound("exercise", id)
}

// Status derives the status of day against today.
func (s *Service) Status(day workout.TrainingDay) workout.Status {
	return day.Status(s.Today())
}

// Attach schedules one exercise on date. See AttachMany.
func (s *Service) Attach(ctx context.Context, date timeutil.Date, draft workout.Draft) (workout.TrainingDay, error) {
	return s.AttachMany(ctx, date, []workout.Draft{draft})
}

// AttachMany schedules drafts on date in the given order. A date without a
// training day gets one, starting with a warmup at order 0 and the drafts
// from order 1. Otherwise the drafts are appended after the highest order.
// Everything is written in one batch.
func (s *Service) AttachMany(ctx context.Context, date timeutil.Date, drafts []workout.Draft) (workout.TrainingDay, error) {
	if len(drafts) == 0 {
		day, _, err := s.Day(ctx, date)
		return day, err
	}
	var day workout.TrainingDay
	err := s.update(ctx, "attach", func(tx store.Tx) error {
		var err error
		day, err = attach(tx, date, drafts)
		return err
	})
	if err != nil {
		return workout.TrainingDay{}, err
	}
	s.log().WithField("date", date.String()).WithField("count", len(drafts)).Debug("app: attached exercises")
	return day, nil
}

func attach(tx store.Tx, date timeutil.Date, drafts []workout.Draft) (workout.TrainingDay, error) {
	day, ok, err := tx.Day(date)
	if err != nil {
		return day, err
	}
	if !ok {
		day, err = tx.CreateDay(date)
		if err != nil {
			return day, err
		}
		warmup, err := tx.PutExercise(workout.WarmupDraft().Exercise(day.ID, 0))
		if err != nil {
			return day, err
		}
		day.Exercises = append(day.Exercises, warmup)
	}
	next := day.MaxOrder() + 1
	for i, d := range drafts {
		e, err := tx.PutExercise(d.Exercise(day.ID, next+i))
		if err != nil {
			return day, err
		}
		day.Exercises = append(day.Exercises, e)
	}
	workout.SortExercises(day.Exercises)
	return day, nil
}

// AttachLadder expands spec into rungs and attaches them to date. An empty
// expansion writes nothing.
func (s *Service) AttachLadder(ctx context.Context, date timeutil.Date, spec workout.LadderSpec) (workout.TrainingDay, error) {
	return s.AttachMany(ctx, date, workout.Ladder(spec))
}

// ApplyPreset attaches the exercises of a preset to date.
func (s *Service) ApplyPreset(ctx context.Context, date timeutil.Date, presetID int64) (workout.TrainingDay, error) {
	var day workout.TrainingDay
	err := s.update(ctx, "apply preset", func(tx store.Tx) error {
		preset, ok, err := tx.Preset(presetID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("preset", presetID)
		}
		drafts := preset.Drafts()
		if len(drafts) == 0 {
			day, _, err = tx.Day(date)
			return err
		}
		day, err = attach(tx, date, drafts)
		return err
	})
	return day, err
}

func (s *Service) modifyExercise(ctx context.Context, op string, id int64, fn func(workout.Exercise) workout.Exercise) (workout.Exercise, error) {
	var out workout.Exercise
	err := s.update(ctx, op, func(tx store.Tx) error {
		e, ok, err := tx.Exercise(id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("exercise", id)
		}
		out, err = tx.PutExercise(fn(e))
		return err
	})
	return out, err
}

// UpdateExercise replaces the editable fields of an exercise. Progress and
// position are kept.
func (s *Service) UpdateExercise(ctx context.Context, id int64, draft workout.Draft) (workout.Exercise, error) {
	return s.modifyExercise(ctx, "update exercise", id, func(e workout.Exercise) workout.Exercise {
		e.Name = strings.TrimSpace(draft.Name)
		e.Reps = draft.Reps
		e.Sets = draft.Sets
		e.Rest = draft.Rest
		if draft.Type != "" {
			e.Type = draft.Type
		}
		return e
	})
}

// IncrementSet records one more completed set.
func (s *Service) IncrementSet(ctx context.Context, id int64) (workout.Exercise, error) {
	return s.modifyExercise(ctx, "increment set", id, workout.Exercise.Increment)
}

// DecrementSet removes one completed set, never going below zero.
func (s *Service) DecrementSet(ctx context.Context, id int64) (workout.Exercise, error) {
	return s.modifyExercise(ctx, "decrement set", id, workout.Exercise.Decrement)
}

// DeleteExercise removes one exercise. The day is kept even when it becomes
// empty.
func (s *Service) DeleteExercise(ctx context.Context, id int64) error {
	return s.update(ctx, "delete exercise", func(tx store.Tx) error {
		if _, ok, err := tx.Exercise(id); err != nil {
			return err
		} else if !ok {
			return notFound("exercise", id)
		}
		return tx.DeleteExercise(id)
	})
}

// DeleteDay removes the day on date and all of its exercises. Deleting a
// date without a day is a no-op.
func (s *Service) DeleteDay(ctx context.Context, date timeutil.Date) error {
	return s.update(ctx, "delete day", func(tx store.Tx) error {
		day, ok, err := tx.Day(date)
		if err != nil || !ok {
			return err
		}
		return tx.DeleteDay(day.ID)
	})
}

// ApplyExerciseOrder writes the order values of a reorder plan in one batch.
func (s *Service) ApplyExerciseOrder(ctx context.Context, plan reorder.Plan) error {
	if plan.NoOp() {
		return nil
	}
	return s.update(ctx, "reorder exercises", func(tx store.Tx) error {
		for _, c := range plan.Changes {
			e, ok, err := tx.Exercise(c.ID)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("exercise", c.ID)
			}
			if _, err := tx.PutExercise(e.WithOrder(c.Order)); err != nil {
				return err
			}
		}
		return nil
	})
}
