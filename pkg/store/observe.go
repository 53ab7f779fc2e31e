package store

import (
	"context"

	"github.com/sirupsen/logrus"

	"tableflip.dev/workout/pkg/stream"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/workout"
)

// DaySnapshot is the state of one date. Found is false until the first
// exercise is attached.
type DaySnapshot struct {
	Date  timeutil.Date
	Day   workout.TrainingDay
	Found bool
}

// ObserveDays streams every day with its exercises. The current value is
// delivered first, then a fresh value after each relevant change.
func ObserveDays(ctx context.Context, p Persistence, log logrus.FieldLogger) (<-chan []workout.TrainingDay, error) {
	return observe(ctx, p, log, []string{BucketDays, BucketExercises}, p.Days)
}

// ObserveDay streams the day scheduled on date.
func ObserveDay(ctx context.Context, p Persistence, log logrus.FieldLogger, date timeutil.Date) (<-chan DaySnapshot, error) {
	return observe(ctx, p, log, []string{BucketDays, BucketExercises}, func(ctx context.Context) (DaySnapshot, error) {
		day, ok, err := p.Day(ctx, date)
		if err != nil {
			return DaySnapshot{}, err
		}
		return DaySnapshot{Date: date, Day: day, Found: ok}, nil
	})
}

// ObservePresets streams every preset with its exercises.
func ObservePresets(ctx context.Context, p Persistence, log logrus.FieldLogger) (<-chan []workout.Preset, error) {
	return observe(ctx, p, log, []string{BucketPresets, BucketPresetExercises}, p.Presets)
}

// ObserveGoals streams every goal.
func ObserveGoals(ctx context.Context, p Persistence, log logrus.FieldLogger) (<-chan []workout.Goal, error) {
	return observe(ctx, p, log, []string{BucketGoals}, p.Goals)
}

// ObserveRecords streams every record, newest first.
func ObserveRecords(ctx context.Context, p Persistence, log logrus.FieldLogger) (<-chan []workout.Record, error) {
	return observe(ctx, p, log, []string{BucketRecords}, p.Records)
}

func observe[T any](ctx context.Context, p Persistence, log logrus.FieldLogger, buckets []string, load func(context.Context) (T, error)) (<-chan T, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	ctx, cancel := context.WithCancel(ctx)

	// Watch before the first load so no change slips in between.
	events, err := p.Watch(ctx)
	if err != nil {
		cancel()
		return nil, err
	}
	initial, err := load(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	out := stream.NewLatest[T]()
	out.Publish(initial)

	go func() {
		defer cancel()
		defer out.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				if !ev.Affects(buckets...) {
					continue
				}
				v, err := load(ctx)
				if err != nil {
					if ctx.Err() == nil {
						log.WithError(err).WithField("buckets", buckets).Warn("store: reload")
					}
					continue
				}
				out.Publish(v)
			}
		}
	}()

	return out.C(), nil
}
