package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/workout/pkg/workout"
)

func TestPersistenceWatchEmitsBucketChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(StaticConfig{Path: base}, WithThrottle(10*time.Millisecond))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	err = p.Update(context.Background(), func(tx Tx) error {
		_, err := tx.PutGoal(workout.Goal{Name: "Handstand", Target: 60})
		return err
	})
	if err != nil {
		t.Fatalf("put goal: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Type == EventBucketChanged {
				if evt.Bucket != BucketGoals {
					t.Fatalf("expected bucket %q, got %q", BucketGoals, evt.Bucket)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for bucket change event")
		}
	}
}

func TestMemoryWatchClosesWithContext(t *testing.T) {
	p := NewMemory(WithThrottle(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("watch channel not closed")
		}
	}
}

func TestEventAffects(t *testing.T) {
	ev := Event{Type: EventBucketChanged, Bucket: BucketExercises}
	if !ev.Affects(BucketDays, BucketExercises) {
		t.Error("exercise change should affect day readers")
	}
	if ev.Affects(BucketGoals) {
		t.Error("exercise change should not affect goal readers")
	}
	if !(Event{Type: EventInvalidated}).Affects(BucketRecords) {
		t.Error("invalidation affects everyone")
	}
}

func TestObserveDayDeliversInitialThenUpdates(t *testing.T) {
	p := NewMemory(WithThrottle(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := ObserveDay(ctx, p, nil, may6)
	if err != nil {
		t.Fatalf("observe: %v", err)
	}

	first := <-ch
	if first.Found || first.Date != may6 {
		t.Fatalf("unexpected initial snapshot %+v", first)
	}

	seedDay(t, p, may6, "Dips")

	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap := <-ch:
			if snap.Found && len(snap.Day.Exercises) == 1 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for day snapshot")
		}
	}
}

func TestObserveGoalsIgnoresOtherBuckets(t *testing.T) {
	p := NewMemory(WithThrottle(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := ObserveGoals(ctx, p, nil)
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	if goals := <-ch; len(goals) != 0 {
		t.Fatalf("expected no goals, got %+v", goals)
	}

	seedDay(t, p, may6, "Dips")
	select {
	case goals := <-ch:
		t.Fatalf("unexpected reload %+v", goals)
	case <-time.After(50 * time.Millisecond):
	}
}
