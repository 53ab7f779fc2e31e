package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tableflip.dev/workout/pkg/reorder"
	"tableflip.dev/workout/pkg/store"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/workout"
)

var (
	today     = timeutil.NewDate(2024, time.May, 8)
	yesterday = today.AddDays(-1)
	tomorrow  = today.AddDays(1)
)

// countingPersistence records how many batches were committed.
type countingPersistence struct {
	store.Persistence
	mu      sync.Mutex
	updates int
}

func (c *countingPersistence) Update(ctx context.Context, fn func(tx store.Tx) error) error {
	c.mu.Lock()
	c.updates++
	c.mu.Unlock()
	return c.Persistence.Update(ctx, fn)
}

// failingPersistence runs the batch and then refuses to commit it.
type failingPersistence struct {
	store.Persistence
	err error
}

func (f *failingPersistence) Update(ctx context.Context, fn func(tx store.Tx) error) error {
	return f.Persistence.Update(ctx, func(tx store.Tx) error {
		if err := fn(tx); err != nil {
			return err
		}
		return f.err
	})
}

func newService() (*Service, *countingPersistence) {
	cp := &countingPersistence{Persistence: store.NewMemory()}
	now := time.Date(2024, time.May, 8, 18, 30, 0, 0, time.UTC)
	return &Service{Persistence: cp, Now: func() time.Time { return now }}, cp
}

func names(day workout.TrainingDay) []string {
	out := make([]string, 0, len(day.Exercises))
	for _, e := range day.Exercises {
		out = append(out, e.Name)
	}
	return out
}

func TestAttachCreatesDayWithWarmup(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	day, err := svc.Attach(ctx, today, workout.Draft{Name: "Pull-ups", Reps: 8, Sets: 3, Rest: 90})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}

	stored, ok, err := svc.Day(ctx, today)
	if err != nil || !ok {
		t.Fatalf("day: ok=%v err=%v", ok, err)
	}
	if stored.ID != day.ID {
		t.Fatalf("expected day %d, got %d", day.ID, stored.ID)
	}
	if len(stored.Exercises) != 2 {
		t.Fatalf("expected warmup and exercise, got %+v", stored.Exercises)
	}
	warmup, first := stored.Exercises[0], stored.Exercises[1]
	if warmup.Type != workout.TypeWarmup || warmup.Order != 0 || warmup.Reps != 1 || warmup.Sets != 1 || warmup.Rest != 0 {
		t.Fatalf("unexpected warmup %+v", warmup)
	}
	if first.Name != "Pull-ups" || first.Order != 1 || first.CompletedSets != 0 || first.Type != workout.TypeDynamic {
		t.Fatalf("unexpected exercise %+v", first)
	}
}

func TestAttachAppendsAfterHighestOrder(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	day, err := svc.AttachMany(ctx, today, []workout.Draft{{Name: "Dips"}, {Name: "Rows"}})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	// Leave a gap: orders become {0, 1, 3}.
	rows := day.Exercises[2]
	if err := svc.ApplyExerciseOrder(ctx, reorder.Plan{Changes: []reorder.Change{{ID: rows.ID, Order: 3}}}); err != nil {
		t.Fatalf("order: %v", err)
	}

	day, err = svc.Attach(ctx, today, workout.Draft{Name: "Squats"})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	last := day.Exercises[len(day.Exercises)-1]
	if last.Name != "Squats" || last.Order != 4 {
		t.Fatalf("expected Squats at 4, got %+v", last)
	}
	if got := names(day); len(got) != 4 || got[0] != workout.WarmupName {
		t.Fatalf("unexpected exercises %v", got)
	}
}

func TestAttachManyPreservesCallerOrderInOneBatch(t *testing.T) {
	svc, cp := newService()
	ctx := context.Background()

	day, err := svc.AttachMany(ctx, today, []workout.Draft{{Name: "C"}, {Name: "A"}, {Name: "B"}})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	want := []string{workout.WarmupName, "C", "A", "B"}
	got := names(day)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if cp.updates != 1 {
		t.Fatalf("expected one batch, got %d", cp.updates)
	}
}

func TestAttachManyEmptyWritesNothing(t *testing.T) {
	svc, cp := newService()
	day, err := svc.AttachMany(context.Background(), today, nil)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if day.ID != 0 || cp.updates != 0 {
		t.Fatalf("expected no write, got day %+v and %d batches", day, cp.updates)
	}
}

func TestAttachLadder(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	day, err := svc.AttachLadder(ctx, today, workout.LadderSpec{Name: "Push-ups", From: 5, To: 20, Step: 5, Rest: 60})
	if err != nil {
		t.Fatalf("ladder: %v", err)
	}
	if len(day.Exercises) != 5 {
		t.Fatalf("expected warmup plus 4 rungs, got %+v", day.Exercises)
	}
	for i, reps := range []int{5, 10, 15, 20} {
		e := day.Exercises[i+1]
		if e.Reps != reps || e.Sets != 1 || e.Order != i+1 || e.Rest != 60 {
			t.Fatalf("rung %d: unexpected %+v", i, e)
		}
	}
}

func TestAttachFailureLeavesNothing(t *testing.T) {
	boom := errors.New("disk full")
	svc := &Service{Persistence: &failingPersistence{Persistence: store.NewMemory(), err: boom}}
	ctx := context.Background()

	_, err := svc.Attach(ctx, today, workout.Draft{Name: "Dips"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped persistence error, got %v", err)
	}
	if _, ok, _ := svc.Day(ctx, today); ok {
		t.Fatal("expected no day after failed batch")
	}
}

func TestApplyPreset(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	preset, err := svc.CreatePreset(ctx, " Push ", workout.Draft{Name: "Dips", Reps: 8, Sets: 3}, workout.Draft{Name: "Push-ups", Reps: 15, Sets: 3})
	if err != nil {
		t.Fatalf("create preset: %v", err)
	}
	if preset.Name != "Push" {
		t.Fatalf("expected trimmed name, got %q", preset.Name)
	}

	day, err := svc.ApplyPreset(ctx, tomorrow, preset.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	got := names(day)
	if len(got) != 3 || got[1] != "Dips" || got[2] != "Push-ups" {
		t.Fatalf("unexpected exercises %v", got)
	}

	if _, err := svc.ApplyPreset(ctx, tomorrow, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIncrementAndDecrementSet(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	day, err := svc.Attach(ctx, today, workout.Draft{Name: "Dips", Reps: 8, Sets: 1})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	id := day.Exercises[1].ID

	e, err := svc.DecrementSet(ctx, id)
	if err != nil || e.CompletedSets != 0 {
		t.Fatalf("decrement below zero: %+v err=%v", e, err)
	}
	for i := 0; i < 2; i++ {
		if e, err = svc.IncrementSet(ctx, id); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	if e.CompletedSets != 2 || !e.Done() {
		t.Fatalf("expected over-completion to be tolerated, got %+v", e)
	}

	if _, err := svc.IncrementSet(ctx, 12345); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStatusFollowsProgress(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	day, err := svc.Attach(ctx, yesterday, workout.Draft{Name: "Dips", Sets: 1})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if got := svc.Status(day); got != workout.StatusFailed {
		t.Fatalf("expected failed, got %s", got)
	}
	for _, e := range day.Exercises {
		if _, err := svc.IncrementSet(ctx, e.ID); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	day, _, _ = svc.Day(ctx, yesterday)
	if got := svc.Status(day); got != workout.StatusCompleted {
		t.Fatalf("expected completed, got %s", got)
	}
}

func TestDayOfExercise(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if _, err := svc.Attach(ctx, today, workout.Draft{Name: "Dips"}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	day, err := svc.Attach(ctx, tomorrow, workout.Draft{Name: "Rows"})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	got, err := svc.DayOfExercise(ctx, day.Exercises[1].ID)
	if err != nil || got.Date != tomorrow {
		t.Fatalf("expected %s, got %s err=%v", tomorrow, got.Date, err)
	}
	if _, err := svc.DayOfExercise(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteExerciseKeepsDay(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	day, err := svc.Attach(ctx, today, workout.Draft{Name: "Dips"})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	for _, e := range day.Exercises {
		if err := svc.DeleteExercise(ctx, e.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
	}
	stored, ok, err := svc.Day(ctx, today)
	if err != nil || !ok {
		t.Fatalf("expected day to survive, ok=%v err=%v", ok, err)
	}
	if len(stored.Exercises) != 0 {
		t.Fatalf("expected no exercises, got %+v", stored.Exercises)
	}
	if err := svc.DeleteExercise(ctx, day.Exercises[0].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteDay(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if _, err := svc.Attach(ctx, today, workout.Draft{Name: "Dips"}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := svc.DeleteDay(ctx, today); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteDay(ctx, today); err != nil {
		t.Fatalf("deleting an absent day should be a no-op: %v", err)
	}
	days, err := svc.Days(ctx)
	if err != nil || len(days) != 0 {
		t.Fatalf("expected no days, got %+v err=%v", days, err)
	}

	// The date is free again and starts over with a warmup.
	day, err := svc.Attach(ctx, today, workout.Draft{Name: "Rows"})
	if err != nil || len(day.Exercises) != 2 {
		t.Fatalf("reattach: %+v err=%v", day, err)
	}
}

func TestUpdateExerciseKeepsProgressAndOrder(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	day, err := svc.Attach(ctx, today, workout.Draft{Name: "Dips", Reps: 5, Sets: 3})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	id := day.Exercises[1].ID
	if _, err := svc.IncrementSet(ctx, id); err != nil {
		t.Fatalf("increment: %v", err)
	}
	e, err := svc.UpdateExercise(ctx, id, workout.Draft{Name: " Ring dips ", Reps: 6, Sets: 4, Rest: 120})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if e.Name != "Ring dips" || e.Reps != 6 || e.Sets != 4 || e.Rest != 120 || e.CompletedSets != 1 || e.Order != 1 || e.Type != workout.TypeDynamic {
		t.Fatalf("unexpected exercise %+v", e)
	}
}

func TestSaveDayAsPresetSkipsWarmup(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if _, err := svc.AttachMany(ctx, today, []workout.Draft{{Name: "Dips", Reps: 8, Sets: 3}, {Name: "Rows", Reps: 10, Sets: 3}}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	preset, err := svc.SaveDayAsPreset(ctx, today, "Wednesday")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	stored, err := svc.Preset(ctx, preset.ID)
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	if len(stored.Exercises) != 2 || stored.Exercises[0].Name != "Dips" || stored.Exercises[1].Order != 1 {
		t.Fatalf("unexpected preset exercises %+v", stored.Exercises)
	}

	if _, err := svc.SaveDayAsPreset(ctx, tomorrow, "Nothing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPresetOrdering(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	a, _ := svc.CreatePreset(ctx, "A")
	b, _ := svc.CreatePreset(ctx, "B")
	if a.Order != 0 || b.Order != 1 {
		t.Fatalf("expected appended orders 0 and 1, got %d and %d", a.Order, b.Order)
	}

	presets, _ := svc.Presets(ctx)
	plan, err := reorder.Swap(presets, a.ID, b.ID)
	if err != nil {
		t.Fatalf("swap: %v", err)
	}
	if err := svc.ApplyPresetOrder(ctx, plan); err != nil {
		t.Fatalf("apply order: %v", err)
	}
	presets, _ = svc.Presets(ctx)
	if presets[0].Name != "B" || presets[1].Name != "A" {
		t.Fatalf("expected B before A, got %+v", presets)
	}

	c, _ := svc.CreatePreset(ctx, "C")
	if c.Order != 2 {
		t.Fatalf("expected C at 2, got %d", c.Order)
	}
}

func TestPresetExerciseCRUD(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	preset, _ := svc.CreatePreset(ctx, "Legs", workout.Draft{Name: "Squats", Reps: 10, Sets: 3})
	lunge, err := svc.AddPresetExercise(ctx, preset.ID, workout.Draft{Name: "Lunges", Reps: 12, Sets: 3})
	if err != nil || lunge.Order != 1 {
		t.Fatalf("add: %+v err=%v", lunge, err)
	}
	updated, err := svc.UpdatePresetExercise(ctx, lunge.ID, workout.Draft{Name: "Walking lunges", Reps: 20, Sets: 2})
	if err != nil || updated.Order != 1 || updated.PresetID != preset.ID || updated.Reps != 20 {
		t.Fatalf("update: %+v err=%v", updated, err)
	}
	if err := svc.DeletePresetExercise(ctx, lunge.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	renamed, err := svc.RenamePreset(ctx, preset.ID, "Leg day")
	if err != nil || renamed.Name != "Leg day" {
		t.Fatalf("rename: %+v err=%v", renamed, err)
	}
	stored, _ := svc.Preset(ctx, preset.ID)
	if len(stored.Exercises) != 1 {
		t.Fatalf("expected one exercise, got %+v", stored.Exercises)
	}
	if err := svc.DeletePreset(ctx, preset.ID); err != nil {
		t.Fatalf("delete preset: %v", err)
	}
	if _, err := svc.Preset(ctx, preset.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGoals(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	g, err := svc.CreateGoal(ctx, workout.Goal{Name: "Muscle up", Target: 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g.CreatedAt.IsZero() {
		t.Fatal("expected creation time")
	}
	g, _ = svc.IncrementGoal(ctx, g.ID, 3)
	g, _ = svc.DecrementGoal(ctx, g.ID, 10)
	if g.Count != 0 {
		t.Fatalf("expected count floored at 0, got %d", g.Count)
	}
	g, _ = svc.IncrementGoal(ctx, g.ID, 5)
	if !g.Done() {
		t.Fatalf("expected goal done, got %+v", g)
	}
	g.Target = 10
	g, err = svc.UpdateGoal(ctx, g)
	if err != nil || g.Done() {
		t.Fatalf("update: %+v err=%v", g, err)
	}
	if err := svc.DeleteGoal(ctx, g.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteGoal(ctx, g.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordsByName(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	for _, r := range []workout.Record{
		{Name: "Plank", Count: 60, Units: "s"},
		{Name: "Pull-ups", Count: 12},
		{Name: "Plank", Count: 95, Units: "s"},
		{Name: "Plank", Count: 80, Units: "s"},
	} {
		if _, err := svc.AddRecord(ctx, r); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	groups, err := svc.RecordsByName(ctx)
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	if len(groups) != 2 || groups[0].Name != "Plank" || groups[1].Name != "Pull-ups" {
		t.Fatalf("unexpected groups %+v", groups)
	}
	if groups[0].Best.Count != 95 || len(groups[0].Entries) != 3 {
		t.Fatalf("unexpected plank group %+v", groups[0])
	}
}

func TestReportAndMigration(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	missed, err := svc.AttachMany(ctx, yesterday, []workout.Draft{{Name: "Dips", Sets: 2}, {Name: "Rows", Sets: 1}})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	// Finish the warmup and the rows; leave the dips.
	for _, e := range missed.Exercises {
		if e.Name != "Dips" {
			if _, err := svc.IncrementSet(ctx, e.ID); err != nil {
				t.Fatalf("increment: %v", err)
			}
		}
	}
	if _, err := svc.Attach(ctx, tomorrow, workout.Draft{Name: "Squats", Sets: 1}); err != nil {
		t.Fatalf("attach: %v", err)
	}

	report, err := svc.Report(ctx, tomorrow, yesterday)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Days) != 2 || report.Counts[workout.StatusFailed] != 1 || report.Counts[workout.StatusPending] != 1 {
		t.Fatalf("unexpected report %+v", report)
	}

	candidates, err := svc.MigrationCandidates(ctx, yesterday, today)
	if err != nil {
		t.Fatalf("candidates: %v", err)
	}
	if len(candidates) != 1 || len(candidates[0].Remaining) != 1 || candidates[0].Remaining[0].Name != "Dips" {
		t.Fatalf("unexpected candidates %+v", candidates)
	}

	day, err := svc.Migrate(ctx, yesterday, today)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	got := names(day)
	if len(got) != 2 || got[0] != workout.WarmupName || got[1] != "Dips" || day.Exercises[1].CompletedSets != 0 {
		t.Fatalf("unexpected migrated day %+v", day.Exercises)
	}
}
