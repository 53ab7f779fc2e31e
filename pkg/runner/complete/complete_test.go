package complete

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/store"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/workout"
)

func TestCompleteAndUndo(t *testing.T) {
	out, noColor := color.Output, color.NoColor
	var buf bytes.Buffer
	color.Output, color.NoColor = &buf, true
	t.Cleanup(func() { color.Output, color.NoColor = out, noColor })

	now := time.Date(2024, time.May, 8, 9, 0, 0, 0, time.UTC)
	svc := &app.Service{Persistence: store.NewMemory(), Now: func() time.Time { return now }}
	ctx := context.Background()
	day, err := svc.Attach(ctx, timeutil.DateOf(now), workout.Draft{Name: "Dips", Reps: 8, Sets: 3})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	dips := day.Exercises[1].ID

	c := &Complete{Service: svc, ID: dips, Sets: 2}
	if err := c.Do(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !strings.Contains(buf.String(), "2/3") {
		t.Fatalf("expected 2/3 in output:\n%s", buf.String())
	}

	c = &Complete{Service: svc, ID: dips, Undo: true}
	if err := c.Do(ctx); err != nil {
		t.Fatalf("undo: %v", err)
	}
	got, _, err := svc.Day(ctx, day.Date)
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	e, _ := got.Exercise(dips)
	if e.CompletedSets != 1 {
		t.Fatalf("expected 1 completed set, got %d", e.CompletedSets)
	}

	c = &Complete{Service: svc, ID: 999}
	if err := c.Do(ctx); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
