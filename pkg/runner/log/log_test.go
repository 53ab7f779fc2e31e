package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/store"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/viewstate"
	"tableflip.dev/workout/pkg/workout"
)

func setup(t *testing.T) (*app.Service, *bytes.Buffer) {
	t.Helper()
	out, noColor := color.Output, color.NoColor
	var buf bytes.Buffer
	color.Output, color.NoColor = &buf, true
	t.Cleanup(func() { color.Output, color.NoColor = out, noColor })

	now := time.Date(2024, time.May, 8, 9, 0, 0, 0, time.UTC)
	svc := &app.Service{Persistence: store.NewMemory(), Now: func() time.Time { return now }}
	ctx := context.Background()
	for _, d := range []int{6, 8} {
		if _, err := svc.Attach(ctx, timeutil.NewDate(2024, time.May, d), workout.Draft{Name: "Squats", Reps: 5, Sets: 5}); err != nil {
			t.Fatalf("attach: %v", err)
		}
	}
	return svc, &buf
}

func TestHistoryFilter(t *testing.T) {
	svc, buf := setup(t)
	h := &History{Service: svc, Filter: viewstate.Filter{Statuses: []workout.Status{workout.StatusFailed}}}
	if err := h.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "History - 1 day") || !strings.Contains(out, "Monday, May 6 2024") {
		t.Fatalf("unexpected history:\n%s", out)
	}
	if strings.Contains(out, "Wednesday, May 8 2024") {
		t.Fatalf("pending day should be filtered out:\n%s", out)
	}
}

func TestWeekFocus(t *testing.T) {
	svc, buf := setup(t)
	focus := timeutil.NewDate(2024, time.May, 6)
	w := &Week{Service: svc, Focus: &focus}
	if err := w.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "May 2024") || !strings.Contains(out, "Monday, May 6 2024") || !strings.Contains(out, "Squats") {
		t.Fatalf("unexpected week:\n%s", out)
	}
}

func TestMonth(t *testing.T) {
	svc, buf := setup(t)
	m := &Month{Service: svc, On: timeutil.NewDate(2024, time.May, 20)}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(buf.String(), "May 2024") {
		t.Fatalf("unexpected month:\n%s", buf.String())
	}
}
