package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/viewstate"
	"tableflip.dev/workout/pkg/workout"
)

func newPrinter(t *testing.T) (*PrettyPrint, *bytes.Buffer) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })
	var buf bytes.Buffer
	return &PrettyPrint{Out: &buf}, &buf
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output:\n%s", w, out)
		}
	}
}

func TestDay(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Day(viewstate.DayState{
		Date:      timeutil.NewDate(2024, time.May, 8),
		Found:     true,
		Status:    workout.StatusPending,
		Completed: 1,
		Target:    4,
		Exercises: []workout.Exercise{
			{ID: 1, Name: "Warmup", Reps: 1, Sets: 1, CompletedSets: 1, Type: workout.TypeWarmup},
			{ID: 2, Name: "Plank", Reps: 60, Sets: 3, Rest: 90, Type: workout.TypeStatic},
		},
	})
	assertContains(t, buf.String(), "Wednesday, May 8 2024", "pending", "1/4 sets", "Plank", "60s × 3", "rest 1m30s", "0/3")
}

func TestLongNamesAreTruncated(t *testing.T) {
	pp, buf := newPrinter(t)
	long := strings.Repeat("archer push up ", 4)
	pp.Exercises(workout.Exercise{ID: 1, Name: long, Reps: 5, Sets: 3, Type: workout.TypeDynamic})
	out := buf.String()
	if strings.Contains(out, long) || !strings.Contains(out, "…") {
		t.Fatalf("expected a truncated name:\n%s", out)
	}
}

func TestDayWithoutTrainingDay(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Day(viewstate.DayState{Date: timeutil.NewDate(2024, time.May, 8)})
	out := buf.String()
	assertContains(t, out, "none")
	if strings.Contains(out, "pending") {
		t.Fatalf("expected no status for an empty date:\n%s", out)
	}
}

func TestGoalsAndRecords(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Goals(workout.Goal{Name: "Muscle up", Target: 4, Count: 2, Units: "reps"})
	assertContains(t, buf.String(), "Goals - 1 goal", "Muscle up", "2/4 reps", strings.Repeat("█", 10)+strings.Repeat("░", 10))

	buf.Reset()
	at := time.Date(2024, time.May, 8, 0, 0, 0, 0, time.UTC)
	best := workout.Record{ID: 2, Name: "Plank", Count: 95, Units: "s", CreatedAt: at}
	pp.Records(app.RecordGroup{Name: "Plank", Best: best, Entries: []workout.Record{best, {ID: 1, Name: "Plank", Count: 60, Units: "s", CreatedAt: at.AddDate(0, 0, -7)}}})
	assertContains(t, buf.String(), "Plank", "95 s", "60 s", "2024-05-01")
}

func TestMonth(t *testing.T) {
	pp, buf := newPrinter(t)
	may := timeutil.NewDate(2024, time.May, 1)
	pp.Month(may, may.AddDays(7), map[timeutil.Date]workout.Status{may.AddDays(6): workout.StatusFailed})
	lines := strings.Split(buf.String(), "\n")
	if !strings.Contains(lines[0], "May 2024") {
		t.Fatalf("unexpected title %q", lines[0])
	}
	// May 1 2024 is a Wednesday, so two blank columns lead the first week.
	if !strings.HasPrefix(lines[1], "       1  2  3  4  5") {
		t.Fatalf("unexpected first week %q", lines[1])
	}
	if DaysIn(may) != 31 || StartDay(may) != 2 {
		t.Fatalf("unexpected month geometry: %d days, start %d", DaysIn(may), StartDay(may))
	}
	if NextMonth(timeutil.NewDate(2024, time.December, 15)) != timeutil.NewDate(2025, time.January, 1) {
		t.Fatal("expected January 2025")
	}
}
