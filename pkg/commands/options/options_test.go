package options

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/workout/pkg/form/forms"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/workout"
)

var today = timeutil.NewDate(2024, time.May, 8)

func TestParseDay(t *testing.T) {
	cases := map[string]timeutil.Date{
		"":           today,
		"yesterday":  timeutil.NewDate(2024, time.May, 7),
		"2024-2-29":  timeutil.NewDate(2024, time.February, 29),
		"2023-12-01": timeutil.NewDate(2023, time.December, 1),
		"5/20":       timeutil.NewDate(2024, time.May, 20),
		// Close to today looking back rather than most of a year ahead.
		"12/30": timeutil.NewDate(2023, time.December, 30),
	}
	for in, want := range cases {
		got, err := ParseDay(in, today)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}
	if _, err := ParseDay("someday", today); err == nil {
		t.Fatal("expected an error")
	}
}

func TestGetRange(t *testing.T) {
	since, until, err := (&WindowOptions{Last: "1w"}).GetRange(today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if since != timeutil.NewDate(2024, time.May, 2) || until != today {
		t.Fatalf("unexpected range %s..%s", since, until)
	}

	since, until, err = (&WindowOptions{Last: "1w", Since: "2024-4-1", Until: "2024-4-30"}).GetRange(today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if since != timeutil.NewDate(2024, time.April, 1) || until != timeutil.NewDate(2024, time.April, 30) {
		t.Fatalf("unexpected range %s..%s", since, until)
	}
}

func TestExerciseOptions(t *testing.T) {
	o := &ExerciseOptions{Type: "static", Rest: "1m30s"}
	typ, err := o.GetType()
	if err != nil || typ != workout.TypeStatic {
		t.Fatalf("expected static, got %q err=%v", typ, err)
	}
	rest, err := o.GetRest()
	if err != nil || rest != "90" {
		t.Fatalf("expected 90, got %q err=%v", rest, err)
	}
}

func TestFilterOptions(t *testing.T) {
	f, err := (&FilterOptions{Statuses: []string{"failed"}, Types: []string{"static"}}).GetFilter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Statuses) != 1 || f.Statuses[0] != workout.StatusFailed || f.Types[0] != workout.TypeStatic {
		t.Fatalf("unexpected filter %+v", f)
	}
	if _, err := (&FilterOptions{Statuses: []string{"skipped"}}).GetFilter(); err == nil {
		t.Fatal("expected an error")
	}
}

func TestHandleErrorListsFields(t *testing.T) {
	out := color.Output
	var buf bytes.Buffer
	color.Output = &buf
	t.Cleanup(func() { color.Output = out })

	f := forms.NewExercise(workout.TypeDynamic)
	f.Change(forms.ExerciseName, "D")
	_, formErr := f.Draft()

	oo := &OutputOptions{JSON: true}
	if err := oo.HandleError(formErr); err != nil {
		t.Fatalf("expected the error to be printed, got %v", err)
	}
	var got struct {
		Error  string
		Fields map[string]string
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if got.Fields["name"] == "" || got.Fields["reps"] == "" {
		t.Fatalf("expected name and reps errors, got %+v", got)
	}
}
