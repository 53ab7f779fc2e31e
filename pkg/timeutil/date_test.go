package timeutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestWeekStartIsMonday(t *testing.T) {
	cases := []struct {
		in   Date
		want Date
	}{
		{NewDate(2026, time.October, 15), NewDate(2026, time.October, 12)}, // Thursday
		{NewDate(2026, time.October, 12), NewDate(2026, time.October, 12)}, // Monday
		{NewDate(2026, time.October, 18), NewDate(2026, time.October, 12)}, // Sunday
		{NewDate(2026, time.January, 1), NewDate(2025, time.December, 29)},
	}
	for _, tc := range cases {
		if got := tc.in.WeekStart(); got != tc.want {
			t.Fatalf("WeekStart(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestWeeksBetweenFloors(t *testing.T) {
	monday := NewDate(2026, time.October, 12)
	cases := []struct {
		to   Date
		want int
	}{
		{monday, 0},
		{monday.AddDays(6), 0},
		{monday.AddDays(7), 1},
		{monday.AddDays(-1), -1},
		{monday.AddDays(-7), -1},
		{monday.AddDays(-8), -2},
	}
	for _, tc := range cases {
		if got := WeeksBetween(monday, tc.to); got != tc.want {
			t.Fatalf("WeeksBetween(%s, %s) = %d, want %d", monday, tc.to, got, tc.want)
		}
	}
}

func TestDateOfIgnoresClock(t *testing.T) {
	loc := time.FixedZone("X", 5*3600)
	a := DateOf(time.Date(2026, time.March, 29, 0, 30, 0, 0, loc))
	b := DateOf(time.Date(2026, time.March, 29, 23, 59, 0, 0, loc))
	if a != b {
		t.Fatalf("expected same day, got %s and %s", a, b)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.October, 15)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-10-15"` {
		t.Fatalf("unexpected json: %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Fatalf("expected %s, got %s", d, back)
	}
}

func TestDateAsMapKey(t *testing.T) {
	d := NewDate(2026, time.October, 15)
	b, err := json.Marshal(map[Date]int{d: 3})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"2026-10-15":3}` {
		t.Fatalf("unexpected json: %s", b)
	}
	var back map[Date]int
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back[d] != 3 {
		t.Fatalf("expected 3 on %s, got %v", d, back)
	}
}
