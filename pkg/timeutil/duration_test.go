package timeutil

import (
	"testing"
)

func TestParseRestEmpty(t *testing.T) {
	got, err := ParseRest("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestParseRestBareSeconds(t *testing.T) {
	got, err := ParseRest(" 90 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 90 {
		t.Fatalf("expected 90, got %d", got)
	}
}

func TestParseRestComposite(t *testing.T) {
	got, err := ParseRest("1m30s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 90 {
		t.Fatalf("expected 90, got %d", got)
	}

	got, err = ParseRest("2 min")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 120 {
		t.Fatalf("expected 120, got %d", got)
	}
}

func TestParseRestInvalid(t *testing.T) {
	if _, err := ParseRest("noop"); err == nil {
		t.Fatalf("expected error for invalid rest")
	}
	if _, err := ParseRest("3w"); err == nil {
		t.Fatalf("expected error for unsupported unit")
	}
}

func TestFormatRest(t *testing.T) {
	cases := map[int]string{
		0:    "0s",
		45:   "45s",
		90:   "1m30s",
		3600: "1h",
	}
	for in, want := range cases {
		if got := FormatRest(in); got != want {
			t.Fatalf("FormatRest(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestParseWindow(t *testing.T) {
	cases := map[string]int{
		"":      7,
		"10d":   10,
		"2w3d":  17,
		" 1 wk": 7,
	}
	for in, want := range cases {
		got, err := ParseWindow(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %d days, got %d", in, want, got)
		}
	}
	for _, in := range []string{"0d", "3h", "fortnight"} {
		if _, err := ParseWindow(in); err == nil {
			t.Fatalf("%q: expected an error", in)
		}
	}
}
