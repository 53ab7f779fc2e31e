package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	digitsPattern  = regexp.MustCompile(`^\d+$`)
	restUnits      = map[string]time.Duration{
		"s":       time.Second,
		"sec":     time.Second,
		"secs":    time.Second,
		"second":  time.Second,
		"seconds": time.Second,
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
	}
	windowUnits = map[string]time.Duration{
		"d":     day,
		"day":   day,
		"days":  day,
		"w":     7 * day,
		"wk":    7 * day,
		"wks":   7 * day,
		"week":  7 * day,
		"weeks": 7 * day,
	}
)

const day = 24 * time.Hour

// DefaultWindow is the report window used when none is provided.
const DefaultWindow = "1w"

func sum(input string, units map[string]time.Duration, what string) (time.Duration, error) {
	remaining := input
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid %s segment %q", what, strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", what, matches[1], err)
		}
		base, ok := units[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported %s unit %q", what, matches[2])
		}
		total += time.Duration(value) * base
		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}
	return total, nil
}

// ParseWindow parses a window of whole days such as "1w", "10d" or "2w3d".
// An empty input means DefaultWindow.
func ParseWindow(input string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		trimmed = DefaultWindow
	}
	total, err := sum(trimmed, windowUnits, "window")
	if err != nil {
		return 0, err
	}
	if total <= 0 {
		return 0, fmt.Errorf("window must be greater than zero")
	}
	return int(total / day), nil
}

// ParseRest parses a rest period. Bare digits are seconds ("90"); otherwise a
// compact duration such as "90s", "1m30s" or "2 min" is accepted. An empty
// input means no rest. The result is whole seconds.
func ParseRest(input string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return 0, nil
	}
	if digitsPattern.MatchString(trimmed) {
		v, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("invalid rest value %q: %w", trimmed, err)
		}
		return v, nil
	}

	total, err := sum(trimmed, restUnits, "rest")
	if err != nil {
		return 0, err
	}
	return int(total / time.Second), nil
}

// FormatRest renders seconds using hour/minute/second tokens, e.g. 90 -> "1m30s".
func FormatRest(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}

	type unit struct {
		label string
		value int
	}
	units := []unit{
		{"h", 3600},
		{"m", 60},
		{"s", 1},
	}

	var parts []string
	remaining := seconds
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	return strings.Join(parts, "")
}
