// Package workout defines the training day aggregate and its derived state.
package workout

import (
	"fmt"
	"strings"
)

// ExerciseType identifies how an exercise is performed and displayed.
type ExerciseType string

const (
	// TypeDynamic is a repetition based exercise.
	TypeDynamic ExerciseType = "dynamic"
	// TypeStatic is a hold measured in seconds.
	TypeStatic ExerciseType = "static"
	// TypeLadder marks rungs produced by ladder expansion.
	TypeLadder ExerciseType = "ladder"
	// TypeWarmup is the synthetic first entry of every new day.
	TypeWarmup ExerciseType = "warmup"
	// TypeFlexibilitySession is a single flexibility block.
	TypeFlexibilitySession ExerciseType = "flexibility-session"
	// TypeHandBalanceSession is a single hand balance block.
	TypeHandBalanceSession ExerciseType = "hand-balance-session"
)

// AllTypes returns the list of supported exercise types.
func AllTypes() []ExerciseType {
	return []ExerciseType{
		TypeDynamic,
		TypeStatic,
		TypeLadder,
		TypeWarmup,
		TypeFlexibilitySession,
		TypeHandBalanceSession,
	}
}

var typeAliases = map[string]ExerciseType{
	"flexibility":  TypeFlexibilitySession,
	"handbalance":  TypeHandBalanceSession,
	"hand-balance": TypeHandBalanceSession,
	"hold":         TypeStatic,
}

// ParseType converts a string to an ExerciseType. Empty input is Dynamic.
func ParseType(raw string) (ExerciseType, error) {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "_", "-")
	if t == "" {
		return TypeDynamic, nil
	}
	for _, candidate := range AllTypes() {
		if string(candidate) == t {
			return candidate, nil
		}
	}
	if alias, ok := typeAliases[t]; ok {
		return alias, nil
	}
	return TypeDynamic, fmt.Errorf("workout: unknown exercise type %q", raw)
}

// Label is the human form of the type.
func (t ExerciseType) Label() string {
	switch t {
	case TypeDynamic:
		return "Dynamic"
	case TypeStatic:
		return "Static"
	case TypeLadder:
		return "Ladder"
	case TypeWarmup:
		return "Warmup"
	case TypeFlexibilitySession:
		return "Flexibility session"
	case TypeHandBalanceSession:
		return "Hand balance session"
	default:
		return string(t)
	}
}

// IsHold reports whether reps are measured as hold seconds.
func (t ExerciseType) IsHold() bool {
	return t == TypeStatic
}

// Status is the derived completion state of a training day.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// AllStatuses returns the three statuses in display order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusCompleted, StatusFailed}
}

// ParseStatus converts a string to a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllStatuses() {
		if candidate == s {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("workout: unknown status %q", raw)
}
