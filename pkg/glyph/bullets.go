package glyph

import (
	"fmt"

	"tableflip.dev/workout/pkg/workout"
)

// Kind groups glyphs in the legend.
type Kind int

const (
	KindStatus Kind = iota
	KindExercise
	KindType
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Kind    Kind
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	italicCode    = 3
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Italic(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, italicCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

var (
	pending   = Glyph{Key: string(workout.StatusPending), Symbol: "○", Meaning: "day pending", Kind: KindStatus}
	completed = Glyph{Key: string(workout.StatusCompleted), Symbol: "✔", Meaning: "day completed", Kind: KindStatus}
	failed    = Glyph{Key: string(workout.StatusFailed), Symbol: "✘", Meaning: "day failed", Kind: KindStatus}

	open     = Glyph{Key: "open", Symbol: "●", Meaning: "sets remaining", Kind: KindExercise}
	done     = Glyph{Key: "done", Symbol: "✔", Meaning: "all sets done", Kind: KindExercise}
	overshot = Glyph{Key: "extra", Symbol: "✷", Meaning: "more sets than planned", Kind: KindExercise}

	types = map[workout.ExerciseType]Glyph{
		workout.TypeDynamic:            {Symbol: "↻", Meaning: "reps"},
		workout.TypeStatic:             {Symbol: "⏸", Meaning: "hold, reps are seconds"},
		workout.TypeLadder:             {Symbol: "≡", Meaning: "ladder rung"},
		workout.TypeWarmup:             {Symbol: "~", Meaning: "warmup"},
		workout.TypeFlexibilitySession: {Symbol: "∿", Meaning: "flexibility session"},
		workout.TypeHandBalanceSession: {Symbol: "⊥", Meaning: "hand balance session"},
	}
)

// DefaultGlyphs lists every glyph in legend order.
func DefaultGlyphs() []Glyph {
	g := []Glyph{pending, completed, failed, open, done, overshot}
	for _, t := range workout.AllTypes() {
		g = append(g, Type(t))
	}
	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// Status returns the glyph of a day status.
func Status(s workout.Status) Glyph {
	switch s {
	case workout.StatusCompleted:
		return completed
	case workout.StatusFailed:
		return failed
	default:
		return pending
	}
}

// Exercise returns the progress glyph of one exercise.
func Exercise(e workout.Exercise) Glyph {
	switch {
	case e.CompletedSets > e.Sets:
		return overshot
	case e.Done():
		return done
	default:
		return open
	}
}

// Type returns the glyph of an exercise type.
func Type(t workout.ExerciseType) Glyph {
	g, ok := types[t]
	if !ok {
		g = Glyph{Symbol: "?", Meaning: string(t)}
	}
	g.Key = string(t)
	g.Kind = KindType
	return g
}
