package forms

import (
	"tableflip.dev/workout/pkg/form"
	"tableflip.dev/workout/pkg/validate"
	"tableflip.dev/workout/pkg/workout"
)

// ExerciseField names the inputs of the default exercise form.
type ExerciseField int

const (
	ExerciseName ExerciseField = iota
	ExerciseReps
	ExerciseSets
	ExerciseRest
)

// ExerciseSeed prefills the default exercise form.
type ExerciseSeed struct {
	Name string
	Reps string
	Sets string
	Rest string
}

// SeedFromDraft prefills every field from an existing exercise.
func SeedFromDraft(d workout.Draft) ExerciseSeed {
	return ExerciseSeed{Name: d.Name, Reps: itoa(d.Reps), Sets: itoa(d.Sets), Rest: itoa(d.Rest)}
}

// CarryRest prefills only the rest value.
func CarryRest(rest string) ExerciseSeed {
	return ExerciseSeed{Rest: rest}
}

var exerciseSpec = form.Spec[ExerciseField, ExerciseSeed]{
	Fields: []form.Field[ExerciseField]{
		{Key: ExerciseName, Label: "name", Validate: validate.Name, Required: true},
		{Key: ExerciseReps, Label: "reps", Validate: validate.PositiveInt, Required: true, Numeric: true},
		{Key: ExerciseSets, Label: "sets", Validate: validate.PositiveInt, Required: true, Numeric: true},
		{Key: ExerciseRest, Label: "rest", Validate: validate.NonNegativeInt, Required: true, Numeric: true},
	},
	Seed: func(s ExerciseSeed) form.Values[ExerciseField] {
		return form.Values[ExerciseField]{
			ExerciseName: s.Name,
			ExerciseReps: s.Reps,
			ExerciseSets: s.Sets,
			ExerciseRest: s.Rest,
		}
	},
}

// Exercise is the form used for every non-ladder exercise type.
type Exercise struct {
	*form.Form[ExerciseField, ExerciseSeed]
	Type workout.ExerciseType
}

// NewExercise returns a pristine exercise form for typ.
func NewExercise(typ workout.ExerciseType) *Exercise {
	if typ == "" {
		typ = workout.TypeDynamic
	}
	return &Exercise{Form: form.New(exerciseSpec), Type: typ}
}

// EditExercise returns a form seeded from an existing exercise.
func EditExercise(e workout.Exercise) *Exercise {
	f := NewExercise(e.Type)
	f.Seed(SeedFromDraft(e.Draft()))
	return f
}

// Ladder switches to the ladder form, keeping the rest value.
func (f *Exercise) Ladder() *Ladder {
	l := NewLadder()
	l.Seed(LadderSeed{Rest: f.Value(ExerciseRest)})
	return l
}

// Draft submits the form and returns the exercise it describes.
func (f *Exercise) Draft() (workout.Draft, error) {
	if !f.Submit() {
		return workout.Draft{}, invalid(f.Form)
	}
	v := f.Values()
	return workout.Draft{
		Name: trim(v[ExerciseName]),
		Reps: v.Int(ExerciseReps),
		Sets: v.Int(ExerciseSets),
		Rest: v.Int(ExerciseRest),
		Type: f.Type,
	}, nil
}

// LadderField names the inputs of the ladder form.
type LadderField int

const (
	LadderName LadderField = iota
	LadderFrom
	LadderTo
	LadderStep
	LadderRest
)

// MsgToBelowFrom is reported on the "to" field when the range is inverted.
const MsgToBelowFrom = "Must be at least the starting reps"

// MsgTooManyRungs is reported on the "to" field when the range expands into
// more than workout.MaxRungs exercises.
const MsgTooManyRungs = "Too many rungs, use a larger step"

// LadderSeed prefills the ladder form.
type LadderSeed struct {
	Name string
	Rest string
}

var ladderSpec = form.Spec[LadderField, LadderSeed]{
	Fields: []form.Field[LadderField]{
		{Key: LadderName, Label: "name", Validate: validate.Name, Required: true},
		{Key: LadderFrom, Label: "from", Validate: validate.PositiveInt, Required: true, Numeric: true},
		{Key: LadderTo, Label: "to", Validate: validate.PositiveInt, Required: true, Numeric: true},
		{Key: LadderStep, Label: "step", Validate: validate.PositiveInt, Required: true, Numeric: true},
		{Key: LadderRest, Label: "rest", Validate: validate.NonNegativeInt, Required: true, Numeric: true},
	},
	Rules: []form.Rule[LadderField]{{
		Field: LadderTo,
		Check: func(v form.Values[LadderField]) string {
			if v.Int(LadderFrom) > v.Int(LadderTo) {
				return MsgToBelowFrom
			}
			spec := workout.LadderSpec{From: v.Int(LadderFrom), To: v.Int(LadderTo), Step: v.Int(LadderStep)}
			if workout.Rungs(spec) > workout.MaxRungs {
				return MsgTooManyRungs
			}
			return ""
		},
	}},
	Seed: func(s LadderSeed) form.Values[LadderField] {
		return form.Values[LadderField]{LadderName: s.Name, LadderRest: s.Rest}
	},
}

// Ladder is the form for a ladder exercise.
type Ladder struct {
	*form.Form[LadderField, LadderSeed]
}

// NewLadder returns a pristine ladder form.
func NewLadder() *Ladder {
	return &Ladder{Form: form.New(ladderSpec)}
}

// Exercise switches to the default form for typ, keeping the rest value.
func (f *Ladder) Exercise(typ workout.ExerciseType) *Exercise {
	e := NewExercise(typ)
	e.Seed(CarryRest(f.Value(LadderRest)))
	return e
}

// Spec submits the form and returns the ladder it describes.
func (f *Ladder) Spec() (workout.LadderSpec, error) {
	if !f.Submit() {
		return workout.LadderSpec{}, invalid(f.Form)
	}
	v := f.Values()
	return workout.LadderSpec{
		Name: trim(v[LadderName]),
		From: v.Int(LadderFrom),
		To:   v.Int(LadderTo),
		Step: v.Int(LadderStep),
		Rest: v.Int(LadderRest),
	}, nil
}

// Drafts submits the form and expands it into rungs.
func (f *Ladder) Drafts() ([]workout.Draft, error) {
	spec, err := f.Spec()
	if err != nil {
		return nil, err
	}
	return workout.Ladder(spec), nil
}
