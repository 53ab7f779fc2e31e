package forms

import (
	"tableflip.dev/workout/pkg/form"
	"tableflip.dev/workout/pkg/validate"
	"tableflip.dev/workout/pkg/workout"
)

// GoalField names the inputs of the goal form.
type GoalField int

const (
	GoalName GoalField = iota
	GoalTarget
	GoalCount
	GoalUnits
)

// GoalSeed prefills the goal form.
type GoalSeed struct {
	Goal workout.Goal
}

var goalSpec = form.Spec[GoalField, GoalSeed]{
	Fields: []form.Field[GoalField]{
		{Key: GoalName, Label: "name", Validate: validate.Name, Required: true},
		{Key: GoalTarget, Label: "target", Validate: validate.PositiveInt, Required: true, Numeric: true},
		{Key: GoalCount, Label: "count", Validate: validate.OrBlank(validate.NonNegativeInt), Numeric: true},
		{Key: GoalUnits, Label: "units", Validate: validate.Optional},
	},
	Seed: func(s GoalSeed) form.Values[GoalField] {
		return form.Values[GoalField]{
			GoalName:   s.Goal.Name,
			GoalTarget: itoa(s.Goal.Target),
			GoalCount:  itoa(s.Goal.Count),
			GoalUnits:  s.Goal.Units,
		}
	},
}

// Goal is the create/edit goal form.
type Goal struct {
	*form.Form[GoalField, GoalSeed]
}

// NewGoal returns a pristine goal form.
func NewGoal() *Goal {
	return &Goal{Form: form.New(goalSpec)}
}

// Draft submits the form and returns the goal it describes. ID and CreatedAt
// are left for the service to fill.
func (f *Goal) Draft() (workout.Goal, error) {
	if !f.Submit() {
		return workout.Goal{}, invalid(f.Form)
	}
	v := f.Values()
	return workout.Goal{
		Name:   trim(v[GoalName]),
		Target: v.Int(GoalTarget),
		Count:  v.Int(GoalCount),
		Units:  trim(v[GoalUnits]),
	}, nil
}

// RecordField names the inputs of the record form.
type RecordField int

const (
	RecordName RecordField = iota
	RecordCount
	RecordUnits
)

// RecordSeed prefills the record form, typically from the last entry of the
// same name.
type RecordSeed struct {
	Name  string
	Units string
}

var recordSpec = form.Spec[RecordField, RecordSeed]{
	Fields: []form.Field[RecordField]{
		{Key: RecordName, Label: "name", Validate: validate.Name, Required: true},
		{Key: RecordCount, Label: "count", Validate: validate.PositiveInt, Required: true, Numeric: true},
		{Key: RecordUnits, Label: "units", Validate: validate.Optional},
	},
	Seed: func(s RecordSeed) form.Values[RecordField] {
		return form.Values[RecordField]{RecordName: s.Name, RecordUnits: s.Units}
	},
}

// Record is the new record form.
type Record struct {
	*form.Form[RecordField, RecordSeed]
}

// NewRecord returns a pristine record form.
func NewRecord() *Record {
	return &Record{Form: form.New(recordSpec)}
}

// Draft submits the form and returns the record it describes.
func (f *Record) Draft() (workout.Record, error) {
	if !f.Submit() {
		return workout.Record{}, invalid(f.Form)
	}
	v := f.Values()
	return workout.Record{
		Name:  trim(v[RecordName]),
		Count: v.Int(RecordCount),
		Units: trim(v[RecordUnits]),
	}, nil
}
