package add

import (
	"context"
	"errors"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/form/forms"
	"tableflip.dev/workout/pkg/runner/get"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/viewstate"
	"tableflip.dev/workout/pkg/workout"
)

// Add attaches one exercise to the training day of Date.
type Add struct {
	Service *app.Service
	Date    timeutil.Date
	Type    workout.ExerciseType

	// Raw field input, validated by the exercise form.
	Name string
	Reps string
	Sets string
	Rest string

	ShowID bool
	JSON   bool
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no persistence")
	}

	f := forms.NewExercise(n.Type)
	f.Change(forms.ExerciseName, n.Name)
	f.Change(forms.ExerciseReps, n.Reps)
	f.Change(forms.ExerciseSets, n.Sets)
	f.Change(forms.ExerciseRest, n.Rest)
	draft, err := f.Draft()
	if err != nil {
		return err
	}

	return onDay(ctx, n.Service, n.Date, n.ShowID, n.JSON, func(ctx context.Context, m *viewstate.DayModel) error {
		return m.AddExercise(ctx, draft)
	})
}

// Ladder attaches one exercise per rung of a rep ladder.
type Ladder struct {
	Service *app.Service
	Date    timeutil.Date

	Name string
	From string
	To   string
	Step string
	Rest string

	ShowID bool
	JSON   bool
}

func (n *Ladder) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add ladder, no persistence")
	}

	f := forms.NewLadder()
	f.Change(forms.LadderName, n.Name)
	f.Change(forms.LadderFrom, n.From)
	f.Change(forms.LadderTo, n.To)
	f.Change(forms.LadderStep, n.Step)
	f.Change(forms.LadderRest, n.Rest)
	spec, err := f.Spec()
	if err != nil {
		return err
	}

	return onDay(ctx, n.Service, n.Date, n.ShowID, n.JSON, func(ctx context.Context, m *viewstate.DayModel) error {
		return m.AddLadder(ctx, spec)
	})
}

// Preset copies the exercises of a preset onto the training day of Date.
type Preset struct {
	Service  *app.Service
	Date     timeutil.Date
	PresetID int64

	ShowID bool
	JSON   bool
}

func (n *Preset) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not apply preset, no persistence")
	}
	return onDay(ctx, n.Service, n.Date, n.ShowID, n.JSON, func(ctx context.Context, m *viewstate.DayModel) error {
		return m.ApplyPreset(ctx, n.PresetID)
	})
}

func onDay(ctx context.Context, svc *app.Service, date timeutil.Date, showID, asJSON bool, intent get.Intent) error {
	g := get.Get{Service: svc, Date: date, Intent: intent, ShowID: showID, JSON: asJSON}
	return g.Do(ctx)
}
