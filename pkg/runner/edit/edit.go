package edit

import (
	"context"
	"errors"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/form/forms"
	"tableflip.dev/workout/pkg/runner/get"
	"tableflip.dev/workout/pkg/viewstate"
)

// Edit changes fields of an exercise. Fields left out of Changes keep their
// current value and progress is never reset.
type Edit struct {
	Service *app.Service
	ID      int64
	Changes map[forms.ExerciseField]string

	ShowID bool
	JSON   bool
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no persistence")
	}

	day, err := n.Service.DayOfExercise(ctx, n.ID)
	if err != nil {
		return err
	}

	g := get.Get{
		Service: n.Service,
		Date:    day.Date,
		ShowID:  n.ShowID,
		JSON:    n.JSON,
		Intent: func(ctx context.Context, m *viewstate.DayModel) error {
			if err := m.Edit(n.ID); err != nil {
				return err
			}
			for _, k := range []forms.ExerciseField{forms.ExerciseName, forms.ExerciseReps, forms.ExerciseSets, forms.ExerciseRest} {
				if v, ok := n.Changes[k]; ok {
					m.ChangeField(k, v)
					m.BlurField(k)
				}
			}
			if err := m.SaveEdit(ctx); err != nil {
				m.CancelEdit()
				return err
			}
			return nil
		},
	}
	return g.Do(ctx)
}
