package complete

import (
	"context"
	"errors"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/runner/get"
	"tableflip.dev/workout/pkg/viewstate"
)

// Complete marks sets of an exercise done, or undone when Undo is set.
type Complete struct {
	Service *app.Service
	ID      int64
	// Sets defaults to one.
	Sets int
	Undo bool

	ShowID bool
	JSON   bool
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no persistence")
	}

	day, err := n.Service.DayOfExercise(ctx, n.ID)
	if err != nil {
		return err
	}

	sets := n.Sets
	if sets <= 0 {
		sets = 1
	}

	g := get.Get{
		Service: n.Service,
		Date:    day.Date,
		ShowID:  n.ShowID,
		JSON:    n.JSON,
		Intent: func(ctx context.Context, m *viewstate.DayModel) error {
			step := m.IncrementSet
			if n.Undo {
				step = m.DecrementSet
			}
			for i := 0; i < sets; i++ {
				if err := step(ctx, n.ID); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return g.Do(ctx)
}
