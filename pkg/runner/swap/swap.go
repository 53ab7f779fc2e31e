package swap

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/runner/get"
	"tableflip.dev/workout/pkg/viewstate"
)

// Swap exchanges the positions of two exercises of the same training day.
type Swap struct {
	Service *app.Service
	From    int64
	To      int64

	ShowID bool
	JSON   bool
}

func (n *Swap) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not swap, no persistence")
	}

	day, err := n.Service.DayOfExercise(ctx, n.From)
	if err != nil {
		return err
	}
	if _, ok := day.Exercise(n.To); !ok {
		return fmt.Errorf("exercise %d is not on %s", n.To, day.Date)
	}

	g := get.Get{
		Service: n.Service,
		Date:    day.Date,
		ShowID:  n.ShowID,
		JSON:    n.JSON,
		Intent: func(ctx context.Context, m *viewstate.DayModel) error {
			return m.Reorder(ctx, n.From, n.To)
		},
	}
	return g.Do(ctx)
}
