package strike

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/runner/get"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/viewstate"
)

// Strike removes one exercise from its training day. The day stays, even
// when it ends up empty.
type Strike struct {
	Service *app.Service
	ID      int64

	ShowID bool
	JSON   bool
}

func (n *Strike) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not strike, no persistence")
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
			return m.DeleteExercise(ctx, n.ID)
		},
	}
	return g.Do(ctx)
}

// StrikeDay removes the training day of Date with all of its exercises.
type StrikeDay struct {
	Service *app.Service
	Date    timeutil.Date
}

func (n *StrikeDay) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not strike day, no persistence")
	}
	if err := n.Service.DeleteDay(ctx, n.Date); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "removed %s\n", n.Date)
	return nil
}
