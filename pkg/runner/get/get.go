package get

import (
	"context"
	"errors"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/printers"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/viewstate"
)

// Intent changes the day shown by a DayModel.
type Intent func(ctx context.Context, m *viewstate.DayModel) error

// Get prints the training day of Date, after applying Intent when set.
type Get struct {
	Service *app.Service
	Date    timeutil.Date
	Intent  Intent

	ShowID bool
	JSON   bool
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no persistence")
	}

	m, err := viewstate.NewDayModel(ctx, n.Service, n.Date)
	if err != nil {
		return err
	}
	defer m.Close()

	if n.Intent != nil {
		if err := n.Intent(ctx, m); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	if n.JSON {
		return pp.JSON(m.State())
	}
	pp.NewLine()
	pp.Day(m.State())
	return nil
}
