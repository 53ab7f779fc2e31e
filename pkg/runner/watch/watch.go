package watch

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/printers"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/viewstate"
)

// Watch prints the training day of Date every time it changes, until ctx
// ends. On a terminal each state replaces the previous one.
type Watch struct {
	Service *app.Service
	Date    timeutil.Date
	ShowID  bool

	// Out defaults to stdout.
	Out io.Writer
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not watch, no persistence")
	}

	out := n.Out
	redraw := func() {}
	if out == nil {
		out = color.Output
		if isatty.IsTerminal(os.Stdout.Fd()) {
			term := termenv.NewOutput(os.Stdout)
			redraw = term.ClearScreen
		}
	}

	m, err := viewstate.NewDayModel(ctx, n.Service, n.Date)
	if err != nil {
		return err
	}
	defer m.Close()

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	for {
		select {
		case <-ctx.Done():
			return nil
		case s, ok := <-m.States():
			if !ok {
				return nil
			}
			redraw()
			pp.Day(s)
		}
	}
}
