package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/workout/pkg/timeutil"
)

// WindowOptions selects a range of days ending today, or an explicit range.
type WindowOptions struct {
	Last  string
	Since string
	Until string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Last, "last", timeutil.DefaultWindow,
		"Window of days to include, example: --last=10d or --last=2w.")
	cmd.Flags().StringVar(&o.Since, "since", "",
		"First date to include. Overrides --last.")
	cmd.Flags().StringVar(&o.Until, "until", "",
		"Last date to include. Defaults to today.")
}

// GetRange returns the inclusive range of days selected.
func (o *WindowOptions) GetRange(today timeutil.Date) (since, until timeutil.Date, err error) {
	until = today
	if o.Until != "" {
		if until, err = ParseDay(o.Until, today); err != nil {
			return
		}
	}
	if o.Since != "" {
		since, err = ParseDay(o.Since, today)
		return
	}
	days, err := timeutil.ParseWindow(o.Last)
	if err != nil {
		return
	}
	since = until.AddDays(1 - days)
	return
}
