package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/workout/pkg/timeutil"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects the training day a command works on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-5-28", --on="5/28", --on=yesterday. Defaults to today.`)
}

// GetOn resolves the date against today. A month/day without a year is the
// nearest such date, looking up to half a year back.
func (o *OnOptions) GetOn(today timeutil.Date) (timeutil.Date, error) {
	return ParseDay(o.OnString, today)
}

// ParseDay reads the date formats accepted by --on.
func ParseDay(s string, today timeutil.Date) (timeutil.Date, error) {
	switch s {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	case "tomorrow":
		return today.AddDays(1), nil
	}

	if t, err := time.Parse(layoutISO, s); err == nil {
		return timeutil.DateOf(t), nil
	}
	t, err := time.Parse(layoutISOShort, s)
	if err != nil {
		return timeutil.Date{}, fmt.Errorf("unknown date %q, expected year-month-day or month/day", s)
	}
	d := timeutil.NewDate(today.Year(), t.Month(), t.Day())
	if timeutil.DaysBetween(today, d) > 183 {
		d = timeutil.NewDate(today.Year()-1, t.Month(), t.Day())
	} else if timeutil.DaysBetween(d, today) > 183 {
		d = timeutil.NewDate(today.Year()+1, t.Month(), t.Day())
	}
	return d, nil
}
