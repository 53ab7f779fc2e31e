package report

import (
	"context"
	"errors"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/printers"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/workout"
)

// maxMonths bounds how many month grids precede the report.
const maxMonths = 12

// Report prints month grids covering Since to Until followed by the status
// totals of the range.
type Report struct {
	Service *app.Service
	Since   timeutil.Date
	Until   timeutil.Date

	JSON bool
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no persistence")
	}

	r, err := n.Service.Report(ctx, n.Since, n.Until)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	if n.JSON {
		return pp.JSON(r)
	}

	marks := make(map[timeutil.Date]workout.Status, len(r.Days))
	for _, d := range r.Days {
		marks[d.Day.Date] = d.Status
	}

	pp.NewLine()
	today := n.Service.Today()
	month := timeutil.NewDate(r.Since.Year(), r.Since.Month(), 1)
	for i := 0; i < maxMonths && !month.After(r.Until); i++ {
		pp.Month(month, today, marks)
		month = printers.NextMonth(month)
	}
	pp.Report(r)
	return nil
}
