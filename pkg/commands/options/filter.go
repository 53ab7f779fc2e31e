package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/workout/pkg/viewstate"
	"tableflip.dev/workout/pkg/workout"
)

// FilterOptions narrows the history list.
type FilterOptions struct {
	Statuses []string
	Types    []string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringSliceVar(&o.Statuses, "status", nil,
		"Only show days with this status, repeatable: pending, completed, failed.")
	cmd.Flags().StringSliceVar(&o.Types, "type", nil,
		"Only show days holding an exercise of this type, repeatable.")
}

func (o *FilterOptions) GetFilter() (viewstate.Filter, error) {
	var f viewstate.Filter
	for _, raw := range o.Statuses {
		s, err := workout.ParseStatus(raw)
		if err != nil {
			return viewstate.Filter{}, err
		}
		f.Statuses = append(f.Statuses, s)
	}
	for _, raw := range o.Types {
		t, err := workout.ParseType(raw)
		if err != nil {
			return viewstate.Filter{}, err
		}
		f.Types = append(f.Types, t)
	}
	return f, nil
}
