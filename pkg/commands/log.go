package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/workout/pkg/commands/options"
	"tableflip.dev/workout/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	addWeek(topLevel)
	addMonth(topLevel)
	addHistory(topLevel)
}

func addWeek(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	on := &options.OnOptions{}
	page := 0
	today := false

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show a week strip with the selected day below it.",
		Example: `
workout week
workout week --page -1
workout week --on 2024-2-29
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := log.Week{
				Service: svc,
				Page:    page,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
			}
			if on.OnString != "" && !today {
				focus, err := on.GetOn(svc.Today())
				if err != nil {
					return oo.HandleError(err)
				}
				s.Focus = &focus
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 0, "Weeks to move from the shown week, negative for the past.")
	cmd.Flags().BoolVar(&today, "today", false, "Jump back to the current week, ignoring --on.")
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addMonth(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show a month grid colored by day status.",
		Example: `
workout month
workout month --on 2024-4-1
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			date, err := on.GetOn(svc.Today())
			if err != nil {
				return err
			}
			s := log.Month{
				Service: svc,
				On:      date,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, on)

	topLevel.AddCommand(cmd)
}

func addHistory(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"log"},
		Short:   "List training days, newest first.",
		Example: `
workout history
workout history --status failed
workout history --type static --type hand-balance-session
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := fo.GetFilter()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := log.History{
				Service: svc,
				Filter:  filter,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
