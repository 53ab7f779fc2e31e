package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/workout/pkg/commands/options"
	"tableflip.dev/workout/pkg/runner/migrate"
	"tableflip.dev/workout/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarise training day statuses and sets over a window of days.",
		Long: `Report lists the training days within the window with month grids and
status totals.

Examples:
  workout report
  workout report --last 4w
  workout report --since 2024-4-1 --until 2024-4-30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			since, until, err := wo.GetRange(svc.Today())
			if err != nil {
				return oo.HandleError(err)
			}
			s := report.Report{
				Service: svc,
				Since:   since,
				Until:   until,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addMigrate(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	io := &options.IDOptions{}
	var from, to string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Carry unfinished exercises of a failed day onto another day.",
		Long: `Without --from, migrate lists the failed days within the window that
still hold unfinished exercises. With --from, those exercises are copied onto
--to (today by default) with no progress. The failed day is left as it was.

Examples:
  workout migrate --last 2w
  workout migrate --from yesterday
  workout migrate --from 5/6 --to tomorrow`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			today := svc.Today()

			if from == "" {
				since, until, err := wo.GetRange(today)
				if err != nil {
					return oo.HandleError(err)
				}
				s := migrate.Candidates{
					Service: svc,
					Since:   since,
					Until:   until,
					ShowID:  io.ShowID,
					JSON:    oo.JSON,
				}
				return oo.HandleError(s.Do(context.Background()))
			}

			source, err := options.ParseDay(from, today)
			if err != nil {
				return oo.HandleError(err)
			}
			target, err := options.ParseDay(to, today)
			if err != nil {
				return oo.HandleError(err)
			}
			s := migrate.Migrate{
				Service: svc,
				From:    source,
				To:      target,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Failed day to carry exercises from.")
	cmd.Flags().StringVar(&to, "to", "", "Day to carry exercises onto. Defaults to today.")
	options.AddWindowArgs(cmd, wo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
