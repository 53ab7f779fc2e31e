package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/workout/pkg/commands/options"
	"tableflip.dev/workout/pkg/runner/get"
	"tableflip.dev/workout/pkg/runner/watch"
)

func addDay(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "day",
		Aliases: []string{"get", "today"},
		Short:   "Show the training day of a date.",
		Example: `
workout day
workout day --on yesterday -k
workout day --on 5/28 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			date, err := on.GetOn(svc.Today())
			if err != nil {
				return oo.HandleError(err)
			}
			s := get.Get{
				Service: svc,
				Date:    date,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addWatch(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the training day of a date as it changes, until interrupted.",
		Example: `
workout watch
workout watch --on tomorrow -k
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

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			w := watch.Watch{
				Service: svc,
				Date:    date,
				ShowID:  io.ShowID,
			}
			return w.Do(ctx)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
