package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/workout/pkg/commands/options"
	"tableflip.dev/workout/pkg/runner/strike"
)

func addStrike(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"strike"},
		Short:   "Remove an exercise. Its training day stays.",
		Example: `
workout rm 12
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := options.ParseID(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := strike.Strike{
				Service: svc,
				ID:      id,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)

	on := &options.OnOptions{}
	day := &cobra.Command{
		Use:   "rm-day",
		Short: "Remove a training day with all of its exercises.",
		Example: `
workout rm-day --on yesterday
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
			s := strike.StrikeDay{
				Service: svc,
				Date:    date,
			}
			return s.Do(context.Background())
		},
	}
	options.AddOnArgs(day, on)
	topLevel.AddCommand(day)
}
