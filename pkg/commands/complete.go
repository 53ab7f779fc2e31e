package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/workout/pkg/commands/options"
	"tableflip.dev/workout/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	for _, undo := range []bool{false, true} {
		io := &options.IDOptions{}
		sets := 1

		cmd := &cobra.Command{
			Use:   "done [id]",
			Short: "Record completed sets of an exercise.",
			Example: `
workout done 12
workout done 12 --sets 3
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
				s := complete.Complete{
					Service: svc,
					ID:      id,
					Sets:    sets,
					Undo:    undo,
					ShowID:  io.ShowID,
					JSON:    oo.JSON,
				}
				err = s.Do(context.Background())
				return oo.HandleError(err)
			},
		}
		if undo {
			cmd.Use = "undo [id]"
			cmd.Short = "Take back completed sets of an exercise."
			cmd.Example = `
workout undo 12
`
		} else {
			cmd.Aliases = []string{"complete"}
		}

		cmd.Flags().IntVarP(&sets, "sets", "s", 1, "Number of sets.")
		options.AddShowIDArgs(cmd, io)
		options.AddOutputArg(cmd, oo)

		topLevel.AddCommand(cmd)
	}
}
