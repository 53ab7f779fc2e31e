package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/workout/pkg/commands/options"
	"tableflip.dev/workout/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	eo := &options.ExerciseOptions{}

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add an exercise to a training day, creating the day when needed.",
		Long: base.Wrap80(`Add an exercise to a training day. The first exercise of a date
creates the training day with a completed warmup ahead of it.`),
		Example: `
workout add pull ups --reps 8 --sets 3 --rest 2m
workout add l-sit --type static --reps 20 --sets 4 --on tomorrow
workout add handstand --type hand-balance-session --reps 600
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			date, err := on.GetOn(svc.Today())
			if err != nil {
				return oo.HandleError(err)
			}
			typ, err := eo.GetType()
			if err != nil {
				return oo.HandleError(err)
			}
			rest, err := eo.GetRest()
			if err != nil {
				return oo.HandleError(err)
			}

			s := add.Add{
				Service: svc,
				Date:    date,
				Type:    typ,
				Name:    strings.Join(args, " "),
				Reps:    eo.Reps,
				Sets:    eo.Sets,
				Rest:    rest,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddExerciseArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addLadder(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	var from, to, step, rest string

	cmd := &cobra.Command{
		Use:   "ladder [name]",
		Short: "Add one single set exercise per rung of a rep ladder.",
		Example: `
workout ladder pull ups --from 1 --to 5
workout ladder push ups --from 2 --to 10 --step 2 --rest 45s
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			date, err := on.GetOn(svc.Today())
			if err != nil {
				return oo.HandleError(err)
			}
			seconds, err := options.RestSeconds(rest)
			if err != nil {
				return oo.HandleError(err)
			}

			s := add.Ladder{
				Service: svc,
				Date:    date,
				Name:    strings.Join(args, " "),
				From:    from,
				To:      to,
				Step:    step,
				Rest:    seconds,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&from, "from", "1", "Reps of the first rung.")
	cmd.Flags().StringVar(&to, "to", "", "Reps of the last rung.")
	cmd.Flags().StringVar(&step, "step", "1", "Reps added per rung.")
	cmd.Flags().StringVar(&rest, "rest", "0", `Rest between rungs, example: --rest=90 or --rest=1m30s.`)
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
