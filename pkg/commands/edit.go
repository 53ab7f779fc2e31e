package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/workout/pkg/commands/options"
	"tableflip.dev/workout/pkg/form/forms"
	"tableflip.dev/workout/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var name, reps, sets, rest string

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Change the name, reps, sets or rest of an exercise. Progress is kept.",
		Example: `
workout edit 12 --reps 10
workout edit 12 --name "ring dips" --rest 2m
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := options.ParseID(args[0])
			if err != nil {
				return oo.HandleError(err)
			}

			changes := make(map[forms.ExerciseField]string)
			flags := map[string]forms.ExerciseField{
				"name": forms.ExerciseName,
				"reps": forms.ExerciseReps,
				"sets": forms.ExerciseSets,
			}
			values := map[string]string{"name": name, "reps": reps, "sets": sets}
			for flag, field := range flags {
				if cmd.Flags().Changed(flag) {
					changes[field] = values[flag]
				}
			}
			if cmd.Flags().Changed("rest") {
				if changes[forms.ExerciseRest], err = options.RestSeconds(rest); err != nil {
					return oo.HandleError(err)
				}
			}
			if len(changes) == 0 {
				return oo.HandleError(errors.New("nothing to change, set at least one of --name, --reps, --sets or --rest"))
			}

			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := edit.Edit{
				Service: svc,
				ID:      id,
				Changes: changes,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name.")
	cmd.Flags().StringVarP(&reps, "reps", "r", "", "New repetitions, or seconds for holds.")
	cmd.Flags().StringVarP(&sets, "sets", "s", "", "New number of sets.")
	cmd.Flags().StringVar(&rest, "rest", "", "New rest between sets.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
