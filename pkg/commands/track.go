package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/workout/pkg/commands/options"
	"tableflip.dev/workout/pkg/runner/track"
)

func addGoal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals"},
		Short:   "Track progress towards skill goals.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := track.Goals{Service: svc}
			return s.Do(context.Background())
		},
	}

	addGoalList(cmd)
	addGoalNew(cmd)
	addGoalStep(cmd, "inc", false)
	addGoalStep(cmd, "dec", true)
	addGoalRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addGoalList(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals with their progress.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := track.Goals{Service: svc, ShowID: io.ShowID, JSON: oo.JSON}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addGoalNew(parent *cobra.Command) {
	var target, count, units string

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a goal.",
		Example: `
workout goal new muscle up --target 5 --units reps
workout goal new handstand --target 60 --count 20 --units s
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := track.NewGoal{
				Service: svc,
				Name:    strings.Join(args, " "),
				Target:  target,
				Count:   count,
				Units:   units,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Count that reaches the goal.")
	cmd.Flags().StringVar(&count, "count", "", "Starting count.")
	cmd.Flags().StringVar(&units, "units", "", "Units of the count, example: reps or s.")
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addGoalStep(parent *cobra.Command, use string, down bool) {
	by := 1

	cmd := &cobra.Command{
		Use:   use + " [id]",
		Short: "Move the count of a goal up.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := options.ParseID(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := track.StepGoal{Service: svc, ID: id, By: by, Down: down, JSON: oo.JSON}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	if down {
		cmd.Short = "Move the count of a goal down, never below zero."
	}

	cmd.Flags().IntVarP(&by, "by", "b", 1, "Amount to move by.")
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addGoalRemove(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a goal.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := options.ParseID(args[0])
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := track.RemoveGoal{Service: svc, ID: id}
			return s.Do(context.Background())
		},
	}
	parent.AddCommand(cmd)
}

func addRecord(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var count, units string

	cmd := &cobra.Command{
		Use:     "record [name]",
		Aliases: []string{"records", "pr"},
		Short:   "Log a personal record, or list records when no name is given.",
		Example: `
workout record
workout record plank --count 95 --units s
workout record plank --count 120
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			if len(args) == 0 {
				s := track.Records{Service: svc, ShowID: io.ShowID, JSON: oo.JSON}
				return oo.HandleError(s.Do(context.Background()))
			}
			s := track.NewRecord{
				Service: svc,
				Name:    strings.Join(args, " "),
				Count:   count,
				Units:   units,
				JSON:    oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&count, "count", "c", "", "Value reached.")
	cmd.Flags().StringVar(&units, "units", "", "Units of the value. Defaults to those of the last record with this name.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
