package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/workout/pkg/commands/options"
	"tableflip.dev/workout/pkg/runner/add"
	"tableflip.dev/workout/pkg/runner/presets"
)

func addPreset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "preset",
		Aliases: []string{"presets"},
		Short:   "Manage reusable lists of exercises.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addPresetList(cmd)
	addPresetNew(cmd)
	addPresetRename(cmd)
	addPresetAdd(cmd)
	addPresetApply(cmd)
	addPresetSave(cmd)
	addPresetSwap(cmd)
	addPresetRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addPresetList(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List presets with their exercises.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := presets.List{Service: svc, ShowID: io.ShowID, JSON: oo.JSON}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addPresetNew(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create an empty preset.",
		Example: `
workout preset new push day
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := presets.New{Service: svc, Name: strings.Join(args, " ")}
			return s.Do(context.Background())
		},
	}
	parent.AddCommand(cmd)
}

func addPresetRename(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "rename [id] [name]",
		Short:             "Rename a preset.",
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: presetArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := options.ParseID(args[0])
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := presets.Rename{Service: svc, ID: id, Name: strings.Join(args[1:], " ")}
			return s.Do(context.Background())
		},
	}
	parent.AddCommand(cmd)
}

func addPresetAdd(parent *cobra.Command) {
	io := &options.IDOptions{}
	eo := &options.ExerciseOptions{}
	var preset string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Append an exercise to a preset.",
		Example: `
workout preset add dips --preset 3 --reps 10 --sets 3 --rest 90
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := options.ParseID(preset)
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
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := presets.Add{
				Service:  svc,
				PresetID: id,
				Type:     typ,
				Name:     strings.Join(args, " "),
				Reps:     eo.Reps,
				Sets:     eo.Sets,
				Rest:     rest,
				ShowID:   io.ShowID,
				JSON:     oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "Preset id.")
	_ = cmd.MarkFlagRequired("preset")
	_ = cmd.RegisterFlagCompletionFunc("preset", presetArgs)
	options.AddExerciseArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addPresetApply(parent *cobra.Command) {
	on := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "apply [id]",
		Short: "Copy the exercises of a preset onto a training day.",
		Example: `
workout preset apply 3
workout preset apply 3 --on tomorrow
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: presetArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := options.ParseID(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			date, err := on.GetOn(svc.Today())
			if err != nil {
				return oo.HandleError(err)
			}
			s := add.Preset{
				Service:  svc,
				Date:     date,
				PresetID: id,
				ShowID:   io.ShowID,
				JSON:     oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addPresetSave(parent *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "save [name]",
		Short: "Save the exercises of a training day as a new preset. Warmups are skipped.",
		Example: `
workout preset save
workout preset save legs --on yesterday
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			date, err := on.GetOn(svc.Today())
			if err != nil {
				return err
			}
			s := presets.Save{Service: svc, Date: date, Name: strings.Join(args, " ")}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, on)
	parent.AddCommand(cmd)
}

func addPresetSwap(parent *cobra.Command) {
	io := &options.IDOptions{}
	var preset string

	cmd := &cobra.Command{
		Use:   "swap [id] [id]",
		Short: "Exchange the positions of two presets, or of two exercises with --preset.",
		Example: `
workout preset swap 3 7
workout preset swap 11 12 --preset 3
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := options.ParseIDs(args)
			if err != nil {
				return oo.HandleError(err)
			}
			s := presets.Swap{From: ids[0], To: ids[1], ShowID: io.ShowID, JSON: oo.JSON}
			if preset != "" {
				if s.PresetID, err = options.ParseID(preset); err != nil {
					return oo.HandleError(err)
				}
			}
			if s.Service, err = loadService(); err != nil {
				return oo.HandleError(err)
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "Swap exercises inside this preset.")
	_ = cmd.RegisterFlagCompletionFunc("preset", presetArgs)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addPresetRemove(parent *cobra.Command) {
	exercise := false

	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a preset with its exercises, or one exercise with --exercise.",
		Example: `
workout preset rm 3
workout preset rm 11 --exercise
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: presetArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := options.ParseID(args[0])
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := presets.Remove{Service: svc}
			if exercise {
				s.ExerciseID = id
			} else {
				s.PresetID = id
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&exercise, "exercise", "e", false, "The id names a preset exercise.")
	parent.AddCommand(cmd)
}
