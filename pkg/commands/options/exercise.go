package options

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/workout"
)

// ExerciseOptions are the raw inputs of an exercise. Values are validated by
// the exercise form, not here.
type ExerciseOptions struct {
	Type string
	Reps string
	Sets string
	Rest string
}

func AddExerciseArgs(cmd *cobra.Command, o *ExerciseOptions) {
	types := make([]string, 0, len(workout.AllTypes()))
	for _, t := range workout.AllTypes() {
		if t == workout.TypeWarmup || t == workout.TypeLadder {
			continue
		}
		types = append(types, string(t))
	}
	cmd.Flags().StringVarP(&o.Type, "type", "t", string(workout.TypeDynamic),
		"Exercise type, one of "+strings.Join(types, ", ")+".")
	cmd.Flags().StringVarP(&o.Reps, "reps", "r", "",
		"Repetitions per set, or seconds per set for holds.")
	cmd.Flags().StringVarP(&o.Sets, "sets", "s", "1",
		"Number of sets.")
	cmd.Flags().StringVar(&o.Rest, "rest", "0",
		`Rest between sets, example: --rest=90 or --rest=1m30s.`)
}

// GetType resolves the type flag.
func (o *ExerciseOptions) GetType() (workout.ExerciseType, error) {
	return workout.ParseType(o.Type)
}

// GetRest converts the rest flag into the whole seconds the forms expect.
func (o *ExerciseOptions) GetRest() (string, error) {
	return RestSeconds(o.Rest)
}

// RestSeconds converts a rest duration into whole seconds.
func RestSeconds(rest string) (string, error) {
	seconds, err := timeutil.ParseRest(rest)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(seconds), nil
}
