package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/validate"
	"tableflip.dev/workout/pkg/workout"
)

func TestExerciseDraft(t *testing.T) {
	f := NewExercise(workout.TypeStatic)
	f.Change(ExerciseName, "  L-sit ")
	f.Change(ExerciseReps, "30s")
	f.Change(ExerciseSets, "3")
	f.Change(ExerciseRest, "90")

	d, err := f.Draft()
	require.NoError(t, err)
	assert.Equal(t, workout.Draft{Name: "L-sit", Reps: 30, Sets: 3, Rest: 90, Type: workout.TypeStatic}, d)
}

func TestExerciseDraftInvalid(t *testing.T) {
	f := NewExercise("")
	f.Change(ExerciseName, "a")
	f.Change(ExerciseReps, "0")

	_, err := f.Draft()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, validate.MsgNameTooShort, f.Error(ExerciseName))
	assert.Equal(t, validate.MsgNotPositive, f.Error(ExerciseReps))
	assert.Equal(t, validate.MsgRequired, f.Error(ExerciseSets))
	assert.Equal(t, workout.TypeDynamic, f.Type)

	errs := multierr.Errors(err)
	require.Len(t, errs, 1+len(f.Errors()))
	assert.Equal(t, ErrInvalid, errs[0])
	var ve *validate.Error
	require.ErrorAs(t, errs[1], &ve)
	assert.Equal(t, validate.MsgNameTooShort, ve.Message)
}

func TestEditExerciseSeedsWithoutTouching(t *testing.T) {
	f := EditExercise(workout.Exercise{ID: 4, Name: "Dips", Reps: 8, Sets: 3, Rest: 0, Type: workout.TypeDynamic})

	assert.Equal(t, "Dips", f.Value(ExerciseName))
	assert.Equal(t, "0", f.Value(ExerciseRest))
	for _, st := range f.Snapshot() {
		assert.False(t, st.Touched, st.Label)
		assert.Empty(t, st.Error, st.Label)
	}
	assert.True(t, f.Valid())
}

func TestSwitchingToLadderKeepsRest(t *testing.T) {
	f := NewExercise(workout.TypeDynamic)
	f.Change(ExerciseName, "Push up")
	f.Change(ExerciseRest, "120")

	l := f.Ladder()
	assert.Equal(t, "120", l.Value(LadderRest))
	assert.Empty(t, l.Value(LadderName))

	back := l.Exercise(workout.TypeStatic)
	assert.Equal(t, "120", back.Value(ExerciseRest))
	assert.Equal(t, workout.TypeStatic, back.Type)
}

func TestLadderRule(t *testing.T) {
	f := NewLadder()
	f.Change(LadderName, "Pull up")
	f.Change(LadderFrom, "10")
	f.Change(LadderTo, "5")
	f.Change(LadderStep, "5")
	f.Change(LadderRest, "60")

	_, err := f.Spec()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, MsgToBelowFrom, f.Error(LadderTo))

	f.Change(LadderTo, "20")
	drafts, err := f.Drafts()
	require.NoError(t, err)
	require.Len(t, drafts, 3)
	assert.Equal(t, []int{10, 15, 20}, []int{drafts[0].Reps, drafts[1].Reps, drafts[2].Reps})
	assert.Equal(t, 60, drafts[2].Rest)
}

func TestLadderRungLimit(t *testing.T) {
	f := NewLadder()
	f.Change(LadderName, "Squat")
	f.Change(LadderFrom, "1")
	f.Change(LadderTo, "1000000000000")
	f.Change(LadderStep, "1")
	f.Change(LadderRest, "0")

	_, err := f.Spec()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, MsgTooManyRungs, f.Error(LadderTo))

	f.Change(LadderStep, "10000000000")
	assert.Empty(t, f.Error(LadderTo))
	drafts, err := f.Drafts()
	require.NoError(t, err)
	assert.Len(t, drafts, workout.MaxRungs)
}

func TestGoalDraft(t *testing.T) {
	f := NewGoal()
	f.Change(GoalName, "Muscle up")
	f.Change(GoalTarget, "10")
	f.Change(GoalUnits, " reps ")

	g, err := f.Draft()
	require.NoError(t, err)
	assert.Equal(t, workout.Goal{Name: "Muscle up", Target: 10, Units: "reps"}, g)
}

func TestGoalTargetMustBePositive(t *testing.T) {
	f := NewGoal()
	f.Seed(GoalSeed{Goal: workout.Goal{Name: "Handstand", Target: 0, Count: 4}})
	assert.False(t, f.Submit())
	assert.Equal(t, validate.MsgNotPositive, f.Error(GoalTarget))
	assert.Empty(t, f.Error(GoalCount))
}

func TestRecordDraft(t *testing.T) {
	f := NewRecord()
	f.Seed(RecordSeed{Name: "Plank", Units: "seconds"})
	f.Change(RecordCount, "0")

	_, err := f.Draft()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, validate.MsgNotPositive, f.Error(RecordCount))

	f.Change(RecordCount, "95")
	r, err := f.Draft()
	require.NoError(t, err)
	assert.Equal(t, workout.Record{Name: "Plank", Count: 95, Units: "seconds"}, r)
}

func TestPresetName(t *testing.T) {
	f := NewPreset()
	_, err := f.Name()
	require.ErrorIs(t, err, ErrInvalid)

	f.Seed(PresetSeed{Name: " Legs "})
	name, err := f.Name()
	require.NoError(t, err)
	assert.Equal(t, "Legs", name)
}

func TestSaveAsPresetSuggestsName(t *testing.T) {
	date := timeutil.NewDate(2024, 5, 6)
	f := NewSaveAsPreset(date)
	assert.Equal(t, "Monday May 6", f.Value(SaveAsPresetName))
	assert.False(t, f.Field(SaveAsPresetName).Touched)

	f.Change(SaveAsPresetName, "x")
	_, err := f.Name()
	require.ErrorIs(t, err, ErrInvalid)

	empty := NewSaveAsPreset(timeutil.Date{})
	assert.True(t, empty.Pristine())
}
