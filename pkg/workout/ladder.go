package workout

import "math"

// LadderSpec describes a rep range to expand into single-set rungs.
type LadderSpec struct {
	Name string
	From int
	To   int
	Step int
	Rest int
}

// MaxRungs bounds the number of exercises a single ladder expands into.
const MaxRungs = 100

// Rungs returns how many exercises Ladder expands spec into, ignoring
// MaxRungs. It is zero when From > To or Step is not positive.
func Rungs(spec LadderSpec) int {
	if spec.Step <= 0 || spec.From > spec.To {
		return 0
	}
	n := (uint(spec.To) - uint(spec.From)) / uint(spec.Step)
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n) + 1
}

// Ladder expands the spec into one Dynamic single-set exercise per rung at
// From, From+Step, ... while the value is <= To. The last rung may stop short
// of To when Step does not divide the range; it never overshoots. At most
// MaxRungs rungs are produced. The result is empty when From > To or Step is
// not positive.
func Ladder(spec LadderSpec) []Draft {
	n := min(Rungs(spec), MaxRungs)
	if n == 0 {
		return nil
	}
	drafts := make([]Draft, 0, n)
	for reps := spec.From; len(drafts) < n; reps += spec.Step {
		drafts = append(drafts, Draft{
			Name: spec.Name,
			Reps: reps,
			Sets: 1,
			Rest: spec.Rest,
			Type: TypeDynamic,
		})
		if reps > spec.To-spec.Step {
			break
		}
	}
	return drafts
}
