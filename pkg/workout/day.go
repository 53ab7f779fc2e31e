package workout

import (
	"sort"

	"tableflip.dev/workout/pkg/timeutil"
)

// Warmup values seeded into every newly created day.
const (
	WarmupName = "Warmup"
	WarmupReps = 1
	WarmupSets = 1
	WarmupRest = 0
)

// TrainingDay is a calendar date with its scheduled exercises. Exercises are
// kept sorted by Order, ties broken by ID.
type TrainingDay struct {
	ID        int64         `json:"id"`
	Date      timeutil.Date `json:"date"`
	Exercises []Exercise    `json:"-"`
}

// Exercise is one scheduled entry of a training day.
type Exercise struct {
	ID            int64        `json:"id"`
	TrainingDayID int64        `json:"trainingDayId"`
	Name          string       `json:"name"`
	Reps          int          `json:"reps"`
	Sets          int          `json:"sets"`
	CompletedSets int          `json:"completedSets"`
	Rest          int          `json:"rest"`
	Type          ExerciseType `json:"type"`
	Order         int          `json:"order"`
}

// Draft is an exercise that has not been attached to a day yet.
type Draft struct {
	Name string
	Reps int
	Sets int
	Rest int
	Type ExerciseType
}

// WarmupDraft is the synthetic entry inserted ahead of the first exercise of
// a new day.
func WarmupDraft() Draft {
	return Draft{
		Name: WarmupName,
		Reps: WarmupReps,
		Sets: WarmupSets,
		Rest: WarmupRest,
		Type: TypeWarmup,
	}
}

// Exercise materialises the draft for the given day and order.
func (d Draft) Exercise(dayID int64, order int) Exercise {
	typ := d.Type
	if typ == "" {
		typ = TypeDynamic
	}
	return Exercise{
		TrainingDayID: dayID,
		Name:          d.Name,
		Reps:          d.Reps,
		Sets:          d.Sets,
		Rest:          d.Rest,
		Type:          typ,
		Order:         order,
	}
}

// Draft strips identity and progress from an exercise.
func (e Exercise) Draft() Draft {
	return Draft{Name: e.Name, Reps: e.Reps, Sets: e.Sets, Rest: e.Rest, Type: e.Type}
}

// Done reports whether every target set was completed. Overshooting counts.
func (e Exercise) Done() bool {
	return e.CompletedSets >= e.Sets
}

// Remaining returns how many sets are left, never negative.
func (e Exercise) Remaining() int {
	if e.CompletedSets >= e.Sets {
		return 0
	}
	return e.Sets - e.CompletedSets
}

// Increment records one more completed set. The ceiling is not enforced.
func (e Exercise) Increment() Exercise {
	e.CompletedSets++
	return e
}

// Decrement removes one completed set, stopping at zero.
func (e Exercise) Decrement() Exercise {
	if e.CompletedSets > 0 {
		e.CompletedSets--
	}
	return e
}

// OrderKey identifies the exercise when reordering.
func (e Exercise) OrderKey() int64 { return e.ID }

// OrderValue is the position of the exercise among its siblings.
func (e Exercise) OrderValue() int { return e.Order }

// WithOrder returns a copy of the exercise at order.
func (e Exercise) WithOrder(order int) Exercise {
	e.Order = order
	return e
}

// Status derives the completion state of the day relative to today. It is
// recomputed on every call and never stored.
func (d TrainingDay) Status(today timeutil.Date) Status {
	return DeriveStatus(d.Date, d.Exercises, today)
}

// DeriveStatus returns Completed when there is at least one exercise and all
// are done, Failed when the date is strictly before today, Pending otherwise.
func DeriveStatus(date timeutil.Date, exercises []Exercise, today timeutil.Date) Status {
	if len(exercises) > 0 {
		done := true
		for _, e := range exercises {
			if !e.Done() {
				done = false
				break
			}
		}
		if done {
			return StatusCompleted
		}
	}
	if date.Before(today) {
		return StatusFailed
	}
	return StatusPending
}

// Progress sums completed and target sets across the day. Completed sets are
// capped per exercise so overshooting one exercise cannot hide another.
func (d TrainingDay) Progress() (completed, target int) {
	for _, e := range d.Exercises {
		target += e.Sets
		if e.CompletedSets > e.Sets {
			completed += e.Sets
		} else {
			completed += e.CompletedSets
		}
	}
	return completed, target
}

// MaxOrder returns the largest order value among the exercises, or -1.
func (d TrainingDay) MaxOrder() int {
	return MaxOrder(d.Exercises)
}

// Exercise finds a child by id.
func (d TrainingDay) Exercise(id int64) (Exercise, bool) {
	for _, e := range d.Exercises {
		if e.ID == id {
			return e, true
		}
	}
	return Exercise{}, false
}

// MaxOrder returns the largest order among items, or -1 when empty.
func MaxOrder[T interface{ OrderValue() int }](items []T) int {
	highest := -1
	for _, item := range items {
		if v := item.OrderValue(); v > highest {
			highest = v
		}
	}
	return highest
}

// SortExercises orders exercises by Order then ID, in place.
func SortExercises(exercises []Exercise) {
	sort.SliceStable(exercises, func(i, j int) bool {
		if exercises[i].Order != exercises[j].Order {
			return exercises[i].Order < exercises[j].Order
		}
		return exercises[i].ID < exercises[j].ID
	})
}

// SortDays orders days by date, oldest first.
func SortDays(days []TrainingDay) {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
}

// Clone returns a deep copy of the day.
func (d TrainingDay) Clone() TrainingDay {
	d.Exercises = append([]Exercise(nil), d.Exercises...)
	return d
}
