package workout

import "sort"

// Preset is a reusable, date independent list of exercises. Order places the
// preset in the preset list.
type Preset struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Order     int              `json:"order"`
	Exercises []PresetExercise `json:"-"`
}

// PresetExercise mirrors Exercise without progress.
type PresetExercise struct {
	ID       int64        `json:"id"`
	PresetID int64        `json:"presetId"`
	Name     string       `json:"name"`
	Reps     int          `json:"reps"`
	Sets     int          `json:"sets"`
	Rest     int          `json:"rest"`
	Type     ExerciseType `json:"type"`
	Order    int          `json:"order"`
}

// OrderKey identifies the preset when reordering.
func (p Preset) OrderKey() int64 { return p.ID }

// OrderValue is the position of the preset among its siblings.
func (p Preset) OrderValue() int { return p.Order }

// WithOrder returns a copy of the preset at order.
func (p Preset) WithOrder(order int) Preset {
	p.Order = order
	return p
}

// OrderKey identifies the preset exercise when reordering.
func (e PresetExercise) OrderKey() int64 { return e.ID }

// OrderValue is the position of the preset exercise among its siblings.
func (e PresetExercise) OrderValue() int { return e.Order }

// WithOrder returns a copy of the preset exercise at order.
func (e PresetExercise) WithOrder(order int) PresetExercise {
	e.Order = order
	return e
}

// Draft converts the preset entry into an attachable draft.
func (e PresetExercise) Draft() Draft {
	return Draft{Name: e.Name, Reps: e.Reps, Sets: e.Sets, Rest: e.Rest, Type: e.Type}
}

// PresetExercise materialises the draft inside a preset.
func (d Draft) PresetExercise(presetID int64, order int) PresetExercise {
	typ := d.Type
	if typ == "" {
		typ = TypeDynamic
	}
	return PresetExercise{
		PresetID: presetID,
		Name:     d.Name,
		Reps:     d.Reps,
		Sets:     d.Sets,
		Rest:     d.Rest,
		Type:     typ,
		Order:    order,
	}
}

// Drafts returns the preset content in display order.
func (p Preset) Drafts() []Draft {
	exercises := append([]PresetExercise(nil), p.Exercises...)
	SortPresetExercises(exercises)
	drafts := make([]Draft, 0, len(exercises))
	for _, e := range exercises {
		drafts = append(drafts, e.Draft())
	}
	return drafts
}

// SortPresets orders presets by Order then ID, in place.
func SortPresets(presets []Preset) {
	sort.SliceStable(presets, func(i, j int) bool {
		if presets[i].Order != presets[j].Order {
			return presets[i].Order < presets[j].Order
		}
		return presets[i].ID < presets[j].ID
	})
}

// SortPresetExercises orders preset exercises by Order then ID, in place.
func SortPresetExercises(exercises []PresetExercise) {
	sort.SliceStable(exercises, func(i, j int) bool {
		if exercises[i].Order != exercises[j].Order {
			return exercises[i].Order < exercises[j].Order
		}
		return exercises[i].ID < exercises[j].ID
	})
}
