package forms

import (
	"tableflip.dev/workout/pkg/form"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/validate"
)

// PresetField names the inputs of the preset form.
type PresetField int

const PresetName PresetField = 0

// PresetSeed prefills the preset form when renaming.
type PresetSeed struct {
	Name string
}

var presetSpec = form.Spec[PresetField, PresetSeed]{
	Fields: []form.Field[PresetField]{
		{Key: PresetName, Label: "name", Validate: validate.Name, Required: true},
	},
	Seed: func(s PresetSeed) form.Values[PresetField] {
		return form.Values[PresetField]{PresetName: s.Name}
	},
}

// Preset is the create/rename preset form.
type Preset struct {
	*form.Form[PresetField, PresetSeed]
}

// NewPreset returns a pristine preset form.
func NewPreset() *Preset {
	return &Preset{Form: form.New(presetSpec)}
}

// Name submits the form and returns the trimmed name.
func (f *Preset) Name() (string, error) {
	if !f.Submit() {
		return "", invalid(f.Form)
	}
	return trim(f.Value(PresetName)), nil
}

// SaveAsPresetField names the inputs of the save-day-as-preset form.
type SaveAsPresetField int

const SaveAsPresetName SaveAsPresetField = 0

// SaveAsPresetSeed is the day being saved.
type SaveAsPresetSeed struct {
	Date timeutil.Date
}

// SuggestedPresetName is the name offered for a day saved as a preset.
func SuggestedPresetName(date timeutil.Date) string {
	return date.Format("Monday Jan 2")
}

var saveAsPresetSpec = form.Spec[SaveAsPresetField, SaveAsPresetSeed]{
	Fields: []form.Field[SaveAsPresetField]{
		{Key: SaveAsPresetName, Label: "name", Validate: validate.Name, Required: true},
	},
	Seed: func(s SaveAsPresetSeed) form.Values[SaveAsPresetField] {
		if s.Date.IsZero() {
			return nil
		}
		return form.Values[SaveAsPresetField]{SaveAsPresetName: SuggestedPresetName(s.Date)}
	},
}

// SaveAsPreset names the preset a day's exercises are copied into.
type SaveAsPreset struct {
	*form.Form[SaveAsPresetField, SaveAsPresetSeed]
}

// NewSaveAsPreset returns a form seeded with a suggested name for date.
func NewSaveAsPreset(date timeutil.Date) *SaveAsPreset {
	f := &SaveAsPreset{Form: form.New(saveAsPresetSpec)}
	f.Seed(SaveAsPresetSeed{Date: date})
	return f
}

// Name submits the form and returns the trimmed name.
func (f *SaveAsPreset) Name() (string, error) {
	if !f.Submit() {
		return "", invalid(f.Form)
	}
	return trim(f.Value(SaveAsPresetName)), nil
}
