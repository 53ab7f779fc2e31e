// Package presets contains runners for preset management commands.
package presets

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/form/forms"
	"tableflip.dev/workout/pkg/printers"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/viewstate"
	"tableflip.dev/workout/pkg/workout"
)

// List configures the parameters for `workout preset list`.
type List struct {
	Service *app.Service

	ShowID bool
	JSON   bool
}

// Do prints every preset in display order.
func (l *List) Do(ctx context.Context) error {
	if l.Service == nil {
		return errors.New("can not list presets, no persistence")
	}
	return show(ctx, l.Service, l.ShowID, l.JSON, nil)
}

// New configures the parameters for `workout preset new`.
type New struct {
	Service *app.Service
	Name    string
}

// Do creates an empty preset.
func (n *New) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not create preset, no persistence")
	}

	f := forms.NewPreset()
	f.Change(forms.PresetName, n.Name)
	name, err := f.Name()
	if err != nil {
		return err
	}

	p, err := n.Service.CreatePreset(ctx, name)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "Preset %q created with id %d\n", p.Name, p.ID)
	return nil
}

// Rename configures the parameters for `workout preset rename`.
type Rename struct {
	Service *app.Service
	ID      int64
	Name    string
}

// Do renames a preset.
func (r *Rename) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not rename preset, no persistence")
	}

	current, err := r.Service.Preset(ctx, r.ID)
	if err != nil {
		return err
	}
	f := forms.NewPreset()
	f.Seed(forms.PresetSeed{Name: current.Name})
	f.Change(forms.PresetName, r.Name)
	name, err := f.Name()
	if err != nil {
		return err
	}

	p, err := r.Service.RenamePreset(ctx, r.ID, name)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "Preset %d renamed to %q\n", p.ID, p.Name)
	return nil
}

// Add configures the parameters for `workout preset add`.
type Add struct {
	Service  *app.Service
	PresetID int64
	Type     workout.ExerciseType

	Name string
	Reps string
	Sets string
	Rest string

	ShowID bool
	JSON   bool
}

// Do appends an exercise to a preset.
func (a *Add) Do(ctx context.Context) error {
	if a.Service == nil {
		return errors.New("can not add to preset, no persistence")
	}

	f := forms.NewExercise(a.Type)
	f.Change(forms.ExerciseName, a.Name)
	f.Change(forms.ExerciseReps, a.Reps)
	f.Change(forms.ExerciseSets, a.Sets)
	f.Change(forms.ExerciseRest, a.Rest)
	draft, err := f.Draft()
	if err != nil {
		return err
	}

	if _, err := a.Service.AddPresetExercise(ctx, a.PresetID, draft); err != nil {
		return err
	}
	return show(ctx, a.Service, a.ShowID, a.JSON, nil)
}

// Save configures the parameters for `workout preset save`.
type Save struct {
	Service *app.Service
	Date    timeutil.Date
	// Name defaults to a name derived from Date.
	Name string
}

// Do copies the exercises of a training day into a new preset.
func (s *Save) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not save preset, no persistence")
	}

	f := forms.NewSaveAsPreset(s.Date)
	if s.Name != "" {
		f.Change(forms.SaveAsPresetName, s.Name)
	}
	name, err := f.Name()
	if err != nil {
		return err
	}

	p, err := s.Service.SaveDayAsPreset(ctx, s.Date, name)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "Preset %q created with id %d from %s\n", p.Name, p.ID, s.Date)
	return nil
}

// Swap configures the parameters for `workout preset swap`. With PresetID
// set, From and To are exercises of that preset; otherwise they are presets.
type Swap struct {
	Service  *app.Service
	PresetID int64
	From     int64
	To       int64

	ShowID bool
	JSON   bool
}

// Do exchanges the positions of two presets or two preset exercises.
func (s *Swap) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not swap, no persistence")
	}
	return show(ctx, s.Service, s.ShowID, s.JSON, func(m *viewstate.PresetsModel) error {
		if s.PresetID != 0 {
			return m.ReorderExercise(ctx, s.PresetID, s.From, s.To)
		}
		return m.Reorder(ctx, s.From, s.To)
	})
}

// Remove configures the parameters for `workout preset rm`. With
// ExerciseID set only that exercise is removed.
type Remove struct {
	Service    *app.Service
	PresetID   int64
	ExerciseID int64
}

// Do deletes a preset, or one of its exercises.
func (r *Remove) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not remove, no persistence")
	}
	if r.ExerciseID != 0 {
		if err := r.Service.DeletePresetExercise(ctx, r.ExerciseID); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(color.Output, "removed preset exercise %d\n", r.ExerciseID)
		return nil
	}
	if err := r.Service.DeletePreset(ctx, r.PresetID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "removed preset %d\n", r.PresetID)
	return nil
}

func show(ctx context.Context, svc *app.Service, showID, asJSON bool, intent func(m *viewstate.PresetsModel) error) error {
	m, err := viewstate.NewPresetsModel(ctx, svc)
	if err != nil {
		return err
	}
	defer m.Close()

	if intent != nil {
		if err := intent(m); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: showID}
	if asJSON {
		return pp.JSON(m.State().Presets)
	}
	pp.NewLine()
	pp.Presets(m.State().Presets...)
	return nil
}
