package app

import (
	"context"
	"fmt"
	"strings"

	"tableflip.dev/workout/pkg/reorder"
	"tableflip.dev/workout/pkg/store"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/workout"
)

// Presets lists presets in their display order.
func (s *Service) Presets(ctx context.Context) ([]workout.Preset, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	presets, err := s.Persistence.Presets(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: presets: %w", err)
	}
	return presets, nil
}

// Preset returns one preset with its exercises.
func (s *Service) Preset(ctx context.Context, id int64) (workout.Preset, error) {
	if s.Persistence == nil {
		return workout.Preset{}, errNoPersistence
	}
	preset, ok, err := s.Persistence.Preset(ctx, id)
	if err != nil {
		return workout.Preset{}, fmt.Errorf("app: preset: %w", err)
	}
	if !ok {
		return workout.Preset{}, notFound("preset", id)
	}
	return preset, nil
}

// CreatePreset appends a preset after every existing one.
func (s *Service) CreatePreset(ctx context.Context, name string, drafts ...workout.Draft) (workout.Preset, error) {
	var preset workout.Preset
	err := s.update(ctx, "create preset", func(tx store.Tx) error {
		var err error
		preset, err = createPreset(tx, name, drafts)
		return err
	})
	return preset, err
}

func createPreset(tx store.Tx, name string, drafts []workout.Draft) (workout.Preset, error) {
	presets, err := tx.Presets()
	if err != nil {
		return workout.Preset{}, err
	}
	preset, err := tx.PutPreset(workout.Preset{
		Name:  strings.TrimSpace(name),
		Order: workout.MaxOrder(presets) + 1,
	})
	if err != nil {
		return preset, err
	}
	for i, d := range drafts {
		e, err := tx.PutPresetExercise(d.PresetExercise(preset.ID, i))
		if err != nil {
			return preset, err
		}
		preset.Exercises = append(preset.Exercises, e)
	}
	return preset, nil
}

// SaveDayAsPreset copies the exercises scheduled on date, warmups excluded,
// into a new preset.
func (s *Service) SaveDayAsPreset(ctx context.Context, date timeutil.Date, name string) (workout.Preset, error) {
	var preset workout.Preset
	err := s.update(ctx, "save day as preset", func(tx store.Tx) error {
		day, ok, err := tx.Day(date)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: no training day on %s", ErrNotFound, date)
		}
		var drafts []workout.Draft
		for _, e := range day.Exercises {
			if e.Type == workout.TypeWarmup {
				continue
			}
			drafts = append(drafts, e.Draft())
		}
		preset, err = createPreset(tx, name, drafts)
		return err
	})
	return preset, err
}

// RenamePreset changes the name of a preset.
func (s *Service) RenamePreset(ctx context.Context, id int64, name string) (workout.Preset, error) {
	var preset workout.Preset
	err := s.update(ctx, "rename preset", func(tx store.Tx) error {
		p, ok, err := tx.Preset(id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("preset", id)
		}
		p.Name = strings.TrimSpace(name)
		preset, err = tx.PutPreset(p)
		return err
	})
	return preset, err
}

// DeletePreset removes a preset and its exercises.
func (s *Service) DeletePreset(ctx context.Context, id int64) error {
	return s.update(ctx, "delete preset", func(tx store.Tx) error {
		if _, ok, err := tx.Preset(id); err != nil {
			return err
		} else if !ok {
			return notFound("preset", id)
		}
		return tx.DeletePreset(id)
	})
}

// AddPresetExercise appends an exercise to a preset.
func (s *Service) AddPresetExercise(ctx context.Context, presetID int64, draft workout.Draft) (workout.PresetExercise, error) {
	var out workout.PresetExercise
	err := s.update(ctx, "add preset exercise", func(tx store.Tx) error {
		preset, ok, err := tx.Preset(presetID)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("preset", presetID)
		}
		out, err = tx.PutPresetExercise(draft.PresetExercise(presetID, workout.MaxOrder(preset.Exercises)+1))
		return err
	})
	return out, err
}

// UpdatePresetExercise replaces the editable fields of a preset exercise.
func (s *Service) UpdatePresetExercise(ctx context.Context, id int64, draft workout.Draft) (workout.PresetExercise, error) {
	var out workout.PresetExercise
	err := s.update(ctx, "update preset exercise", func(tx store.Tx) error {
		e, ok, err := tx.PresetExercise(id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound("preset exercise", id)
		}
		updated := draft.PresetExercise(e.PresetID, e.Order)
		updated.ID = e.ID
		updated.Name = strings.TrimSpace(updated.Name)
		out, err = tx.PutPresetExercise(updated)
		return err
	})
	return out, err
}

// DeletePresetExercise removes one exercise from a preset.
func (s *Service) DeletePresetExercise(ctx context.Context, id int64) error {
	return s.update(ctx, "delete preset exercise", func(tx store.Tx) error {
		if _, ok, err := tx.PresetExercise(id); err != nil {
			return err
		} else if !ok {
			return notFound("preset exercise", id)
		}
		return tx.DeletePresetExercise(id)
	})
}

// ApplyPresetOrder writes the preset order values of a reorder plan.
func (s *Service) ApplyPresetOrder(ctx context.Context, plan reorder.Plan) error {
	if plan.NoOp() {
		return nil
	}
	return s.update(ctx, "reorder presets", func(tx store.Tx) error {
		for _, c := range plan.Changes {
			p, ok, err := tx.Preset(c.ID)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("preset", c.ID)
			}
			if _, err := tx.PutPreset(p.WithOrder(c.Order)); err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyPresetExerciseOrder writes the order values of a reorder plan over
// the exercises of one preset.
func (s *Service) ApplyPresetExerciseOrder(ctx context.Context, plan reorder.Plan) error {
	if plan.NoOp() {
		return nil
	}
	return s.update(ctx, "reorder preset exercises", func(tx store.Tx) error {
		for _, c := range plan.Changes {
			e, ok, err := tx.PresetExercise(c.ID)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("preset exercise", c.ID)
			}
			if _, err := tx.PutPresetExercise(e.WithOrder(c.Order)); err != nil {
				return err
			}
		}
		return nil
	})
}
