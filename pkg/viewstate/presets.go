package viewstate

import (
	"context"
	"fmt"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/reorder"
	"tableflip.dev/workout/pkg/store"
	"tableflip.dev/workout/pkg/workout"
)

// PresetsState lists presets, and the exercises of each, in displayed order.
type PresetsState struct {
	Presets    []workout.Preset
	Reordering bool
}

// PresetsModel is the view model of the preset list.
type PresetsModel struct {
	*base[PresetsState]

	svc       *app.Service
	presets   *reorder.Engine[workout.Preset]
	exercises *reorder.Engine[workout.PresetExercise]

	// Guarded by base.mu.
	source []workout.Preset
}

// NewPresetsModel follows the presets until ctx ends or Close is called.
func NewPresetsModel(ctx context.Context, svc *app.Service) (*PresetsModel, error) {
	if svc == nil || svc.Persistence == nil {
		return nil, errNoService
	}
	m := &PresetsModel{svc: svc}
	m.base = newBase(svc, m.render)
	notify := func() { m.update(nil) }
	m.presets = reorder.NewEngine[workout.Preset](m.persist(svc.ApplyPresetOrder), notify)
	m.exercises = reorder.NewEngine[workout.PresetExercise](m.persist(svc.ApplyPresetExerciseOrder), notify)

	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	presets, err := store.ObservePresets(ctx, svc.Persistence, m.log)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("viewstate: observe presets: %w", err)
	}
	follow(ctx, m.base, presets, func(p []workout.Preset) { m.source = p }, func([]workout.Preset) { m.refresh(ctx) })
	return m, nil
}

func (m *PresetsModel) persist(write reorder.PersistFunc) reorder.PersistFunc {
	return func(ctx context.Context, plan reorder.Plan) error {
		if err := write(ctx, plan); err != nil {
			return err
		}
		m.refresh(ctx)
		return nil
	}
}

func (m *PresetsModel) refresh(ctx context.Context) {
	m.load.Lock()
	defer m.load.Unlock()

	presets, err := m.svc.Presets(ctx)
	if err != nil {
		if ctx.Err() == nil {
			m.log.WithError(err).Warn("viewstate: refresh presets")
		}
		return
	}
	m.update(func() { m.source = presets })
}

func (m *PresetsModel) render() PresetsState {
	presets := reorder.Project(m.source, m.presets.Overlay)
	for i := range presets {
		presets[i].Exercises = reorder.Project(presets[i].Exercises, m.exercises.Overlay)
	}
	return PresetsState{
		Presets:    presets,
		Reordering: m.presets.Overlay.Active() || m.exercises.Overlay.Active(),
	}
}

// Reorder swaps the positions of two presets.
func (m *PresetsModel) Reorder(ctx context.Context, fromID, toID int64) error {
	m.intent.Lock()
	defer m.intent.Unlock()

	m.mu.Lock()
	items := append([]workout.Preset(nil), m.source...)
	m.mu.Unlock()

	_, err := m.presets.Reorder(ctx, items, fromID, toID)
	return err
}

// ReorderExercise swaps the positions of two exercises inside one preset.
func (m *PresetsModel) ReorderExercise(ctx context.Context, presetID, fromID, toID int64) error {
	m.intent.Lock()
	defer m.intent.Unlock()

	var items []workout.PresetExercise
	found := false
	m.mu.Lock()
	for _, p := range m.source {
		if p.ID == presetID {
			items = append(items, p.Exercises...)
			found = true
			break
		}
	}
	m.mu.Unlock()
	if !found {
		return fmt.Errorf("%w: preset %d", app.ErrNotFound, presetID)
	}

	_, err := m.exercises.Reorder(ctx, items, fromID, toID)
	return err
}
