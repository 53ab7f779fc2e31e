package viewstate

import (
	"context"
	"fmt"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/form"
	"tableflip.dev/workout/pkg/form/forms"
	"tableflip.dev/workout/pkg/reorder"
	"tableflip.dev/workout/pkg/store"
	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/workout"
)

// DayState is the screen for one date: the sorted exercises with any pending
// reorder applied, the derived status and the exercise being edited.
type DayState struct {
	Date  timeutil.Date
	Found bool
	DayID int64
	// Exercises are sorted by displayed order.
	Exercises []workout.Exercise
	// Status is empty when the date has no training day.
	Status     workout.Status
	Completed  int
	Target     int
	Reordering bool
	Editing    *EditState
}

// EditState is the exercise form as shown. ExerciseID is zero while a new
// exercise is being composed.
type EditState struct {
	ExerciseID int64
	Type       workout.ExerciseType
	Fields     []form.FieldState[forms.ExerciseField]
	// Valid reports whether saving would pass validation.
	Valid bool
}

type editTarget struct {
	id   int64
	form *forms.Exercise
}

// DayModel is the view model of one training day.
type DayModel struct {
	*base[DayState]

	svc    *app.Service
	date   timeutil.Date
	engine *reorder.Engine[workout.Exercise]

	// Guarded by base.mu.
	source store.DaySnapshot
	edit   *editTarget
}

// NewDayModel follows date until ctx ends or Close is called. The returned
// model already holds the current snapshot.
func NewDayModel(ctx context.Context, svc *app.Service, date timeutil.Date) (*DayModel, error) {
	if svc == nil || svc.Persistence == nil {
		return nil, errNoService
	}
	m := &DayModel{svc: svc, date: date, source: store.DaySnapshot{Date: date}}
	m.base = newBase(svc, m.render)
	m.engine = reorder.NewEngine[workout.Exercise](m.persistOrder, func() { m.update(nil) })

	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	days, err := store.ObserveDay(ctx, svc.Persistence, m.log, date)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("viewstate: observe %s: %w", date, err)
	}
	follow(ctx, m.base, days, m.setSource, func(store.DaySnapshot) { m.refresh(ctx) })
	return m, nil
}

// Date is the date the model follows.
func (m *DayModel) Date() timeutil.Date {
	return m.date
}

func (m *DayModel) setSource(snap store.DaySnapshot) {
	m.source = snap
	if m.edit == nil || m.edit.id == 0 {
		return
	}
	if _, ok := snap.Day.Exercise(m.edit.id); !snap.Found || !ok {
		// The exercise went away underneath the form.
		m.edit = nil
	}
}

func (m *DayModel) render() DayState {
	s := DayState{
		Date:       m.date,
		Found:      m.source.Found,
		Reordering: m.engine.Overlay.Active(),
	}
	if m.source.Found {
		day := m.source.Day.Clone()
		day.Exercises = reorder.Project(day.Exercises, m.engine.Overlay)
		s.DayID = day.ID
		s.Exercises = day.Exercises
		s.Status = day.Status(m.svc.Today())
		s.Completed, s.Target = day.Progress()
	}
	if m.edit != nil {
		s.Editing = &EditState{
			ExerciseID: m.edit.id,
			Type:       m.edit.form.Type,
			Fields:     m.edit.form.Snapshot(),
			Valid:      m.edit.form.Valid(),
		}
	}
	return s
}

// refresh reads the day straight from the store. Intents call it so the
// model reflects a write as soon as they return; store events call it too,
// so every source update goes through one ordered path.
func (m *DayModel) refresh(ctx context.Context) {
	m.load.Lock()
	defer m.load.Unlock()

	day, ok, err := m.svc.Day(ctx, m.date)
	if err != nil {
		if ctx.Err() == nil {
			m.log.WithError(err).WithField("date", m.date.String()).Warn("viewstate: refresh day")
		}
		return
	}
	m.update(func() { m.setSource(store.DaySnapshot{Date: m.date, Day: day, Found: ok}) })
}

func (m *DayModel) do(ctx context.Context, fn func() error) error {
	m.intent.Lock()
	defer m.intent.Unlock()
	if err := fn(); err != nil {
		return err
	}
	m.refresh(ctx)
	return nil
}

func (m *DayModel) persistOrder(ctx context.Context, plan reorder.Plan) error {
	if err := m.svc.ApplyExerciseOrder(ctx, plan); err != nil {
		return err
	}
	m.refresh(ctx)
	return nil
}

// AddExercise appends draft to the day, creating it when needed.
func (m *DayModel) AddExercise(ctx context.Context, draft workout.Draft) error {
	return m.do(ctx, func() error {
		_, err := m.svc.Attach(ctx, m.date, draft)
		return err
	})
}

// AddLadder appends the rungs of spec to the day.
func (m *DayModel) AddLadder(ctx context.Context, spec workout.LadderSpec) error {
	return m.do(ctx, func() error {
		_, err := m.svc.AttachLadder(ctx, m.date, spec)
		return err
	})
}

// ApplyPreset appends the exercises of a preset to the day.
func (m *DayModel) ApplyPreset(ctx context.Context, presetID int64) error {
	return m.do(ctx, func() error {
		_, err := m.svc.ApplyPreset(ctx, m.date, presetID)
		return err
	})
}

// Reorder swaps the positions of two exercises. The swap shows immediately
// and is withdrawn once the write settles, whatever its outcome.
func (m *DayModel) Reorder(ctx context.Context, fromID, toID int64) error {
	m.intent.Lock()
	defer m.intent.Unlock()

	m.mu.Lock()
	items := append([]workout.Exercise(nil), m.source.Day.Exercises...)
	m.mu.Unlock()

	_, err := m.engine.Reorder(ctx, items, fromID, toID)
	return err
}

// IncrementSet records one more completed set.
func (m *DayModel) IncrementSet(ctx context.Context, id int64) error {
	return m.do(ctx, func() error {
		_, err := m.svc.IncrementSet(ctx, id)
		return err
	})
}

// DecrementSet removes one completed set.
func (m *DayModel) DecrementSet(ctx context.Context, id int64) error {
	return m.do(ctx, func() error {
		_, err := m.svc.DecrementSet(ctx, id)
		return err
	})
}

// DeleteExercise removes one exercise. An open form for it is dropped.
func (m *DayModel) DeleteExercise(ctx context.Context, id int64) error {
	return m.do(ctx, func() error {
		return m.svc.DeleteExercise(ctx, id)
	})
}

// Edit opens the form for an existing exercise, seeded with its values.
func (m *DayModel) Edit(id int64) error {
	m.intent.Lock()
	defer m.intent.Unlock()

	var err error
	m.update(func() {
		e, ok := m.source.Day.Exercise(id)
		if !ok {
			err = fmt.Errorf("%w: exercise %d", app.ErrNotFound, id)
			return
		}
		m.edit = &editTarget{id: id, form: forms.EditExercise(e)}
	})
	return err
}

// Compose opens an empty form for a new exercise of typ. The rest value of
// an open form is carried over.
func (m *DayModel) Compose(typ workout.ExerciseType) {
	m.intent.Lock()
	defer m.intent.Unlock()

	m.update(func() {
		f := forms.NewExercise(typ)
		if m.edit != nil {
			if rest := m.edit.form.Value(forms.ExerciseRest); rest != "" {
				f.Seed(forms.CarryRest(rest))
			}
		}
		m.edit = &editTarget{form: f}
	})
}

// ChangeField types value into a field of the open form.
func (m *DayModel) ChangeField(k forms.ExerciseField, value string) {
	m.intent.Lock()
	defer m.intent.Unlock()

	m.update(func() {
		if m.edit != nil {
			m.edit.form.Change(k, value)
		}
	})
}

// BlurField marks a field of the open form as visited.
func (m *DayModel) BlurField(k forms.ExerciseField) {
	m.intent.Lock()
	defer m.intent.Unlock()

	m.update(func() {
		if m.edit != nil {
			m.edit.form.Blur(k)
		}
	})
}

// CancelEdit closes the form without writing.
func (m *DayModel) CancelEdit() {
	m.intent.Lock()
	defer m.intent.Unlock()

	m.update(func() { m.edit = nil })
}

// SaveEdit submits the open form. An invalid form stays open with its errors
// shown and nothing is written. A failed write also keeps the form open.
func (m *DayModel) SaveEdit(ctx context.Context) error {
	m.intent.Lock()
	defer m.intent.Unlock()

	var (
		target *editTarget
		draft  workout.Draft
		err    error
	)
	m.update(func() {
		target = m.edit
		if target == nil {
			return
		}
		draft, err = target.form.Draft()
	})
	if target == nil {
		return nil
	}
	if err != nil {
		return err
	}

	if target.id == 0 {
		_, err = m.svc.Attach(ctx, m.date, draft)
	} else {
		_, err = m.svc.UpdateExercise(ctx, target.id, draft)
	}
	if err != nil {
		return err
	}
	m.update(func() {
		if m.edit == target {
			m.edit = nil
		}
	})
	m.refresh(ctx)
	return nil
}
