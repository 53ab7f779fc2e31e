package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/workout"
)

// Tx is a batch in progress. Reads see the batch's own writes.
type Tx interface {
	Day(date timeutil.Date) (workout.TrainingDay, bool, error)
	DayByID(id int64) (workout.TrainingDay, bool, error)
	Exercise(id int64) (workout.Exercise, bool, error)
	Presets() ([]workout.Preset, error)
	Preset(id int64) (workout.Preset, bool, error)
	PresetExercise(id int64) (workout.PresetExercise, bool, error)
	Goal(id int64) (workout.Goal, bool, error)

	// CreateDay inserts an empty day for date.
	CreateDay(date timeutil.Date) (workout.TrainingDay, error)
	// DeleteDay removes the day and all of its exercises.
	DeleteDay(id int64) error

	// Put* insert rows with a zero ID and overwrite the rest.
	PutExercise(e workout.Exercise) (workout.Exercise, error)
	DeleteExercise(id int64) error
	PutPreset(p workout.Preset) (workout.Preset, error)
	// DeletePreset removes the preset and all of its exercises.
	DeletePreset(id int64) error
	PutPresetExercise(e workout.PresetExercise) (workout.PresetExercise, error)
	DeletePresetExercise(id int64) error
	PutGoal(g workout.Goal) (workout.Goal, error)
	DeleteGoal(id int64) error
	PutRecord(r workout.Record) (workout.Record, error)
}

func (p *persistence) Update(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	t := &tx{base: p.committed(ctx), staged: make(map[string][]byte)}
	if err := fn(t); err != nil {
		p.mu.Unlock()
		return err
	}
	if err := p.commit(t); err != nil {
		p.mu.Unlock()
		return err
	}
	p.mu.Unlock()

	buckets := t.buckets()
	if len(buckets) > 0 {
		p.log.WithField("buckets", strings.Join(buckets, ",")).Debug("store: batch committed")
	}
	for _, bucket := range buckets {
		p.hub.publish(Event{Type: EventBucketChanged, Bucket: bucket})
	}
	return nil
}

type undo struct {
	key     string
	prev    []byte
	existed bool
}

// commit applies staged rows in write order. If any write fails the rows
// already written are restored.
func (p *persistence) commit(t *tx) error {
	done := make([]undo, 0, len(t.order))
	for _, key := range t.order {
		val := t.staged[key]
		u := undo{key: key}
		if p.b.Has(key) {
			prev, err := p.b.Read(key)
			if err != nil {
				p.rollback(done)
				return fmt.Errorf("store: commit %s: %w", key, err)
			}
			u.prev, u.existed = prev, true
		}

		var err error
		switch {
		case val != nil:
			err = p.b.Write(key, val)
		case u.existed:
			err = p.b.Erase(key)
		}
		if err != nil {
			p.rollback(done)
			return fmt.Errorf("store: commit %s: %w", key, err)
		}
		done = append(done, u)
	}
	return nil
}

func (p *persistence) rollback(done []undo) {
	for i := len(done) - 1; i >= 0; i-- {
		u := done[i]
		var err error
		if u.existed {
			err = p.b.Write(u.key, u.prev)
		} else if p.b.Has(u.key) {
			err = p.b.Erase(u.key)
		}
		if err != nil {
			p.log.WithError(err).WithField("key", u.key).Error("store: rollback")
		}
	}
}

type tx struct {
	base view
	// staged holds pending rows; a nil value is a pending delete.
	staged map[string][]byte
	order  []string
}

func (t *tx) get(key string) ([]byte, bool, error) {
	if val, ok := t.staged[key]; ok {
		return val, val != nil, nil
	}
	return t.base.get(key)
}

func (t *tx) keys(bucket string) ([]string, error) {
	keys, err := t.base.keys(bucket)
	if err != nil {
		return nil, err
	}
	prefix := bucket + "-"
	seen := make(map[string]struct{}, len(keys))
	out := keys[:0]
	for _, key := range keys {
		seen[key] = struct{}{}
		if val, ok := t.staged[key]; ok && val == nil {
			continue
		}
		out = append(out, key)
	}
	for key, val := range t.staged {
		if _, ok := seen[key]; ok || val == nil || !strings.HasPrefix(key, prefix) {
			continue
		}
		out = append(out, key)
	}
	sort.Strings(out)
	return out, nil
}

func (t *tx) stage(key string, val []byte) {
	if _, ok := t.staged[key]; !ok {
		t.order = append(t.order, key)
	}
	t.staged[key] = val
}

func (t *tx) put(bucket string, id int64, row any) error {
	val, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", bucket, err)
	}
	t.stage(toKey(bucket, id), val)
	return nil
}

func (t *tx) erase(bucket string, id int64) {
	t.stage(toKey(bucket, id), nil)
}

// buckets lists the buckets the batch wrote to.
func (t *tx) buckets() []string {
	set := make(map[string]struct{})
	for _, key := range t.order {
		if bucket, _, ok := fromKey(key); ok && bucket != bucketMeta {
			set[bucket] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for bucket := range set {
		out = append(out, bucket)
	}
	sort.Strings(out)
	return out
}

func (t *tx) nextID() (int64, error) {
	var last int64
	val, ok, err := t.get(sequenceKey)
	if err != nil {
		return 0, err
	}
	if ok {
		last, err = strconv.ParseInt(string(val), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("store: decode sequence: %w", err)
		}
	}
	last++
	t.stage(sequenceKey, []byte(strconv.FormatInt(last, 10)))
	return last, nil
}

func (t *tx) Day(date timeutil.Date) (workout.TrainingDay, bool, error) {
	return loadDay(t, date)
}

func (t *tx) DayByID(id int64) (workout.TrainingDay, bool, error) {
	return loadDayByID(t, id)
}

func (t *tx) Exercise(id int64) (workout.Exercise, bool, error) {
	return load[workout.Exercise](t, toKey(BucketExercises, id))
}

func (t *tx) Presets() ([]workout.Preset, error) {
	return loadPresets(t)
}

func (t *tx) Preset(id int64) (workout.Preset, bool, error) {
	return loadPreset(t, id)
}

func (t *tx) PresetExercise(id int64) (workout.PresetExercise, bool, error) {
	return load[workout.PresetExercise](t, toKey(BucketPresetExercises, id))
}

func (t *tx) Goal(id int64) (workout.Goal, bool, error) {
	return load[workout.Goal](t, toKey(BucketGoals, id))
}

func (t *tx) CreateDay(date timeutil.Date) (workout.TrainingDay, error) {
	if date.IsZero() {
		return workout.TrainingDay{}, fmt.Errorf("store: create day: date required")
	}
	_, exists, err := loadDay(t, date)
	if err != nil {
		return workout.TrainingDay{}, err
	}
	if exists {
		return workout.TrainingDay{}, fmt.Errorf("%w: %s", ErrDuplicateDay, date)
	}
	id, err := t.nextID()
	if err != nil {
		return workout.TrainingDay{}, err
	}
	day := workout.TrainingDay{ID: id, Date: date}
	if err := t.put(BucketDays, id, day); err != nil {
		return workout.TrainingDay{}, err
	}
	return day, nil
}

func (t *tx) DeleteDay(id int64) error {
	children, err := childrenOf(t, id)
	if err != nil {
		return err
	}
	for _, e := range children {
		t.erase(BucketExercises, e.ID)
	}
	t.erase(BucketDays, id)
	return nil
}

func (t *tx) PutExercise(e workout.Exercise) (workout.Exercise, error) {
	if e.ID == 0 {
		id, err := t.nextID()
		if err != nil {
			return e, err
		}
		e.ID = id
	}
	return e, t.put(BucketExercises, e.ID, e)
}

func (t *tx) DeleteExercise(id int64) error {
	t.erase(BucketExercises, id)
	return nil
}

func (t *tx) PutPreset(p workout.Preset) (workout.Preset, error) {
	if p.ID == 0 {
		id, err := t.nextID()
		if err != nil {
			return p, err
		}
		p.ID = id
	}
	return p, t.put(BucketPresets, p.ID, p)
}

func (t *tx) DeletePreset(id int64) error {
	preset, ok, err := loadPreset(t, id)
	if err != nil || !ok {
		return err
	}
	for _, e := range preset.Exercises {
		t.erase(BucketPresetExercises, e.ID)
	}
	t.erase(BucketPresets, id)
	return nil
}

func (t *tx) PutPresetExercise(e workout.PresetExercise) (workout.PresetExercise, error) {
	if e.ID == 0 {
		id, err := t.nextID()
		if err != nil {
			return e, err
		}
		e.ID = id
	}
	return e, t.put(BucketPresetExercises, e.ID, e)
}

func (t *tx) DeletePresetExercise(id int64) error {
	t.erase(BucketPresetExercises, id)
	return nil
}

func (t *tx) PutGoal(g workout.Goal) (workout.Goal, error) {
	if g.ID == 0 {
		id, err := t.nextID()
		if err != nil {
			return g, err
		}
		g.ID = id
	}
	return g, t.put(BucketGoals, g.ID, g)
}

func (t *tx) DeleteGoal(id int64) error {
	t.erase(BucketGoals, id)
	return nil
}

func (t *tx) PutRecord(r workout.Record) (workout.Record, error) {
	if r.ID == 0 {
		id, err := t.nextID()
		if err != nil {
			return r, err
		}
		r.ID = id
	}
	return r, t.put(BucketRecords, r.ID, r)
}
