// Package store persists training days, presets, goals and records as JSON
// rows in a diskv tree and streams change notifications.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"tableflip.dev/workout/pkg/timeutil"
	"tableflip.dev/workout/pkg/workout"
)

// ErrDuplicateDay is returned when a second day is created for a date.
var ErrDuplicateDay = errors.New("store: training day already exists for date")

// Persistence defines the persistence contract for the workout data.
type Persistence interface {
	// Days returns every training day with its exercises, oldest first.
	Days(ctx context.Context) ([]workout.TrainingDay, error)
	// Day returns the day scheduled on date. A missing day is not an error.
	Day(ctx context.Context, date timeutil.Date) (workout.TrainingDay, bool, error)
	Presets(ctx context.Context) ([]workout.Preset, error)
	Preset(ctx context.Context, id int64) (workout.Preset, bool, error)
	Goals(ctx context.Context) ([]workout.Goal, error)
	Records(ctx context.Context) ([]workout.Record, error)
	// Update runs fn as one atomic batch. Nothing fn writes is visible until
	// it returns nil and the batch commits; otherwise nothing is written.
	Update(ctx context.Context, fn func(tx Tx) error) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Option configures a persistence.
type Option func(*persistence)

// WithLogger sets the logger used for read and watch problems.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *persistence) {
		p.log = log
	}
}

// WithThrottle sets how long change events are coalesced before delivery.
func WithThrottle(d time.Duration) Option {
	return func(p *persistence) {
		p.throttle = d
	}
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, opts ...Option) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	return newPersistence(newDiskv(basePath), basePath, opts...), nil
}

// NewMemory creates a Persistence that lives only in this process.
func NewMemory(opts ...Option) Persistence {
	return newPersistence(newMemory(), "", opts...)
}

func newPersistence(b backend, basePath string, opts ...Option) *persistence {
	p := &persistence{
		b:        b,
		basePath: basePath,
		log:      logrus.StandardLogger(),
		throttle: 100 * time.Millisecond,
		hub:      newHub(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type persistence struct {
	// mu is held for reading by every read and for writing while a batch
	// commits, so a cascade is never observed half applied.
	mu       sync.RWMutex
	b        backend
	basePath string
	log      logrus.FieldLogger
	throttle time.Duration
	hub      *hub
}

func (p *persistence) committed(ctx context.Context) view {
	return &backendView{b: p.b, cancel: ctx.Done()}
}

func (p *persistence) Days(ctx context.Context) ([]workout.TrainingDay, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return loadDays(p.committed(ctx))
}

func (p *persistence) Day(ctx context.Context, date timeutil.Date) (workout.TrainingDay, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return loadDay(p.committed(ctx), date)
}

func (p *persistence) Presets(ctx context.Context) ([]workout.Preset, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return loadPresets(p.committed(ctx))
}

func (p *persistence) Preset(ctx context.Context, id int64) (workout.Preset, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return loadPreset(p.committed(ctx), id)
}

func (p *persistence) Goals(ctx context.Context) ([]workout.Goal, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	goals, err := list[workout.Goal](p.committed(ctx), BucketGoals)
	if err != nil {
		return nil, err
	}
	workout.SortGoals(goals)
	return goals, nil
}

func (p *persistence) Records(ctx context.Context) ([]workout.Record, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	records, err := list[workout.Record](p.committed(ctx), BucketRecords)
	if err != nil {
		return nil, err
	}
	workout.SortRecords(records)
	return records, nil
}

// view is a readable key space: either the committed rows or a batch in
// progress layered over them.
type view interface {
	get(key string) ([]byte, bool, error)
	keys(bucket string) ([]string, error)
}

type backendView struct {
	b      backend
	cancel <-chan struct{}
}

func (v *backendView) get(key string) ([]byte, bool, error) {
	if !v.b.Has(key) {
		return nil, false, nil
	}
	val, err := v.b.Read(key)
	if err != nil {
		return nil, false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, true, nil
}

func (v *backendView) keys(bucket string) ([]string, error) {
	prefix := bucket + "-"
	var keys []string
	for key := range v.b.Keys(v.cancel) {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	select {
	case <-v.cancel:
		return nil, errors.New("store: scan cancelled")
	default:
	}
	sort.Strings(keys)
	return keys, nil
}

func load[T any](v view, key string) (T, bool, error) {
	var row T
	val, ok, err := v.get(key)
	if err != nil || !ok {
		return row, false, err
	}
	if err := json.Unmarshal(val, &row); err != nil {
		return row, false, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return row, true, nil
}

func list[T any](v view, bucket string) ([]T, error) {
	keys, err := v.keys(bucket)
	if err != nil {
		return nil, err
	}
	rows := make([]T, 0, len(keys))
	for _, key := range keys {
		row, ok, err := load[T](v, key)
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func loadDays(v view) ([]workout.TrainingDay, error) {
	days, err := list[workout.TrainingDay](v, BucketDays)
	if err != nil {
		return nil, err
	}
	exercises, err := list[workout.Exercise](v, BucketExercises)
	if err != nil {
		return nil, err
	}
	byDay := make(map[int64][]workout.Exercise, len(days))
	for _, e := range exercises {
		byDay[e.TrainingDayID] = append(byDay[e.TrainingDayID], e)
	}
	for i := range days {
		days[i].Exercises = byDay[days[i].ID]
		workout.SortExercises(days[i].Exercises)
	}
	workout.SortDays(days)
	return days, nil
}

func loadDay(v view, date timeutil.Date) (workout.TrainingDay, bool, error) {
	days, err := list[workout.TrainingDay](v, BucketDays)
	if err != nil {
		return workout.TrainingDay{}, false, err
	}
	for _, d := range days {
		if d.Date == date {
			exercises, err := childrenOf(v, d.ID)
			if err != nil {
				return workout.TrainingDay{}, false, err
			}
			d.Exercises = exercises
			return d, true, nil
		}
	}
	return workout.TrainingDay{}, false, nil
}

func loadDayByID(v view, id int64) (workout.TrainingDay, bool, error) {
	d, ok, err := load[workout.TrainingDay](v, toKey(BucketDays, id))
	if err != nil || !ok {
		return d, ok, err
	}
	d.Exercises, err = childrenOf(v, d.ID)
	if err != nil {
		return workout.TrainingDay{}, false, err
	}
	return d, true, nil
}

func childrenOf(v view, dayID int64) ([]workout.Exercise, error) {
	exercises, err := list[workout.Exercise](v, BucketExercises)
	if err != nil {
		return nil, err
	}
	out := exercises[:0]
	for _, e := range exercises {
		if e.TrainingDayID == dayID {
			out = append(out, e)
		}
	}
	workout.SortExercises(out)
	return out, nil
}

func loadPresets(v view) ([]workout.Preset, error) {
	presets, err := list[workout.Preset](v, BucketPresets)
	if err != nil {
		return nil, err
	}
	exercises, err := list[workout.PresetExercise](v, BucketPresetExercises)
	if err != nil {
		return nil, err
	}
	byPreset := make(map[int64][]workout.PresetExercise, len(presets))
	for _, e := range exercises {
		byPreset[e.PresetID] = append(byPreset[e.PresetID], e)
	}
	for i := range presets {
		presets[i].Exercises = byPreset[presets[i].ID]
		workout.SortPresetExercises(presets[i].Exercises)
	}
	workout.SortPresets(presets)
	return presets, nil
}

func loadPreset(v view, id int64) (workout.Preset, bool, error) {
	preset, ok, err := load[workout.Preset](v, toKey(BucketPresets, id))
	if err != nil || !ok {
		return preset, ok, err
	}
	exercises, err := list[workout.PresetExercise](v, BucketPresetExercises)
	if err != nil {
		return workout.Preset{}, false, err
	}
	for _, e := range exercises {
		if e.PresetID == id {
			preset.Exercises = append(preset.Exercises, e)
		}
	}
	workout.SortPresetExercises(preset.Exercises)
	return preset, true, nil
}
