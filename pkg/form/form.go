// Package form is a field state container shared by every input form. A form
// is described once by a Spec over its own field key type and seed type; all
// forms follow the same change/blur/submit rules.
package form

import (
	"strings"

	"tableflip.dev/workout/pkg/validate"
)

// Field describes one input.
type Field[K comparable] struct {
	Key   K
	Label string
	// Validate returns an error message or "". Nil means always valid.
	Validate validate.Func
	// Required fields must be non-blank for the form to be valid.
	Required bool
	// Numeric fields drop non-digit characters on change.
	Numeric bool
}

// Rule is a cross-field check whose message is reported on Field.
type Rule[K comparable] struct {
	Field K
	Check func(values Values[K]) string
}

// Spec describes a concrete form shape and how a seed of type S maps to
// field values.
type Spec[K comparable, S any] struct {
	Fields []Field[K]
	Rules  []Rule[K]
	Seed   func(seed S) Values[K]
}

// Values maps field keys to raw text.
type Values[K comparable] map[K]string

// Int parses the value of k, returning 0 when it is not a number.
func (v Values[K]) Int(k K) int {
	return validate.Int(v[k])
}

// State is the per-field state.
type State struct {
	Value   string
	Error   string
	Touched bool
}

// FieldState pairs a key with its state for ordered snapshots.
type FieldState[K comparable] struct {
	Key   K
	Label string
	State
}

// Form holds the state of every field of one form instance.
type Form[K comparable, S any] struct {
	spec   Spec[K, S]
	index  map[K]int
	states []State
}

// New builds a pristine form for spec.
func New[K comparable, S any](spec Spec[K, S]) *Form[K, S] {
	f := &Form[K, S]{
		spec:  spec,
		index: make(map[K]int, len(spec.Fields)),
	}
	for i, field := range spec.Fields {
		f.index[field.Key] = i
	}
	f.Reset()
	return f
}

// Change stores a new value. Numeric fields are filtered to digits first.
// The error is recomputed only when the field was already touched, so a
// fresh field does not flash errors while typing.
func (f *Form[K, S]) Change(k K, value string) {
	i, ok := f.index[k]
	if !ok {
		return
	}
	if f.spec.Fields[i].Numeric {
		value = validate.Digits(value)
	}
	f.states[i].Value = value
	if f.states[i].Touched {
		f.states[i].Error = f.check(i)
	}
	f.recheckRules(k)
}

// Blur marks the field touched and validates it.
func (f *Form[K, S]) Blur(k K) {
	i, ok := f.index[k]
	if !ok {
		return
	}
	f.states[i].Touched = true
	f.states[i].Error = f.check(i)
}

// Submit touches and validates every field and reports whether the form is
// valid.
func (f *Form[K, S]) Submit() bool {
	for i := range f.states {
		f.states[i].Touched = true
		f.states[i].Error = f.check(i)
	}
	return f.Valid()
}

// Valid reports whether no field has an error, every required field is
// non-blank and every rule passes.
func (f *Form[K, S]) Valid() bool {
	values := f.Values()
	for i, field := range f.spec.Fields {
		if f.states[i].Error != "" {
			return false
		}
		if field.Required && strings.TrimSpace(f.states[i].Value) == "" {
			return false
		}
		if field.Validate != nil && field.Validate(f.states[i].Value) != "" {
			return false
		}
	}
	for _, rule := range f.spec.Rules {
		if rule.Check(values) != "" {
			return false
		}
	}
	return true
}

// Reset returns the form to its pristine state.
func (f *Form[K, S]) Reset() {
	f.states = make([]State, len(f.spec.Fields))
}

// Seed resets the form and fills in values from seed. Seeded fields are not
// touched and carry no error.
func (f *Form[K, S]) Seed(seed S) {
	f.Reset()
	if f.spec.Seed == nil {
		return
	}
	for k, v := range f.spec.Seed(seed) {
		i, ok := f.index[k]
		if !ok {
			continue
		}
		if f.spec.Fields[i].Numeric {
			v = validate.Digits(v)
		}
		f.states[i].Value = v
	}
}

// Field returns the state of k.
func (f *Form[K, S]) Field(k K) State {
	i, ok := f.index[k]
	if !ok {
		return State{}
	}
	return f.states[i]
}

// Value returns the current text of k.
func (f *Form[K, S]) Value(k K) string {
	return f.Field(k).Value
}

// Error returns the current error of k, or "".
func (f *Form[K, S]) Error(k K) string {
	return f.Field(k).Error
}

// Values copies the current values.
func (f *Form[K, S]) Values() Values[K] {
	values := make(Values[K], len(f.states))
	for i, field := range f.spec.Fields {
		values[field.Key] = f.states[i].Value
	}
	return values
}

// Snapshot returns the fields in declaration order.
func (f *Form[K, S]) Snapshot() []FieldState[K] {
	out := make([]FieldState[K], 0, len(f.states))
	for i, field := range f.spec.Fields {
		out = append(out, FieldState[K]{Key: field.Key, Label: field.Label, State: f.states[i]})
	}
	return out
}

// Errors returns the current field errors in declaration order.
func (f *Form[K, S]) Errors() []*validate.Error {
	var errs []*validate.Error
	for i, field := range f.spec.Fields {
		if f.states[i].Error == "" {
			continue
		}
		errs = append(errs, &validate.Error{Field: field.Label, Message: f.states[i].Error})
	}
	return errs
}

// Pristine reports whether nothing was typed, touched or flagged.
func (f *Form[K, S]) Pristine() bool {
	for _, s := range f.states {
		if s != (State{}) {
			return false
		}
	}
	return true
}

func (f *Form[K, S]) check(i int) string {
	field := f.spec.Fields[i]
	value := f.states[i].Value
	if field.Validate != nil {
		if msg := field.Validate(value); msg != "" {
			return msg
		}
	}
	if field.Required && strings.TrimSpace(value) == "" {
		return validate.MsgRequired
	}
	values := f.Values()
	for _, rule := range f.spec.Rules {
		if rule.Field != field.Key {
			continue
		}
		if msg := rule.Check(values); msg != "" {
			return msg
		}
	}
	return ""
}

// recheckRules refreshes touched fields whose rules may depend on changed.
func (f *Form[K, S]) recheckRules(changed K) {
	for _, rule := range f.spec.Rules {
		if rule.Field == changed {
			continue
		}
		i := f.index[rule.Field]
		if f.states[i].Touched {
			f.states[i].Error = f.check(i)
		}
	}
}
