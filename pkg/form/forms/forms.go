// Package forms defines the concrete input forms of the app on top of the
// generic form engine.
package forms

import (
	"errors"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"tableflip.dev/workout/pkg/form"
)

// ErrInvalid is returned by Draft when the form does not validate. The combined
// error also carries every field error.
var ErrInvalid = errors.New("forms: invalid input")

func invalid[K comparable, S any](f *form.Form[K, S]) error {
	errs := []error{ErrInvalid}
	for _, e := range f.Errors() {
		errs = append(errs, e)
	}
	return multierr.Combine(errs...)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
