// Package validate holds the pure field validators shared by every form.
package validate

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Messages returned by the validators.
const (
	MsgNameTooShort = "Must be at least 2 characters"
	MsgRequired     = "Required"
	MsgNotANumber   = "Must be a whole number"
	MsgNotPositive  = "Must be greater than 0"
)

// MinNameCharacters is the shortest accepted name, whitespace excluded.
const MinNameCharacters = 2

// Error is a user-correctable problem with a single field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Func checks raw input and returns an error message, or "" when valid.
type Func func(value string) string

// Name requires at least two non-whitespace characters after trimming.
func Name(value string) string {
	trimmed := strings.TrimSpace(value)
	count := 0
	for _, r := range trimmed {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	if count < MinNameCharacters {
		return MsgNameTooShort
	}
	return ""
}

// PositiveInt requires digits only, a value that parses, and > 0.
func PositiveInt(value string) string {
	n, msg := parseDigits(value)
	if msg != "" {
		return msg
	}
	if n <= 0 {
		return MsgNotPositive
	}
	return ""
}

// NonNegativeInt requires digits only and a value that parses. A sign is not
// a digit, so anything that passes is >= 0.
func NonNegativeInt(value string) string {
	_, msg := parseDigits(value)
	return msg
}

// Required rejects blank input.
func Required(value string) string {
	if strings.TrimSpace(value) == "" {
		return MsgRequired
	}
	return ""
}

// Optional accepts anything.
func Optional(string) string {
	return ""
}

// Digits drops every character that is not an ASCII digit. Numeric fields
// run input through it before validation, so invalid characters are
// discarded rather than reported.
func Digits(value string) string {
	if value == "" {
		return value
	}
	var b strings.Builder
	b.Grow(utf8.RuneCountInString(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Int parses a field value that has already passed validation. Invalid input
// yields 0.
func Int(value string) int {
	n, msg := parseDigits(value)
	if msg != "" {
		return 0
	}
	return n
}

func parseDigits(value string) (int, string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, MsgRequired
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return 0, MsgNotANumber
		}
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, MsgNotANumber
	}
	return n, ""
}

// OrBlank accepts blank input and otherwise defers to fn.
func OrBlank(fn Func) Func {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return ""
		}
		return fn(value)
	}
}
