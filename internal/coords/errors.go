package coords

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching.
var (
	ErrMalformedInput = errors.New("malformed input")
	ErrRange          = errors.New("value out of range")
)

// MalformedInputError reports text that does not match the lexical shape of
// any coordinate form, uses characters outside the form's alphabet, or has
// reserved bits set.
type MalformedInputError struct {
	Input     string // the normalised input
	Offending string // the substring that failed
	Form      Form   // the form the input most closely resembled
	Reason    string
}

func (e *MalformedInputError) Error() string {
	if e.Offending == "" || e.Offending == e.Input {
		return fmt.Sprintf("malformed %s %q: %s", e.Form, e.Input, e.Reason)
	}
	return fmt.Sprintf("malformed %s %q: %q %s", e.Form, e.Input, e.Offending, e.Reason)
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// RangeError reports a field that decoded (or was constructed) outside its
// declared bound.
type RangeError struct {
	Field string
	Value int
	Raw   string // encoded token the value came from, empty for direct construction
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("%s %d (raw %q) out of range %d..%d", e.Field, e.Value, e.Raw, e.Min, e.Max)
	}
	return fmt.Sprintf("%s %d out of range %d..%d", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

func malformed(input, offending string, form Form, reason string) error {
	return &MalformedInputError{Input: input, Offending: offending, Form: form, Reason: reason}
}
