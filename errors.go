package maec

import (
	"errors"
	"fmt"
)

// ErrNoMatchingKind is returned when decoding a package object that no
// known MAEC object kind can represent.
var ErrNoMatchingKind = errors.New("no MAEC object kind matches the document")

// MissingFieldError reports a required builder field that was never set.
// Builders fail on the first missing field in a fixed field order.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// InvalidIDError reports a string that failed identifier validation where
// an identifier was required.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid MAEC id: %q", e.ID)
}

// InvalidReferenceError reports a reference field whose kind prefix did
// not match the kind it was required to name.
type InvalidReferenceError struct {
	Ref      string
	WantKind string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid reference %q: want kind %q", e.Ref, e.WantKind)
}

// ValidationError reports a record-level cross-field invariant failure,
// such as a wrong kind tag or schema version.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// DecodeError wraps a failure to map a wire document onto the object
// model, including resolver exhaustion (ErrNoMatchingKind).
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decoding MAEC document: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
