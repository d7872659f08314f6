// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binding

// ErrorKind classifies a binding failure.
type ErrorKind string

const (
	// UnknownParameter: a token names no declared parameter.
	UnknownParameter ErrorKind = "unknown_parameter"

	// MissingRequiredParameter: a parameter without a default has no token.
	MissingRequiredParameter ErrorKind = "missing_required_parameter"

	// InvalidFormat: a supplied value does not coerce to the declared
	// type. Covers bad enum members and bad list elements.
	InvalidFormat ErrorKind = "invalid_format"

	// AmbiguousArity: a single-valued parameter received zero or several
	// values, or was named by more than one token.
	AmbiguousArity ErrorKind = "ambiguous_arity"
)

// Error is one binding problem. Its message is the user-facing text.
type Error struct {
	Kind ErrorKind

	// Parameter is the parameter or token name the error refers to,
	// spelled as the user or the declaration spelled it.
	Parameter string

	// Message is the complete user-facing sentence.
	Message string

	// Err is the underlying coercion error for InvalidFormat, or nil.
	Err error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the coercion error so errors.Is(err,
// value.ErrInvalidFormat) holds for InvalidFormat errors.
func (e *Error) Unwrap() error { return e.Err }
