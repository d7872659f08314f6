// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package value defines the closed set of parameter types a command can
// declare and the tagged values those types produce.
//
// A [Type] is one of string, integer, float, boolean, enum<members>,
// nullable<T> or list<T>. Types are attached to parameters when a
// command is registered, so dispatch over them is an exhaustive switch
// on [Kind] rather than runtime inspection of Go types.
//
// [Coerce] converts a single textual token into a [Value] of a scalar,
// enum or nullable type:
//
//	v, err := value.Coerce("3", value.Integer())
//	if errors.Is(err, value.ErrInvalidFormat) {
//	    // report to the user
//	}
//
// Lists are never coerced as a whole. The binder coerces each element
// against [Type.Elem] and assembles the result with [ListOf].
//
// Enum members match case-insensitively and the coerced value always
// carries the member's declared spelling. [Type.Validate] rejects enums
// whose members differ only by case, so a match is never ambiguous.
package value
