// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat matches every coercion failure via errors.Is.
var ErrInvalidFormat = errors.New("invalid format")

// FormatError describes text that could not be coerced to a type.
type FormatError struct {
	// Text is the offending input, verbatim.
	Text string

	// Type is the type the text was coerced against.
	Type Type

	// Legal lists the accepted spellings when the domain is finite
	// (enum members, boolean literals). Nil otherwise.
	Legal []string
}

func (e *FormatError) Error() string {
	if len(e.Legal) > 0 {
		return fmt.Sprintf("%q is not a valid %s; expected one of %s",
			e.Text, e.Type.Scalar().Kind(), strings.Join(e.Legal, ","))
	}
	return fmt.Sprintf("%q is not a valid %s", e.Text, e.Type.Scalar())
}

// Is makes errors.Is(err, ErrInvalidFormat) succeed.
func (e *FormatError) Is(target error) bool { return target == ErrInvalidFormat }

var booleanLiterals = []string{"true", "false"}

// Coerce converts text to a value of type t. Strings never fail;
// integers, floats and booleans use their canonical textual forms;
// enums match member names case-insensitively; nullable types coerce
// as their inner type. List types are rejected: coerce each element
// against t.Elem() instead.
func Coerce(text string, t Type) (Value, error) {
	switch t.kind {
	case KindString:
		return OfString(text), nil

	case KindInteger:
		parsed, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, &FormatError{Text: text, Type: t}
		}
		return OfInteger(parsed), nil

	case KindFloat:
		parsed, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, &FormatError{Text: text, Type: t}
		}
		return OfFloat(parsed), nil

	case KindBoolean:
		switch {
		case strings.EqualFold(text, "true"):
			return OfBoolean(true), nil
		case strings.EqualFold(text, "false"):
			return OfBoolean(false), nil
		}
		return Value{}, &FormatError{Text: text, Type: t, Legal: booleanLiterals}

	case KindEnum:
		return coerceEnum(text, t)

	case KindNullable:
		inner, err := Coerce(text, t.Elem())
		if err != nil {
			var formatErr *FormatError
			if errors.As(err, &formatErr) {
				// Report against the nullable so callers see the
				// declared type; the message names the inner type.
				formatErr.Type = t
			}
			return Value{}, err
		}
		return Present(inner), nil

	case KindList:
		return Value{}, fmt.Errorf("value: %s must be coerced element by element", t)

	default:
		return Value{}, fmt.Errorf("value: cannot coerce to %s", t)
	}
}

func coerceEnum(text string, t Type) (Value, error) {
	for _, member := range t.members {
		if member == text {
			return Value{typ: t, text: member}, nil
		}
	}
	for _, member := range t.members {
		if strings.EqualFold(member, text) {
			return Value{typ: t, text: member}, nil
		}
	}
	return Value{}, &FormatError{Text: text, Type: t, Legal: t.Members()}
}
