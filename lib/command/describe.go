// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/conquer/lib/binding"
	"github.com/bureau-foundation/conquer/lib/value"
)

// Describe returns one help line per declared parameter, in order:
//
//	-name (integer): This parameter is Optional.
//	-color (string): This parameter is Required and must be one of these following (Red,Green,Blue).
//	-colors (list<string>): This parameter is Required and must be one of these following (Red,Green,Blue).
//
// Enums are labelled string because the user types their members as
// text. Nullable parameters use the label of their inner type.
func Describe(descriptor *Descriptor) []string {
	lines := make([]string, 0, len(descriptor.params))
	for _, param := range descriptor.params {
		lines = append(lines, describeParameter(param))
	}
	return lines
}

func describeParameter(param binding.Parameter) string {
	scalar := param.Type.Scalar()
	if members := memberNames(param.Type); len(members) > 0 {
		return fmt.Sprintf("-%s (%s): This parameter is %s and must be one of these following (%s).",
			param.Name, typeLabel(scalar), param.Priority(), strings.Join(members, ","))
	}
	return fmt.Sprintf("-%s (%s): This parameter is %s.", param.Name, typeLabel(scalar), param.Priority())
}

// memberNames returns the legal members of an enum, nullable enum or
// list of enums, or nil.
func memberNames(t value.Type) []string {
	scalar := t.Scalar()
	if scalar.Kind() == value.KindList {
		return scalar.Elem().Members()
	}
	return scalar.Members()
}

func typeLabel(t value.Type) string {
	switch t.Kind() {
	case value.KindEnum:
		return "string"
	case value.KindNullable:
		return typeLabel(t.Elem())
	case value.KindList:
		return "list<" + typeLabel(t.Elem()) + ">"
	default:
		return t.Kind().String()
	}
}

// Document returns the full help block for a command: a blank line,
// the name, its description, and when it has parameters a
// "Parameters:" header followed by [Describe].
func Document(descriptor *Descriptor) []string {
	lines := []string{
		"",
		descriptor.name,
		"Description: " + descriptor.description,
	}
	if len(descriptor.params) > 0 {
		lines = append(lines, "Parameters:")
		lines = append(lines, Describe(descriptor)...)
	}
	return lines
}
