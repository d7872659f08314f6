// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binding

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bureau-foundation/conquer/lib/value"
)

// Parameter declares one named, typed input slot of a command.
type Parameter struct {
	// Name is matched case-insensitively against token names.
	Name string

	// Type is the declared type tag.
	Type value.Type

	// Description is optional help text shown in schemas and catalogs.
	Description string

	// Default is the value bound when no token names the parameter.
	// Nil means the parameter is required.
	Default *value.Value
}

// Required declares a parameter that must be supplied.
func Required(name string, typ value.Type, description string) Parameter {
	return Parameter{Name: name, Type: typ, Description: description}
}

// Optional declares a parameter that falls back to def when omitted.
// A non-null def for a nullable parameter is wrapped as present.
func Optional(name string, typ value.Type, def value.Value, description string) Parameter {
	if typ.Kind() == value.KindNullable && def.IsValid() && def.Type().Kind() != value.KindNullable {
		def = value.Present(def)
	}
	return Parameter{Name: name, Type: typ, Description: description, Default: &def}
}

// HasDefault reports whether the parameter is optional.
func (p Parameter) HasDefault() bool { return p.Default != nil }

// Priority returns "Optional" for parameters with a default and
// "Required" otherwise.
func (p Parameter) Priority() string {
	if p.HasDefault() {
		return "Optional"
	}
	return "Required"
}

// Validate checks the declaration: the name must be usable in a
// name=value token, the type must be well formed, and a default must
// have exactly the declared type.
func (p Parameter) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("parameter name must not be empty")
	}
	if strings.ContainsFunc(p.Name, func(r rune) bool { return unicode.IsSpace(r) || r == '=' || r == ',' }) {
		return fmt.Errorf("parameter %q: name must not contain whitespace, '=' or ','", p.Name)
	}
	if err := p.Type.Validate(); err != nil {
		return fmt.Errorf("parameter %q: %w", p.Name, err)
	}
	if p.Default != nil {
		if !p.Default.IsValid() {
			return fmt.Errorf("parameter %q: default is not a valid value", p.Name)
		}
		if !p.Default.Type().Equal(p.Type) {
			return fmt.Errorf("parameter %q: default has type %s, want %s", p.Name, p.Default.Type(), p.Type)
		}
	}
	return nil
}

// ValidateParameters checks every declaration and rejects names that
// collide under case-insensitive matching.
func ValidateParameters(params []Parameter) error {
	for i, param := range params {
		if err := param.Validate(); err != nil {
			return err
		}
		for _, previous := range params[:i] {
			if strings.EqualFold(previous.Name, param.Name) {
				return fmt.Errorf("parameters %q and %q collide when matched case-insensitively", previous.Name, param.Name)
			}
		}
	}
	return nil
}
