// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/bureau-foundation/conquer/lib/binding"
)

// Operation is the callable behind a command. It receives the bound
// values matched to the declared parameters.
type Operation func(ctx context.Context, args Arguments) error

// Descriptor is an immutable command definition.
type Descriptor struct {
	name        string
	description string
	params      []binding.Parameter
	operation   Operation
}

// NewDescriptor validates and builds a command. The name must be a
// single word, parameter names must be distinct under case-insensitive
// comparison, and every default must have its parameter's type.
func NewDescriptor(name, description string, operation Operation, params ...binding.Parameter) (*Descriptor, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if operation == nil {
		return nil, fmt.Errorf("command %q: operation is nil", name)
	}
	if err := binding.ValidateParameters(params); err != nil {
		return nil, fmt.Errorf("command %q: %w", name, err)
	}
	return &Descriptor{
		name:        name,
		description: description,
		params:      append([]binding.Parameter(nil), params...),
		operation:   operation,
	}, nil
}

// MustDescriptor is [NewDescriptor] for statically declared commands.
// Panics on invalid input (programming error, not runtime data).
func MustDescriptor(name, description string, operation Operation, params ...binding.Parameter) *Descriptor {
	descriptor, err := NewDescriptor(name, description, operation, params...)
	if err != nil {
		panic(fmt.Sprintf("command.MustDescriptor(%q): %v", name, err))
	}
	return descriptor
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("command name must not be empty")
	}
	if strings.ContainsFunc(name, func(r rune) bool { return unicode.IsSpace(r) || r == '=' }) {
		return fmt.Errorf("command %q: name must not contain whitespace or '='", name)
	}
	return nil
}

// Name returns the command name as declared.
func (d *Descriptor) Name() string { return d.name }

// Description returns the one-line summary.
func (d *Descriptor) Description() string { return d.description }

// Parameters returns a copy of the declared parameters in order.
func (d *Descriptor) Parameters() []binding.Parameter {
	return append([]binding.Parameter(nil), d.params...)
}

// Parameter looks up a declared parameter case-insensitively.
func (d *Descriptor) Parameter(name string) (binding.Parameter, bool) {
	for _, param := range d.params {
		if strings.EqualFold(param.Name, name) {
			return param, true
		}
	}
	return binding.Parameter{}, false
}

// Bind binds tokens against this command's parameters.
func (d *Descriptor) Bind(tokens []binding.Token) *binding.Bound {
	return binding.Bind(tokens, d.params)
}
