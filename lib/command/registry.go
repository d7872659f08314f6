// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/bureau-foundation/conquer/lib/binding"
)

// Registry is the read-only set of commands available to a process.
// It has no mutators, so concurrent readers need no locking.
type Registry struct {
	commands []*Descriptor
}

// NewRegistry builds a registry from descriptors, keeping their order.
// Names must be distinct under case-insensitive comparison.
func NewRegistry(descriptors ...*Descriptor) (*Registry, error) {
	registry := &Registry{commands: make([]*Descriptor, 0, len(descriptors))}
	for _, descriptor := range descriptors {
		if descriptor == nil {
			return nil, fmt.Errorf("nil command descriptor")
		}
		if existing, ok := registry.lookup(descriptor.name); ok {
			return nil, fmt.Errorf("command %q is already registered as %q", descriptor.name, existing.name)
		}
		registry.commands = append(registry.commands, descriptor)
	}
	return registry, nil
}

func (r *Registry) lookup(name string) (*Descriptor, bool) {
	for _, descriptor := range r.commands {
		if strings.EqualFold(descriptor.name, name) {
			return descriptor, true
		}
	}
	return nil, false
}

// Commands returns the registered descriptors in registration order.
func (r *Registry) Commands() []*Descriptor {
	return append([]*Descriptor(nil), r.commands...)
}

// Names returns the registered command names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.commands))
	for i, descriptor := range r.commands {
		names[i] = descriptor.name
	}
	return names
}

// Resolve finds a command by name, case-insensitively. A miss returns
// an [*UnknownCommandError] with the closest registered name as its
// suggestion.
func (r *Registry) Resolve(name string) (*Descriptor, error) {
	if descriptor, ok := r.lookup(name); ok {
		return descriptor, nil
	}
	return nil, &UnknownCommandError{Name: name, Suggestion: suggestCommand(name, r.Names())}
}

// Execute resolves name, binds tokens, and invokes the command. The
// returned error is an [*UnknownCommandError], the aggregated binding
// error, or an [*InvocationError].
func (r *Registry) Execute(ctx context.Context, name string, tokens []binding.Token) error {
	descriptor, err := r.Resolve(name)
	if err != nil {
		return err
	}
	return Invoke(ctx, descriptor, descriptor.Bind(tokens))
}
