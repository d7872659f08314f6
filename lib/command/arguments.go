// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strings"

	"github.com/bureau-foundation/conquer/lib/binding"
	"github.com/bureau-foundation/conquer/lib/value"
)

// Arguments is the positional list of bound values handed to an
// [Operation], one per declared parameter. Lookups by name are
// case-insensitive. Typed getters return the zero value when the
// parameter is missing, null, or of another type.
type Arguments struct {
	params []binding.Parameter
	values []value.Value
}

// Len returns the number of values.
func (a Arguments) Len() int { return len(a.values) }

// At returns the value bound to the i-th declared parameter.
func (a Arguments) At(i int) value.Value { return a.values[i] }

// Values returns a copy of all values in declaration order.
func (a Arguments) Values() []value.Value {
	return append([]value.Value(nil), a.values...)
}

// Value returns the value bound to name.
func (a Arguments) Value(name string) (value.Value, bool) {
	for i, param := range a.params {
		if strings.EqualFold(param.Name, name) {
			return a.values[i], true
		}
	}
	return value.Value{}, false
}

// String returns the string bound to name, or the member name for an
// enum parameter.
func (a Arguments) String(name string) string {
	v, _ := a.Value(name)
	if s, ok := v.AsString(); ok {
		return s
	}
	s, _ := v.AsEnum()
	return s
}

// Integer returns the integer bound to name.
func (a Arguments) Integer(name string) int64 {
	v, _ := a.Value(name)
	n, _ := v.AsInteger()
	return n
}

// Float returns the float bound to name.
func (a Arguments) Float(name string) float64 {
	v, _ := a.Value(name)
	f, _ := v.AsFloat()
	return f
}

// Boolean returns the boolean bound to name.
func (a Arguments) Boolean(name string) bool {
	v, _ := a.Value(name)
	b, _ := v.AsBoolean()
	return b
}

// Native returns the plain Go form of the value bound to name, as
// produced by [value.Value.Native].
func (a Arguments) Native(name string) any {
	v, ok := a.Value(name)
	if !ok {
		return nil
	}
	return v.Native()
}
