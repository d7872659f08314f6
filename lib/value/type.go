// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a [Type].
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindEnum
	KindNullable
	KindList
)

// String returns the lower-case name used in type labels.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindEnum:
		return "enum"
	case KindNullable:
		return "nullable"
	case KindList:
		return "list"
	default:
		return "invalid"
	}
}

// Type is the declared type of a command parameter. The zero Type is
// invalid; use the constructors below.
//
// Types are values: they are safe to copy and compare with [Type.Equal].
type Type struct {
	kind    Kind
	members []string
	elem    *Type
}

// String returns the string type.
func String() Type { return Type{kind: KindString} }

// Integer returns the signed 64-bit integer type.
func Integer() Type { return Type{kind: KindInteger} }

// Float returns the IEEE-754 64-bit float type.
func Float() Type { return Type{kind: KindFloat} }

// Boolean returns the boolean type.
func Boolean() Type { return Type{kind: KindBoolean} }

// Enum returns an enumeration over the given member names. Member order
// is preserved for documentation and error messages.
func Enum(members ...string) Type {
	return Type{kind: KindEnum, members: append([]string(nil), members...)}
}

// Nullable wraps inner so that the parameter may hold no value. Only a
// default can produce the null state; user text always coerces as inner.
func Nullable(inner Type) Type {
	return Type{kind: KindNullable, elem: &inner}
}

// List returns a homogeneous collection of elem.
func List(elem Type) Type {
	return Type{kind: KindList, elem: &elem}
}

// Kind reports the variant.
func (t Type) Kind() Kind { return t.kind }

// Members returns a copy of the enum member names, or nil for non-enum types.
func (t Type) Members() []string {
	if t.kind != KindEnum {
		return nil
	}
	return append([]string(nil), t.members...)
}

// Elem returns the wrapped type of a nullable or the element type of a
// list. It returns the zero (invalid) Type for every other kind.
func (t Type) Elem() Type {
	if t.elem == nil {
		return Type{}
	}
	return *t.elem
}

// Scalar returns the type with any nullable wrapper removed.
func (t Type) Scalar() Type {
	if t.kind == KindNullable {
		return t.Elem()
	}
	return t
}

// Equal reports whether two types describe the same shape.
func (t Type) Equal(other Type) bool {
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case KindEnum:
		if len(t.members) != len(other.members) {
			return false
		}
		for i := range t.members {
			if t.members[i] != other.members[i] {
				return false
			}
		}
		return true
	case KindNullable, KindList:
		return t.Elem().Equal(other.Elem())
	default:
		return true
	}
}

// String renders the type tag, e.g. "integer", "enum<Red,Green>",
// "nullable<float>" or "list<string>".
func (t Type) String() string {
	switch t.kind {
	case KindEnum:
		return "enum<" + strings.Join(t.members, ",") + ">"
	case KindNullable, KindList:
		return t.kind.String() + "<" + t.Elem().String() + ">"
	default:
		return t.kind.String()
	}
}

// Validate reports whether the type is well formed. Nesting is limited
// to one level: nullable and list wrap scalars or enums only.
func (t Type) Validate() error {
	switch t.kind {
	case KindString, KindInteger, KindFloat, KindBoolean:
		return nil
	case KindEnum:
		if len(t.members) == 0 {
			return fmt.Errorf("enum must declare at least one member")
		}
		for i, member := range t.members {
			if member == "" {
				return fmt.Errorf("enum member names must not be empty")
			}
			for _, previous := range t.members[:i] {
				if strings.EqualFold(previous, member) {
					return fmt.Errorf("enum members %q and %q collide when matched case-insensitively", previous, member)
				}
			}
		}
		return nil
	case KindNullable, KindList:
		inner := t.Elem()
		switch inner.kind {
		case KindNullable, KindList:
			return fmt.Errorf("%s cannot wrap %s", t.kind, inner.kind)
		}
		if err := inner.Validate(); err != nil {
			return fmt.Errorf("%s element: %w", t.kind, err)
		}
		return nil
	default:
		return fmt.Errorf("invalid type")
	}
}
