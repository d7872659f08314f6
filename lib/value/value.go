// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a typed parameter value: exactly one variant of the closed
// set described by [Type], or the null state of a nullable.
//
// A present nullable stores its inner variant directly and differs
// from the bare inner value only in its [Value.Type]. The zero Value
// is invalid.
type Value struct {
	typ Type

	null    bool
	text    string // string and enum variants
	integer int64
	float   float64
	boolean bool
	items   []Value
}

// OfString returns a string value.
func OfString(s string) Value {
	return Value{typ: String(), text: s}
}

// OfInteger returns an integer value.
func OfInteger(i int64) Value {
	return Value{typ: Integer(), integer: i}
}

// OfFloat returns a float value.
func OfFloat(f float64) Value {
	return Value{typ: Float(), float: f}
}

// OfBoolean returns a boolean value.
func OfBoolean(b bool) Value {
	return Value{typ: Boolean(), boolean: b}
}

// OfEnum returns the member of t named by member, matched the same way
// [Coerce] matches user text.
func OfEnum(t Type, member string) (Value, error) {
	if t.kind != KindEnum {
		return Value{}, fmt.Errorf("value: %s is not an enum type", t)
	}
	return coerceEnum(member, t)
}

// Null returns the absent value of nullable<inner>.
func Null(inner Type) Value {
	return Value{typ: Nullable(inner), null: true}
}

// Present wraps v as a present value of nullable<v.Type()>. Wrapping a
// value that is already nullable returns it unchanged.
func Present(v Value) Value {
	if v.typ.kind == KindNullable {
		return v
	}
	wrapped := v
	wrapped.typ = Nullable(v.typ)
	return wrapped
}

// ListOf assembles a list<elem> value. Every item must have type elem.
func ListOf(elem Type, items ...Value) (Value, error) {
	listType := List(elem)
	if err := listType.Validate(); err != nil {
		return Value{}, fmt.Errorf("value: %w", err)
	}
	for i, item := range items {
		if !item.typ.Equal(elem) {
			return Value{}, fmt.Errorf("value: list item %d has type %s, want %s", i, item.typ, elem)
		}
	}
	return Value{typ: listType, items: append([]Value(nil), items...)}, nil
}

// Type returns the declared type of the value.
func (v Value) Type() Type { return v.typ }

// IsValid reports whether v was produced by a constructor or [Coerce].
func (v Value) IsValid() bool { return v.typ.kind != KindInvalid }

// IsNull reports whether v is the absent state of a nullable.
func (v Value) IsNull() bool { return v.null }

// Inner strips a nullable wrapper from a present value. Other values are
// returned unchanged; a null value is returned unchanged as well.
func (v Value) Inner() Value {
	if v.typ.kind != KindNullable || v.null {
		return v
	}
	inner := v
	inner.typ = v.typ.Elem()
	return inner
}

func (v Value) scalarKind() Kind {
	if v.null {
		return KindInvalid
	}
	return v.typ.Scalar().kind
}

// AsString returns the string payload of a string value.
func (v Value) AsString() (string, bool) {
	return v.text, v.scalarKind() == KindString
}

// AsInteger returns the payload of an integer value.
func (v Value) AsInteger() (int64, bool) {
	return v.integer, v.scalarKind() == KindInteger
}

// AsFloat returns the payload of a float value.
func (v Value) AsFloat() (float64, bool) {
	return v.float, v.scalarKind() == KindFloat
}

// AsBoolean returns the payload of a boolean value.
func (v Value) AsBoolean() (bool, bool) {
	return v.boolean, v.scalarKind() == KindBoolean
}

// AsEnum returns the declared member name of an enum value.
func (v Value) AsEnum() (string, bool) {
	return v.text, v.scalarKind() == KindEnum
}

// Items returns a copy of the elements of a list value, or nil.
func (v Value) Items() []Value {
	if v.typ.kind != KindList {
		return nil
	}
	return append([]Value(nil), v.items...)
}

// Len returns the number of list elements, or 0 for non-list values.
func (v Value) Len() int { return len(v.items) }

// Text returns the canonical textual form: the form [Coerce] parses back
// into an equal value. Lists join their elements with commas and the
// null state renders as the empty string.
func (v Value) Text() string {
	if v.null {
		return ""
	}
	switch v.typ.Scalar().kind {
	case KindString, KindEnum:
		return v.text
	case KindInteger:
		return strconv.FormatInt(v.integer, 10)
	case KindFloat:
		return strconv.FormatFloat(v.float, 'g', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.boolean)
	case KindList:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.Text()
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// String implements fmt.Stringer for logs and test output.
func (v Value) String() string {
	switch {
	case !v.IsValid():
		return "<invalid>"
	case v.null:
		return "null"
	case v.typ.kind == KindList:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	case v.typ.Scalar().kind == KindString:
		return strconv.Quote(v.text)
	default:
		return v.Text()
	}
}

// Native unwraps v into a plain Go value: string, int64, float64, bool,
// the enum member name as a string, nil for a null nullable, and
// []string, []int64, []float64 or []bool for lists.
func (v Value) Native() any {
	if v.null {
		return nil
	}
	switch v.typ.Scalar().kind {
	case KindString, KindEnum:
		return v.text
	case KindInteger:
		return v.integer
	case KindFloat:
		return v.float
	case KindBoolean:
		return v.boolean
	case KindList:
		return v.nativeList()
	default:
		return nil
	}
}

func (v Value) nativeList() any {
	switch v.typ.Elem().kind {
	case KindInteger:
		out := make([]int64, len(v.items))
		for i, item := range v.items {
			out[i] = item.integer
		}
		return out
	case KindFloat:
		out := make([]float64, len(v.items))
		for i, item := range v.items {
			out[i] = item.float
		}
		return out
	case KindBoolean:
		out := make([]bool, len(v.items))
		for i, item := range v.items {
			out[i] = item.boolean
		}
		return out
	default:
		out := make([]string, len(v.items))
		for i, item := range v.items {
			out[i] = item.text
		}
		return out
	}
}

// Equal reports whether two values have the same type and payload.
// NaN floats compare equal to each other so that coercion round-trips
// hold for every float.
func (v Value) Equal(other Value) bool {
	if !v.typ.Equal(other.typ) || v.null != other.null {
		return false
	}
	if v.null {
		return true
	}
	switch v.typ.Scalar().kind {
	case KindString, KindEnum:
		return v.text == other.text
	case KindInteger:
		return v.integer == other.integer
	case KindFloat:
		if math.IsNaN(v.float) && math.IsNaN(other.float) {
			return true
		}
		return v.float == other.float
	case KindBoolean:
		return v.boolean == other.boolean
	case KindList:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
