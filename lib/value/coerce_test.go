// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestCoerce_Scalars(t *testing.T) {
	tests := []struct {
		name string
		text string
		typ  Type
		want Value
	}{
		{"string", "hello world", String(), OfString("hello world")},
		{"empty string", "", String(), OfString("")},
		{"integer", "42", Integer(), OfInteger(42)},
		{"negative integer", "-17", Integer(), OfInteger(-17)},
		{"float", "0.95", Float(), OfFloat(0.95)},
		{"float exponent", "1e3", Float(), OfFloat(1000)},
		{"boolean true", "true", Boolean(), OfBoolean(true)},
		{"boolean mixed case", "False", Boolean(), OfBoolean(false)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Coerce(test.text, test.typ)
			if err != nil {
				t.Fatalf("Coerce(%q, %s): %v", test.text, test.typ, err)
			}
			if !got.Equal(test.want) {
				t.Errorf("Coerce(%q, %s) = %v, want %v", test.text, test.typ, got, test.want)
			}
		})
	}
}

func TestCoerce_InvalidFormat(t *testing.T) {
	tests := []struct {
		text string
		typ  Type
	}{
		{"x", Integer()},
		{"1.5", Integer()},
		{" 3", Integer()},
		{"9223372036854775808", Integer()},
		{"abc", Float()},
		{"yes", Boolean()},
		{"1", Boolean()},
		{"x", Nullable(Integer())},
	}

	for _, test := range tests {
		_, err := Coerce(test.text, test.typ)
		if err == nil {
			t.Errorf("Coerce(%q, %s) succeeded, want error", test.text, test.typ)
			continue
		}
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Coerce(%q, %s) error %v does not match ErrInvalidFormat", test.text, test.typ, err)
		}
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("Coerce(%q, %s) error is %T, want *FormatError", test.text, test.typ, err)
		}
		if formatErr.Text != test.text {
			t.Errorf("FormatError.Text = %q, want %q", formatErr.Text, test.text)
		}
		if !formatErr.Type.Equal(test.typ) {
			t.Errorf("FormatError.Type = %s, want %s", formatErr.Type, test.typ)
		}
	}
}

func TestCoerce_EnumMatchingCase(t *testing.T) {
	color := Enum("Red", "Green", "Blue")

	got, err := Coerce("Green", color)
	if err != nil {
		t.Fatalf("Coerce: %v", err)
	}
	member, ok := got.AsEnum()
	if !ok || member != "Green" {
		t.Errorf("AsEnum() = %q, %v, want %q, true", member, ok, "Green")
	}
}

func TestCoerce_EnumDifferingCase(t *testing.T) {
	color := Enum("Red", "Green", "Blue")

	got, err := Coerce("bLUE", color)
	if err != nil {
		t.Fatalf("Coerce: %v", err)
	}
	member, _ := got.AsEnum()
	if member != "Blue" {
		t.Errorf("member = %q, want declared spelling %q", member, "Blue")
	}
}

func TestCoerce_EnumUnknownMemberListsLegalValues(t *testing.T) {
	color := Enum("Red", "Green", "Blue")

	_, err := Coerce("purple", color)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("Coerce error = %v, want ErrInvalidFormat", err)
	}
	if !strings.Contains(err.Error(), "Red,Green,Blue") {
		t.Errorf("error %q does not list the legal members", err)
	}
	var formatErr *FormatError
	if errors.As(err, &formatErr) && len(formatErr.Legal) != 3 {
		t.Errorf("Legal = %v, want 3 members", formatErr.Legal)
	}
}

func TestCoerce_NullableUnwraps(t *testing.T) {
	got, err := Coerce("7", Nullable(Integer()))
	if err != nil {
		t.Fatalf("Coerce: %v", err)
	}
	if got.IsNull() {
		t.Fatal("coerced nullable is null")
	}
	if !got.Type().Equal(Nullable(Integer())) {
		t.Errorf("Type() = %s, want nullable<integer>", got.Type())
	}
	if n, ok := got.AsInteger(); !ok || n != 7 {
		t.Errorf("AsInteger() = %d, %v, want 7, true", n, ok)
	}
	if !got.Inner().Equal(OfInteger(7)) {
		t.Errorf("Inner() = %v, want 7", got.Inner())
	}
}

func TestCoerce_RejectsList(t *testing.T) {
	if _, err := Coerce("a,b", List(String())); err == nil {
		t.Fatal("Coerce on a list type succeeded, want error")
	}
}

func TestCoerce_RoundTrip(t *testing.T) {
	values := []Value{
		OfString("Ann"),
		OfString(""),
		OfInteger(0),
		OfInteger(math.MinInt64),
		OfInteger(math.MaxInt64),
		OfFloat(3.14159),
		OfFloat(-0.5),
		OfFloat(1e300),
		OfFloat(math.Inf(1)),
		OfFloat(math.NaN()),
		OfBoolean(true),
		OfBoolean(false),
	}
	color := Enum("Red", "Green", "Blue")
	green, err := OfEnum(color, "Green")
	if err != nil {
		t.Fatalf("OfEnum: %v", err)
	}
	values = append(values, green, Present(OfInteger(12)))

	for _, original := range values {
		text := original.Text()
		back, err := Coerce(text, original.Type())
		if err != nil {
			t.Errorf("Coerce(%q, %s): %v", text, original.Type(), err)
			continue
		}
		if !back.Equal(original) {
			t.Errorf("round trip of %v through %q produced %v", original, text, back)
		}
	}
}
