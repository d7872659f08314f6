// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/bureau-foundation/conquer/lib/binding"
	"github.com/bureau-foundation/conquer/lib/value"
)

func documentedCommand() *Descriptor {
	return MustDescriptor("paint", "Paint a wall", noop,
		binding.Required("color", value.Enum("Red", "Green", "Blue"), "wall colour"),
		binding.Optional("coats", value.Integer(), value.OfInteger(2), ""),
		binding.Optional("gloss", value.Nullable(value.Float()), value.Null(value.Float()), ""),
		binding.Required("rooms", value.List(value.String()), ""),
		binding.Optional("shade", value.Nullable(value.Enum("Light", "Dark")), value.Null(value.Enum("Light", "Dark")), ""),
	)
}

func TestDescribe(t *testing.T) {
	want := []string{
		"-color (string): This parameter is Required and must be one of these following (Red,Green,Blue).",
		"-coats (integer): This parameter is Optional.",
		"-gloss (float): This parameter is Optional.",
		"-rooms (list<string>): This parameter is Required.",
		"-shade (string): This parameter is Optional and must be one of these following (Light,Dark).",
	}
	got := Describe(documentedCommand())
	if len(got) != len(want) {
		t.Fatalf("Describe() returned %d lines, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDescribe_ListOfEnumListsMembers(t *testing.T) {
	descriptor := MustDescriptor("mix", "", noop,
		binding.Required("colors", value.List(value.Enum("Red", "Green", "Blue")), ""),
	)
	want := "-colors (list<string>): This parameter is Required and must be one of these following (Red,Green,Blue)."
	if got := Describe(descriptor); len(got) != 1 || got[0] != want {
		t.Errorf("Describe() = %q, want [%q]", got, want)
	}

	docs := Catalog(mustRegistry(t, descriptor))
	if members := docs[0].Parameters[0].Members; strings.Join(members, ",") != "Red,Green,Blue" {
		t.Errorf("catalog members = %v, want Red,Green,Blue", members)
	}
}

func mustRegistry(t *testing.T, descriptors ...*Descriptor) *Registry {
	t.Helper()
	registry, err := NewRegistry(descriptors...)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return registry
}

func TestDocument(t *testing.T) {
	lines := Document(documentedCommand())
	if lines[0] != "" || lines[1] != "paint" || lines[2] != "Description: Paint a wall" || lines[3] != "Parameters:" {
		t.Errorf("header = %q", lines[:4])
	}
	if len(lines) != 4+5 {
		t.Errorf("len(lines) = %d, want 9", len(lines))
	}

	bare := Document(MustDescriptor("ping", "Check liveness", noop))
	if len(bare) != 3 {
		t.Errorf("Document without parameters = %q, want no Parameters section", bare)
	}
}

func TestSchema(t *testing.T) {
	schema := Schema(documentedCommand())

	if schema.Type != "object" {
		t.Errorf("Type = %q, want object", schema.Type)
	}
	if strings.Join(schema.Required, ",") != "color,rooms" {
		t.Errorf("Required = %v, want [color rooms]", schema.Required)
	}

	var order []string
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		order = append(order, pair.Key)
	}
	if strings.Join(order, ",") != "color,coats,gloss,rooms,shade" {
		t.Errorf("property order = %v", order)
	}

	color, _ := schema.Properties.Get("color")
	if len(color.Enum) != 3 || color.Enum[0] != "Red" || color.Description != "wall colour" {
		t.Errorf("color = %+v", color)
	}
	coats, _ := schema.Properties.Get("coats")
	if coats.Type != "integer" || coats.Default != int64(2) {
		t.Errorf("coats type=%q default=%v", coats.Type, coats.Default)
	}
	gloss, _ := schema.Properties.Get("gloss")
	if len(gloss.OneOf) != 2 || gloss.OneOf[1].Type != "null" {
		t.Errorf("gloss OneOf = %+v, want number or null", gloss.OneOf)
	}
	rooms, _ := schema.Properties.Get("rooms")
	if rooms.Type != "array" || rooms.Items == nil || rooms.Items.Type != "string" {
		t.Errorf("rooms = %+v, want array of string", rooms)
	}

	encoded, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if !strings.Contains(string(encoded), `"additionalProperties":false`) {
		t.Errorf("schema does not reject additional properties: %s", encoded)
	}
}
