// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/invopop/jsonschema"

	"github.com/bureau-foundation/conquer/lib/value"
)

// Schema describes a command's parameters as a JSON Schema object.
// Properties appear in declaration order. Parameters without a default
// are listed in required, and additional properties are rejected since
// binding rejects unknown names.
func Schema(descriptor *Descriptor) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:                 "object",
		Title:                descriptor.name,
		Description:          descriptor.description,
		Properties:           jsonschema.NewProperties(),
		AdditionalProperties: jsonschema.FalseSchema,
	}
	for _, param := range descriptor.params {
		property := typeSchema(param.Type)
		property.Description = param.Description
		if param.HasDefault() {
			property.Default = param.Default.Native()
		} else {
			schema.Required = append(schema.Required, param.Name)
		}
		schema.Properties.Set(param.Name, property)
	}
	return schema
}

func typeSchema(t value.Type) *jsonschema.Schema {
	switch t.Kind() {
	case value.KindString:
		return &jsonschema.Schema{Type: "string"}
	case value.KindInteger:
		return &jsonschema.Schema{Type: "integer"}
	case value.KindFloat:
		return &jsonschema.Schema{Type: "number"}
	case value.KindBoolean:
		return &jsonschema.Schema{Type: "boolean"}
	case value.KindEnum:
		members := t.Members()
		enum := make([]any, len(members))
		for i, member := range members {
			enum[i] = member
		}
		return &jsonschema.Schema{Type: "string", Enum: enum}
	case value.KindNullable:
		return &jsonschema.Schema{OneOf: []*jsonschema.Schema{
			typeSchema(t.Elem()),
			{Type: "null"},
		}}
	case value.KindList:
		return &jsonschema.Schema{Type: "array", Items: typeSchema(t.Elem())}
	}
	return &jsonschema.Schema{}
}
