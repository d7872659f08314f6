// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/invopop/jsonschema"
)

// CommandDoc is the exportable description of one command.
type CommandDoc struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  []ParameterDoc `json:"parameters"`

	// Help holds the [Describe] lines shown by the shell.
	Help []string `json:"help"`

	// InputSchema is the JSON Schema from [Schema]. It only has a JSON
	// form; clear it with [WithoutSchemas] before CBOR encoding. The
	// parameter list carries the same information.
	InputSchema *jsonschema.Schema `json:"input_schema,omitempty"`
}

// ParameterDoc is the exportable description of one parameter.
type ParameterDoc struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Required    bool     `json:"required"`
	Default     any      `json:"default,omitempty"`
	Members     []string `json:"members,omitempty"`
}

// Catalog describes every registered command in registration order.
func Catalog(registry *Registry) []CommandDoc {
	docs := make([]CommandDoc, 0, len(registry.commands))
	for _, descriptor := range registry.commands {
		doc := CommandDoc{
			Name:        descriptor.name,
			Description: descriptor.description,
			Parameters:  make([]ParameterDoc, 0, len(descriptor.params)),
			Help:        Describe(descriptor),
			InputSchema: Schema(descriptor),
		}
		for _, param := range descriptor.params {
			paramDoc := ParameterDoc{
				Name:        param.Name,
				Type:        param.Type.String(),
				Description: param.Description,
				Required:    !param.HasDefault(),
				Members:     memberNames(param.Type),
			}
			if param.HasDefault() {
				paramDoc.Default = param.Default.Native()
			}
			doc.Parameters = append(doc.Parameters, paramDoc)
		}
		docs = append(docs, doc)
	}
	return docs
}

// WithoutSchemas returns a copy of docs with InputSchema cleared.
func WithoutSchemas(docs []CommandDoc) []CommandDoc {
	stripped := append([]CommandDoc(nil), docs...)
	for i := range stripped {
		stripped[i].InputSchema = nil
	}
	return stripped
}
