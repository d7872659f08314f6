// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/conquer/lib/binding"
)

// DefaultHelpToken is the argument that asks for a command's
// documentation.
const DefaultHelpToken = "?"

// Line is one tokenized input line.
type Line struct {
	// Command is the first field, or "" for a blank line.
	Command string

	// Tokens are the name=value arguments in input order.
	Tokens []binding.Token

	// Help is set when the help token appeared among the arguments.
	Help bool
}

// SyntaxError reports a field that is not a name=value argument.
type SyntaxError struct {
	Field  string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Tokenize splits line using [DefaultHelpToken].
func Tokenize(line string) (Line, error) {
	return TokenizeWith(line, DefaultHelpToken)
}

// TokenizeWith splits line on whitespace. The first field names the
// command; every further field is either helpToken or
// name=value[,value...]. There is no quoting: values cannot contain
// whitespace or commas. "name=" supplies a single empty value.
func TokenizeWith(line, helpToken string) (Line, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Line{}, nil
	}

	parsed := Line{Command: fields[0]}
	for _, field := range fields[1:] {
		if field == helpToken {
			parsed.Help = true
			continue
		}
		name, rest, found := strings.Cut(field, "=")
		if !found {
			return Line{}, &SyntaxError{Field: field, Reason: "arguments must be written as name=value"}
		}
		if name == "" {
			return Line{}, &SyntaxError{Field: field, Reason: "argument name is empty"}
		}
		parsed.Tokens = append(parsed.Tokens, binding.NewToken(name, strings.Split(rest, ",")...))
	}
	return parsed, nil
}
