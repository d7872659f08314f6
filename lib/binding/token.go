// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binding

// Token is one name=value(s) argument supplied for an invocation.
// Values holds at least one entry; more than one is only meaningful
// for list parameters.
type Token struct {
	Name   string
	Values []string
}

// NewToken builds a token from a name and its values.
func NewToken(name string, values ...string) Token {
	return Token{Name: name, Values: values}
}
