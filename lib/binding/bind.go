// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binding

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/bureau-foundation/conquer/lib/value"
)

// Bound is the outcome of [Bind]: declaration-ordered values when every
// token bound cleanly, or the ordered list of problems otherwise. The
// two are never populated together.
type Bound struct {
	values []value.Value
	errors []*Error
}

// Bind resolves tokens against params.
//
// Tokens naming no parameter are reported first, in token order. Then
// each parameter, in declaration order, is bound from its token, from
// its default, or reported as missing. All problems are collected;
// values are only returned when there are none.
func Bind(tokens []Token, params []Parameter) *Bound {
	bound := &Bound{}

	for _, token := range tokens {
		if !declares(params, token.Name) {
			bound.fail(UnknownParameter, token.Name, nil, "%s is not a valid parameter", token.Name)
		}
	}

	values := make([]value.Value, 0, len(params))
	for _, param := range params {
		matches := tokensFor(tokens, param.Name)
		switch len(matches) {
		case 0:
			if param.HasDefault() {
				values = append(values, *param.Default)
				continue
			}
			bound.fail(MissingRequiredParameter, param.Name, nil, "%s must be specified", param.Name)
		case 1:
			if v := bindToken(bound, param, matches[0]); v.IsValid() {
				values = append(values, v)
			}
		default:
			bound.fail(AmbiguousArity, param.Name, nil, "%s was specified more than once", param.Name)
		}
	}

	if len(bound.errors) == 0 {
		bound.values = values
	}
	return bound
}

// bindToken coerces the values of one token. It returns the zero Value
// after recording an error on b.
func bindToken(b *Bound, param Parameter, token Token) value.Value {
	if param.Type.Kind() == value.KindList {
		elem := param.Type.Elem()
		items := make([]value.Value, 0, len(token.Values))
		for i, text := range token.Values {
			item, err := value.Coerce(text, elem)
			if err != nil {
				b.fail(InvalidFormat, param.Name, err, "%s has an invalid value at position %d: %v", param.Name, i+1, err)
				return value.Value{}
			}
			items = append(items, item)
		}
		list, err := value.ListOf(elem, items...)
		if err != nil {
			b.fail(InvalidFormat, param.Name, err, "%s: %v", param.Name, err)
			return value.Value{}
		}
		return list
	}

	if len(token.Values) != 1 {
		b.fail(AmbiguousArity, param.Name, nil, "%s accepts a single value but received %d", param.Name, len(token.Values))
		return value.Value{}
	}

	coerced, err := value.Coerce(token.Values[0], param.Type)
	if err != nil {
		b.fail(InvalidFormat, param.Name, err, "%s has an invalid value: %v", param.Name, err)
		return value.Value{}
	}
	return coerced
}

func (b *Bound) fail(kind ErrorKind, name string, cause error, format string, args ...any) {
	b.errors = append(b.errors, &Error{
		Kind:      kind,
		Parameter: name,
		Message:   fmt.Sprintf(format, args...),
		Err:       cause,
	})
}

func declares(params []Parameter, name string) bool {
	for _, param := range params {
		if strings.EqualFold(param.Name, name) {
			return true
		}
	}
	return false
}

func tokensFor(tokens []Token, name string) []Token {
	var matches []Token
	for _, token := range tokens {
		if strings.EqualFold(token.Name, name) {
			matches = append(matches, token)
		}
	}
	return matches
}

// OK reports whether binding succeeded.
func (b *Bound) OK() bool { return len(b.errors) == 0 }

// Values returns a copy of the bound values in declaration order, or
// nil when binding failed.
func (b *Bound) Values() []value.Value {
	if !b.OK() {
		return nil
	}
	return append([]value.Value{}, b.values...)
}

// Errors returns the binding problems in report order.
func (b *Bound) Errors() []*Error {
	return append([]*Error(nil), b.errors...)
}

// Messages returns the user-facing text of every problem.
func (b *Bound) Messages() []string {
	messages := make([]string, len(b.errors))
	for i, err := range b.errors {
		messages[i] = err.Message
	}
	return messages
}

// Err returns nil on success, otherwise a *multierror.Error holding
// every *Error. Its message lists one problem per line.
func (b *Bound) Err() error {
	if b.OK() {
		return nil
	}
	var result *multierror.Error
	for _, err := range b.errors {
		result = multierror.Append(result, err)
	}
	result.ErrorFormat = formatLines
	return result
}

func formatLines(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

// Equal reports whether two results carry the same values or the same
// errors in the same order. A nil result equals only nil.
func (b *Bound) Equal(other *Bound) bool {
	if b == nil || other == nil {
		return b == other
	}
	if len(b.values) != len(other.values) || len(b.errors) != len(other.errors) {
		return false
	}
	for i := range b.values {
		if !b.values[i].Equal(other.values[i]) {
			return false
		}
	}
	for i := range b.errors {
		if b.errors[i].Kind != other.errors[i].Kind || b.errors[i].Message != other.errors[i].Message {
			return false
		}
	}
	return true
}
