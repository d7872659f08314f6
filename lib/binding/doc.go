// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binding maps textual argument tokens onto a command's
// declared parameter list.
//
// [Bind] takes the ordered [Token] values supplied for one invocation
// and the ordered [Parameter] declarations of the target command and
// returns a [Bound]: either one typed value per parameter in
// declaration order, or every problem found in the input. Binding
// never stops at the first error; a single call reports unknown
// arguments, missing required parameters, malformed values and arity
// violations together so the user can fix them in one pass.
//
// Parameter names match case-insensitively, both when looking up the
// token for a parameter and when deciding that a token names no
// parameter at all.
//
// A parameter of type list<T> accepts any number of values. Every
// other parameter accepts exactly one; a second value is reported as
// [AmbiguousArity] rather than silently dropped, as is a parameter
// named by more than one token.
package binding
