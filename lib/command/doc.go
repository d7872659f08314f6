// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package command registers named operations and dispatches textual
// invocations to them.
//
// A [Descriptor] pairs a command name with its ordered
// [binding.Parameter] list and the [Operation] to run. Descriptors are
// built once, validated at construction, and never change afterwards.
// [NewFuncDescriptor] derives the operation from a plain Go function
// whose parameters line up with the declared list:
//
//	greet, err := command.NewFuncDescriptor("greet", "Say hello",
//	    func(name string, times int) error { ... },
//	    binding.Required("name", value.String(), "who to greet"),
//	    binding.Optional("times", value.Integer(), value.OfInteger(1), "repetitions"),
//	)
//
// A [Registry] holds descriptors in registration order and resolves
// names case-insensitively. [Registry.Execute] runs the full pipeline:
// resolve the name, bind tokens with [binding.Bind], and [Invoke] the
// operation only when binding produced no errors.
//
// # Errors
//
// Binding problems come back together as the *multierror.Error from
// [binding.Bound.Err]. An unknown command name is an
// [*UnknownCommandError] carrying a suggestion. Anything the operation
// itself returns or panics with is reported as an [*InvocationError]
// whose message is always [InvocationFailureMessage]; the cause is
// logged and stays reachable through errors.Unwrap, but is never shown
// to the user. [Classify] maps all of these onto an [ErrorCategory].
//
// # Documentation
//
// [Describe] and [Document] render the plain-text help lines shown by
// the shell. [Schema] renders a JSON Schema per command, and [Catalog]
// collects both for export.
package command
