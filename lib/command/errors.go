// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/bureau-foundation/conquer/lib/binding"
)

// InvocationFailureMessage is the only text shown to the user when an
// operation fails. The underlying cause goes to the log.
const InvocationFailureMessage = "An error occurred while attempting to execute the command."

// ErrUnknownCommand matches every [*UnknownCommandError].
var ErrUnknownCommand = errors.New("unknown command")

// ErrorCategory classifies dispatch errors so callers can react
// without parsing message text.
type ErrorCategory string

const (
	// CategoryValidation: the arguments did not bind. The user should
	// fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound: no command has the requested name.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryExecution: binding succeeded but the operation failed.
	CategoryExecution ErrorCategory = "execution"

	// CategoryInternal: anything else, including malformed input lines
	// and programming errors in the dispatch layer itself.
	CategoryInternal ErrorCategory = "internal"
)

// UnknownCommandError reports a name that resolves to no command.
type UnknownCommandError struct {
	// Name is the name as the user typed it.
	Name string

	// Suggestion is the closest registered name, or "".
	Suggestion string
}

func (e *UnknownCommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s is not a valid command (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("%s is not a valid command", e.Name)
}

func (e *UnknownCommandError) Is(target error) bool { return target == ErrUnknownCommand }

// InvocationError reports that an operation returned an error or
// panicked. Error always returns [InvocationFailureMessage]; the cause
// is available through Unwrap.
type InvocationError struct {
	// Command is the name of the command that failed.
	Command string

	// Err is the error the operation returned, or an error describing
	// the recovered panic.
	Err error

	// Panicked is true when Err came from a recovered panic.
	Panicked bool
}

func (e *InvocationError) Error() string { return InvocationFailureMessage }

func (e *InvocationError) Unwrap() error { return e.Err }

// Classify maps an error from this package or from binding onto a
// category. A nil error has no category and returns "".
func Classify(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	var invocationErr *InvocationError
	if errors.As(err, &invocationErr) {
		return CategoryExecution
	}
	if errors.Is(err, ErrUnknownCommand) {
		return CategoryNotFound
	}

	var bindErr *binding.Error
	var multiErr *multierror.Error
	if errors.As(err, &bindErr) || errors.As(err, &multiErr) {
		return CategoryValidation
	}
	return CategoryInternal
}
