// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bureau-foundation/conquer/lib/binding"
	"github.com/bureau-foundation/conquer/lib/logging"
)

// Invoke runs the descriptor's operation with bound values, at most
// once. When bound carries errors the operation is not called and
// bound.Err() is returned unchanged.
//
// An error returned by the operation, or a panic raised inside it, is
// logged with the command's invocation ID through the logger attached
// to ctx (see [logging.WithLogger]) and reported as an
// [*InvocationError]. Nothing escapes to the caller except that error.
func Invoke(ctx context.Context, descriptor *Descriptor, bound *binding.Bound) error {
	if descriptor == nil {
		return errors.New("invoke: nil command descriptor")
	}
	if bound == nil {
		return fmt.Errorf("command %q: no binding result to invoke with", descriptor.name)
	}
	if err := bound.Err(); err != nil {
		return err
	}
	values := bound.Values()
	if len(values) != len(descriptor.params) {
		return fmt.Errorf("command %q: %d values bound for %d parameters", descriptor.name, len(values), len(descriptor.params))
	}

	ctx = logging.WithInvocation(ctx, descriptor.name)
	logger := logging.FromContext(ctx)
	logger.DebugContext(ctx, "invoking command", "arguments", len(values))

	start := time.Now()
	panicked, cause := call(ctx, descriptor.operation, Arguments{params: descriptor.params, values: values})
	duration := time.Since(start)

	if cause != nil {
		logger.ErrorContext(ctx, "command failed",
			"error", cause,
			"panicked", panicked,
			"duration", duration,
		)
		return &InvocationError{Command: descriptor.name, Err: cause, Panicked: panicked}
	}
	logger.InfoContext(ctx, "command completed", "duration", duration)
	return nil
}

func call(ctx context.Context, operation Operation, args Arguments) (panicked bool, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicked = true
			if recoveredErr, ok := recovered.(error); ok {
				err = fmt.Errorf("panic: %w", recoveredErr)
			} else {
				err = fmt.Errorf("panic: %v", recovered)
			}
		}
	}()
	return false, operation(ctx, args)
}
