// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Handler decorates records with the invocation stored in the context
// passed to the logging call.
type Handler struct {
	slog.Handler
}

// Handle adds the invocation group when ctx carries one.
func (h Handler) Handle(ctx context.Context, r slog.Record) error {
	if invocation, ok := ctx.Value(invocationKey{}).(*Invocation); ok {
		r.AddAttrs(slog.Group("invocation",
			slog.String("id", invocation.ID),
			slog.String("command", invocation.Command),
		))
	}
	return h.Handler.Handle(ctx, r)
}

func (h Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h Handler) WithGroup(name string) slog.Handler {
	return Handler{Handler: h.Handler.WithGroup(name)}
}

// Invocation identifies one command execution in log output.
type Invocation struct {
	ID      string
	Command string
}

type invocationKey struct{}

// WithInvocation returns a context tagged with a fresh invocation ID
// for command.
func WithInvocation(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, invocationKey{}, &Invocation{
		ID:      uuid.NewString(),
		Command: command,
	})
}

// InvocationFrom returns the invocation stored by [WithInvocation].
func InvocationFrom(ctx context.Context) (*Invocation, bool) {
	invocation, ok := ctx.Value(invocationKey{}).(*Invocation)
	return invocation, ok
}

type loggerKey struct{}

// WithLogger attaches logger to ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached by [WithLogger], or a logger
// that discards everything.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.New(slog.DiscardHandler)
}
