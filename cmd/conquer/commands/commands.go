// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands is the demonstration command set shipped with the
// conquer binary. Each command exercises a different parameter shape:
// scalars with defaults, nullables, enums, and lists.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bureau-foundation/conquer/lib/binding"
	"github.com/bureau-foundation/conquer/lib/command"
	"github.com/bureau-foundation/conquer/lib/value"
)

// Registry returns the demonstration commands. Command output is
// written to out.
func Registry(out io.Writer) (*command.Registry, error) {
	return command.NewRegistry(
		greet(out),
		tag(out),
		paint(out),
		sum(out),
		toggle(out),
		fail(),
	)
}

func greet(out io.Writer) *command.Descriptor {
	return command.MustFuncDescriptor("greet", "Print a greeting",
		func(name string, times int, title *string) error {
			if times < 0 {
				return fmt.Errorf("times must not be negative, got %d", times)
			}
			subject := name
			if title != nil {
				subject = *title + " " + name
			}
			for range times {
				fmt.Fprintf(out, "Hello, %s!\n", subject)
			}
			return nil
		},
		binding.Required("name", value.String(), "Who to greet"),
		binding.Optional("times", value.Integer(), value.OfInteger(1), "How many times to print the greeting"),
		binding.Optional("title", value.Nullable(value.String()), value.Null(value.String()), "Honorific placed before the name"),
	)
}

// tag reads its arguments by name rather than through a typed function.
func tag(out io.Writer) *command.Descriptor {
	return command.MustDescriptor("tag", "Join labels into a single tag line",
		func(_ context.Context, args command.Arguments) error {
			labels, _ := args.Native("labels").([]string)
			_, err := fmt.Fprintln(out, strings.Join(labels, args.String("separator")))
			return err
		},
		binding.Required("labels", value.List(value.String()), "Labels to join, comma separated"),
		binding.Optional("separator", value.String(), value.OfString(","), "Text placed between labels"),
	)
}

var (
	colors   = value.Enum("Red", "Green", "Blue")
	finishes = value.Enum("Matte", "Gloss")
)

func paint(out io.Writer) *command.Descriptor {
	matte, err := value.OfEnum(finishes, "Matte")
	if err != nil {
		panic(err)
	}
	return command.MustFuncDescriptor("paint", "Paint with one of the supported colors",
		func(color, finish string) {
			fmt.Fprintf(out, "Painting %s (%s)\n", color, finish)
		},
		binding.Required("color", colors, "Paint color"),
		binding.Optional("finish", finishes, matte, "Surface finish"),
	)
}

func sum(out io.Writer) *command.Descriptor {
	return command.MustFuncDescriptor("sum", "Add a list of numbers",
		func(values []float64, precision int) error {
			if precision < 0 {
				return fmt.Errorf("precision must not be negative, got %d", precision)
			}
			total := 0.0
			for _, v := range values {
				total += v
			}
			fmt.Fprintln(out, strconv.FormatFloat(total, 'f', precision, 64))
			return nil
		},
		binding.Required("values", value.List(value.Float()), "Numbers to add, comma separated"),
		binding.Optional("precision", value.Integer(), value.OfInteger(2), "Digits after the decimal point"),
	)
}

func toggle(out io.Writer) *command.Descriptor {
	return command.MustFuncDescriptor("toggle", "Report a tri-state switch",
		func(enabled *bool) {
			switch {
			case enabled == nil:
				fmt.Fprintln(out, "unset")
			case *enabled:
				fmt.Fprintln(out, "on")
			default:
				fmt.Fprintln(out, "off")
			}
		},
		binding.Optional("enabled", value.Nullable(value.Boolean()), value.Null(value.Boolean()), "Switch state; omit to leave unset"),
	)
}

var failureModes = value.Enum("error", "panic")

// errDeliberate is the hidden cause behind every fail invocation.
var errDeliberate = errors.New("deliberate failure")

func fail() *command.Descriptor {
	errorMode, err := value.OfEnum(failureModes, "error")
	if err != nil {
		panic(err)
	}
	return command.MustFuncDescriptor("fail", "Fail on purpose to demonstrate error reporting",
		func(mode string) error {
			if mode == "panic" {
				panic(errDeliberate)
			}
			return errDeliberate
		},
		binding.Optional("mode", failureModes, errorMode, "Whether to return an error or panic"),
	)
}
