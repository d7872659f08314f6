// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bureau-foundation/conquer/lib/binding"
	"github.com/bureau-foundation/conquer/lib/command"
	"github.com/bureau-foundation/conquer/lib/config"
	"github.com/bureau-foundation/conquer/lib/value"
)

// testShell returns a shell over greet and fail commands. greet writes
// to the returned buffer so tests can see which invocations happened.
func testShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()
	var effects bytes.Buffer

	greet := command.MustFuncDescriptor("greet", "Say hello",
		func(name string, times int) {
			for range times {
				fmt.Fprintf(&effects, "Hello, %s!\n", name)
			}
		},
		binding.Required("name", value.String(), ""),
		binding.Optional("times", value.Integer(), value.OfInteger(1), ""),
	)
	fail := command.MustFuncDescriptor("fail", "Always fails",
		func() error { return errors.New("secret cause") })

	registry, err := command.NewRegistry(greet, fail)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	cfg := config.Default().Shell
	cfg.Color = config.ColorNever
	return New(registry, cfg), &effects
}

func TestRun_ExecutesLinesUntilExit(t *testing.T) {
	shell, effects := testShell(t)
	input := strings.Join([]string{
		"# comment",
		"",
		"greet name=Ann times=2",
		"greet name=Bob",
		"exit",
		"greet name=Never",
	}, "\n")

	var out bytes.Buffer
	if err := shell.Run(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := "Hello, Ann!\nHello, Ann!\nHello, Bob!\n"
	if effects.String() != want {
		t.Errorf("effects = %q, want %q", effects.String(), want)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want nothing for successful commands", out.String())
	}
}

func TestRun_ContinuesAfterErrors(t *testing.T) {
	shell, effects := testShell(t)
	input := "greet foo=1\nfail\nnope\ngreet name=Ann\n"

	var out bytes.Buffer
	if err := shell.Run(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"foo is not a valid parameter",
		"name must be specified",
		command.InvocationFailureMessage,
		"nope is not a valid command",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output does not contain %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "secret cause") {
		t.Errorf("output leaks the invocation cause:\n%s", output)
	}
	if effects.String() != "Hello, Ann!\n" {
		t.Errorf("effects = %q, want the final greet to run", effects.String())
	}
}

func TestRun_NoPromptForNonTerminal(t *testing.T) {
	shell, _ := testShell(t)
	var out bytes.Buffer
	if err := shell.Run(context.Background(), strings.NewReader("greet name=Ann\n"), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(out.String(), "conquer>") {
		t.Errorf("prompt printed for non-terminal input: %q", out.String())
	}
}

func TestRun_StopsOnCancellation(t *testing.T) {
	shell, effects := testShell(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := shell.Run(ctx, strings.NewReader("greet name=Ann\n"), &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if effects.Len() != 0 {
		t.Errorf("command ran after cancellation: %q", effects.String())
	}
}

func TestRun_LongLineDoesNotEndSession(t *testing.T) {
	shell, effects := testShell(t)
	long := strings.Repeat("a", 100_000)
	input := "greet name=" + long + "\ngreet name=Bob\n"

	var out bytes.Buffer
	if err := shell.Run(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "Hello, " + long + "!\nHello, Bob!\n"
	if effects.String() != want {
		t.Errorf("effects has %d bytes, want both greetings (%d bytes)", effects.Len(), len(want))
	}
}

func TestRun_OverLimitLineIsReportedAndSkipped(t *testing.T) {
	shell, effects := testShell(t)
	shell.maxLineLength = 32
	input := "greet name=" + strings.Repeat("a,", 40) + "a\ngreet name=Bob\n"

	var out bytes.Buffer
	if err := shell.Run(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "line is too long") {
		t.Errorf("output = %q, want a line-too-long report", out.String())
	}
	if effects.String() != "Hello, Bob!\n" {
		t.Errorf("effects = %q, want only the following line to run", effects.String())
	}
}

func TestRun_LastLineWithoutNewline(t *testing.T) {
	shell, effects := testShell(t)
	if err := shell.Run(context.Background(), strings.NewReader("greet name=Ann"), &bytes.Buffer{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if effects.String() != "Hello, Ann!\n" {
		t.Errorf("effects = %q, want the unterminated line to run", effects.String())
	}
}

func TestExecuteLine_HelpToken(t *testing.T) {
	shell, effects := testShell(t)
	var out bytes.Buffer
	if err := shell.ExecuteLine(context.Background(), "greet ?", &out); err != nil {
		t.Fatalf("ExecuteLine: %v", err)
	}

	want := strings.Join([]string{
		"",
		"greet",
		"Description: Say hello",
		"Parameters:",
		"-name (string): This parameter is Required.",
		"-times (integer): This parameter is Optional.",
	}, "\n") + "\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if effects.Len() != 0 {
		t.Error("help request ran the command")
	}
}

func TestExecuteLine_HelpListing(t *testing.T) {
	shell, _ := testShell(t)
	var out bytes.Buffer
	if err := shell.ExecuteLine(context.Background(), "help", &out); err != nil {
		t.Fatalf("ExecuteLine: %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "greet  Say hello") || !strings.Contains(output, "fail   Always fails") {
		t.Errorf("listing not aligned:\n%s", output)
	}
}

func TestExecuteLine_ReturnsCategorisedErrors(t *testing.T) {
	tests := []struct {
		line string
		want command.ErrorCategory
	}{
		{"greet times=x", command.CategoryValidation},
		{"fail", command.CategoryExecution},
		{"gret name=Ann", command.CategoryNotFound},
		{"greet Ann", command.CategoryInternal},
	}
	shell, _ := testShell(t)
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			var out bytes.Buffer
			err := shell.ExecuteLine(context.Background(), test.line, &out)
			if got := command.Classify(err); got != test.want {
				t.Errorf("Classify() = %q, want %q (error %v)", got, test.want, err)
			}
			if out.Len() == 0 {
				t.Error("nothing printed for a failing line")
			}
		})
	}
}

func TestExecuteLine_SuggestsCommand(t *testing.T) {
	shell, _ := testShell(t)
	var out bytes.Buffer
	_ = shell.ExecuteLine(context.Background(), "gret name=Ann", &out)
	if !strings.Contains(out.String(), `did you mean "greet"?`) {
		t.Errorf("output = %q, want a suggestion", out.String())
	}
}

func TestExecuteLine_ValidationHint(t *testing.T) {
	shell, _ := testShell(t)
	var out bytes.Buffer
	_ = shell.ExecuteLine(context.Background(), "greet", &out)
	if !strings.Contains(out.String(), `Verify the command usage with "greet ?" and try again.`) {
		t.Errorf("output = %q, want a usage hint", out.String())
	}
}
