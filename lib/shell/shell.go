// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package shell is the line-oriented front end over a command registry:
// it tokenizes input lines, answers help requests, executes commands,
// and prints every error without stopping.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/bureau-foundation/conquer/lib/command"
	"github.com/bureau-foundation/conquer/lib/config"
)

// MaxLineLength is the longest input line the shell will execute.
// Longer lines are reported and skipped.
const MaxLineLength = 1 << 20

// Shell reads command lines and dispatches them to a registry.
type Shell struct {
	registry      *command.Registry
	config        config.ShellConfig
	maxLineLength int
}

// New returns a shell over registry. Empty config fields fall back to
// the defaults from [config.Default].
func New(registry *command.Registry, cfg config.ShellConfig) *Shell {
	defaults := config.Default().Shell
	if cfg.HelpToken == "" {
		cfg.HelpToken = defaults.HelpToken
	}
	if len(cfg.ExitWords) == 0 {
		cfg.ExitWords = defaults.ExitWords
	}
	if cfg.Color == "" {
		cfg.Color = defaults.Color
	}
	return &Shell{registry: registry, config: cfg, maxLineLength: MaxLineLength}
}

// Run processes lines from in until EOF, an exit word, or context
// cancellation. The prompt is printed only when in is a terminal.
// Command failures and over-long lines are printed to out and never
// end the loop; the returned error is limited to read failures and
// cancellation.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	p := newPrinter(out, s.config.Color)
	interactive := isTerminal(in)

	reader := bufio.NewReader(in)
	for {
		if interactive && s.config.Prompt != "" {
			fmt.Fprint(out, s.config.Prompt)
		}
		text, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return readErr
		}
		if text == "" && readErr == io.EOF {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		text = strings.TrimRight(text, "\r\n")
		if len(text) > s.maxLineLength {
			p.errorLines(fmt.Sprintf("line is too long (%d bytes, limit %d); ignored", len(text), s.maxLineLength))
		} else if exit, _ := s.handle(ctx, text, p); exit {
			return nil
		}

		if readErr == io.EOF {
			return nil
		}
	}
}

// ExecuteLine processes a single line, printing to out exactly as
// [Shell.Run] would, and returns the error the line produced. Exit
// words and comments are no-ops.
func (s *Shell) ExecuteLine(ctx context.Context, line string, out io.Writer) error {
	_, err := s.handle(ctx, line, newPrinter(out, s.config.Color))
	return err
}

func (s *Shell) handle(ctx context.Context, text string, p *printer) (exit bool, err error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return false, nil
	}
	if s.config.IsExitWord(trimmed) {
		return true, nil
	}

	line, err := TokenizeWith(trimmed, s.config.HelpToken)
	if err != nil {
		p.errorLines(err.Error())
		return false, err
	}

	if s.isHelpRequest(line) {
		s.printCommands(p)
		return false, nil
	}

	if line.Help {
		descriptor, err := s.registry.Resolve(line.Command)
		if err != nil {
			p.errorLines(err.Error())
			return false, err
		}
		p.document(command.Document(descriptor))
		return false, nil
	}

	if err := s.registry.Execute(ctx, line.Command, line.Tokens); err != nil {
		s.report(p, line.Command, err)
		return false, err
	}
	return false, nil
}

// isHelpRequest reports whether line is the built-in "help" listing.
// A registered command named help takes precedence.
func (s *Shell) isHelpRequest(line Line) bool {
	if !strings.EqualFold(line.Command, "help") || len(line.Tokens) > 0 || line.Help {
		return false
	}
	_, err := s.registry.Resolve(line.Command)
	return err != nil
}

func (s *Shell) printCommands(p *printer) {
	descriptors := s.registry.Commands()
	rows := make([][2]string, len(descriptors))
	for i, descriptor := range descriptors {
		rows[i] = [2]string{descriptor.Name(), descriptor.Description()}
	}
	p.line("Commands:")
	p.table(rows)
	p.hint(fmt.Sprintf("Type \"<command> %s\" to see a command's parameters.", s.config.HelpToken))
}

// report prints err one problem per line. Validation and execution
// failures add a pointer to the command's documentation.
func (s *Shell) report(p *printer, name string, err error) {
	p.errorLines(err.Error())
	switch command.Classify(err) {
	case command.CategoryValidation, command.CategoryExecution:
		p.hint(fmt.Sprintf("Verify the command usage with \"%s %s\" and try again.", name, s.config.HelpToken))
	}
}

func isTerminal(in io.Reader) bool {
	file, ok := in.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
