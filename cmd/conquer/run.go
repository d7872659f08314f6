// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/conquer/cmd/conquer/commands"
	"github.com/bureau-foundation/conquer/lib/codec"
	"github.com/bureau-foundation/conquer/lib/command"
	"github.com/bureau-foundation/conquer/lib/config"
	"github.com/bureau-foundation/conquer/lib/docs"
	"github.com/bureau-foundation/conquer/lib/logging"
	"github.com/bureau-foundation/conquer/lib/shell"
	"github.com/bureau-foundation/conquer/lib/version"
)

const catalogTitle = "conquer commands"

var catalogFormats = []string{"json", "cbor", "cbor-diag", "markdown", "html"}

type options struct {
	configPath  string
	logLevel    string
	logFormat   string
	catalog     string
	noColor     bool
	showVersion bool
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("conquer", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.configPath, "config", "", "path to a YAML or JSONC config file (default: $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flagSet.StringVar(&opts.logFormat, "log-format", "", "log format: auto, text, json (overrides config)")
	flagSet.StringVar(&opts.catalog, "catalog", "", "print the command catalog and exit: "+strings.Join(catalogFormats, ", "))
	flagSet.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flagSet.BoolVar(&opts.showVersion, "version", false, "print version information and exit")
	flagSet.SetInterspersed(false)
	flagSet.Usage = func() { printHelp(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if opts.showVersion {
		version.Print(stdout, "conquer")
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cfg.Logging.Format)
	if err != nil {
		return err
	}
	ctx = logging.WithLogger(ctx, logging.NewCommandLogger(stderr, level, format))

	registry, err := commands.Registry(stdout)
	if err != nil {
		return fmt.Errorf("building command registry: %w", err)
	}

	if opts.catalog != "" {
		return writeCatalog(stdout, registry, opts.catalog, colorEnabled(cfg.Shell.Color, stdout))
	}

	sh := shell.New(registry, cfg.Shell)
	if flagSet.NArg() == 0 {
		return sh.Run(ctx, stdin, stdout)
	}
	if err := sh.ExecuteLine(ctx, strings.Join(flagSet.Args(), " "), stdout); err != nil {
		return &exitError{code: 1}
	}
	return nil
}

// loadConfig reads the --config file, falling back to the environment
// variable and then to defaults, and applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	var cfg *config.Config
	var err error
	switch {
	case opts.configPath != "":
		cfg, err = config.LoadFile(opts.configPath)
	case os.Getenv(config.EnvironmentVariable) != "":
		cfg, err = config.Load()
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, err
	}

	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Logging.Format = opts.logFormat
	}
	if opts.noColor {
		cfg.Shell.Color = config.ColorNever
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func colorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return logging.IsTerminal(out)
	}
}

// writeCatalog prints documentation for every registered command.
// JSON carries the input schemas; CBOR omits them.
func writeCatalog(out io.Writer, registry *command.Registry, format string, color bool) error {
	catalog := command.Catalog(registry)

	switch format {
	case "json":
		data, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
		return writeText(out, string(data)+"\n", "json", color)

	case "cbor":
		if err := codec.NewEncoder(out).Encode(command.WithoutSchemas(catalog)); err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
		return nil

	case "cbor-diag":
		data, err := codec.Marshal(command.WithoutSchemas(catalog))
		if err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
		diagnostic, err := codec.Diagnose(data)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, diagnostic)
		return err

	case "markdown":
		return writeText(out, docs.Markdown(catalogTitle, catalog), "markdown", color)

	case "html":
		html, err := docs.HTML(docs.Markdown(catalogTitle, catalog))
		if err != nil {
			return err
		}
		_, err = out.Write(html)
		return err

	default:
		return fmt.Errorf("unknown catalog format %q (want one of: %s)", format, strings.Join(catalogFormats, ", "))
	}
}

func writeText(out io.Writer, text, language string, color bool) error {
	if color {
		return docs.Highlight(out, text, language)
	}
	_, err := io.WriteString(out, text)
	return err
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `conquer: run typed commands from text.

Usage:
  conquer [flags]                                   interactive shell
  conquer [flags] <command> name=value[,value] ...  run one command line
  conquer --catalog=<format>                        print the command catalog

Inside the shell, "help" lists commands and "<command> ?" describes one.

Flags:
%s`, flagSet.FlagUsages())
}
