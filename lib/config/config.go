// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads the config path from.
const EnvironmentVariable = "CONQUER_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for interactive use on a workstation.
	Development Environment = "development"
	// Production is for scripted and unattended use.
	Production Environment = "production"
)

// Colour modes for [ShellConfig].Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the master configuration for conquer.
type Config struct {
	// Environment identifies the deployment type (development, production).
	Environment Environment `yaml:"environment" json:"environment"`

	// Shell configures the interactive read loop.
	Shell ShellConfig `yaml:"shell" json:"shell"`

	// Logging configures the structured logger.
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// Per-environment overrides, applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty" json:"development,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty" json:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Shell   *ShellConfig   `yaml:"shell,omitempty" json:"shell,omitempty"`
	Logging *LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty"`
}

// ShellConfig configures the interactive read loop.
type ShellConfig struct {
	// Prompt is printed before each line when input is a terminal.
	// ${VAR} and ${VAR:-default} are expanded from the environment.
	// Default: "conquer> "
	Prompt string `yaml:"prompt" json:"prompt"`

	// HelpToken, given after a command name, prints that command's
	// documentation instead of running it.
	// Default: ?
	HelpToken string `yaml:"help_token" json:"help_token"`

	// ExitWords end the read loop. Matched case-insensitively.
	// Default: exit, quit
	ExitWords []string `yaml:"exit_words" json:"exit_words"`

	// Color controls styled output: "auto" (terminals only), "always",
	// or "never".
	// Default: auto (development), never (production)
	Color string `yaml:"color" json:"color"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// Level is a slog level name: debug, info, warn, error.
	// Default: info
	Level string `yaml:"level" json:"level"`

	// Format is "auto", "text", or "json". Auto picks text for
	// terminals.
	// Default: auto (development), json (production)
	Format string `yaml:"format" json:"format"`
}

// Default returns the default configuration. Every field has a usable
// value, so conquer runs without a config file.
func Default() *Config {
	return &Config{
		Environment: Development,
		Shell: ShellConfig{
			Prompt:    "conquer> ",
			HelpToken: "?",
			ExitWords: []string{"exit", "quit"},
			Color:     ColorAuto,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load loads configuration from the CONQUER_CONFIG environment variable.
// There is no fallback: if the variable is unset, this fails.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your conquer.yaml config file, or use --config flag", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Files ending
// in .json or .jsonc are read as JSON with comments and trailing
// commas; everything else is read as YAML.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

// loadFile merges a single configuration file into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return json.Unmarshal(jsonc.ToJSON(data), c)
	default:
		return yaml.Unmarshal(data, c)
	}
}

// productionDefaults apply in production before any production section
// from the file: machine-readable logs, no ANSI styling.
var productionDefaults = ConfigOverrides{
	Shell:   &ShellConfig{Color: ColorNever},
	Logging: &LoggingConfig{Format: "json"},
}

// applyEnvironmentOverrides applies the section matching Environment.
// Production starts from productionDefaults, and the file's production
// section is merged over them field by field.
func (c *Config) applyEnvironmentOverrides() {
	switch c.Environment {
	case Development:
		c.merge(c.Development)
	case Production:
		c.merge(&productionDefaults)
		c.merge(c.Production)
	}
}

// merge copies every non-empty field of overrides into c.
func (c *Config) merge(overrides *ConfigOverrides) {
	if overrides == nil {
		return
	}

	if overrides.Shell != nil {
		if overrides.Shell.Prompt != "" {
			c.Shell.Prompt = overrides.Shell.Prompt
		}
		if overrides.Shell.HelpToken != "" {
			c.Shell.HelpToken = overrides.Shell.HelpToken
		}
		if len(overrides.Shell.ExitWords) > 0 {
			c.Shell.ExitWords = overrides.Shell.ExitWords
		}
		if overrides.Shell.Color != "" {
			c.Shell.Color = overrides.Shell.Color
		}
	}

	if overrides.Logging != nil {
		if overrides.Logging.Level != "" {
			c.Logging.Level = overrides.Logging.Level
		}
		if overrides.Logging.Format != "" {
			c.Logging.Format = overrides.Logging.Format
		}
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} in the prompt.
func (c *Config) expandVariables() {
	c.Shell.Prompt = expandVars(c.Shell.Prompt)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		if len(parts) >= 3 {
			return parts[2]
		}
		return ""
	})
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.Shell.HelpToken == "" {
		errs = append(errs, fmt.Errorf("shell.help_token is required"))
	} else if strings.ContainsFunc(c.Shell.HelpToken, func(r rune) bool { return unicode.IsSpace(r) || r == '=' }) {
		errs = append(errs, fmt.Errorf("shell.help_token must be a single word without '=': %q", c.Shell.HelpToken))
	}

	if len(c.Shell.ExitWords) == 0 {
		errs = append(errs, fmt.Errorf("shell.exit_words must name at least one word"))
	}
	for _, word := range c.Shell.ExitWords {
		if strings.TrimSpace(word) == "" {
			errs = append(errs, fmt.Errorf("shell.exit_words must not contain empty words"))
			break
		}
	}

	colorValues := []string{ColorAuto, ColorAlways, ColorNever}
	if !contains(colorValues, c.Shell.Color) {
		errs = append(errs, fmt.Errorf("shell.color must be one of: %v", colorValues))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}

	formatValues := []string{"auto", "text", "json"}
	if !contains(formatValues, c.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format must be one of: %v", formatValues))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// IsExitWord reports whether word ends the shell.
func (s ShellConfig) IsExitWord(word string) bool {
	for _, exit := range s.ExitWords {
		if strings.EqualFold(exit, word) {
			return true
		}
	}
	return false
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
