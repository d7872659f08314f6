// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for conquer.
//
// Configuration is loaded from a single file specified by either the
// CONQUER_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). Without either, callers use [Default]. There is no
// ~/.config discovery and no automatic file search.
//
// YAML is the primary format. Files named *.json or *.jsonc are read
// as JSON and may contain // and /* */ comments and trailing commas.
//
// The file may contain environment-specific sections (development,
// production) that override base values when [Config].Environment
// matches. Production starts from JSON logs and unstyled output, and
// its section overrides those defaults field by field.
//
// Key exports:
//
//   - [Config] -- master struct with Shell and Logging
//   - [Default] -- returns a Config with development defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] -- reports every invalid field at once
//
// This package depends on no other conquer packages.
package config
