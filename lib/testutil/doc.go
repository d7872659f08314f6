// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for conquer packages.
//
// [WriteFile] writes a fixture (a config file, a script of shell lines)
// into a per-test temporary directory and returns its path. The
// directory is removed when the test completes.
//
// Helpers call t.Fatalf on failure rather than returning errors, since
// test setup failures are not recoverable.
//
// This package has no conquer-internal dependencies.
package testutil
