// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"

	"github.com/bureau-foundation/conquer/lib/config"
	"github.com/bureau-foundation/conquer/lib/testutil"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func runWith(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestRun_OneShot(t *testing.T) {
	got := runWith(t, "", "greet", "name=Ann", "times=2")
	if got.err != nil {
		t.Fatalf("run: %v (stderr %s)", got.err, got.stderr)
	}
	if got.stdout != "Hello, Ann!\nHello, Ann!\n" {
		t.Errorf("stdout = %q", got.stdout)
	}
}

func TestRun_OneShotFailureExitsNonZero(t *testing.T) {
	got := runWith(t, "", "--no-color", "greet")
	coder, ok := got.err.(interface{ ExitCode() int })
	if !ok {
		t.Fatalf("error = %v, want an exit code", got.err)
	}
	if coder.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", coder.ExitCode())
	}
	if !strings.Contains(got.stdout, "name must be specified") {
		t.Errorf("stdout = %q, want the binding error", got.stdout)
	}
}

func TestRun_ShellFromStdin(t *testing.T) {
	got := runWith(t, "paint color=green\nsum values=1,2,3\nquit\ntoggle enabled=true\n", "--no-color")
	if got.err != nil {
		t.Fatalf("run: %v", got.err)
	}
	if got.stdout != "Painting Green (Matte)\n6.00\n" {
		t.Errorf("stdout = %q", got.stdout)
	}
}

func TestRun_InvocationCauseOnlyInLogs(t *testing.T) {
	got := runWith(t, "", "--no-color", "--log-format=json", "fail")
	if got.err == nil {
		t.Fatal("run succeeded, want failure")
	}
	if strings.Contains(got.stdout, "deliberate failure") {
		t.Errorf("stdout leaks the cause: %q", got.stdout)
	}
	if !strings.Contains(got.stderr, "deliberate failure") {
		t.Errorf("stderr = %q, want the cause logged", got.stderr)
	}
	if !strings.Contains(got.stderr, `"command":"fail"`) {
		t.Errorf("stderr = %q, want the invocation command attribute", got.stderr)
	}
}

func TestRun_CatalogJSON(t *testing.T) {
	got := runWith(t, "", "--no-color", "--catalog=json")
	if got.err != nil {
		t.Fatalf("run: %v", got.err)
	}
	var catalog []map[string]any
	if err := json.Unmarshal([]byte(got.stdout), &catalog); err != nil {
		t.Fatalf("catalog is not JSON: %v\n%s", err, got.stdout)
	}
	if len(catalog) != 6 {
		t.Fatalf("catalog has %d commands, want 6", len(catalog))
	}
	if catalog[0]["name"] != "greet" {
		t.Errorf("first command = %v, want greet", catalog[0]["name"])
	}
	if _, ok := catalog[0]["input_schema"]; !ok {
		t.Error("JSON catalog has no input_schema")
	}
}

func TestRun_CatalogCBOR(t *testing.T) {
	got := runWith(t, "", "--catalog=cbor")
	if got.err != nil {
		t.Fatalf("run: %v", got.err)
	}
	var catalog []map[string]any
	if err := cbor.Unmarshal([]byte(got.stdout), &catalog); err != nil {
		t.Fatalf("catalog is not CBOR: %v", err)
	}
	if len(catalog) != 6 || catalog[5]["name"] != "fail" {
		t.Errorf("catalog = %v", catalog)
	}
	if _, ok := catalog[0]["input_schema"]; ok {
		t.Error("CBOR catalog carries input_schema")
	}
}

func TestRun_CatalogDocuments(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"cbor-diag", `"name": "greet"`},
		{"markdown", "## paint"},
		{"html", "<h2>paint</h2>"},
	}
	for _, test := range tests {
		t.Run(test.format, func(t *testing.T) {
			got := runWith(t, "", "--no-color", "--catalog="+test.format)
			if got.err != nil {
				t.Fatalf("run: %v", got.err)
			}
			if !strings.Contains(got.stdout, test.want) {
				t.Errorf("stdout does not contain %q:\n%s", test.want, got.stdout)
			}
		})
	}
}

func TestRun_RejectsUnknownCatalogFormat(t *testing.T) {
	got := runWith(t, "", "--catalog=xml")
	if got.err == nil || !strings.Contains(got.err.Error(), "unknown catalog format") {
		t.Errorf("error = %v, want unknown catalog format", got.err)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	path := testutil.WriteFile(t, "conquer.yaml", "shell:\n  exit_words: [bye]\n  color: never\n")

	got := runWith(t, "toggle\nbye\ntoggle enabled=false\n", "--config", path)
	if got.err != nil {
		t.Fatalf("run: %v", got.err)
	}
	if got.stdout != "unset\n" {
		t.Errorf("stdout = %q, want the shell to stop at the configured exit word", got.stdout)
	}
}

func TestRun_InvalidLogLevel(t *testing.T) {
	got := runWith(t, "", "--log-level=loud")
	if got.err == nil || !strings.Contains(got.err.Error(), "logging.level") {
		t.Errorf("error = %v, want a logging.level validation error", got.err)
	}
}

func TestRun_Version(t *testing.T) {
	got := runWith(t, "", "--version")
	if got.err != nil {
		t.Fatalf("run: %v", got.err)
	}
	if !strings.HasPrefix(got.stdout, "conquer ") {
		t.Errorf("stdout = %q", got.stdout)
	}
}

func TestRun_Help(t *testing.T) {
	got := runWith(t, "", "--help")
	if got.err != nil {
		t.Fatalf("run: %v", got.err)
	}
	if !strings.Contains(got.stderr, "--catalog") {
		t.Errorf("help does not list flags:\n%s", got.stderr)
	}
}
