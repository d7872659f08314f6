// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// conquer is an interactive shell over a registry of typed commands.
//
// With no arguments it reads "command name=value,value ..." lines from
// stdin until EOF or an exit word. With arguments it joins them into a
// single line, executes it, and exits non-zero if the line failed.
// --catalog exports the command documentation instead of running
// anything.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		// A failed command line has already printed its own report.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
