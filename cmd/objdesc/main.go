// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/objdesc/objdesc/cmd/objdesc/cli"
	"github.com/objdesc/objdesc/cmd/objdesc/commands"
	"github.com/objdesc/objdesc/cmd/objdesc/desc"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var level slog.LevelVar
	level.Set(slog.LevelWarn)
	logger := cli.NewCommandLogger(os.Stderr, &level)

	root := commands.Root(desc.ProcessEnvironment(&level), logger)
	return root.ExecuteContext(ctx, os.Args[1:])
}
