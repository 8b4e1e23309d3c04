// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger writing to w at the given
// level. When w is a terminal, uses slog.TextHandler for human-readable
// output; when it is piped or redirected, slog.JSONHandler for
// machine-parseable output.
//
// Pass a *slog.LevelVar as level to let commands raise or lower the level
// after loading configuration:
//
//	var level slog.LevelVar
//	level.Set(slog.LevelWarn)
//	logger := cli.NewCommandLogger(os.Stderr, &level)
func NewCommandLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if isTerminal(w) {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
