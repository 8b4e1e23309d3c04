// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package desc

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/objdesc/objdesc/cmd/objdesc/cli"
	"github.com/objdesc/objdesc/lib/config"
)

const (
	delimitedPayload = "VGVzdE9iamVjdDoxMjM0NTpzb21lUGFkZGluZw==" // TestObject:12345:somePadding
	unpaddedPayload  = "VGVzdE9iamVjdDoxMjM0NQ=="                 // TestObject:12345
	jsonPayload      = "eyJvYmplY3ROYW1lIjoiVXNlciIsImlkIjo3ODksInBhZGRpbmciOiJub25lIn0="
	binaryPayload    = "VFlQRTAwMDE=" // TYPE0001
)

// result is the captured outcome of one command run.
type result struct {
	stdout string
	stderr string
	level  slog.Level
	err    error
}

// execute runs args against a command tree holding every descriptor
// command, with stdin as input and no configuration file.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")

	var stdout, stderr bytes.Buffer
	var level slog.LevelVar
	env := Environment{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		Level:  &level,
	}
	root := &cli.Command{
		Name:   "objdesc",
		Logger: cli.NewCommandLogger(&stderr, &level),
		Output: &stderr,
		Subcommands: []*cli.Command{
			DecodeCommand(env),
			BinaryCommand(env),
			EncodeCommand(env),
			PaddingCommand(env),
			DiagCommand(env),
			SamplesCommand(env),
			UICommand(env),
			VersionCommand(env),
		},
	}

	err := root.Execute(args)
	return result{stdout: stdout.String(), stderr: stderr.String(), level: level.Level(), err: err}
}

// decodeJSON unmarshals command output into target.
func decodeJSON(t *testing.T, output string, target any) {
	t.Helper()
	if err := json.Unmarshal([]byte(output), target); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
}

// requireCategory fails unless err is a ToolError of the given category.
func requireCategory(t *testing.T, err error, want cli.ErrorCategory) {
	t.Helper()
	var toolError *cli.ToolError
	if !errors.As(err, &toolError) {
		t.Fatalf("error = %v (%T), want *cli.ToolError", err, err)
	}
	if toolError.Category != want {
		t.Errorf("Category = %q, want %q (error: %v)", toolError.Category, want, err)
	}
}
