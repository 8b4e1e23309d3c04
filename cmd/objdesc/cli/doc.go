// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the objdesc CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a parameter struct bound to a
// [pflag.FlagSet], and a Run function. Commands are assembled into a tree
// by cmd/objdesc/commands and dispatched via [Command.ExecuteContext],
// which handles flag parsing, subcommand routing, and structured help
// output with examples.
//
// Parameter structs declare their flags with struct tags (see
// [BindFlags]), so a command's Run function reads plain fields instead
// of looking flags up by name.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3).
//
// Errors returned by commands are classified with [ToolError] so scripts
// can distinguish bad input from internal failures, and [ExitError]
// carries a handled non-zero exit code.
package cli
