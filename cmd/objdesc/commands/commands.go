// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete objdesc CLI command tree.
package commands

import (
	"log/slog"

	"github.com/objdesc/objdesc/cmd/objdesc/cli"
	"github.com/objdesc/objdesc/cmd/objdesc/desc"
)

// Root builds and returns the objdesc command tree. Every command reads
// and writes through env; logger is handed to each command's Run and
// should be gated by env.Level.
func Root(env desc.Environment, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name: "objdesc",
		Description: `objdesc: decode and encode base64 object descriptors.

An object descriptor names an object and optionally carries a numeric id
and free-form padding. Descriptors travel as base64 of a JSON object, a
colon-delimited "name:id:padding" string, a CBOR map, or a fixed binary
layout.`,
		Logger: logger,
		Output: env.Stderr,
		Subcommands: []*cli.Command{
			desc.DecodeCommand(env),
			desc.BinaryCommand(env),
			desc.EncodeCommand(env),
			desc.PaddingCommand(env),
			desc.DiagCommand(env),
			desc.SamplesCommand(env),
			desc.UICommand(env),
			desc.VersionCommand(env),
		},
		Examples: []cli.Example{
			{
				Description: "Decode a payload",
				Command:     "objdesc decode VGVzdE9iamVjdDoxMjM0NTpzb21lUGFkZGluZw==",
			},
			{
				Description: "Encode a descriptor as JSON",
				Command:     "objdesc encode --form json --name User --id 789 --padding none",
			},
			{
				Description: "Decode every line of a compressed capture",
				Command:     "objdesc decode --lines --format markdown capture.txt.zst",
			},
			{
				Description: "Open the interactive form",
				Command:     "objdesc ui",
			},
		},
	}
}
