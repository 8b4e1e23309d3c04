// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

// Package desc implements the objdesc descriptor commands: decode,
// binary, encode, padding, diag, samples, ui, and version.
//
// Every command embeds [outputParams] for the shared --config, --format,
// --color, and --verbose flags. Configuration is loaded once per command
// run; explicit flags win over the configuration file, which wins over
// built-in defaults. Output goes through lib/render so every command
// supports the text, json, yaml, markdown, and html formats.
//
// Commands read and write through an [Environment] instead of the
// process globals, so tests run them against buffers.
package desc
