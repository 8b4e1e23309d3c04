// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for objdesc.
//
// Configuration comes from a single file named either by the
// OBJDESC_CONFIG environment variable (via [Load]) or by the --config
// flag (via [LoadFile]). There is no automatic file search. When no file
// is named, [Load] returns [Default] unchanged, so the tool works with
// no setup at all.
//
// Values read from the file are merged over the defaults: a key that is
// absent keeps its default. Unknown keys are rejected so that a typo
// does not silently fall back to a default.
//
// ${VAR} and ${VAR:-default} patterns in string values are expanded
// from the environment after loading.
//
// Key exports:
//
//   - [Config] -- master struct with Output, Decode, Encode, Log
//   - [Default] -- returns a Config with built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] -- reports every invalid value at once
package config
