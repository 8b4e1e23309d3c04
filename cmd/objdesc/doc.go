// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

// Objdesc is a command-line tool for base64 object descriptors.
//
// Usage:
//
//	objdesc <command> [flags]
//
// Commands:
//
//	decode    Decode base64 object descriptors
//	binary    Decode binary-layout descriptors
//	encode    Encode an object descriptor as base64
//	padding   Show the base64 padding of payloads
//	diag      Show CBOR payloads in diagnostic notation
//	samples   List sample payloads
//	ui        Decode and encode interactively
//	version   Print version information
//
// Every command accepts --config, --format, --color, and --verbose.
// Run "objdesc <command> --help" for the rest.
package main
