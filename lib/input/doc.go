// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

// Package input reads descriptor payloads for the command line.
//
// [Read] takes its data from a file named by the last positional
// argument when that argument names a regular file, and from standard
// input otherwise. With hex mode enabled the data is hex text (any
// whitespace between digits is ignored) and is decoded to bytes first.
//
// Captured payload dumps are frequently stored compressed. Data that
// begins with a zstd frame magic or an LZ4 frame magic is decompressed
// transparently; everything else is returned as read.
//
// [ReadEncodeInput] loads the fields for an encode operation from a
// JSONC file: JSON with // and /* */ comments and trailing commas.
package input
