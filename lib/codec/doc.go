// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the shared CBOR configuration for objdesc.
//
// Descriptors have a CBOR form alongside the JSON and delimited text
// forms, and descriptor fingerprints are computed over CBOR bytes. Both
// need the same bytes for the same logical value, so encoding uses Core
// Deterministic Encoding (RFC 8949 §4.2): sorted map keys, smallest
// integer encoding, no indefinite-length items.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Decoding into an any target produces map[string]any for maps, which
// is what the descriptor field extraction expects. Maps with non-string
// keys fail to decode.
package codec
