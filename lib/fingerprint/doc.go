// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

// Package fingerprint computes stable content hashes for descriptors.
//
// A fingerprint is the BLAKE3 keyed hash of the descriptor's
// deterministic CBOR encoding (see [descriptor.Descriptor.MarshalCanonical]).
// Two descriptors have the same fingerprint exactly when they are equal,
// including the presence of the id and padding fields: an empty padding
// string and an absent padding hash differently.
//
// The key is the ASCII string "objdesc.descriptor" zero-padded to 32
// bytes. Keyed hashing keeps descriptor fingerprints from colliding with
// any other BLAKE3 digest of the same bytes.
package fingerprint
