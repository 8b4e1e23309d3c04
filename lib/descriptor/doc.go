// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

// Package descriptor decodes and encodes object descriptors: a short
// base64-wrapped record carrying an object name, an optional numeric
// id, and an optional free-text padding field.
//
// Three wire forms exist:
//
//   - Delimited: "name:id:padding" joined with ':' and base64-encoded.
//     This is the default string form produced by [Encode].
//   - JSON: {"objectName":..,"id":..,"padding":..} base64-encoded,
//     produced by [EncodeJSON]. [Decode] tries this form first when the
//     decoded text starts with '{'.
//   - Binary: a 4-byte object type, a big-endian signed 32-bit id, and
//     optional trailing padding text, read by [DecodeBinary].
//
// A CBOR form ([EncodeCBOR], [DecodeCBOR]) mirrors the JSON form using
// the deterministic encoding from lib/codec.
//
// Decode operations never fail: malformed input produces a [Descriptor]
// whose object name carries the error text, so a caller always has
// something to display. Encode operations return an [*EncodingError]
// instead, because emitting a malformed encoded value is worse than
// failing.
//
// Every function in this package is a pure function of its arguments.
// There is no package state beyond immutable configuration, so calls
// are safe from any number of goroutines.
package descriptor
