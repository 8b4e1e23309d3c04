// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

// Package formui is an interactive terminal form for decoding and
// encoding descriptors.
//
// The form has two sections. The decode section takes a base64 value
// and shows the decoded object name, id, and padding. The encode section
// takes an object name, an optional id, and optional padding, and shows
// the base64 encoding in the selected form.
//
// Key bindings (see [DefaultKeyMap]):
//
//	Tab / Shift+Tab   move between fields
//	Enter             submit the section holding the focused field
//	Ctrl+B            toggle the decoder between text and binary
//	Ctrl+F            cycle the encode form (string, json, cbor, binary)
//	Esc / Ctrl+C      quit
//
// Results follow the same display rules as the command line: blank
// input is an error, "-" marks an absent field, and base64 padding on
// the input is reported in the padding field when the descriptor has
// none. Error results are shown in red.
package formui
