// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

// Package render writes command results in the selected output format.
//
// A [Renderer] pairs an output [Format] with a color mode. The text
// format mirrors the labeled layout of an interactive decode result:
//
//	Object Name: TestObject
//	ID:          12345
//	Padding:     somePadding
//
// with "-" for an absent or empty field and error-bearing object names
// shown in red. The json and yaml formats emit the structured value and
// are syntax highlighted with chroma when color is enabled. The
// markdown format emits GFM tables, and html is that markdown converted
// with goldmark.
//
// Color is resolved once, when the Renderer is created: "always" and
// "never" force a termenv profile, "auto" lets lipgloss inspect the
// writer (a terminal gets color, anything else does not).
package render
