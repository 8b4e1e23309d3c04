// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package render

import "fmt"

// Format is an output format.
type Format string

const (
	// FormatText is the human-readable labeled layout.
	FormatText Format = "text"

	// FormatJSON is indented JSON.
	FormatJSON Format = "json"

	// FormatYAML is YAML.
	FormatYAML Format = "yaml"

	// FormatMarkdown is GitHub-flavored markdown.
	FormatMarkdown Format = "markdown"

	// FormatHTML is the markdown output converted to HTML.
	FormatHTML Format = "html"
)

// Formats lists every output format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML}

// ParseFormat parses an output format name.
func ParseFormat(name string) (Format, error) {
	for _, format := range Formats {
		if string(format) == name {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (valid: text, json, yaml, markdown, html)", name)
}

// ColorMode controls whether output is colored.
type ColorMode string

const (
	// ColorAuto colors output written to a terminal.
	ColorAuto ColorMode = "auto"

	// ColorAlways colors output unconditionally.
	ColorAlways ColorMode = "always"

	// ColorNever disables color.
	ColorNever ColorMode = "never"
)

// ParseColorMode parses a color mode name.
func ParseColorMode(name string) (ColorMode, error) {
	switch ColorMode(name) {
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(name), nil
	default:
		return "", fmt.Errorf("unknown color mode %q (valid: auto, always, never)", name)
	}
}
