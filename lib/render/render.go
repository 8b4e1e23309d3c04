// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/objdesc/objdesc/lib/descriptor"
)

// ErrorColor is the foreground for error-bearing object names.
const ErrorColor = lipgloss.Color("#d32f2f")

// Absent is shown in text output for a field with no value.
const Absent = "-"

// Renderer writes results to an io.Writer in one output format.
type Renderer struct {
	writer io.Writer
	format Format
	styles *lipgloss.Renderer
}

// New creates a Renderer for writer.
func New(writer io.Writer, format Format, color ColorMode) *Renderer {
	styles := lipgloss.NewRenderer(writer)
	switch color {
	case ColorAlways:
		styles.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		styles.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{writer: writer, format: format, styles: styles}
}

// Format returns the output format.
func (r *Renderer) Format() Format { return r.format }

// Colored reports whether output carries ANSI styling.
func (r *Renderer) Colored() bool {
	return r.styles.ColorProfile() != termenv.Ascii
}

// Entry is one decoded descriptor as it is printed.
type Entry struct {
	// Input is the base64 input that was decoded.
	Input string `json:"input" yaml:"input"`

	// Mode is the decoder that was applied.
	Mode descriptor.Mode `json:"mode" yaml:"mode"`

	// Format is the parser that produced Descriptor.
	Format descriptor.Format `json:"format" yaml:"format"`

	// Descriptor is the descriptor to show.
	Descriptor descriptor.Descriptor `json:"descriptor" yaml:"descriptor"`

	// InputPadding is the input's trailing '=' run, if any.
	InputPadding string `json:"inputPadding,omitempty" yaml:"inputPadding,omitempty"`

	// Fingerprint is the descriptor fingerprint, when requested.
	Fingerprint string `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
}

// Field is one labeled value in text and markdown output.
type Field struct {
	Label string
	Value string

	// Error renders Value in [ErrorColor].
	Error bool
}

// EntryFields returns the labeled fields shown for entry.
func EntryFields(entry Entry) []Field {
	d := entry.Descriptor

	id := Absent
	if value, ok := d.ID(); ok {
		id = strconv.FormatInt(value, 10)
	}

	fields := []Field{
		{Label: "Object Name", Value: orAbsent(d.ObjectName()), Error: entry.Format.IsError()},
		{Label: "ID", Value: id},
		{Label: "Padding", Value: orAbsent(paddingText(d))},
	}
	if entry.Fingerprint != "" {
		fields = append(fields, Field{Label: "Fingerprint", Value: entry.Fingerprint})
	}
	return fields
}

// orAbsent shows an empty value as [Absent].
func orAbsent(value string) string {
	if value == "" {
		return Absent
	}
	return value
}

func paddingText(d descriptor.Descriptor) string {
	padding, _ := d.Padding()
	return padding
}

// Entries writes decoded entries. Structured formats emit a single
// object for one entry and an array for several.
func (r *Renderer) Entries(entries []Entry) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		if len(entries) == 1 {
			return r.Value(entries[0])
		}
		return r.Value(entries)
	case FormatMarkdown, FormatHTML:
		headers := []string{"Object Name", "ID", "Padding", "Format"}
		rows := make([][]string, 0, len(entries))
		for _, entry := range entries {
			fields := EntryFields(entry)
			rows = append(rows, []string{fields[0].Value, fields[1].Value, fields[2].Value, string(entry.Format)})
		}
		return r.Table(headers, rows, entries)
	default:
		for index, entry := range entries {
			if index > 0 {
				if _, err := io.WriteString(r.writer, "\n"); err != nil {
					return err
				}
			}
			if err := r.fieldsText(EntryFields(entry)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Fields writes a labeled block in text, a two-column table in
// markdown and html, and value in the structured formats.
func (r *Renderer) Fields(fields []Field, value any) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		return r.Value(value)
	case FormatMarkdown, FormatHTML:
		rows := make([][]string, 0, len(fields))
		for _, field := range fields {
			rows = append(rows, []string{field.Label, field.Value})
		}
		return r.Table([]string{"Field", "Value"}, rows, value)
	default:
		return r.fieldsText(fields)
	}
}

func (r *Renderer) fieldsText(fields []Field) error {
	width := 0
	for _, field := range fields {
		width = max(width, len(field.Label)+1)
	}

	labelStyle := r.styles.NewStyle().Bold(true)
	errorStyle := r.styles.NewStyle().Foreground(ErrorColor)

	var buffer strings.Builder
	for _, field := range fields {
		label := labelStyle.Render(field.Label + ":")
		label += strings.Repeat(" ", width-len(field.Label)-1)
		value := field.Value
		if field.Error {
			value = errorStyle.Render(value)
		}
		fmt.Fprintf(&buffer, "%s %s\n", label, value)
	}
	_, err := io.WriteString(r.writer, buffer.String())
	return err
}

// Table writes rows under headers in text, markdown, and html; the
// structured formats emit value instead.
func (r *Renderer) Table(headers []string, rows [][]string, value any) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		return r.Value(value)
	case FormatMarkdown:
		return r.write(r.highlight(markdownTable(headers, rows), "markdown"))
	case FormatHTML:
		html, err := markdownToHTML(markdownTable(headers, rows))
		if err != nil {
			return err
		}
		return r.write(html)
	default:
		return r.textTable(headers, rows)
	}
}

func (r *Renderer) textTable(headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	for column, header := range headers {
		widths[column] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for column, cell := range row {
			if column < len(widths) {
				widths[column] = max(widths[column], lipgloss.Width(cell))
			}
		}
	}

	headerStyle := r.styles.NewStyle().Bold(true)
	var buffer strings.Builder
	writeRow := func(cells []string, style *lipgloss.Style) {
		for column, cell := range cells {
			if column >= len(widths) {
				break
			}
			padded := cell
			if column < len(cells)-1 {
				padded += strings.Repeat(" ", widths[column]-lipgloss.Width(cell)+2)
			}
			if style != nil {
				padded = style.Render(padded)
			}
			buffer.WriteString(padded)
		}
		buffer.WriteString("\n")
	}

	writeRow(headers, &headerStyle)
	for _, row := range rows {
		writeRow(row, nil)
	}
	_, err := io.WriteString(r.writer, buffer.String())
	return err
}

// Value writes value as JSON or YAML according to the format. Other
// formats fall back to JSON.
func (r *Renderer) Value(value any) error {
	if r.format == FormatYAML {
		data, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return r.write(r.highlight(string(data), "yaml"))
	}

	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return r.write(r.highlight(buffer.String(), "json"))
}

// Line writes text followed by a newline, in every format. It is for
// results that are a single scalar, such as an encoded payload.
func (r *Renderer) Line(text string) error {
	return r.write(text + "\n")
}

// highlight applies chroma syntax highlighting when color is enabled.
// Highlighting failures fall back to the plain text.
func (r *Renderer) highlight(text, language string) string {
	if !r.Colored() {
		return text
	}
	var buffer strings.Builder
	if err := quick.Highlight(&buffer, text, language, "terminal256", "monokai"); err != nil {
		return text
	}
	return buffer.String()
}

func (r *Renderer) write(text string) error {
	_, err := io.WriteString(r.writer, text)
	return err
}
