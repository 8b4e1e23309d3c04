// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package formui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/objdesc/objdesc/lib/descriptor"
)

// Field indexes the form's text inputs in focus order.
type Field int

const (
	// FieldBase64 is the decode section's payload input.
	FieldBase64 Field = iota
	// FieldObjectName is the encode section's object name input.
	FieldObjectName
	// FieldID is the encode section's optional numeric id input.
	FieldID
	// FieldPadding is the encode section's optional padding input.
	FieldPadding

	fieldCount
)

// labelWidth fits the widest label, "Object Name:".
const labelWidth = 12

// Options configures a new form.
type Options struct {
	// Mode is the initial decoder. ModeCBOR is accepted; Ctrl+B
	// toggles between text and binary from any mode.
	Mode descriptor.Mode

	// Form is the initial encode form.
	Form descriptor.EncodeForm

	// AnnotateInputPadding reports the input's base64 padding in the
	// padding field when the decoded descriptor has none.
	AnnotateInputPadding bool

	// Base64 pre-fills the decode input.
	Base64 string
}

// DecodeResult is the state of the decode section after a submit.
type DecodeResult struct {
	ObjectName string
	ID         string
	Padding    string
	Error      bool
}

// EncodeResult is the state of the encode section after a submit.
type EncodeResult struct {
	Value string
	Error bool
}

// Model is the bubbletea model for the form.
type Model struct {
	keys  KeyMap
	theme Theme

	inputs [fieldCount]textinput.Model
	focus  Field

	mode     descriptor.Mode
	form     descriptor.EncodeForm
	annotate bool

	decodeResult *DecodeResult
	encodeResult *EncodeResult

	width int
}

// NewModel creates a form with the decode input focused.
func NewModel(options Options) Model {
	model := Model{
		keys:     DefaultKeyMap,
		theme:    DefaultTheme,
		mode:     options.Mode,
		form:     options.Form,
		annotate: options.AnnotateInputPadding,
	}
	if model.mode == "" {
		model.mode = descriptor.ModeText
	}
	if model.form == "" {
		model.form = descriptor.FormString
	}

	placeholders := [fieldCount]string{
		FieldBase64:     "base64 value",
		FieldObjectName: "object name",
		FieldID:         "id (optional)",
		FieldPadding:    "padding (optional)",
	}
	for index := range model.inputs {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = placeholders[index]
		input.CharLimit = 256
		model.inputs[index] = input
	}
	model.inputs[FieldBase64].CharLimit = 8192
	model.inputs[FieldBase64].SetValue(options.Base64)
	model.inputs[FieldBase64].Focus()
	return model
}

// Focus returns the focused field.
func (model Model) Focus() Field { return model.focus }

// Mode returns the current decoder.
func (model Model) Mode() descriptor.Mode { return model.mode }

// Form returns the current encode form.
func (model Model) Form() descriptor.EncodeForm { return model.form }

// Value returns the text of field.
func (model Model) Value(field Field) string { return model.inputs[field].Value() }

// Decoded returns the decode section result, or nil before the first
// decode submit.
func (model Model) Decoded() *DecodeResult { return model.decodeResult }

// Encoded returns the encode section result, or nil before the first
// encode submit.
func (model Model) Encoded() *EncodeResult { return model.encodeResult }

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		for index := range model.inputs {
			model.inputs[index].Width = model.valueWidth()
		}
		return model, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit

		case key.Matches(message, model.keys.Next):
			return model, model.setFocus((model.focus + 1) % fieldCount)

		case key.Matches(message, model.keys.Previous):
			return model, model.setFocus((model.focus + fieldCount - 1) % fieldCount)

		case key.Matches(message, model.keys.Submit):
			if model.focus == FieldBase64 {
				model.decode()
			} else {
				model.encode()
			}
			return model, nil

		case key.Matches(message, model.keys.ToggleMode):
			if model.mode == descriptor.ModeBinary {
				model.mode = descriptor.ModeText
			} else {
				model.mode = descriptor.ModeBinary
			}
			if model.decodeResult != nil {
				model.decode()
			}
			return model, nil

		case key.Matches(message, model.keys.CycleForm):
			model.form = nextForm(model.form)
			if model.encodeResult != nil {
				model.encode()
			}
			return model, nil
		}
	}

	var command tea.Cmd
	model.inputs[model.focus], command = model.inputs[model.focus].Update(message)
	return model, command
}

func (model *Model) setFocus(field Field) tea.Cmd {
	model.inputs[model.focus].Blur()
	model.focus = field
	return model.inputs[model.focus].Focus()
}

func nextForm(form descriptor.EncodeForm) descriptor.EncodeForm {
	forms := descriptor.EncodeForms
	for index, candidate := range forms {
		if candidate == form {
			return forms[(index+1)%len(forms)]
		}
	}
	return forms[0]
}

// decode runs the decode section against the current base64 input.
func (model *Model) decode() {
	report, err := descriptor.Inspect(model.inputs[FieldBase64].Value(), model.mode)
	if err != nil {
		message := err.Error()
		if errors.Is(err, descriptor.ErrEmptyInput) {
			message = "Enter a base64 value"
		}
		model.decodeResult = &DecodeResult{ObjectName: message, ID: "-", Padding: "-", Error: true}
		return
	}

	shown := report.Descriptor
	if model.annotate {
		shown = report.Display()
	}

	result := &DecodeResult{ObjectName: shown.ObjectName(), ID: "-", Padding: "-", Error: report.Format.IsError()}
	if result.ObjectName == "" {
		result.ObjectName = "-"
	}
	if id, ok := shown.ID(); ok {
		result.ID = strconv.FormatInt(id, 10)
	}
	if padding, _ := shown.Padding(); padding != "" {
		result.Padding = padding
	}
	model.decodeResult = result
}

// encode runs the encode section against the current field values.
func (model *Model) encode() {
	input, err := descriptor.ParseFormInput(
		model.inputs[FieldObjectName].Value(),
		model.inputs[FieldID].Value(),
		model.inputs[FieldPadding].Value(),
	)
	if err != nil {
		message := err.Error()
		if errors.Is(err, descriptor.ErrEmptyObjectName) {
			message = "Enter an object name"
		}
		model.encodeResult = &EncodeResult{Value: message, Error: true}
		return
	}

	encoded, err := descriptor.EncodeAs(model.form, input)
	if err != nil {
		model.encodeResult = &EncodeResult{Value: err.Error(), Error: true}
		return
	}
	model.encodeResult = &EncodeResult{Value: encoded}
}

// View implements tea.Model.
func (model Model) View() string {
	valueWidth := model.valueWidth()

	var sections []string
	sections = append(sections, model.section(
		fmt.Sprintf("Decode (%s)", model.mode),
		model.inputLine("Base64", FieldBase64),
		model.decodeLines(valueWidth),
		model.focus == FieldBase64,
	))
	sections = append(sections, model.section(
		fmt.Sprintf("Encode (%s)", model.form),
		strings.Join([]string{
			model.inputLine("Object Name", FieldObjectName),
			model.inputLine("ID", FieldID),
			model.inputLine("Padding", FieldPadding),
		}, "\n"),
		model.encodeLines(valueWidth),
		model.focus != FieldBase64,
	))
	sections = append(sections, model.help())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// valueWidth is the room left for a value after the section border,
// padding, and label. Zero means the terminal width is unknown.
func (model Model) valueWidth() int {
	if model.width <= 0 {
		return 0
	}
	return max(model.width-4-labelWidth-2, 8)
}

func (model Model) section(title, inputs, result string, focused bool) string {
	border := model.theme.BorderColor
	if focused {
		border = model.theme.FocusBorder
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground).Render(title)
	body := header + "\n" + inputs
	if result != "" {
		body += "\n\n" + result
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if model.width > 0 {
		style = style.Width(model.width - 2)
	}
	return style.Render(body)
}

func (model Model) label(text string) string {
	return lipgloss.NewStyle().Foreground(model.theme.LabelText).Render(fmt.Sprintf("%-*s", labelWidth, text+":"))
}

func (model Model) inputLine(label string, field Field) string {
	return model.label(label) + " " + model.inputs[field].View()
}

func (model Model) resultLine(label, value string, isError bool, width int) string {
	if width > 0 {
		value = ansi.Truncate(value, width, "…")
	}
	color := model.theme.NormalText
	if isError {
		color = model.theme.ErrorText
	}
	return model.label(label) + " " + lipgloss.NewStyle().Foreground(color).Render(value)
}

func (model Model) decodeLines(width int) string {
	if model.decodeResult == nil {
		return ""
	}
	result := model.decodeResult
	return strings.Join([]string{
		model.resultLine("Object Name", result.ObjectName, result.Error, width),
		model.resultLine("ID", result.ID, false, width),
		model.resultLine("Padding", result.Padding, false, width),
	}, "\n")
}

func (model Model) encodeLines(width int) string {
	if model.encodeResult == nil {
		return ""
	}
	return model.resultLine("Result", model.encodeResult.Value, model.encodeResult.Error, width)
}

func (model Model) help() string {
	var parts []string
	for _, binding := range model.keys.helpBindings() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	if model.width > 0 {
		style = style.Width(model.width)
	}
	return style.Render(strings.Join(parts, "  ·  "))
}

// Run shows the form until the user quits or ctx is cancelled.
func Run(ctx context.Context, options Options, input io.Reader, output io.Writer) error {
	program := tea.NewProgram(NewModel(options),
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(output),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running form: %w", err)
	}
	return nil
}
