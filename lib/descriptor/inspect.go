// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package descriptor

import (
	"fmt"
	"strings"
)

// Mode selects the decoder [Inspect] applies.
type Mode string

const (
	// ModeText decodes the JSON or delimited form with [Decode].
	ModeText Mode = "text"

	// ModeBinary decodes the fixed binary layout with [DecodeBinary].
	ModeBinary Mode = "binary"

	// ModeCBOR decodes the CBOR form with [DecodeCBOR].
	ModeCBOR Mode = "cbor"
)

// Modes lists every decode mode in display order.
var Modes = []Mode{ModeText, ModeBinary, ModeCBOR}

// ParseMode parses a mode name.
func ParseMode(name string) (Mode, error) {
	for _, mode := range Modes {
		if string(mode) == name {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown decode mode %q (valid: text, binary, cbor)", name)
}

// EncodeForm selects the encoder [EncodeAs] applies.
type EncodeForm string

const (
	// FormString is the delimited form produced by [Encode].
	FormString EncodeForm = "string"

	// FormJSON is the JSON form produced by [EncodeJSON].
	FormJSON EncodeForm = "json"

	// FormCBOR is the CBOR form produced by [EncodeCBOR].
	FormCBOR EncodeForm = "cbor"

	// FormBinary is the binary layout produced by [EncodeBinary].
	FormBinary EncodeForm = "binary"
)

// EncodeForms lists every encode form in display order.
var EncodeForms = []EncodeForm{FormString, FormJSON, FormCBOR, FormBinary}

// ParseEncodeForm parses an encode form name.
func ParseEncodeForm(name string) (EncodeForm, error) {
	for _, form := range EncodeForms {
		if string(form) == name {
			return form, nil
		}
	}
	return "", fmt.Errorf("unknown encode form %q (valid: string, json, cbor, binary)", name)
}

// EncodeAs encodes input in the given form.
func EncodeAs(form EncodeForm, input EncodeInput) (string, error) {
	switch form {
	case FormString:
		return Encode(input)
	case FormJSON:
		return EncodeJSON(input)
	case FormCBOR:
		return EncodeCBOR(input)
	case FormBinary:
		return EncodeBinary(input)
	default:
		return "", fmt.Errorf("unknown encode form %q", form)
	}
}

// Report is the result of inspecting one input string.
type Report struct {
	// Input is the trimmed input that was decoded.
	Input string `json:"input" yaml:"input"`

	// Mode is the decoder that was applied.
	Mode Mode `json:"mode" yaml:"mode"`

	// Format is the parser that produced Descriptor.
	Format Format `json:"format" yaml:"format"`

	// Descriptor is the decoded descriptor, unmodified.
	Descriptor Descriptor `json:"descriptor" yaml:"descriptor"`

	// InputPadding is the run of trailing '=' in Input, if any.
	InputPadding    string `json:"inputPadding,omitempty" yaml:"inputPadding,omitempty"`
	HasInputPadding bool   `json:"-" yaml:"-"`
}

// Inspect trims input, decodes it with the decoder for mode, and
// records the base64 padding it carried. Blank input returns
// [ErrEmptyInput]; every other failure is carried in the report's
// descriptor as usual.
func Inspect(input string, mode Mode) (Report, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Report{}, ErrEmptyInput
	}

	report := Report{Input: trimmed, Mode: mode}
	switch mode {
	case ModeText:
		report.Descriptor, report.Format = DecodeFormat(trimmed)
	case ModeBinary:
		report.Descriptor, report.Format = DecodeBinaryFormat(trimmed)
	case ModeCBOR:
		report.Descriptor, report.Format = DecodeCBORFormat(trimmed)
	default:
		return Report{}, fmt.Errorf("unknown decode mode %q", mode)
	}
	report.InputPadding, report.HasInputPadding = DetectPadding(trimmed)
	return report, nil
}

// Display returns the descriptor as it should be shown to a user: when
// the descriptor has no padding of its own (or only empty padding) but
// the input carried base64 padding, the padding field reports it as
// "Input padding: <run>".
func (r Report) Display() Descriptor {
	if padding, ok := r.Descriptor.Padding(); ok && padding != "" {
		return r.Descriptor
	}
	if !r.HasInputPadding {
		return r.Descriptor
	}
	return r.Descriptor.WithPadding("Input padding: " + r.InputPadding)
}

// ParseFormInput builds an [EncodeInput] from raw form fields. The
// object name and padding are trimmed; a blank object name is
// [ErrEmptyObjectName] and blank padding is omitted. A non-blank id is
// read with the same leading-integer rule the delimited decoder uses.
func ParseFormInput(objectName, id, padding string) (EncodeInput, error) {
	input := EncodeInput{ObjectName: strings.TrimSpace(objectName)}
	if input.ObjectName == "" {
		return EncodeInput{}, ErrEmptyObjectName
	}

	if strings.TrimSpace(id) != "" {
		value, ok := parseID(id)
		if !ok {
			return EncodeInput{}, fmt.Errorf("id %q is not an integer", id)
		}
		input.ID = &value
	}

	if trimmed := strings.TrimSpace(padding); trimmed != "" {
		input.Padding = &trimmed
	}
	return input, nil
}

// Sample is a named example payload.
type Sample struct {
	Name  string `json:"name"  yaml:"name"`
	Mode  Mode   `json:"mode"  yaml:"mode"`
	Value string `json:"value" yaml:"value"`
}

// Samples returns one example payload per common shape: a delimited
// descriptor, a JSON descriptor, and an eight-byte payload that reads
// as plain text in text mode and as type "TYPE" with a numeric id in
// binary mode.
func Samples() []Sample {
	id := int64(12345)
	padding := "somePadding"
	simple, _ := Encode(EncodeInput{ObjectName: "TestObject", ID: &id, Padding: &padding})

	jsonID := int64(789)
	jsonPadding := "none"
	jsonSample, _ := EncodeJSON(EncodeInput{ObjectName: "User", ID: &jsonID, Padding: &jsonPadding})

	return []Sample{
		{Name: "simple", Mode: ModeText, Value: simple},
		{Name: "json", Mode: ModeText, Value: jsonSample},
		{Name: "binary", Mode: ModeBinary, Value: EncodeBase64([]byte("TYPE0001"))},
	}
}
