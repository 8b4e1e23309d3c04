// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package descriptor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// delimiter separates the fields of the delimited form.
const delimiter = ":"

// Decode decodes a base64 descriptor in the JSON or delimited form.
// It never fails: invalid base64 yields a descriptor whose object name
// is "Error: <message>" with no id or padding.
func Decode(input string) Descriptor {
	descriptor, _ := DecodeFormat(input)
	return descriptor
}

// DecodeFormat is [Decode] that also reports which parser produced the
// result.
//
// When the decoded text starts with '{' it is parsed as a JSON object.
// If that parse fails, the same text falls through to the delimited
// parser, so "{malformed:1" decodes as object name "{malformed" with
// id 1.
func DecodeFormat(input string) (Descriptor, Format) {
	data, err := DecodeBase64(input)
	if err != nil {
		return errorDescriptor("Error: ", err), FormatInvalid
	}
	// Decoded bytes are UTF-8. Bytes that are not, such as a Latin-1
	// "\xe9", become U+FFFD rather than the code point of the same value.
	return parseText(strings.ToValidUTF8(string(data), string(utf8.RuneError)))
}

// parseText applies the JSON-first, delimited-fallback rules to
// decoded text.
func parseText(text string) (Descriptor, Format) {
	if strings.HasPrefix(text, "{") {
		if descriptor, err := parseJSONObject([]byte(text)); err == nil {
			return descriptor, FormatJSON
		}
	}

	parts := strings.Split(text, delimiter)
	if len(parts) >= 2 {
		descriptor := New(parts[0])
		if id, ok := parseID(parts[1]); ok {
			descriptor = descriptor.WithID(id)
		}
		if len(parts) > 2 {
			descriptor = descriptor.WithPadding(strings.Join(parts[2:], delimiter))
		}
		return descriptor, FormatDelimited
	}

	return New(text), FormatRaw
}

// parseJSONObject parses a single JSON object, rejecting trailing
// non-whitespace content, and extracts descriptor fields from it.
func parseJSONObject(data []byte) (Descriptor, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return Descriptor{}, err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return Descriptor{}, errors.New("unexpected data after JSON object")
	}
	return descriptorFromFields(fields), nil
}

// descriptorFromFields builds a descriptor from a decoded JSON or CBOR
// map. "name" wins over "objectName"; either must be a non-empty
// string to count. The id is taken only from a numeric value with an
// integral int64 value. Padding is taken only from a non-empty string.
// Values of any other type, such as "name": 42, are ignored rather than
// converted to text.
func descriptorFromFields(fields map[string]any) Descriptor {
	objectName := UnknownObjectName
	if name := nonEmptyString(fields["name"]); name != "" {
		objectName = name
	} else if name := nonEmptyString(fields["objectName"]); name != "" {
		objectName = name
	}

	descriptor := New(objectName)
	if id, ok := numericID(fields["id"]); ok {
		descriptor = descriptor.WithID(id)
	}
	if padding := nonEmptyString(fields["padding"]); padding != "" {
		descriptor = descriptor.WithPadding(padding)
	}
	return descriptor
}

func nonEmptyString(value any) string {
	s, _ := value.(string)
	return s
}

// numericID accepts the numeric representations produced by
// encoding/json (with UseNumber) and by the CBOR decoder. Any other
// type, a non-integral value, or a value outside int64 is not an id.
func numericID(value any) (int64, bool) {
	switch number := value.(type) {
	case json.Number:
		if id, err := number.Int64(); err == nil {
			return id, true
		}
		float, err := number.Float64()
		if err != nil {
			return 0, false
		}
		return integralFloat(float)
	case int64:
		return number, true
	case uint64:
		if number > math.MaxInt64 {
			return 0, false
		}
		return int64(number), true
	case float64:
		return integralFloat(number)
	case float32:
		return integralFloat(float64(number))
	default:
		return 0, false
	}
}

func integralFloat(value float64) (int64, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, false
	}
	// 2^63 is exactly representable; anything at or above it overflows.
	if value < math.MinInt64 || value >= math.MaxInt64 {
		return 0, false
	}
	return int64(value), true
}

// parseID reads a leading integer the way parseInt(s, 10) does:
// leading whitespace is skipped, an optional sign is accepted, and the
// longest run of decimal digits that follows is the value. Anything
// after the digits is ignored. No digits, or a value that overflows
// int64, is not an id.
func parseID(s string) (int64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign = s[:1]
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	id, err := strconv.ParseInt(sign+s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// DetectPadding returns the run of trailing '=' characters in the raw
// base64 input, and whether there is one. It reports literal base64
// padding and is unrelated to a descriptor's padding field.
func DetectPadding(input string) (string, bool) {
	trimmed := strings.TrimRight(input, "=")
	if len(trimmed) == len(input) {
		return "", false
	}
	return input[len(trimmed):], true
}

// Encode produces the delimited form: the object name, then the id if
// present, then the padding if present and non-empty, joined with ':'
// and base64-encoded.
func Encode(input EncodeInput) (string, error) {
	if err := validateText(input); err != nil {
		return "", &EncodingError{Form: FormString, Err: err}
	}

	parts := []string{input.ObjectName}
	if input.ID != nil {
		parts = append(parts, strconv.FormatInt(*input.ID, 10))
	}
	if input.hasPadding() {
		parts = append(parts, *input.Padding)
	}
	return EncodeBase64([]byte(strings.Join(parts, delimiter))), nil
}

// jsonDescriptor is the JSON form. Field order is the key order on the
// wire; absent fields are omitted entirely, never written as null.
type jsonDescriptor struct {
	ObjectName string  `json:"objectName"`
	ID         *int64  `json:"id,omitempty"`
	Padding    *string `json:"padding,omitempty"`
}

// EncodeJSON produces the JSON form: an object with "objectName"
// always, "id" when present, and "padding" when present and non-empty,
// base64-encoded.
func EncodeJSON(input EncodeInput) (string, error) {
	if err := validateText(input); err != nil {
		return "", &EncodingError{Form: FormJSON, Err: err}
	}

	value := jsonDescriptor{ObjectName: input.ObjectName, ID: input.ID}
	if input.hasPadding() {
		value.Padding = input.Padding
	}

	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	// Keep '<', '>' and '&' literal so the payload matches what other
	// producers of this form emit.
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return "", &EncodingError{Form: FormJSON, Err: err}
	}
	return EncodeBase64(bytes.TrimSuffix(buffer.Bytes(), []byte("\n"))), nil
}

// validateText rejects text fields that are not valid UTF-8. Such
// strings cannot be represented faithfully in either text form.
func validateText(input EncodeInput) error {
	if !utf8.ValidString(input.ObjectName) {
		return fmt.Errorf("object name: %w", ErrInvalidUTF8)
	}
	if input.Padding != nil && !utf8.ValidString(*input.Padding) {
		return fmt.Errorf("padding: %w", ErrInvalidUTF8)
	}
	return nil
}

// errorDescriptor builds the error-bearing descriptor for a recovered
// decode failure.
func errorDescriptor(prefix string, err error) Descriptor {
	return New(prefix + err.Error())
}
