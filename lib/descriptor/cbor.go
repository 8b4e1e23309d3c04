// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package descriptor

import (
	"fmt"

	"github.com/objdesc/objdesc/lib/codec"
)

// cborDescriptor is the CBOR form and the canonical encoding used for
// fingerprints. Absent fields are omitted.
type cborDescriptor struct {
	ObjectName string  `cbor:"objectName"`
	ID         *int64  `cbor:"id,omitempty"`
	Padding    *string `cbor:"padding,omitempty"`
}

// MarshalCanonical returns the deterministic CBOR encoding of d. Equal
// descriptors produce identical bytes.
func (d Descriptor) MarshalCanonical() ([]byte, error) {
	input := d.Input()
	return codec.Marshal(cborDescriptor{ObjectName: input.ObjectName, ID: input.ID, Padding: input.Padding})
}

// EncodeCBOR produces the CBOR form: a map with "objectName" always,
// "id" when present, and "padding" when present and non-empty,
// base64-encoded.
func EncodeCBOR(input EncodeInput) (string, error) {
	if err := validateText(input); err != nil {
		return "", &EncodingError{Form: FormCBOR, Err: err}
	}

	value := cborDescriptor{ObjectName: input.ObjectName, ID: input.ID}
	if input.hasPadding() {
		value.Padding = input.Padding
	}
	data, err := codec.Marshal(value)
	if err != nil {
		return "", &EncodingError{Form: FormCBOR, Err: err}
	}
	return EncodeBase64(data), nil
}

// DecodeCBOR decodes the CBOR form with the same field rules as the
// JSON form. It never fails: errors yield a descriptor whose object
// name is "CBOR decode error: <message>".
func DecodeCBOR(input string) Descriptor {
	descriptor, _ := DecodeCBORFormat(input)
	return descriptor
}

// DecodeCBORFormat is [DecodeCBOR] that also reports [FormatInvalid]
// for error-bearing results.
func DecodeCBORFormat(input string) (Descriptor, Format) {
	descriptor, err := decodeCBOR(input)
	if err != nil {
		return errorDescriptor("CBOR decode error: ", err), FormatInvalid
	}
	return descriptor, FormatCBOR
}

func decodeCBOR(input string) (Descriptor, error) {
	data, err := DecodeBase64(input)
	if err != nil {
		return Descriptor{}, err
	}

	var value any
	if err := codec.Unmarshal(data, &value); err != nil {
		return Descriptor{}, err
	}
	fields, ok := value.(map[string]any)
	if !ok {
		return Descriptor{}, fmt.Errorf("expected a map, got %T", value)
	}
	return descriptorFromFields(fields), nil
}
