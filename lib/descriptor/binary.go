// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package descriptor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

const (
	// BinaryTypeSize is the width of the object-type field.
	BinaryTypeSize = 4

	// BinaryHeaderSize is the object-type field plus the 32-bit id.
	// Payloads shorter than this are read as plain text.
	BinaryHeaderSize = BinaryTypeSize + 4
)

// utf8BOM is stripped from the front of decoded text fields, matching
// the default behavior of a WHATWG UTF-8 decoder.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeBinary decodes the fixed binary layout:
//
//	offset 0..3   object type (UTF-8 text)
//	offset 4..7   id, big-endian signed 32-bit
//	offset 8..    padding (UTF-8 text), absent when empty
//
// Payloads shorter than [BinaryHeaderSize] bytes become the object name
// in full. Decoding never fails: invalid base64 or invalid UTF-8 yields
// a descriptor whose object name is "Binary decode error: <message>".
func DecodeBinary(input string) Descriptor {
	descriptor, _ := DecodeBinaryFormat(input)
	return descriptor
}

// DecodeBinaryFormat is [DecodeBinary] that also reports
// [FormatInvalid] for error-bearing results.
func DecodeBinaryFormat(input string) (Descriptor, Format) {
	descriptor, err := decodeBinary(input)
	if err != nil {
		return errorDescriptor("Binary decode error: ", err), FormatInvalid
	}
	return descriptor, FormatBinary
}

func decodeBinary(input string) (Descriptor, error) {
	data, err := DecodeBase64(input)
	if err != nil {
		return Descriptor{}, err
	}

	if len(data) < BinaryHeaderSize {
		name, err := binaryText(data)
		if err != nil {
			return Descriptor{}, err
		}
		return New(name), nil
	}

	objectType, err := binaryText(data[:BinaryTypeSize])
	if err != nil {
		return Descriptor{}, fmt.Errorf("object type: %w", err)
	}
	id := int32(binary.BigEndian.Uint32(data[BinaryTypeSize:BinaryHeaderSize]))
	descriptor := New(objectType).WithID(int64(id))

	if len(data) > BinaryHeaderSize {
		padding, err := binaryText(data[BinaryHeaderSize:])
		if err != nil {
			return Descriptor{}, fmt.Errorf("padding: %w", err)
		}
		descriptor = descriptor.WithPadding(padding)
	}
	return descriptor, nil
}

// binaryText decodes a UTF-8 text field, dropping a leading byte order
// mark.
func binaryText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

var (
	errBinaryTypeSize  = fmt.Errorf("object type must be exactly %d bytes", BinaryTypeSize)
	errBinaryIDMissing = errors.New("binary form requires an id")
	errBinaryIDRange   = errors.New("id does not fit in a signed 32-bit integer")
)

// EncodeBinary produces the binary layout read by [DecodeBinary]. The
// object name must be exactly [BinaryTypeSize] bytes of UTF-8 and the
// id must be present and fit in an int32. Non-empty padding is appended
// after the header.
func EncodeBinary(input EncodeInput) (string, error) {
	fail := func(err error) (string, error) {
		return "", &EncodingError{Form: FormBinary, Err: err}
	}

	if err := validateText(input); err != nil {
		return fail(err)
	}
	if len(input.ObjectName) != BinaryTypeSize {
		return fail(fmt.Errorf("%w, got %d", errBinaryTypeSize, len(input.ObjectName)))
	}
	if input.ID == nil {
		return fail(errBinaryIDMissing)
	}
	if *input.ID < math.MinInt32 || *input.ID > math.MaxInt32 {
		return fail(fmt.Errorf("%w: %d", errBinaryIDRange, *input.ID))
	}

	data := make([]byte, BinaryHeaderSize, BinaryHeaderSize+len(paddingOf(input)))
	copy(data, input.ObjectName)
	binary.BigEndian.PutUint32(data[BinaryTypeSize:], uint32(int32(*input.ID)))
	data = append(data, paddingOf(input)...)
	return EncodeBase64(data), nil
}

func paddingOf(input EncodeInput) string {
	if !input.hasPadding() {
		return ""
	}
	return *input.Padding
}
