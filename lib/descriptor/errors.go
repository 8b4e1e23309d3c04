// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package descriptor

import "errors"

var (
	// ErrInvalidBase64 is returned (wrapped) when input is not valid
	// base64 under the forgiving decoding rules.
	ErrInvalidBase64 = errors.New("the string to be decoded is not correctly encoded")

	// ErrInvalidUTF8 is returned when text that must be UTF-8 is not.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 text")

	// ErrEmptyInput is returned by [Inspect] when the input is blank
	// after trimming.
	ErrEmptyInput = errors.New("base64 input is required")

	// ErrEmptyObjectName is returned by [ParseFormInput] when the object
	// name is blank after trimming.
	ErrEmptyObjectName = errors.New("object name is required")
)

// EncodingError is returned by the encode operations when a value
// cannot be encoded. It is never recovered internally: the caller must
// present it distinctly from a successful result.
type EncodingError struct {
	// Form is the encoding that failed.
	Form EncodeForm

	// Err is the underlying cause.
	Err error
}

func (e *EncodingError) Error() string {
	switch e.Form {
	case FormJSON:
		return "JSON encoding error: " + e.Err.Error()
	case FormCBOR:
		return "CBOR encoding error: " + e.Err.Error()
	case FormBinary:
		return "binary encoding error: " + e.Err.Error()
	default:
		return "encoding error: " + e.Err.Error()
	}
}

func (e *EncodingError) Unwrap() error { return e.Err }
