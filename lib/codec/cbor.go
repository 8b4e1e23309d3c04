// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode encodes with Core Deterministic Encoding. The same logical
// value always produces identical bytes.
var encMode cbor.EncMode

// decMode decodes standard CBOR. Unknown struct fields are ignored.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Descriptor maps always have text keys. The CBOR default for
		// any-typed targets is map[any]any, which the field extraction
		// in lib/descriptor and encoding/json cannot use.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v. Trailing bytes after the first
// data item are an error.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Diagnose returns RFC 8949 diagnostic notation for each data item in
// data, treating it as a CBOR sequence (RFC 8742). A single item
// produces a single line.
func Diagnose(data []byte) ([]string, error) {
	var lines []string
	remaining := data
	for len(remaining) > 0 {
		notation, rest, err := cbor.DiagnoseFirst(remaining)
		if err != nil {
			return lines, &DiagnoseError{Offset: len(data) - len(remaining), Err: err}
		}
		lines = append(lines, notation)
		remaining = rest
	}
	return lines, nil
}

// DiagnoseError reports the byte offset of the item that failed to
// diagnose.
type DiagnoseError struct {
	Offset int
	Err    error
}

func (e *DiagnoseError) Error() string {
	return fmt.Sprintf("diagnose CBOR at byte %d: %v", e.Offset, e.Err)
}

func (e *DiagnoseError) Unwrap() error { return e.Err }
