// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package descriptor

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeBase64 decodes input with the forgiving rules browsers apply in
// atob: ASCII whitespace is ignored, padding is optional, and non-zero
// trailing bits are accepted. At most two '=' may appear, only at the
// end, and only when the whitespace-free length is a multiple of four.
func DecodeBase64(input string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, input)

	if len(cleaned)%4 == 0 {
		switch {
		case strings.HasSuffix(cleaned, "=="):
			cleaned = cleaned[:len(cleaned)-2]
		case strings.HasSuffix(cleaned, "="):
			cleaned = cleaned[:len(cleaned)-1]
		}
	}
	if len(cleaned)%4 == 1 {
		return nil, fmt.Errorf("%w: length %d is not a valid base64 length", ErrInvalidBase64, len(cleaned))
	}

	// RawStdEncoding in its default (non-strict) mode accepts non-zero
	// trailing bits, which atob does too.
	data, err := base64.RawStdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return data, nil
}

// EncodeBase64 encodes data as standard padded base64, the form every
// encoder in this package produces.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
