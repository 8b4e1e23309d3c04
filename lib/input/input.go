// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Read returns the input data and the positional arguments that remain
// after the input file argument (if any) is consumed.
//
// If the last element of args names an existing regular file, that
// file is read and the element is dropped from the returned arguments.
// Otherwise stdin is read to EOF and args is returned unchanged. When
// hexMode is set the data is decoded from hex and returned as is: hex
// input is raw descriptor bytes, never a compressed dump. Other data
// is decompressed if it is a zstd or LZ4 frame (see [Decompress]).
func Read(args []string, stdin io.Reader, hexMode bool) ([]byte, []string, error) {
	var data []byte
	remainingArgs := args

	if length := len(args); length > 0 {
		candidate := args[length-1]
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			data, err = os.ReadFile(candidate)
			if err != nil {
				return nil, nil, fmt.Errorf("read %s: %w", candidate, err)
			}
			remainingArgs = args[:length-1]
		}
	}

	if data == nil {
		if stdin == nil {
			return nil, nil, fmt.Errorf("no input file given and no stdin available")
		}
		var err error
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	if hexMode {
		decoded, err := DecodeHex(data)
		if err != nil {
			return nil, nil, err
		}
		return decoded, remainingArgs, nil
	}

	decompressed, err := Decompress(data)
	if err != nil {
		return nil, nil, err
	}
	return decompressed, remainingArgs, nil
}

// DecodeHex strips whitespace from hex-encoded input and decodes it.
// Whitespace between digit pairs is allowed ("a1 63 6b" or "a1636b").
func DecodeHex(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded[:count], nil
}

// Lines splits data into trimmed, non-blank lines. Each line is one
// payload when decoding in batch.
func Lines(data []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
