// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package desc

import (
	"io"
	"os"
	"strings"

	"github.com/objdesc/objdesc/cmd/objdesc/cli"
	"github.com/objdesc/objdesc/lib/descriptor"
	"github.com/objdesc/objdesc/lib/input"
)

// payloadParams selects where a command's base64 payloads come from.
type payloadParams struct {
	Hex   bool `flag:"hex" desc:"input is hex-encoded raw bytes rather than base64 text"`
	Lines bool `flag:"lines,l" desc:"treat each non-blank input line as a separate payload"`
}

// readPayloads returns the base64 payloads named by args.
//
// When the last argument is not a regular file, every argument is a
// payload. Otherwise the file (or stdin, with no arguments) is read,
// decompressed if it is a zstd or LZ4 frame, and split into one payload,
// or one per line under --lines. Under --hex each payload is raw bytes
// in hex, re-encoded to base64 before decoding; with --lines as well,
// every line is decoded from hex on its own.
func (p payloadParams) readPayloads(args []string, stdin io.Reader) ([]string, error) {
	if length := len(args); length > 0 && !isRegularFile(args[length-1]) {
		if !p.Hex {
			return args, nil
		}
		return hexPayloads(args, "argument")
	}

	// Under --lines the input is split before any hex decoding so each
	// line stays a separate payload.
	data, remaining, err := input.Read(args, stdin, p.Hex && !p.Lines)
	if err != nil {
		return nil, cli.Validation("reading input: %w", err)
	}
	if len(remaining) > 0 {
		return nil, cli.Validation("unexpected argument %q before input file", remaining[0])
	}

	switch {
	case p.Lines && p.Hex:
		return hexPayloads(input.Lines(data), "line")
	case p.Lines:
		return input.Lines(data), nil
	case p.Hex:
		return []string{descriptor.EncodeBase64(data)}, nil
	default:
		return []string{strings.TrimSpace(string(data))}, nil
	}
}

// hexPayloads decodes each hex value and re-encodes it as base64.
func hexPayloads(values []string, kind string) ([]string, error) {
	payloads := make([]string, 0, len(values))
	for _, value := range values {
		data, err := input.DecodeHex([]byte(value))
		if err != nil {
			return nil, cli.Validation("%s %q: %w", kind, value, err)
		}
		payloads = append(payloads, descriptor.EncodeBase64(data))
	}
	return payloads, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
