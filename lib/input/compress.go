// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the container format of a payload dump.
type Compression uint8

const (
	// CompressionNone is data with no recognized frame magic.
	CompressionNone Compression = iota

	// CompressionZstd is a zstd frame.
	CompressionZstd

	// CompressionLZ4 is an LZ4 frame (not a raw LZ4 block: blocks carry
	// no magic and cannot be detected).
	CompressionLZ4
)

// String returns the name of the compression format.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// zstdDecoder is shared across calls. zstd.Decoder is safe for
// concurrent use with DecodeAll.
var zstdDecoder *zstd.Decoder

func init() {
	var err error
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("input: zstd decoder initialization failed: " + err.Error())
	}
}

// Detect reports the compression format of data from its leading magic
// bytes.
func Detect(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(data, lz4Magic):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// Decompress returns data decompressed according to [Detect]. Data
// with no recognized magic is returned unchanged.
func Decompress(data []byte) ([]byte, error) {
	switch Detect(data) {
	case CompressionZstd:
		result, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return result, nil

	case CompressionLZ4:
		result, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return result, nil

	default:
		return data, nil
	}
}
