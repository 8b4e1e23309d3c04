// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package descriptor

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/objdesc/objdesc/lib/codec"
)

func cborBase64(t *testing.T, value any) string {
	t.Helper()
	data, err := codec.Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	return base64.StdEncoding.EncodeToString(data)
}

func TestDecodeCBOR(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  Descriptor
	}{
		{
			name:  "all fields",
			value: map[string]any{"objectName": "User", "id": 789, "padding": "none"},
			want:  New("User").WithID(789).WithPadding("none"),
		},
		{
			name:  "negative id",
			value: map[string]any{"objectName": "User", "id": -4},
			want:  New("User").WithID(-4),
		},
		{
			name:  "name wins",
			value: map[string]any{"name": "N", "objectName": "O"},
			want:  New("N"),
		},
		{
			name:  "no name",
			value: map[string]any{"padding": "p"},
			want:  New(UnknownObjectName).WithPadding("p"),
		},
		{
			name:  "integral float id",
			value: map[string]any{"objectName": "F", "id": 3.0},
			want:  New("F").WithID(3),
		},
		{
			name:  "fractional float id absent",
			value: map[string]any{"objectName": "F", "id": 3.5},
			want:  New("F"),
		},
		{
			name:  "text id absent",
			value: map[string]any{"objectName": "F", "id": "3"},
			want:  New("F"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, format := DecodeCBORFormat(cborBase64(t, tt.value))
			if got != tt.want {
				t.Errorf("DecodeCBORFormat = %v, want %v", got, tt.want)
			}
			if format != FormatCBOR {
				t.Errorf("format = %q, want %q", format, FormatCBOR)
			}
		})
	}
}

func TestDecodeCBOR_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "invalid base64", input: "%%%%"},
		{name: "not a map", input: "AQ=="},
		{name: "truncated", input: base64.StdEncoding.EncodeToString([]byte{0xA1, 0x61})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, format := DecodeCBORFormat(tt.input)
			if !strings.HasPrefix(got.ObjectName(), "CBOR decode error: ") {
				t.Errorf("ObjectName = %q, want CBOR decode error prefix", got.ObjectName())
			}
			if format != FormatInvalid {
				t.Errorf("format = %q, want %q", format, FormatInvalid)
			}
		})
	}
}

func TestEncodeCBOR_RoundTrip(t *testing.T) {
	inputs := []EncodeInput{
		{ObjectName: "Solo"},
		{ObjectName: "User", ID: int64Pointer(789), Padding: stringPointer("none")},
		{ObjectName: "Zero", ID: int64Pointer(0)},
		{ObjectName: "Neg", ID: int64Pointer(-1 << 40)},
		{ObjectName: "Pad", Padding: stringPointer("a:b")},
	}

	for _, input := range inputs {
		encoded, err := EncodeCBOR(input)
		if err != nil {
			t.Fatalf("EncodeCBOR(%+v): %v", input, err)
		}
		if got, want := DecodeCBOR(encoded), expectedDescriptor(input); got != want {
			t.Errorf("DecodeCBOR(EncodeCBOR) = %v, want %v", got, want)
		}
	}
}

func TestEncodeCBOR_OmitsEmptyPadding(t *testing.T) {
	withEmpty, err := EncodeCBOR(EncodeInput{ObjectName: "A", Padding: stringPointer("")})
	if err != nil {
		t.Fatalf("EncodeCBOR: %v", err)
	}
	without, err := EncodeCBOR(EncodeInput{ObjectName: "A"})
	if err != nil {
		t.Fatalf("EncodeCBOR: %v", err)
	}
	if withEmpty != without {
		t.Errorf("empty padding changed the encoding: %q vs %q", withEmpty, without)
	}
}

func TestMarshalCanonical(t *testing.T) {
	first, err := New("A").WithID(1).WithPadding("p").MarshalCanonical()
	if err != nil {
		t.Fatalf("MarshalCanonical: %v", err)
	}
	second, err := New("A").WithPadding("p").WithID(1).MarshalCanonical()
	if err != nil {
		t.Fatalf("MarshalCanonical: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("equal descriptors encoded differently: %x vs %x", first, second)
	}

	// Canonical bytes keep empty padding: it is a present value.
	empty, err := New("A").WithID(1).WithPadding("").MarshalCanonical()
	if err != nil {
		t.Fatalf("MarshalCanonical: %v", err)
	}
	absent, err := New("A").WithID(1).MarshalCanonical()
	if err != nil {
		t.Fatalf("MarshalCanonical: %v", err)
	}
	if bytes.Equal(empty, absent) {
		t.Error("empty and absent padding should encode differently")
	}
}

func TestEncodingErrorIsNotRecovered(t *testing.T) {
	_, err := EncodeAs(FormCBOR, EncodeInput{ObjectName: "\xff"})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("EncodeAs error = %v, want ErrInvalidUTF8", err)
	}
}
