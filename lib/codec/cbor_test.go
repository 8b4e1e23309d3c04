// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type sampleRecord struct {
	ObjectName string  `cbor:"objectName"`
	ID         *int64  `cbor:"id,omitempty"`
	Padding    *string `cbor:"padding,omitempty"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	id := int64(-42)
	padding := "tail"
	original := sampleRecord{ObjectName: "User", ID: &id, Padding: &padding}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded sampleRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.ObjectName != "User" || decoded.ID == nil || *decoded.ID != -42 ||
		decoded.Padding == nil || *decoded.Padding != "tail" {
		t.Errorf("roundtrip mismatch: got %+v", decoded)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	// Map iteration order is random; deterministic encoding must sort
	// keys regardless.
	value := map[string]any{"padding": "x", "objectName": "A", "id": int64(7)}

	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	for range 10 {
		again, err := Marshal(value)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("deterministic encoding violated: %x != %x", first, again)
		}
	}
}

func TestOmitemptyRespected(t *testing.T) {
	data, err := Marshal(sampleRecord{ObjectName: "A"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded map[string]any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded) != 1 {
		t.Errorf("expected only objectName, got %v", decoded)
	}
	if _, exists := decoded["id"]; exists {
		t.Error("nil id should be omitted")
	}
}

func TestUnmarshalAnyProducesStringKeyedMap(t *testing.T) {
	data, err := Marshal(map[string]any{"name": "x"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := decoded.(map[string]any); !ok {
		t.Fatalf("decoded type = %T, want map[string]any", decoded)
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var value any
	if err := Unmarshal([]byte{0xff, 0xfe}, &value); err == nil {
		t.Error("expected error for invalid CBOR")
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(map[string]any{"id": int64(1)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	lines, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if len(lines) != 1 || lines[0] != `{"id": 1}` {
		t.Errorf("Diagnose = %q, want [%q]", lines, `{"id": 1}`)
	}
}

func TestDiagnoseSequence(t *testing.T) {
	first, _ := Marshal("a")
	second, _ := Marshal(int64(2))

	lines, err := Diagnose(append(first, second...))
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if len(lines) != 2 || lines[0] != `"a"` || lines[1] != "2" {
		t.Errorf("Diagnose = %q", lines)
	}
}

func TestDiagnoseReportsOffset(t *testing.T) {
	valid, _ := Marshal("a")
	data := append(valid, 0xff)

	lines, err := Diagnose(data)
	if err == nil {
		t.Fatal("expected error for truncated sequence")
	}
	var diagnoseError *DiagnoseError
	if !errors.As(err, &diagnoseError) {
		t.Fatalf("error type = %T, want *DiagnoseError", err)
	}
	if diagnoseError.Offset != len(valid) {
		t.Errorf("Offset = %d, want %d", diagnoseError.Offset, len(valid))
	}
	if len(lines) != 1 {
		t.Errorf("expected the valid prefix to be diagnosed, got %q", lines)
	}
	if !strings.Contains(err.Error(), "diagnose CBOR at byte") {
		t.Errorf("error = %q", err)
	}
}
