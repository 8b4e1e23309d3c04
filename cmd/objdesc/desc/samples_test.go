// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package desc

import (
	"strings"
	"testing"
)

type sampleOutput struct {
	Name       string `json:"name"`
	Mode       string `json:"mode"`
	Value      string `json:"value"`
	Descriptor struct {
		ObjectName string `json:"objectName"`
	} `json:"descriptor"`
}

func TestSamples(t *testing.T) {
	got := execute(t, "", "samples", "--format", "json")
	if got.err != nil {
		t.Fatalf("samples: %v", got.err)
	}

	var rows []sampleOutput
	decodeJSON(t, got.stdout, &rows)
	want := map[string]string{
		"simple": "TestObject",
		"json":   "User",
		"binary": "TYPE",
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d samples, want %d", len(rows), len(want))
	}
	for _, row := range rows {
		if want[row.Name] != row.Descriptor.ObjectName {
			t.Errorf("sample %s decodes to %q, want %q", row.Name, row.Descriptor.ObjectName, want[row.Name])
		}
	}
	if rows[0].Value != delimitedPayload {
		t.Errorf("simple payload = %q, want %q", rows[0].Value, delimitedPayload)
	}
}

func TestSamples_Pattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"bin", []string{"binary"}},
		{"user", []string{"json"}},
		{"zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := execute(t, "", "samples", "--format", "json", tt.pattern)
			if got.err != nil {
				t.Fatalf("samples: %v", got.err)
			}
			var rows []sampleOutput
			decodeJSON(t, got.stdout, &rows)
			names := make([]string, 0, len(rows))
			for _, row := range rows {
				names = append(names, row.Name)
			}
			if strings.Join(names, ",") != strings.Join(tt.want, ",") {
				t.Errorf("samples(%q) = %v, want %v", tt.pattern, names, tt.want)
			}
		})
	}
}

func TestSamples_Text(t *testing.T) {
	got := execute(t, "", "samples")
	if got.err != nil {
		t.Fatalf("samples: %v", got.err)
	}
	for _, want := range []string{"Name", "Decoder", "simple", "binary layout", "VFlQRTAwMDE=", "808464433"} {
		if !strings.Contains(got.stdout, want) {
			t.Errorf("samples output missing %q:\n%s", want, got.stdout)
		}
	}
}

func TestSamples_TooManyArguments(t *testing.T) {
	if got := execute(t, "", "samples", "a", "b"); got.err == nil {
		t.Error("samples with two patterns = nil, want error")
	}
}
