// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package desc

import (
	"strings"
	"testing"

	"github.com/objdesc/objdesc/cmd/objdesc/cli"
)

func TestPadding(t *testing.T) {
	got := execute(t, "", "padding", "VGVzdA==")
	if got.err != nil {
		t.Fatalf("padding: %v", got.err)
	}
	want := "Input:   VGVzdA==\nPadding: ==\n"
	if got.stdout != want {
		t.Errorf("stdout = %q, want %q", got.stdout, want)
	}
}

func TestPadding_JSON(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		wantPadding string
		wantHas     bool
	}{
		{"double", "VGVzdA==", "==", true},
		{"single", "VGVzdDE=", "=", true},
		{"none", "VGVzdDEy", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := execute(t, "", "padding", "--format", "json", tt.payload)
			if got.err != nil {
				t.Fatalf("padding: %v", got.err)
			}
			var result paddingResult
			decodeJSON(t, got.stdout, &result)
			if result.Padding != tt.wantPadding || result.HasPadding != tt.wantHas {
				t.Errorf("result = %+v, want padding %q has %v", result, tt.wantPadding, tt.wantHas)
			}
		})
	}
}

func TestPadding_Table(t *testing.T) {
	got := execute(t, "VGVzdA==\nVGVzdDEy\n", "padding", "--lines")
	if got.err != nil {
		t.Fatalf("padding: %v", got.err)
	}
	lines := strings.Split(strings.TrimSuffix(got.stdout, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header and 2 rows:\n%s", len(lines), got.stdout)
	}
	if !strings.HasPrefix(lines[0], "Input") || !strings.HasSuffix(lines[1], "==") || !strings.HasSuffix(lines[2], "-") {
		t.Errorf("table =\n%s", got.stdout)
	}
}

func TestPadding_Empty(t *testing.T) {
	got := execute(t, "\n", "padding")
	requireCategory(t, got.err, cli.CategoryValidation)
}
