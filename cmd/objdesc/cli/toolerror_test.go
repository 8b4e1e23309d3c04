// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestToolError_Constructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *ToolError
		category ErrorCategory
		message  string
	}{
		{"validation", Validation("unknown mode %q", "hex"), CategoryValidation, `unknown mode "hex"`},
		{"not found", NotFound("file %s", "a.txt"), CategoryNotFound, "file a.txt"},
		{"internal", Internal("write output: %v", "closed"), CategoryInternal, "write output: closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Category != tt.category {
				t.Errorf("Category = %q, want %q", tt.err.Category, tt.category)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.message)
			}
		})
	}
}

func TestToolError_UnwrapPreservesChain(t *testing.T) {
	err := NotFound("reading input: %w", fs.ErrNotExist)
	wrapped := fmt.Errorf("decode: %w", err)

	if !errors.Is(wrapped, fs.ErrNotExist) {
		t.Error("errors.Is did not reach fs.ErrNotExist through ToolError")
	}

	var toolError *ToolError
	if !errors.As(wrapped, &toolError) {
		t.Fatal("errors.As did not find the ToolError")
	}
	if toolError.Category != CategoryNotFound {
		t.Errorf("Category = %q, want %q", toolError.Category, CategoryNotFound)
	}
}

func TestCategory(t *testing.T) {
	if got := Category(fmt.Errorf("outer: %w", Validation("bad"))); got != CategoryValidation {
		t.Errorf("Category(wrapped validation) = %q, want %q", got, CategoryValidation)
	}
	if got := Category(errors.New("plain")); got != CategoryInternal {
		t.Errorf("Category(plain) = %q, want %q", got, CategoryInternal)
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 2}

	var exitCoder interface{ ExitCode() int }
	if !errors.As(err, &exitCoder) {
		t.Fatal("ExitError does not implement ExitCode")
	}
	if exitCoder.ExitCode() != 2 {
		t.Errorf("ExitCode() = %d, want 2", exitCoder.ExitCode())
	}
	if err.Error() != "exit code 2" {
		t.Errorf("Error() = %q, want %q", err.Error(), "exit code 2")
	}
}
