// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package desc

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/objdesc/objdesc/cmd/objdesc/cli"
	"github.com/objdesc/objdesc/lib/testutil"
)

// decodedEntry mirrors the JSON shape of one decoded entry.
type decodedEntry struct {
	Input      string `json:"input"`
	Mode       string `json:"mode"`
	Format     string `json:"format"`
	Descriptor struct {
		ObjectName string  `json:"objectName"`
		ID         *int64  `json:"id"`
		Padding    *string `json:"padding"`
	} `json:"descriptor"`
	InputPadding string `json:"inputPadding"`
	Fingerprint  string `json:"fingerprint"`
}

func TestDecode_Text(t *testing.T) {
	got := execute(t, "", "decode", delimitedPayload)
	if got.err != nil {
		t.Fatalf("decode: %v", got.err)
	}

	want := "Object Name: TestObject\n" +
		"ID:          12345\n" +
		"Padding:     somePadding\n"
	if got.stdout != want {
		t.Errorf("stdout =\n%s\nwant\n%s", got.stdout, want)
	}
}

func TestDecode_JSONFromStdin(t *testing.T) {
	got := execute(t, jsonPayload+"\n", "decode", "--format", "json")
	if got.err != nil {
		t.Fatalf("decode: %v", got.err)
	}

	var entry decodedEntry
	decodeJSON(t, got.stdout, &entry)
	if entry.Format != "json" || entry.Mode != "text" {
		t.Errorf("format/mode = %s/%s, want json/text", entry.Format, entry.Mode)
	}
	if entry.Descriptor.ObjectName != "User" {
		t.Errorf("objectName = %q, want %q", entry.Descriptor.ObjectName, "User")
	}
	if entry.Descriptor.ID == nil || *entry.Descriptor.ID != 789 {
		t.Errorf("id = %v, want 789", entry.Descriptor.ID)
	}
	if entry.Descriptor.Padding == nil || *entry.Descriptor.Padding != "none" {
		t.Errorf("padding = %v, want none", entry.Descriptor.Padding)
	}
	if entry.InputPadding != "=" {
		t.Errorf("inputPadding = %q, want %q", entry.InputPadding, "=")
	}
}

func TestDecode_InputPaddingAnnotation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantPadding string
	}{
		{
			name:        "annotated by default",
			args:        []string{"decode", unpaddedPayload},
			wantPadding: "Padding:     Input padding: ==",
		},
		{
			name:        "disabled",
			args:        []string{"decode", "--no-annotate", unpaddedPayload},
			wantPadding: "Padding:     -",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := execute(t, "", tt.args...)
			if got.err != nil {
				t.Fatalf("decode: %v", got.err)
			}
			if !strings.Contains(got.stdout, tt.wantPadding+"\n") {
				t.Errorf("stdout = %q, want line %q", got.stdout, tt.wantPadding)
			}
		})
	}
}

func TestDecode_LinesFromFile(t *testing.T) {
	path := testutil.WriteFile(t, "payloads.txt",
		[]byte(delimitedPayload+"\n\n  "+jsonPayload+"  \n"))

	got := execute(t, "", "decode", "--lines", "--format", "json", path)
	if got.err != nil {
		t.Fatalf("decode: %v", got.err)
	}

	var entries []decodedEntry
	decodeJSON(t, got.stdout, &entries)
	if len(entries) != 2 {
		t.Fatalf("decoded %d entries, want 2", len(entries))
	}
	if entries[0].Descriptor.ObjectName != "TestObject" || entries[1].Descriptor.ObjectName != "User" {
		t.Errorf("object names = %q, %q", entries[0].Descriptor.ObjectName, entries[1].Descriptor.ObjectName)
	}
	if entries[0].Format != "delimited" {
		t.Errorf("first format = %q, want delimited", entries[0].Format)
	}
}

func TestDecode_MultipleArguments(t *testing.T) {
	got := execute(t, "", "decode", delimitedPayload, jsonPayload)
	if got.err != nil {
		t.Fatalf("decode: %v", got.err)
	}
	blocks := strings.Split(strings.TrimSpace(got.stdout), "\n\n")
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2:\n%s", len(blocks), got.stdout)
	}
	if !strings.Contains(blocks[1], "Object Name: User") {
		t.Errorf("second block = %q, want User", blocks[1])
	}
}

func TestDecode_HexLinesFromFile(t *testing.T) {
	path := testutil.WriteFile(t, "payloads.hex",
		[]byte("5459504530303031\n\n54 59 50 45 30 30 30 32\n"))

	got := execute(t, "", "binary", "--hex", "--lines", "--format", "json", path)
	if got.err != nil {
		t.Fatalf("binary: %v", got.err)
	}

	var entries []decodedEntry
	decodeJSON(t, got.stdout, &entries)
	if len(entries) != 2 {
		t.Fatalf("decoded %d entries, want 2", len(entries))
	}
	wantIDs := []int64{808464433, 808464434}
	for i, entry := range entries {
		if entry.Descriptor.ObjectName != "TYPE" {
			t.Errorf("entry %d objectName = %q, want TYPE", i, entry.Descriptor.ObjectName)
		}
		if entry.Descriptor.ID == nil || *entry.Descriptor.ID != wantIDs[i] {
			t.Errorf("entry %d id = %v, want %d", i, entry.Descriptor.ID, wantIDs[i])
		}
	}
}

func TestDecode_HexLinesRejectsBadLine(t *testing.T) {
	path := testutil.WriteFile(t, "payloads.hex", []byte("5459504530303031\nzz\n"))

	got := execute(t, "", "decode", "--hex", "--lines", path)
	requireCategory(t, got.err, cli.CategoryValidation)
	if !strings.Contains(got.err.Error(), `line "zz"`) {
		t.Errorf("error = %v, want it to name the bad line", got.err)
	}
}

func TestDecode_Modes(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantName   string
		wantID     int64
		wantFormat string
	}{
		{
			name:       "binary mode flag",
			args:       []string{"decode", "--mode", "binary", "--format", "json", binaryPayload},
			wantName:   "TYPE",
			wantID:     808464433,
			wantFormat: "binary",
		},
		{
			name:       "binary command",
			args:       []string{"binary", "--format", "json", binaryPayload},
			wantName:   "TYPE",
			wantID:     808464433,
			wantFormat: "binary",
		},
		{
			name:       "hex input",
			args:       []string{"binary", "--hex", "--format", "json", "5459504530303031"},
			wantName:   "TYPE",
			wantID:     808464433,
			wantFormat: "binary",
		},
		{
			name:       "text mode reads the same bytes as raw text",
			args:       []string{"decode", "--format", "json", binaryPayload},
			wantName:   "TYPE0001",
			wantFormat: "raw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := execute(t, "", tt.args...)
			if got.err != nil {
				t.Fatalf("execute: %v", got.err)
			}
			var entry decodedEntry
			decodeJSON(t, got.stdout, &entry)
			if entry.Descriptor.ObjectName != tt.wantName {
				t.Errorf("objectName = %q, want %q", entry.Descriptor.ObjectName, tt.wantName)
			}
			if entry.Format != tt.wantFormat {
				t.Errorf("format = %q, want %q", entry.Format, tt.wantFormat)
			}
			if tt.wantID != 0 && (entry.Descriptor.ID == nil || *entry.Descriptor.ID != tt.wantID) {
				t.Errorf("id = %v, want %d", entry.Descriptor.ID, tt.wantID)
			}
		})
	}
}

func TestDecode_InvalidPayload(t *testing.T) {
	got := execute(t, "", "decode", "!!!")
	if got.err != nil {
		t.Fatalf("decode without --strict: %v", got.err)
	}
	if !strings.Contains(got.stdout, "Object Name: Error: ") {
		t.Errorf("stdout = %q, want error-bearing object name", got.stdout)
	}
	if !strings.Contains(got.stderr, "payload did not decode") {
		t.Errorf("stderr = %q, want warning", got.stderr)
	}
}

func TestDecode_Strict(t *testing.T) {
	got := execute(t, "", "decode", "--strict", delimitedPayload, "!!!")

	var exitError *cli.ExitError
	if !errors.As(got.err, &exitError) || exitError.Code != 1 {
		t.Fatalf("error = %v, want ExitError code 1", got.err)
	}
	if !strings.Contains(got.stdout, "Object Name: TestObject") {
		t.Errorf("stdout = %q, want the valid entry still printed", got.stdout)
	}
}

func TestDecode_Fingerprint(t *testing.T) {
	first := execute(t, "", "decode", "--fingerprint", "--format", "json", delimitedPayload)
	if first.err != nil {
		t.Fatalf("decode: %v", first.err)
	}
	var entry decodedEntry
	decodeJSON(t, first.stdout, &entry)
	if len(entry.Fingerprint) != 64 {
		t.Fatalf("fingerprint = %q, want 64 hex characters", entry.Fingerprint)
	}

	// The same descriptor in the JSON form has the same fingerprint.
	second := execute(t, "", "decode", "--fingerprint", "--format", "json",
		"eyJvYmplY3ROYW1lIjoiVGVzdE9iamVjdCIsImlkIjoxMjM0NSwicGFkZGluZyI6InNvbWVQYWRkaW5nIn0=")
	if second.err != nil {
		t.Fatalf("decode: %v", second.err)
	}
	var other decodedEntry
	decodeJSON(t, second.stdout, &other)
	if other.Fingerprint != entry.Fingerprint {
		t.Errorf("fingerprints differ across forms: %s vs %s", entry.Fingerprint, other.Fingerprint)
	}
}

func TestDecode_Verbose(t *testing.T) {
	got := execute(t, "", "decode", "--verbose", delimitedPayload)
	if got.err != nil {
		t.Fatalf("decode: %v", got.err)
	}
	if got.level != slog.LevelDebug {
		t.Errorf("level = %v, want debug", got.level)
	}
	if !strings.Contains(got.stderr, "decoded payload") {
		t.Errorf("stderr = %q, want debug record", got.stderr)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		category cli.ErrorCategory
		want     string
	}{
		{"empty stdin", "  \n", []string{"decode"}, cli.CategoryValidation, "nothing to decode"},
		{"bad mode", "", []string{"decode", "--mode", "morse", delimitedPayload}, cli.CategoryValidation, "--mode"},
		{"bad format", "", []string{"decode", "--format", "xml", delimitedPayload}, cli.CategoryValidation, "--format"},
		{"bad hex", "", []string{"decode", "--hex", "zz"}, cli.CategoryValidation, "decode hex"},
		{"missing config", "", []string{"decode", "--config", "/nonexistent/objdesc.yaml", delimitedPayload}, cli.CategoryNotFound, "reading config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := execute(t, tt.stdin, tt.args...)
			if got.err == nil {
				t.Fatal("execute() = nil, want error")
			}
			requireCategory(t, got.err, tt.category)
			if !strings.Contains(got.err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", got.err.Error(), tt.want)
			}
		})
	}
}

func TestDecode_ConfigFile(t *testing.T) {
	path := testutil.WriteFile(t, "objdesc.yaml", []byte(`
output:
  format: json
decode:
  mode: binary
  strict: true
`))

	got := execute(t, "", "decode", "--config", path, binaryPayload)
	if got.err != nil {
		t.Fatalf("decode: %v", got.err)
	}
	var entry decodedEntry
	decodeJSON(t, got.stdout, &entry)
	if entry.Mode != "binary" || entry.Descriptor.ObjectName != "TYPE" {
		t.Errorf("mode/objectName = %s/%s, want binary/TYPE", entry.Mode, entry.Descriptor.ObjectName)
	}

	// Flags override the file; strict comes from the file.
	strict := execute(t, "", "decode", "--config", path, "--mode", "text", "--format", "text", "!!!")
	var exitError *cli.ExitError
	if !errors.As(strict.err, &exitError) {
		t.Fatalf("error = %v, want ExitError from configured strict mode", strict.err)
	}
	if !strings.HasPrefix(strict.stdout, "Object Name: Error: ") {
		t.Errorf("stdout = %q, want text output", strict.stdout)
	}
}
