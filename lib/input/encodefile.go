// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/objdesc/objdesc/lib/descriptor"
)

// ParseEncodeInput strips JSONC comments and trailing commas from data
// and unmarshals the result into an [descriptor.EncodeInput]:
//
//	{
//	  // required
//	  "objectName": "User",
//	  "id": 789,          // optional
//	  "padding": "none",  // optional
//	}
//
// The object name is trimmed and must not be blank.
func ParseEncodeInput(data []byte) (descriptor.EncodeInput, error) {
	stripped := jsonc.ToJSON(data)

	var fields descriptor.EncodeInput
	if err := json.Unmarshal(stripped, &fields); err != nil {
		return descriptor.EncodeInput{}, fmt.Errorf("parsing encode input: %w", err)
	}

	fields.ObjectName = strings.TrimSpace(fields.ObjectName)
	if fields.ObjectName == "" {
		return descriptor.EncodeInput{}, descriptor.ErrEmptyObjectName
	}
	return fields, nil
}

// ReadEncodeInput reads a JSONC encode-input file from disk.
func ReadEncodeInput(path string) (descriptor.EncodeInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return descriptor.EncodeInput{}, fmt.Errorf("reading %s: %w", path, err)
	}

	fields, err := ParseEncodeInput(data)
	if err != nil {
		return descriptor.EncodeInput{}, fmt.Errorf("%s: %w", path, err)
	}
	return fields, nil
}
