// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package descriptor

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// UnknownObjectName is the object name reported when a JSON descriptor
// carries neither a "name" nor an "objectName" field.
const UnknownObjectName = "Unknown"

// Descriptor is a decoded object descriptor. The zero value is a
// descriptor with an empty object name and no id or padding.
//
// Descriptors are values: the With* methods return modified copies and
// two descriptors compare equal with == when all three fields match,
// including the presence of id and padding.
type Descriptor struct {
	objectName string
	id         int64
	hasID      bool
	padding    string
	hasPadding bool
}

// New returns a descriptor with the given object name and no id or
// padding.
func New(objectName string) Descriptor {
	return Descriptor{objectName: objectName}
}

// WithID returns a copy of d carrying id.
func (d Descriptor) WithID(id int64) Descriptor {
	d.id = id
	d.hasID = true
	return d
}

// WithPadding returns a copy of d carrying padding. An empty padding
// string is still a present value; use [Descriptor.WithoutPadding] to
// clear it.
func (d Descriptor) WithPadding(padding string) Descriptor {
	d.padding = padding
	d.hasPadding = true
	return d
}

// WithoutPadding returns a copy of d with no padding.
func (d Descriptor) WithoutPadding() Descriptor {
	d.padding = ""
	d.hasPadding = false
	return d
}

// ObjectName returns the object name. For descriptors produced from
// malformed input, this is the error text.
func (d Descriptor) ObjectName() string { return d.objectName }

// ID returns the numeric id and whether one is present.
func (d Descriptor) ID() (int64, bool) { return d.id, d.hasID }

// Padding returns the padding text and whether it is present.
func (d Descriptor) Padding() (string, bool) { return d.padding, d.hasPadding }

// Input converts d back into an [EncodeInput]. Absent fields become nil
// pointers, so Encode(d.Input()) reproduces the wire form d was decoded
// from whenever that form was produced by this package.
func (d Descriptor) Input() EncodeInput {
	input := EncodeInput{ObjectName: d.objectName}
	if d.hasID {
		id := d.id
		input.ID = &id
	}
	if d.hasPadding {
		padding := d.padding
		input.Padding = &padding
	}
	return input
}

// String formats d for logs and test failure messages.
func (d Descriptor) String() string {
	id := "-"
	if d.hasID {
		id = strconv.FormatInt(d.id, 10)
	}
	padding := "-"
	if d.hasPadding {
		padding = strconv.Quote(d.padding)
	}
	return fmt.Sprintf("{objectName:%q id:%s padding:%s}", d.objectName, id, padding)
}

// descriptorView is the serialized shape of a Descriptor for JSON and
// YAML output. Absent fields serialize as null, never as zero values.
type descriptorView struct {
	ObjectName string  `json:"objectName" yaml:"objectName"`
	ID         *int64  `json:"id"         yaml:"id"`
	Padding    *string `json:"padding"    yaml:"padding"`
}

func (d Descriptor) view() descriptorView {
	input := d.Input()
	return descriptorView{ObjectName: input.ObjectName, ID: input.ID, Padding: input.Padding}
}

// MarshalJSON encodes d as {"objectName":..,"id":..,"padding":..} with
// null for absent fields.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.view())
}

// UnmarshalJSON is the inverse of MarshalJSON. A null or missing id or
// padding decodes as absent.
func (d *Descriptor) UnmarshalJSON(data []byte) error {
	var view descriptorView
	if err := json.Unmarshal(data, &view); err != nil {
		return err
	}
	*d = New(view.ObjectName)
	if view.ID != nil {
		*d = d.WithID(*view.ID)
	}
	if view.Padding != nil {
		*d = d.WithPadding(*view.Padding)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler with the same shape as
// MarshalJSON.
func (d Descriptor) MarshalYAML() (any, error) {
	return d.view(), nil
}

// EncodeInput holds the caller-supplied fields for the encode
// operations. ObjectName is required; a nil ID or Padding is omitted
// from the encoded value. The caller is expected to have trimmed
// ObjectName (see [ParseFormInput]).
type EncodeInput struct {
	ObjectName string  `json:"objectName"        yaml:"objectName"`
	ID         *int64  `json:"id,omitempty"      yaml:"id,omitempty"`
	Padding    *string `json:"padding,omitempty" yaml:"padding,omitempty"`
}

// hasPadding reports whether the input carries non-empty padding.
// Empty padding is omitted by every encoder.
func (input EncodeInput) hasPadding() bool {
	return input.Padding != nil && *input.Padding != ""
}

// Format identifies which parser produced a descriptor.
type Format string

const (
	// FormatJSON is a JSON object in the decoded text.
	FormatJSON Format = "json"

	// FormatDelimited is "name:id[:padding...]" text.
	FormatDelimited Format = "delimited"

	// FormatRaw is decoded text with no recognized structure; the whole
	// text became the object name.
	FormatRaw Format = "raw"

	// FormatBinary is the fixed binary layout.
	FormatBinary Format = "binary"

	// FormatCBOR is a CBOR map.
	FormatCBOR Format = "cbor"

	// FormatInvalid marks a descriptor built from a decode error. Its
	// object name carries the error message.
	FormatInvalid Format = "invalid"
)

// IsError reports whether the format marks an error-bearing descriptor.
func (f Format) IsError() bool { return f == FormatInvalid }
