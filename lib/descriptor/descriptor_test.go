// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package descriptor

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDescriptorJSON(t *testing.T) {
	tests := []struct {
		name       string
		descriptor Descriptor
		want       string
	}{
		{
			name:       "absent fields are null",
			descriptor: New("A"),
			want:       `{"objectName":"A","id":null,"padding":null}`,
		},
		{
			name:       "present zero values",
			descriptor: New("A").WithID(0).WithPadding(""),
			want:       `{"objectName":"A","id":0,"padding":""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.descriptor)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}

			var decoded Descriptor
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if decoded != tt.descriptor {
				t.Errorf("Unmarshal = %v, want %v", decoded, tt.descriptor)
			}
		})
	}
}

func TestDescriptorYAML(t *testing.T) {
	data, err := yaml.Marshal(New("A").WithID(3))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := "objectName: A\nid: 3\npadding: null\n"
	if string(data) != want {
		t.Errorf("yaml = %q, want %q", data, want)
	}
}

func TestWithoutPadding(t *testing.T) {
	d := New("A").WithPadding("p").WithoutPadding()
	if _, ok := d.Padding(); ok {
		t.Error("WithoutPadding left padding present")
	}
	if d != New("A") {
		t.Errorf("WithoutPadding = %v, want %v", d, New("A"))
	}
}

func TestDescriptorString(t *testing.T) {
	if got, want := New("A").WithID(1).WithPadding("p").String(), `{objectName:"A" id:1 padding:"p"}`; got != want {
		t.Errorf("String = %s, want %s", got, want)
	}
	if got, want := New("A").String(), `{objectName:"A" id:- padding:-}`; got != want {
		t.Errorf("String = %s, want %s", got, want)
	}
}

func TestInputRoundTrip(t *testing.T) {
	original := New("User").WithID(789).WithPadding("none")
	encoded, err := Encode(original.Input())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := Decode(encoded); got != original {
		t.Errorf("Decode(Encode(Input())) = %v, want %v", got, original)
	}
}
