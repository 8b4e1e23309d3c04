// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package fingerprint

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/objdesc/objdesc/lib/descriptor"
)

// Size is the length of a fingerprint in bytes.
const Size = 32

// Hash is a descriptor fingerprint.
type Hash [Size]byte

// descriptorDomainKey is "objdesc.descriptor" in ASCII, zero-padded to
// the 32 bytes BLAKE3 keyed mode requires. Changing it changes every
// fingerprint.
var descriptorDomainKey = [32]byte{
	'o', 'b', 'j', 'd', 'e', 's', 'c', '.', 'd', 'e', 's', 'c', 'r', 'i', 'p', 't',
	'o', 'r', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Descriptor returns the fingerprint of d.
func Descriptor(d descriptor.Descriptor) (Hash, error) {
	data, err := d.MarshalCanonical()
	if err != nil {
		return Hash{}, fmt.Errorf("encoding descriptor for fingerprint: %w", err)
	}
	return keyedHash(data), nil
}

// String returns the full hex encoding of h.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short returns the first 8 bytes of h in hex, for display.
func (h Hash) Short() string {
	return hex.EncodeToString(h[:8])
}

// IsZero reports whether h is the zero value.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// ParseHash parses the 64-character hex form produced by [Hash.String].
func ParseHash(hexString string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return hash, fmt.Errorf("parsing fingerprint: %w", err)
	}
	if len(decoded) != Size {
		return hash, fmt.Errorf("fingerprint is %d bytes, want %d", len(decoded), Size)
	}
	copy(hash[:], decoded)
	return hash, nil
}

func keyedHash(data []byte) Hash {
	// NewKeyed only fails for a key that is not 32 bytes.
	hasher, err := blake3.NewKeyed(descriptorDomainKey[:])
	if err != nil {
		panic("fingerprint: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}
