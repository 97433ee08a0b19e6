// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
)

// Encoding is the text encoding of every byte field on the wire:
// the URL-safe base64 alphabet without padding. Decoding is strict, so
// non-zero trailing bits are rejected and every byte string has exactly one
// text form.
var Encoding = base64.RawURLEncoding.Strict()

// EncodeKey returns the wire form of a key or seed.
func EncodeKey(key []byte) string {
	return Encoding.EncodeToString(key)
}

// DecodeKey parses the wire form of a key and checks its length.
func DecodeKey(s string) ([]byte, error) {
	key, err := Encoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyLength, err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}
	return key, nil
}

// DecodeSeed parses the wire form of an export key and checks its length.
func DecodeSeed(s string) ([]byte, error) {
	seed, err := Encoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeedLength, err)
	}
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidSeedLength, len(seed))
	}
	return seed, nil
}

func decodeField(name, s string) ([]byte, error) {
	b, err := Encoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedEncoding, name, err)
	}
	return b, nil
}

func decodeNonce(name, s string) (*[NonceSize]byte, error) {
	b, err := decodeField(name, s)
	if err != nil {
		return nil, err
	}
	if len(b) != NonceSize {
		return nil, fmt.Errorf("%w: %s must be %d bytes, got %d", ErrMalformedEncoding, name, NonceSize, len(b))
	}
	var nonce [NonceSize]byte
	copy(nonce[:], b)
	return &nonce, nil
}
