// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the locker operations. Callers match them with
// [errors.Is]; wrapped errors carry the failing field in their message.
var (
	// ErrInvalidSeedLength is returned when an export key or recovery export
	// key is not exactly SeedSize bytes.
	ErrInvalidSeedLength = errors.New("invalid seed length")

	// ErrInvalidKeyLength is returned when a session key or public key is not
	// exactly KeySize bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrSerialization is returned when public additional data cannot be
	// brought into canonical form (non-finite numbers, null, unsupported
	// types, invalid UTF-8).
	ErrSerialization = errors.New("value is not serializable")

	// ErrUnsupportedInputType is returned when the locker payload is neither
	// a string nor a byte slice.
	ErrUnsupportedInputType = errors.New("unsupported input type")

	// ErrCiphertextTooShort is returned when a ciphertext is shorter than
	// the authentication overhead of its primitive.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrInvalidTag is returned when the recomputed locker tag does not
	// match. No decryption is attempted in that case.
	ErrInvalidTag = errors.New("invalid locker tag")

	// ErrDecryptionFailed is returned when AEAD or box authentication fails.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrMalformedEncoding is returned when a record field is not valid
	// base64 or a nonce has the wrong size.
	ErrMalformedEncoding = errors.New("malformed encoding")

	// ErrUnsupportedOutputFormat is returned for an unknown OutputFormat.
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")

	// ErrSelfTest is returned by Init when the primitives fail their
	// known-answer round trip.
	ErrSelfTest = errors.New("crypto self-test failed")
)
