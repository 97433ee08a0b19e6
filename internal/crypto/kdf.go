// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/dchest/blake2b"
	"golang.org/x/crypto/curve25519"
)

const (
	// SeedSize is the size of an export key or recovery export key.
	SeedSize = 32
	// KeySize is the size of a session key, a locker secret key, and an
	// X25519 public or private key.
	KeySize = 32
	// NonceSize is the size of every nonce used by the locker primitives.
	NonceSize = 24
	// TagSize is the size of a locker tag (HMAC-SHA-512 truncated to 256 bits).
	TagSize = 32

	// LockerContext and LockerSubkeyID scope the locker secret key.
	LockerContext  = "locker__"
	LockerSubkeyID = 42

	// SessionContext and AuthorizationSubkeyID scope the authorization token
	// derived from a session key. Contexts shorter than 8 bytes are padded
	// with zeros.
	SessionContext        = "session"
	AuthorizationSubkeyID = 924

	contextSize = 8
)

// KeyPair is an X25519 box key pair.
type KeyPair struct {
	PublicKey  [KeySize]byte
	PrivateKey [KeySize]byte
}

// DeriveLockerSecretKey derives the locker secret key from an export key.
// The result is deterministic for a given seed.
func DeriveLockerSecretKey(seed []byte) ([KeySize]byte, error) {
	var key [KeySize]byte
	if len(seed) != SeedSize {
		return key, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSeedLength, len(seed), SeedSize)
	}

	if err := deriveSubkey(key[:], seed, LockerSubkeyID, LockerContext); err != nil {
		return key, err
	}
	return key, nil
}

// DeriveKeyPair derives an X25519 box key pair from a seed.
//
// The private key is the first half of SHA-512(seed) and the public key its
// scalar multiple of the base point, which is how NaCl-compatible libraries
// build seeded box key pairs.
func DeriveKeyPair(seed []byte) (KeyPair, error) {
	var kp KeyPair
	if len(seed) != SeedSize {
		return kp, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSeedLength, len(seed), SeedSize)
	}

	digest := sha512.Sum512(seed)
	copy(kp.PrivateKey[:], digest[:KeySize])

	pub, err := curve25519.X25519(kp.PrivateKey[:], curve25519.Basepoint)
	if err != nil {
		return KeyPair{}, fmt.Errorf("derive public key: %w", err)
	}
	copy(kp.PublicKey[:], pub)

	return kp, nil
}

// DeriveAuthSubkey derives a 32-byte subkey of a session key for a purpose
// other than the locker tag, such as the authorization token.
func DeriveAuthSubkey(sessionKey []byte, subkeyID uint64) ([]byte, error) {
	if len(sessionKey) != KeySize {
		return nil, fmt.Errorf("%w: session key is %d bytes, want %d", ErrInvalidKeyLength, len(sessionKey), KeySize)
	}

	out := make([]byte, KeySize)
	if err := deriveSubkey(out, sessionKey, subkeyID, SessionContext); err != nil {
		return nil, err
	}
	return out, nil
}

// AuthorizationToken returns the proof-of-possession token for a session
// key: the base64 form of its authorization subkey.
func AuthorizationToken(sessionKey []byte) (string, error) {
	subkey, err := DeriveAuthSubkey(sessionKey, AuthorizationSubkeyID)
	if err != nil {
		return "", err
	}
	return EncodeKey(subkey), nil
}

// deriveSubkey is the libsodium crypto_kdf construction: keyed BLAKE2b over
// an empty message, with the little-endian subkey id as salt and the context
// as personalization. Both are zero-padded to 16 bytes.
func deriveSubkey(out, key []byte, subkeyID uint64, context string) error {
	if len(context) > contextSize {
		return fmt.Errorf("kdf context %q is longer than %d bytes", context, contextSize)
	}

	salt := binary.LittleEndian.AppendUint64(make([]byte, 0, 16), subkeyID)

	h, err := blake2b.New(&blake2b.Config{
		Size:   uint8(len(out)),
		Key:    key,
		Salt:   salt,
		Person: []byte(context),
	})
	if err != nil {
		return fmt.Errorf("kdf init: %w", err)
	}
	copy(out, h.Sum(nil))
	return nil
}
