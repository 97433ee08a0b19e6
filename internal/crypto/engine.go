// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"
)

// Engine implements [LockerCodec]. It holds no key material; the only state
// is the source of randomness for nonces.
type Engine struct {
	rand io.Reader
}

// Option configures an [Engine].
type Option func(*Engine)

// WithRandom replaces the nonce source. Tests use it to make output
// reproducible; production code should keep the default crypto/rand reader.
func WithRandom(r io.Reader) Option {
	return func(e *Engine) {
		e.rand = r
	}
}

// Init builds an [Engine] and runs a known-answer round trip over every
// primitive. A failing self-test means the process must not handle lockers.
func Init(opts ...Option) (*Engine, error) {
	e := &Engine{rand: rand.Reader}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.selfTest(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSelfTest, err)
	}

	return e, nil
}

func (e *Engine) selfTest() error {
	seed := bytes.Repeat([]byte{0x01}, SeedSize)
	recoverySeed := bytes.Repeat([]byte{0x02}, SeedSize)
	sessionKey := bytes.Repeat([]byte{0x03}, KeySize)
	pad := Object{"selfTest": Bool(true)}

	locker, err := e.EncryptLocker("ping", pad, seed, sessionKey)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	if !e.IsValidLockerTag(locker, sessionKey) {
		return fmt.Errorf("tag: %w", ErrInvalidTag)
	}

	plain, err := e.DecryptLocker(locker, seed, sessionKey, FormatString)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	if plain.String() != "ping" {
		return fmt.Errorf("decrypt: round trip mismatch")
	}

	lockbox, err := e.CreateRecoveryLockbox(seed, recoverySeed)
	if err != nil {
		return fmt.Errorf("lockbox: %w", err)
	}
	if _, err = e.DecryptLockerFromRecoveryLockbox(locker, recoverySeed, sessionKey, lockbox, FormatBytes); err != nil {
		return fmt.Errorf("recovery: %w", err)
	}

	return nil
}

func (e *Engine) nonce() (*[NonceSize]byte, error) {
	var n [NonceSize]byte
	if _, err := io.ReadFull(e.rand, n[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return &n, nil
}
