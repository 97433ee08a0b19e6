// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"fmt"

	"github.com/MKhiriev/go-locker/models"
	"golang.org/x/crypto/nacl/box"
)

// CreateRecoveryLockbox implements [LockerCodec].
func (e *Engine) CreateRecoveryLockbox(seed, recoverySeed []byte) (models.RecoveryLockbox, error) {
	lockerKey, err := DeriveLockerSecretKey(seed)
	if err != nil {
		return models.RecoveryLockbox{}, err
	}
	owner, err := DeriveKeyPair(seed)
	if err != nil {
		return models.RecoveryLockbox{}, err
	}
	recovery, err := DeriveKeyPair(recoverySeed)
	if err != nil {
		return models.RecoveryLockbox{}, fmt.Errorf("recovery seed: %w", err)
	}

	nonce, err := e.nonce()
	if err != nil {
		return models.RecoveryLockbox{}, err
	}
	sealed := box.Seal(nil, lockerKey[:], nonce, &recovery.PublicKey, &owner.PrivateKey)

	return models.RecoveryLockbox{
		ReceiverPublicKey: EncodeKey(recovery.PublicKey[:]),
		CreatorPublicKey:  EncodeKey(owner.PublicKey[:]),
		Ciphertext:        Encoding.EncodeToString(sealed),
		Nonce:             Encoding.EncodeToString(nonce[:]),
	}, nil
}

// DecryptLockerFromRecoveryLockbox implements [LockerCodec].
func (e *Engine) DecryptLockerFromRecoveryLockbox(
	locker models.Locker,
	recoverySeed, sessionKey []byte,
	lockbox models.RecoveryLockbox,
	format OutputFormat,
) (Plaintext, error) {
	if !format.valid() {
		return Plaintext{}, fmt.Errorf("%w: %d", ErrUnsupportedOutputFormat, format)
	}

	recovery, err := DeriveKeyPair(recoverySeed)
	if err != nil {
		return Plaintext{}, fmt.Errorf("recovery seed: %w", err)
	}
	if err = checkTag(locker, sessionKey); err != nil {
		return Plaintext{}, err
	}

	lockerKey, err := OpenRecoveryLockbox(lockbox, recovery)
	if err != nil {
		return Plaintext{}, err
	}

	return openLocker(locker, lockerKey, sessionKey, format)
}

// OpenRecoveryLockbox recovers the locker secret key sealed in lockbox for
// the recovery key pair.
func OpenRecoveryLockbox(lockbox models.RecoveryLockbox, recovery KeyPair) ([]byte, error) {
	creator, err := DecodeKey(lockbox.CreatorPublicKey)
	if err != nil {
		return nil, fmt.Errorf("creator public key: %w", err)
	}
	if lockbox.ReceiverPublicKey != "" {
		receiver, err := DecodeKey(lockbox.ReceiverPublicKey)
		if err != nil {
			return nil, fmt.Errorf("receiver public key: %w", err)
		}
		if subtle.ConstantTimeCompare(receiver, recovery.PublicKey[:]) != 1 {
			return nil, fmt.Errorf("%w: lockbox is sealed to a different recovery key", ErrDecryptionFailed)
		}
	}

	nonce, err := decodeNonce("lockbox.nonce", lockbox.Nonce)
	if err != nil {
		return nil, err
	}
	ciphertext, err := decodeField("lockbox.ciphertext", lockbox.Ciphertext)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < box.Overhead {
		return nil, fmt.Errorf("%w: lockbox is %d bytes", ErrCiphertextTooShort, len(ciphertext))
	}

	var creatorKey [KeySize]byte
	copy(creatorKey[:], creator)
	lockerKey, ok := box.Open(nil, ciphertext, nonce, &creatorKey, &recovery.PrivateKey)
	if !ok || len(lockerKey) != KeySize {
		return nil, fmt.Errorf("%w: lockbox", ErrDecryptionFailed)
	}

	return lockerKey, nil
}
