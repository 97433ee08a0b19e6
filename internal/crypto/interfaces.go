// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-locker/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/locker_codec_mock.go -package=mock

// LockerCodec is the locker capability handed out by [Init]. Client and
// server code depend on this interface rather than on [*Engine] so that the
// crypto layer can be mocked.
//
// Seeds are 32-byte export keys. Session keys are 32-byte PAKE session keys.
type LockerCodec interface {
	// EncryptLocker seals data (a string or a []byte) and binds
	// publicAdditionalData to it. The returned locker is tagged under
	// sessionKey.
	EncryptLocker(data any, publicAdditionalData Value, seed, sessionKey []byte) (models.Locker, error)

	// DecryptLocker checks the tag under sessionKey and opens the locker
	// with the key derived from seed.
	DecryptLocker(locker models.Locker, seed, sessionKey []byte, format OutputFormat) (Plaintext, error)

	// IsValidLockerTag reports whether the tag of locker verifies under
	// sessionKey. It never fails: any malformed input yields false.
	IsValidLockerTag(locker models.Locker, sessionKey []byte) bool

	// VerifyWrite is the server-side admission check for a submitted locker.
	VerifyWrite(locker models.Locker, sessionKey []byte) bool

	// OpenPublicAdditionalData checks the tag and opens the public
	// additional data. It needs no export key.
	OpenPublicAdditionalData(locker models.Locker, sessionKey []byte) (Value, error)

	// CreateLockerForClient re-wraps a stored data blob for a new session:
	// the public additional data seal and the tag are rebuilt under
	// sessionKey while the data ciphertext and nonce are reused as is.
	CreateLockerForClient(ciphertext, nonce string, publicAdditionalData Value, sessionKey []byte) (models.Locker, error)

	// CreateRecoveryLockbox seals the locker key of seed to the key pair of
	// recoverySeed.
	CreateRecoveryLockbox(seed, recoverySeed []byte) (models.RecoveryLockbox, error)

	// DecryptLockerFromRecoveryLockbox opens a locker with the locker key
	// recovered from lockbox. The locker must be tagged under sessionKey,
	// the key of the current recovery session.
	DecryptLockerFromRecoveryLockbox(locker models.Locker, recoverySeed, sessionKey []byte, lockbox models.RecoveryLockbox, format OutputFormat) (Plaintext, error)
}
