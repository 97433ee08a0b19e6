// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EncryptedBlob is a ciphertext together with the nonce it was sealed with.
// Both fields are base64 text (URL-safe alphabet, no padding).
type EncryptedBlob struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
}

// Locker is the client-visible encrypted record.
//
// Data is sealed with the locker secret key derived from the export key.
// PublicAdditionalData is sealed with the session key and bound into Data
// as associated data. Tag authenticates both blobs under the session key.
type Locker struct {
	Data                 EncryptedBlob `json:"data"`
	PublicAdditionalData EncryptedBlob `json:"publicAdditionalData"`
	Tag                  string        `json:"tag"`
}

// RecoveryLockbox carries the locker secret key sealed from the owner key
// pair to the recovery key pair.
type RecoveryLockbox struct {
	ReceiverPublicKey string `json:"receiverPublicKey"`
	CreatorPublicKey  string `json:"creatorPublicKey"`
	Ciphertext        string `json:"ciphertext"`
	Nonce             string `json:"nonce"`
}

// StoredLocker is the server-side persisted form of a locker.
//
// The server keeps the data blob as received and the opened public
// additional data (canonical JSON). The tag and the session-key seal are
// not persisted: they are rebuilt for every reader session.
type StoredLocker struct {
	UserIdentifier       string
	DataCiphertext       string
	DataNonce            string
	PublicAdditionalData string
	UpdatedAt            time.Time
}

// StoredRecoveryLockbox is the server-side persisted recovery lockbox.
type StoredRecoveryLockbox struct {
	UserIdentifier string
	RecoveryLockbox
	CreatedAt time.Time
}

// RecoveryLockerResponse is returned to a client logged in with its
// recovery credential. Locker is re-wrapped under the recovery session key.
type RecoveryLockerResponse struct {
	RecoveryLockbox RecoveryLockbox `json:"recoveryLockbox"`
	Locker          Locker          `json:"locker"`
}
