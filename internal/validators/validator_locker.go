// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-locker/internal/crypto"
	"github.com/MKhiriev/go-locker/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldData targets the data blob of a locker.
	FieldData = "data"

	// FieldPublicAdditionalData targets the session-sealed pad blob.
	FieldPublicAdditionalData = "public_additional_data"

	// FieldTag targets the locker tag.
	FieldTag = "tag"

	// FieldReceiverPublicKey targets the lockbox receiver key.
	FieldReceiverPublicKey = "receiver_public_key"

	// FieldCreatorPublicKey targets the lockbox creator key.
	FieldCreatorPublicKey = "creator_public_key"

	// FieldLockboxCiphertext targets the sealed locker secret key.
	FieldLockboxCiphertext = "lockbox_ciphertext"

	// FieldLockboxNonce targets the lockbox nonce.
	FieldLockboxNonce = "lockbox_nonce"

	// FieldUserIdentifier targets the session owner.
	FieldUserIdentifier = "user_identifier"

	// FieldSessionKey targets the PAKE session key.
	FieldSessionKey = "session_key"

	// FieldKind targets the session kind.
	FieldKind = "kind"
)

// LockerValidator checks the shape of lockers, recovery lockboxes and
// session requests before they reach the crypto engine or the store.
//
// Locker validation is structural only: the tag and the encodings of the
// blobs are left to the engine, which reports them as tag or encoding
// failures.
type LockerValidator struct{}

// NewLockerValidator returns a stateless [LockerValidator].
func NewLockerValidator() *LockerValidator {
	return &LockerValidator{}
}

// Validate dispatches on the dynamic type of value. Pointers are accepted.
func (v *LockerValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch value := value.(type) {
	case models.Locker:
		return v.validateLocker(ctx, value, fields...)
	case *models.Locker:
		return v.validateLocker(ctx, *value, fields...)

	case models.RecoveryLockbox:
		return v.validateRecoveryLockbox(ctx, value, fields...)
	case *models.RecoveryLockbox:
		return v.validateRecoveryLockbox(ctx, *value, fields...)

	case models.SessionRequest:
		return v.validateSessionRequest(ctx, value, fields...)
	case *models.SessionRequest:
		return v.validateSessionRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LockerValidator) validateLocker(_ context.Context, locker models.Locker, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldData, FieldPublicAdditionalData, FieldTag}
	}

	for _, f := range fields {
		switch f {
		case FieldData:
			if err := validateBlobPresent(locker.Data); err != nil {
				return fmt.Errorf("data: %w", err)
			}
		case FieldPublicAdditionalData:
			if err := validateBlobPresent(locker.PublicAdditionalData); err != nil {
				return fmt.Errorf("publicAdditionalData: %w", err)
			}
		case FieldTag:
			if strings.TrimSpace(locker.Tag) == "" {
				return ErrEmptyTag
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LockerValidator) validateRecoveryLockbox(_ context.Context, lockbox models.RecoveryLockbox, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReceiverPublicKey, FieldCreatorPublicKey, FieldLockboxCiphertext, FieldLockboxNonce}
	}

	for _, f := range fields {
		switch f {
		case FieldReceiverPublicKey:
			if !isKey(lockbox.ReceiverPublicKey) {
				return fmt.Errorf("receiverPublicKey: %w", ErrInvalidPublicKey)
			}
			if lockbox.ReceiverPublicKey == lockbox.CreatorPublicKey {
				return ErrSamePublicKeys
			}
		case FieldCreatorPublicKey:
			if !isKey(lockbox.CreatorPublicKey) {
				return fmt.Errorf("creatorPublicKey: %w", ErrInvalidPublicKey)
			}
		case FieldLockboxCiphertext:
			if lockbox.Ciphertext == "" {
				return ErrEmptyCiphertext
			}
			if _, err := crypto.Encoding.DecodeString(lockbox.Ciphertext); err != nil {
				return ErrMalformedCiphertext
			}
		case FieldLockboxNonce:
			if lockbox.Nonce == "" {
				return ErrEmptyNonce
			}
			if !hasDecodedLen(lockbox.Nonce, crypto.NonceSize) {
				return ErrInvalidNonce
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LockerValidator) validateSessionRequest(_ context.Context, request models.SessionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserIdentifier, FieldSessionKey, FieldKind}
	}

	for _, f := range fields {
		switch f {
		case FieldUserIdentifier:
			if strings.TrimSpace(request.UserIdentifier) == "" {
				return ErrEmptyUserIdentifier
			}
		case FieldSessionKey:
			if !isKey(request.SessionKey) {
				return ErrInvalidSessionKey
			}
		case FieldKind:
			if !request.Kind.Valid() {
				return ErrInvalidSessionKind
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateBlobPresent(blob models.EncryptedBlob) error {
	if blob.Ciphertext == "" {
		return ErrEmptyCiphertext
	}
	if blob.Nonce == "" {
		return ErrEmptyNonce
	}
	return nil
}

func isKey(s string) bool {
	return hasDecodedLen(s, crypto.KeySize)
}

func hasDecodedLen(s string, n int) bool {
	b, err := crypto.Encoding.DecodeString(s)
	return err == nil && len(b) == n
}
