// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every validation failure below, so callers
// can map all of them to a single client error.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = fmt.Errorf("%w: unsupported type for validation", ErrValidation)
	ErrUnknownField    = fmt.Errorf("%w: unknown field for validation", ErrValidation)

	ErrEmptyCiphertext     = fmt.Errorf("%w: ciphertext is required", ErrValidation)
	ErrEmptyNonce          = fmt.Errorf("%w: nonce is required", ErrValidation)
	ErrEmptyTag            = fmt.Errorf("%w: tag is required", ErrValidation)
	ErrMalformedCiphertext = fmt.Errorf("%w: ciphertext is not valid base64", ErrValidation)
	ErrInvalidNonce        = fmt.Errorf("%w: nonce must be 24 bytes of base64", ErrValidation)
	ErrInvalidPublicKey    = fmt.Errorf("%w: public key must be 32 bytes of base64", ErrValidation)
	ErrSamePublicKeys      = fmt.Errorf("%w: receiver and creator keys must differ", ErrValidation)
	ErrEmptyUserIdentifier = fmt.Errorf("%w: user identifier is required", ErrValidation)
	ErrInvalidSessionKey   = fmt.Errorf("%w: session key must be 32 bytes of base64", ErrValidation)
	ErrInvalidSessionKind  = fmt.Errorf("%w: unknown session kind", ErrValidation)
)
