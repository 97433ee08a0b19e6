// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-locker/internal/adapter"
	"github.com/MKhiriev/go-locker/internal/app"
	"github.com/MKhiriev/go-locker/internal/crypto"
	"github.com/MKhiriev/go-locker/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrNoCredentials):
		return ErrNotAuthorized

	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrLockerRejected, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidTag:
			return fmt.Errorf("%w: %w", ErrLockerRejected, crypto.ErrInvalidTag)
		case app.MsgSessionExpired:
			return fmt.Errorf("%w: %w", ErrNotAuthorized, ErrSessionExpired)
		case app.MsgInvalidAuthorizationToken:
			return fmt.Errorf("%w: %w", ErrNotAuthorized, ErrInvalidAuthorizationToken)
		}
		return fmt.Errorf("%w: %w", ErrNotAuthorized, ErrTokenIsExpiredOrInvalid)

	case errors.Is(err, adapter.ErrForbidden):
		return ErrWrongSessionKind

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgRecoveryLockboxNotFound:
			return ErrRecoveryUnavailable
		case app.MsgLockerNotFound:
			return store.ErrLockerNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgRecoveryLockboxExists {
			return store.ErrRecoveryLockboxExists
		}

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrTooManyAttempts
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
