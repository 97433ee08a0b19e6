// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrTokenIsExpiredOrInvalid   = errors.New("token is expired or invalid")
	ErrTokenCreationFailed       = errors.New("token creation failed")
	ErrSessionExpired            = errors.New("session is expired")
	ErrInvalidAuthorizationToken = errors.New("invalid authorization token")
	ErrWrongSessionKind          = errors.New("operation is not allowed for this session kind")
	ErrNoSessionInContext        = errors.New("no session in context")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	ErrNotAuthorized       = errors.New("not authorized on server")
	ErrLockerRejected      = errors.New("locker was rejected by server")
	ErrRecoveryUnavailable = errors.New("recovery is not set up for this user")
	ErrTooManyAttempts     = errors.New("too many recovery attempts")
)
