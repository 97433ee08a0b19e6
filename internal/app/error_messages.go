// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// locker server handlers and the client error mapping.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP error bodies. The client matches on them to restore the domain error,
// so the wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidTag is returned when a submitted locker is not tagged under
	// the key of the caller's session.
	MsgInvalidTag = "locker tag does not verify"

	// MsgMalformedLocker is returned when a locker field cannot be decoded
	// or opened.
	MsgMalformedLocker = "malformed locker"

	// MsgInvalidHash is returned when a gateway request carries no or a
	// wrong HashSHA256 header.
	MsgInvalidHash = "invalid request hash"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgSessionExpired is returned when the session behind a valid token
	// has expired or was closed.
	MsgSessionExpired = "session is expired"

	// MsgInvalidAuthorizationToken is returned when the X-Authorization-Token
	// header does not match the session key.
	MsgInvalidAuthorizationToken = "invalid authorization token"

	// MsgWrongSessionKind is returned when a password session calls a
	// recovery route or the other way round.
	MsgWrongSessionKind = "operation is not allowed for this session kind"

	// MsgLockerNotFound is returned when the user has no stored locker.
	MsgLockerNotFound = "locker not found"

	// MsgRecoveryLockboxNotFound is returned when the user has no recovery
	// lockbox.
	MsgRecoveryLockboxNotFound = "recovery lockbox not found"

	// MsgRecoveryLockboxExists is returned when recovery is already set up.
	MsgRecoveryLockboxExists = "recovery lockbox already exists"

	// MsgTooManyRequests is returned by rate limited routes.
	MsgTooManyRequests = "too many requests"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
