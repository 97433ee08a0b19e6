// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the locker server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-locker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the locker
// server. Every call except Version is authenticated with the session token
// and the authorization token set through SetCredentials.
type ServerAdapter interface {
	// SetCredentials stores the session JWT and the authorization token
	// derived from the session key. They are attached to every
	// authenticated request.
	SetCredentials(token, authorizationToken string)

	// PutLocker uploads a locker tagged under the current session key,
	// replacing the stored one.
	PutLocker(ctx context.Context, locker models.Locker) error

	// GetLocker downloads the stored locker re-wrapped for the current
	// session. Returns [ErrNotFound] (wrapped) when there is none.
	GetLocker(ctx context.Context) (models.Locker, error)

	// PutRecoveryLockbox stores the recovery lockbox. Returns [ErrConflict]
	// (wrapped) when one is already stored.
	PutRecoveryLockbox(ctx context.Context, lockbox models.RecoveryLockbox) error

	// DeleteRecoveryLockbox revokes the stored recovery lockbox.
	DeleteRecoveryLockbox(ctx context.Context) error

	// GetRecoveryLocker downloads the lockbox and the locker for a recovery
	// session. Returns [ErrTooManyRequests] (wrapped) when rate limited.
	GetRecoveryLocker(ctx context.Context) (models.RecoveryLockerResponse, error)

	// Logout closes the current session on the server.
	Logout(ctx context.Context) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
