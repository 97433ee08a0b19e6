// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-locker/internal/crypto"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// LockerClientService is the client side of the locker. It seals and opens
// lockers locally and talks to the server through an adapter. Export keys
// and plaintext never leave this service.
type LockerClientService interface {
	// Authenticate decodes the PAKE session key and hands the session JWT
	// and the derived authorization token to the adapter. It must be called
	// before any other method.
	Authenticate(token, sessionKey string) error

	// SaveLocker encrypts data under the locker key derived from exportKey,
	// binds publicAdditionalData to it and uploads the locker.
	SaveLocker(ctx context.Context, exportKey string, data any, publicAdditionalData crypto.Value) error

	// LoadLocker downloads the locker and opens it with exportKey.
	LoadLocker(ctx context.Context, exportKey string, format crypto.OutputFormat) (crypto.Plaintext, error)

	// SetupRecovery seals the locker key of exportKey to the key pair of
	// recoveryExportKey and stores the lockbox on the server.
	SetupRecovery(ctx context.Context, exportKey, recoveryExportKey string) error

	// RemoveRecovery revokes the stored lockbox.
	RemoveRecovery(ctx context.Context) error

	// RecoverLocker runs inside a recovery session: it downloads the lockbox
	// together with the locker and opens the locker with recoveryExportKey.
	// Nothing is uploaded.
	RecoverLocker(ctx context.Context, recoveryExportKey string, format crypto.OutputFormat) (crypto.Plaintext, error)

	// Logout closes the session on the server and forgets the session key.
	Logout(ctx context.Context) error

	// ServerVersion reports the server build version. No session is needed.
	ServerVersion(ctx context.Context) (string, error)
}
