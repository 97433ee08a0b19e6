// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-locker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService opens and authorizes sessions established by a PAKE login.
type SessionService interface {
	// OpenSession stores a new session for the request and issues a JWT
	// carrying its id.
	OpenSession(ctx context.Context, request models.SessionRequest) (models.Session, models.Token, error)

	// Authorize resolves the session behind tokenString and checks that the
	// caller holds its session key by comparing authorizationToken.
	Authorize(ctx context.Context, tokenString, authorizationToken string) (models.Session, error)

	// CloseSession deletes the session.
	CloseSession(ctx context.Context, sessionID string) error

	// RemoveExpiredSessions deletes every session expired by now and returns
	// how many were removed.
	RemoveExpiredSessions(ctx context.Context) (int64, error)
}

// LockerService stores and serves the locker of the session's user.
type LockerService interface {
	SaveLocker(ctx context.Context, session models.Session, locker models.Locker) error
	GetLocker(ctx context.Context, session models.Session) (models.Locker, error)
}

// RecoveryService manages the recovery lockbox of the session's user.
type RecoveryService interface {
	SetupRecovery(ctx context.Context, session models.Session, lockbox models.RecoveryLockbox) error
	RemoveRecovery(ctx context.Context, session models.Session) error
	GetRecoveryLocker(ctx context.Context, session models.Session) (models.RecoveryLockerResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
