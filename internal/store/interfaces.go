// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-locker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists server sessions opened by the login gateway.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, sessionID string) (models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	// DeleteExpiredSessions removes every session that expired before now
	// and returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// LockerRepository persists one locker per user with last-write-wins
// semantics.
type LockerRepository interface {
	SaveLocker(ctx context.Context, locker models.StoredLocker) error
	FindLocker(ctx context.Context, userIdentifier string) (models.StoredLocker, error)
}

// RecoveryRepository persists at most one recovery lockbox per user.
// A lockbox is never updated: it is created once and deleted on revocation.
type RecoveryRepository interface {
	SaveRecoveryLockbox(ctx context.Context, lockbox models.StoredRecoveryLockbox) error
	FindRecoveryLockbox(ctx context.Context, userIdentifier string) (models.StoredRecoveryLockbox, error)
	DeleteRecoveryLockbox(ctx context.Context, userIdentifier string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
