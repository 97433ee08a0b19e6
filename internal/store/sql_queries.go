// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-locker/models"
)

const (
	sessionsTable          = "sessions"
	lockersTable           = "lockers"
	recoveryLockboxesTable = "recovery_lockboxes"
)

var (
	sessionColumns = []string{"session_id", "user_identifier", "session_key", "kind", "created_at", "expires_at"}
	lockerColumns  = []string{"user_identifier", "data_ciphertext", "data_nonce", "public_additional_data", "updated_at"}
	lockboxColumns = []string{"user_identifier", "receiver_public_key", "creator_public_key", "ciphertext", "nonce", "created_at"}
)

// upsertLockerSuffix works for PostgreSQL and SQLite >= 3.24.
const upsertLockerSuffix = `ON CONFLICT (user_identifier) DO UPDATE SET
	data_ciphertext = EXCLUDED.data_ciphertext,
	data_nonce = EXCLUDED.data_nonce,
	public_additional_data = EXCLUDED.public_additional_data,
	updated_at = EXCLUDED.updated_at`

func (db *DB) insertSessionQuery(s models.Session) (string, []any, error) {
	return wrapBuild(db.builder.
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(s.SessionID, s.UserIdentifier, s.SessionKey, string(s.Kind), s.CreatedAt.UTC(), s.ExpiresAt.UTC()).
		ToSql())
}

func (db *DB) selectSessionQuery(sessionID string) (string, []any, error) {
	return wrapBuild(db.builder.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql())
}

func (db *DB) deleteSessionQuery(sessionID string) (string, []any, error) {
	return wrapBuild(db.builder.
		Delete(sessionsTable).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql())
}

func (db *DB) deleteExpiredSessionsQuery(now time.Time) (string, []any, error) {
	return wrapBuild(db.builder.
		Delete(sessionsTable).
		Where(sq.LtOrEq{"expires_at": now.UTC()}).
		ToSql())
}

func (db *DB) upsertLockerQuery(l models.StoredLocker) (string, []any, error) {
	return wrapBuild(db.builder.
		Insert(lockersTable).
		Columns(lockerColumns...).
		Values(l.UserIdentifier, l.DataCiphertext, l.DataNonce, l.PublicAdditionalData, l.UpdatedAt.UTC()).
		Suffix(upsertLockerSuffix).
		ToSql())
}

func (db *DB) selectLockerQuery(userIdentifier string) (string, []any, error) {
	return wrapBuild(db.builder.
		Select(lockerColumns...).
		From(lockersTable).
		Where(sq.Eq{"user_identifier": userIdentifier}).
		ToSql())
}

func (db *DB) insertLockboxQuery(l models.StoredRecoveryLockbox) (string, []any, error) {
	return wrapBuild(db.builder.
		Insert(recoveryLockboxesTable).
		Columns(lockboxColumns...).
		Values(l.UserIdentifier, l.ReceiverPublicKey, l.CreatorPublicKey, l.Ciphertext, l.Nonce, l.CreatedAt.UTC()).
		ToSql())
}

func (db *DB) selectLockboxQuery(userIdentifier string) (string, []any, error) {
	return wrapBuild(db.builder.
		Select(lockboxColumns...).
		From(recoveryLockboxesTable).
		Where(sq.Eq{"user_identifier": userIdentifier}).
		ToSql())
}

func (db *DB) deleteLockboxQuery(userIdentifier string) (string, []any, error) {
	return wrapBuild(db.builder.
		Delete(recoveryLockboxesTable).
		Where(sq.Eq{"user_identifier": userIdentifier}).
		ToSql())
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
