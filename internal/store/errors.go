// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned when no session matches the given id.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrLockerNotFound is returned when the user has never stored a locker.
	ErrLockerNotFound = errors.New("locker was not found")

	// ErrLockerNotSaved is returned when an upsert completes without error
	// but affects no rows.
	ErrLockerNotSaved = errors.New("locker was not saved")

	// ErrRecoveryLockboxNotFound is returned when the user has no recovery
	// lockbox.
	ErrRecoveryLockboxNotFound = errors.New("recovery lockbox was not found")

	// ErrRecoveryLockboxExists is returned when a lockbox is already stored
	// for the user. It has to be deleted before a new one is set up.
	ErrRecoveryLockboxExists = errors.New("recovery lockbox already exists")

	// ErrUnsupportedDSN is returned when the DSN selects no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrNoConnection is returned by Ping on storages without a database.
	ErrNoConnection = errors.New("no database connection")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
