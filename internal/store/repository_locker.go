// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/models"
)

// lockerRepository is the SQL-backed implementation of [LockerRepository].
// Every user owns at most one row in the "lockers" table.
type lockerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLockerRepository constructs a [LockerRepository] backed by db.
func NewLockerRepository(db *DB, logger *logger.Logger) LockerRepository {
	logger.Debug().Msg("creating locker repository")
	return &lockerRepository{
		db:     db,
		logger: logger,
	}
}

// SaveLocker inserts the locker or replaces the one already stored for the
// user.
func (r *lockerRepository) SaveLocker(ctx context.Context, locker models.StoredLocker) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.upsertLockerQuery(locker)
	if err != nil {
		log.Err(err).Str("func", "*lockerRepository.SaveLocker").Msg("error building query")
		return err
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*lockerRepository.SaveLocker").Msg("error saving locker")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrLockerNotSaved
	}

	return nil
}

func (r *lockerRepository) FindLocker(ctx context.Context, userIdentifier string) (models.StoredLocker, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectLockerQuery(userIdentifier)
	if err != nil {
		log.Err(err).Str("func", "*lockerRepository.FindLocker").Msg("error building query")
		return models.StoredLocker{}, err
	}

	var locker models.StoredLocker
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&locker.UserIdentifier,
			&locker.DataCiphertext,
			&locker.DataNonce,
			&locker.PublicAdditionalData,
			&locker.UpdatedAt,
		)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.StoredLocker{}, ErrLockerNotFound
	case err != nil:
		log.Err(err).Str("func", "*lockerRepository.FindLocker").Msg("error scanning locker")
		return models.StoredLocker{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return locker, nil
}
