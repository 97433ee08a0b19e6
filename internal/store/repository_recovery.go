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

type recoveryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecoveryRepository constructs a [RecoveryRepository] backed by db.
func NewRecoveryRepository(db *DB, logger *logger.Logger) RecoveryRepository {
	logger.Debug().Msg("creating recovery repository")
	return &recoveryRepository{
		db:     db,
		logger: logger,
	}
}

// SaveRecoveryLockbox stores a new lockbox. A second lockbox for the same
// user is rejected with [ErrRecoveryLockboxExists].
func (r *recoveryRepository) SaveRecoveryLockbox(ctx context.Context, lockbox models.StoredRecoveryLockbox) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertLockboxQuery(lockbox)
	if err != nil {
		log.Err(err).Str("func", "*recoveryRepository.SaveRecoveryLockbox").Msg("error building query")
		return err
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*recoveryRepository.SaveRecoveryLockbox").Msg("error inserting lockbox")
		if r.db.isUniqueViolation(err) {
			return ErrRecoveryLockboxExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *recoveryRepository) FindRecoveryLockbox(ctx context.Context, userIdentifier string) (models.StoredRecoveryLockbox, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectLockboxQuery(userIdentifier)
	if err != nil {
		log.Err(err).Str("func", "*recoveryRepository.FindRecoveryLockbox").Msg("error building query")
		return models.StoredRecoveryLockbox{}, err
	}

	var lockbox models.StoredRecoveryLockbox
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&lockbox.UserIdentifier,
			&lockbox.ReceiverPublicKey,
			&lockbox.CreatorPublicKey,
			&lockbox.Ciphertext,
			&lockbox.Nonce,
			&lockbox.CreatedAt,
		)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.StoredRecoveryLockbox{}, ErrRecoveryLockboxNotFound
	case err != nil:
		log.Err(err).Str("func", "*recoveryRepository.FindRecoveryLockbox").Msg("error scanning lockbox")
		return models.StoredRecoveryLockbox{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return lockbox, nil
}

func (r *recoveryRepository) DeleteRecoveryLockbox(ctx context.Context, userIdentifier string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteLockboxQuery(userIdentifier)
	if err != nil {
		log.Err(err).Str("func", "*recoveryRepository.DeleteRecoveryLockbox").Msg("error building query")
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
		log.Err(err).Str("func", "*recoveryRepository.DeleteRecoveryLockbox").Msg("error deleting lockbox")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecoveryLockboxNotFound
	}

	return nil
}
