// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-locker/internal/crypto"
	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/internal/metrics"
	"github.com/MKhiriev/go-locker/internal/store"
	"github.com/MKhiriev/go-locker/internal/validators"
	"github.com/MKhiriev/go-locker/models"
)

// recoveryService stores recovery lockboxes and serves them to recovery
// sessions together with the re-wrapped locker.
type recoveryService struct {
	recoveryRepository store.RecoveryRepository
	lockerRepository   store.LockerRepository
	codec              crypto.LockerCodec
	validator          validators.Validator
	metrics            *metrics.Metrics
	now                func() time.Time
	logger             *logger.Logger
}

func NewRecoveryService(recoveryRepository store.RecoveryRepository, lockerRepository store.LockerRepository, codec crypto.LockerCodec, m *metrics.Metrics, logger *logger.Logger) RecoveryService {
	return &recoveryService{
		recoveryRepository: recoveryRepository,
		lockerRepository:   lockerRepository,
		codec:              codec,
		validator:          validators.NewLockerValidator(),
		metrics:            m,
		now:                time.Now,
		logger:             logger,
	}
}

// SetupRecovery stores the lockbox for the user of a password session.
// Returns store.ErrRecoveryLockboxExists if one is already stored.
func (s *recoveryService) SetupRecovery(ctx context.Context, session models.Session, lockbox models.RecoveryLockbox) error {
	if err := requireKind(session, models.PasswordSession); err != nil {
		return err
	}

	if err := s.validator.Validate(ctx, lockbox); err != nil {
		return err
	}

	stored := models.StoredRecoveryLockbox{
		UserIdentifier:  session.UserIdentifier,
		RecoveryLockbox: lockbox,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.recoveryRepository.SaveRecoveryLockbox(ctx, stored); err != nil {
		logger.FromContext(ctx).Err(err).Str("user", session.UserIdentifier).Msg("recovery lockbox saving ended with error")
		return fmt.Errorf("recovery lockbox saving ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user", session.UserIdentifier).Msg("recovery set up")
	return nil
}

// RemoveRecovery revokes the recovery lockbox of the user.
func (s *recoveryService) RemoveRecovery(ctx context.Context, session models.Session) error {
	if err := requireKind(session, models.PasswordSession); err != nil {
		return err
	}

	if err := s.recoveryRepository.DeleteRecoveryLockbox(ctx, session.UserIdentifier); err != nil {
		return fmt.Errorf("recovery lockbox deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user", session.UserIdentifier).Msg("recovery removed")
	return nil
}

// GetRecoveryLocker returns the lockbox and the locker re-wrapped under the
// recovery session key. Either one missing yields its not-found error.
func (s *recoveryService) GetRecoveryLocker(ctx context.Context, session models.Session) (models.RecoveryLockerResponse, error) {
	if err := requireKind(session, models.RecoverySession); err != nil {
		return models.RecoveryLockerResponse{}, err
	}

	stored, err := s.recoveryRepository.FindRecoveryLockbox(ctx, session.UserIdentifier)
	if err != nil {
		s.metrics.RecoveryRead(false)
		return models.RecoveryLockerResponse{}, fmt.Errorf("recovery lockbox lookup failed: %w", err)
	}

	locker, err := loadLocker(ctx, s.lockerRepository, s.codec, session)
	if err != nil {
		s.metrics.RecoveryRead(false)
		return models.RecoveryLockerResponse{}, err
	}

	s.metrics.RecoveryRead(true)
	return models.RecoveryLockerResponse{
		RecoveryLockbox: stored.RecoveryLockbox,
		Locker:          locker,
	}, nil
}

func requireKind(session models.Session, kind models.SessionKind) error {
	if session.Kind != kind {
		return fmt.Errorf("%w: %s session required", ErrWrongSessionKind, kind)
	}
	return nil
}
