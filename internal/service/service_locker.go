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

// lockerService admits lockers written by a session and re-wraps stored
// lockers for the session reading them. It never sees an export key.
type lockerService struct {
	lockerRepository store.LockerRepository
	codec            crypto.LockerCodec
	validator        validators.Validator
	metrics          *metrics.Metrics
	now              func() time.Time
	logger           *logger.Logger
}

func NewLockerService(lockerRepository store.LockerRepository, codec crypto.LockerCodec, m *metrics.Metrics, logger *logger.Logger) LockerService {
	return &lockerService{
		lockerRepository: lockerRepository,
		codec:            codec,
		validator:        validators.NewLockerValidator(),
		metrics:          m,
		now:              time.Now,
		logger:           logger,
	}
}

// SaveLocker checks that the locker is tagged under the session key, opens
// its public additional data and stores the data blob with the canonical
// public additional data. An existing locker of the user is replaced.
//
// Returns crypto.ErrInvalidTag when the write is not admitted.
func (s *lockerService) SaveLocker(ctx context.Context, session models.Session, locker models.Locker) error {
	log := logger.FromContext(ctx).With().Str("user", session.UserIdentifier).Logger()

	if err := s.validator.Validate(ctx, locker); err != nil {
		s.metrics.LockerWrite(false)
		return err
	}

	sessionKey, err := crypto.DecodeKey(session.SessionKey)
	if err != nil {
		s.metrics.LockerWrite(false)
		return fmt.Errorf("session key: %w", err)
	}

	if !s.codec.VerifyWrite(locker, sessionKey) {
		s.metrics.LockerWrite(false)
		log.Warn().Msg("locker write rejected")
		return crypto.ErrInvalidTag
	}

	pad, err := s.codec.OpenPublicAdditionalData(locker, sessionKey)
	if err != nil {
		s.metrics.LockerWrite(false)
		return fmt.Errorf("open public additional data: %w", err)
	}

	canonical, err := crypto.Canonicalize(pad)
	if err != nil {
		s.metrics.LockerWrite(false)
		return fmt.Errorf("canonicalize public additional data: %w", err)
	}

	stored := models.StoredLocker{
		UserIdentifier:       session.UserIdentifier,
		DataCiphertext:       locker.Data.Ciphertext,
		DataNonce:            locker.Data.Nonce,
		PublicAdditionalData: string(canonical),
		UpdatedAt:            s.now().UTC(),
	}

	if err = s.lockerRepository.SaveLocker(ctx, stored); err != nil {
		log.Err(err).Msg("locker saving ended with error")
		return fmt.Errorf("locker saving ended with error: %w", err)
	}

	s.metrics.LockerWrite(true)
	log.Info().Msg("locker saved")
	return nil
}

// GetLocker loads the user's locker and re-wraps it under the session key.
// Returns store.ErrLockerNotFound when the user has no locker.
func (s *lockerService) GetLocker(ctx context.Context, session models.Session) (models.Locker, error) {
	locker, err := loadLocker(ctx, s.lockerRepository, s.codec, session)
	if err != nil {
		return models.Locker{}, err
	}

	s.metrics.LockerRead()
	return locker, nil
}

// loadLocker finds the stored locker of the session's user and re-wraps it
// under the session key.
func loadLocker(ctx context.Context, repo store.LockerRepository, codec crypto.LockerCodec, session models.Session) (models.Locker, error) {
	stored, err := repo.FindLocker(ctx, session.UserIdentifier)
	if err != nil {
		return models.Locker{}, fmt.Errorf("locker lookup failed: %w", err)
	}

	sessionKey, err := crypto.DecodeKey(session.SessionKey)
	if err != nil {
		return models.Locker{}, fmt.Errorf("session key: %w", err)
	}

	pad, err := crypto.ParseValue([]byte(stored.PublicAdditionalData))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user", session.UserIdentifier).Msg("stored public additional data is malformed")
		return models.Locker{}, fmt.Errorf("stored public additional data: %w", err)
	}

	locker, err := codec.CreateLockerForClient(stored.DataCiphertext, stored.DataNonce, pad, sessionKey)
	if err != nil {
		return models.Locker{}, fmt.Errorf("re-wrap locker: %w", err)
	}

	return locker, nil
}
