// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-locker/internal/config"
	"github.com/MKhiriev/go-locker/internal/crypto"
	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/internal/metrics"
	"github.com/MKhiriev/go-locker/internal/store"
	"github.com/MKhiriev/go-locker/internal/utils"
	"github.com/MKhiriev/go-locker/internal/validators"
	"github.com/MKhiriev/go-locker/models"
)

// idGenerator produces session identifiers.
type idGenerator interface {
	Generate() string
}

// sessionService is the concrete implementation of SessionService.
// Sessions live in a SessionRepository; the JWT handed to the client only
// carries the session id, the session key never leaves the server.
type sessionService struct {
	sessionRepository store.SessionRepository
	validator         validators.Validator
	ids               idGenerator
	metrics           *metrics.Metrics

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration is both the JWT lifetime and the session lifetime.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewSessionService constructs a SessionService populated with the token
// parameters from cfg.
func NewSessionService(sessionRepository store.SessionRepository, cfg config.App, m *metrics.Metrics, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		validator:         validators.NewLockerValidator(),
		ids:               utils.NewUUIDGenerator(),
		metrics:           m,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		now:               time.Now,
		logger:            logger,
	}
}

// OpenSession validates the gateway request, persists a session expiring
// after the token duration and signs a JWT whose subject is the session id.
//
// Returns a validators.ErrValidation error for a malformed request, a
// wrapped storage error, or ErrTokenCreationFailed.
func (s *sessionService) OpenSession(ctx context.Context, request models.SessionRequest) (models.Session, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("user", request.UserIdentifier).Msg("invalid session request")
		return models.Session{}, models.Token{}, err
	}

	now := s.now().UTC()
	session := models.Session{
		SessionID:      s.ids.Generate(),
		UserIdentifier: request.UserIdentifier,
		SessionKey:     request.SessionKey,
		Kind:           request.Kind,
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.tokenDuration),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("user", session.UserIdentifier).Msg("session creation ended with error")
		return models.Session{}, models.Token{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, session.SessionID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("session_id", session.SessionID).Msg("token creation failed")
		return models.Session{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	s.metrics.SessionOpened(session.Kind)
	log.Info().
		Str("session_id", session.SessionID).
		Str("kind", string(session.Kind)).
		Msg("session opened")

	return session, token, nil
}

// Authorize verifies the JWT, loads its session and compares the
// authorization token derived from the stored session key with the one the
// client presented.
//
// Any JWT failure is normalised to ErrTokenIsExpiredOrInvalid.
func (s *sessionService) Authorize(ctx context.Context, tokenString, authorizationToken string) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := s.sessionRepository.FindSession(ctx, token.SessionID)
	if err != nil {
		log.Err(err).Str("session_id", token.SessionID).Msg("session lookup failed")
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.Expired(s.now()) {
		return models.Session{}, ErrSessionExpired
	}

	sessionKey, err := crypto.DecodeKey(session.SessionKey)
	if err != nil {
		log.Err(err).Str("session_id", session.SessionID).Msg("stored session key is malformed")
		return models.Session{}, fmt.Errorf("stored session key is malformed: %w", err)
	}

	expected, err := crypto.AuthorizationToken(sessionKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("authorization token derivation failed: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(expected), []byte(authorizationToken)) != 1 {
		log.Warn().Str("session_id", session.SessionID).Msg("authorization token mismatch")
		return models.Session{}, ErrInvalidAuthorizationToken
	}

	return session, nil
}

func (s *sessionService) CloseSession(ctx context.Context, sessionID string) error {
	if err := s.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("session deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("session_id", sessionID).Msg("session closed")
	return nil
}

func (s *sessionService) RemoveExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := s.sessionRepository.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("expired sessions deletion failed: %w", err)
	}

	s.metrics.SessionsExpired(removed)
	return removed, nil
}
