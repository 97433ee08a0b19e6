// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-locker/internal/config"
	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/internal/utils"
	"github.com/MKhiriev/go-locker/models"
)

const (
	lockerPath         = "/api/locker"
	recoveryPath       = "/api/recovery"
	recoveryLockerPath = "/api/recovery/locker"
	sessionPath        = "/api/session"
	versionPath        = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu                 sync.RWMutex
	token              string
	authorizationToken string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetCredentials implements [ServerAdapter].
func (h *httpServerAdapter) SetCredentials(token, authorizationToken string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
	h.authorizationToken = strings.TrimSpace(authorizationToken)
}

// authorized returns a request carrying the session credentials.
func (h *httpServerAdapter) authorized(ctx context.Context) (*resty.Request, error) {
	h.mu.RLock()
	token, authorizationToken := h.token, h.authorizationToken
	h.mu.RUnlock()

	if token == "" || authorizationToken == "" {
		return nil, ErrNoCredentials
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader(utils.AuthorizationTokenHeader, authorizationToken), nil
}

// PutLocker implements [ServerAdapter]. It POSTs the locker to
// POST /api/locker.
func (h *httpServerAdapter) PutLocker(ctx context.Context, locker models.Locker) error {
	req, err := h.authorized(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(locker).
		Post(lockerPath)
	if err != nil {
		return fmt.Errorf("put locker request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetLocker implements [ServerAdapter]. It reads GET /api/locker.
func (h *httpServerAdapter) GetLocker(ctx context.Context) (models.Locker, error) {
	req, err := h.authorized(ctx)
	if err != nil {
		return models.Locker{}, err
	}

	var locker models.Locker
	resp, err := req.SetResult(&locker).Get(lockerPath)
	if err != nil {
		return models.Locker{}, fmt.Errorf("get locker request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Locker{}, err
	}

	return locker, nil
}

// PutRecoveryLockbox implements [ServerAdapter]. It POSTs the lockbox to
// POST /api/recovery.
func (h *httpServerAdapter) PutRecoveryLockbox(ctx context.Context, lockbox models.RecoveryLockbox) error {
	req, err := h.authorized(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(lockbox).
		Post(recoveryPath)
	if err != nil {
		return fmt.Errorf("put recovery lockbox request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteRecoveryLockbox implements [ServerAdapter]. It sends
// DELETE /api/recovery.
func (h *httpServerAdapter) DeleteRecoveryLockbox(ctx context.Context) error {
	req, err := h.authorized(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete(recoveryPath)
	if err != nil {
		return fmt.Errorf("delete recovery lockbox request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetRecoveryLocker implements [ServerAdapter]. It reads
// GET /api/recovery/locker.
func (h *httpServerAdapter) GetRecoveryLocker(ctx context.Context) (models.RecoveryLockerResponse, error) {
	req, err := h.authorized(ctx)
	if err != nil {
		return models.RecoveryLockerResponse{}, err
	}

	var result models.RecoveryLockerResponse
	resp, err := req.SetResult(&result).Get(recoveryLockerPath)
	if err != nil {
		return models.RecoveryLockerResponse{}, fmt.Errorf("get recovery locker request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RecoveryLockerResponse{}, err
	}

	return result, nil
}

// Logout implements [ServerAdapter]. It sends DELETE /api/session and
// forgets the credentials on success.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	req, err := h.authorized(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete(sessionPath)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetCredentials("", "")
	return nil
}

// Version implements [ServerAdapter]. It reads GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("version request: unexpected status %d", resp.StatusCode())
	}

	return strings.TrimSpace(resp.String()), nil
}
