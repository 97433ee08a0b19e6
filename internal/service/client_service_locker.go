// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-locker/internal/adapter"
	"github.com/MKhiriev/go-locker/internal/crypto"
	"github.com/MKhiriev/go-locker/internal/logger"
)

type lockerClientService struct {
	adapter adapter.ServerAdapter
	codec   crypto.LockerCodec

	mu         sync.RWMutex
	sessionKey []byte

	logger *logger.Logger
}

func NewLockerClientService(serverAdapter adapter.ServerAdapter, codec crypto.LockerCodec, logger *logger.Logger) LockerClientService {
	return &lockerClientService{adapter: serverAdapter, codec: codec, logger: logger}
}

func (c *lockerClientService) Authenticate(token, sessionKey string) error {
	key, err := crypto.DecodeKey(sessionKey)
	if err != nil {
		return fmt.Errorf("session key: %w", err)
	}

	authorizationToken, err := crypto.AuthorizationToken(key)
	if err != nil {
		return fmt.Errorf("derive authorization token: %w", err)
	}

	c.mu.Lock()
	c.sessionKey = key
	c.mu.Unlock()

	c.adapter.SetCredentials(token, authorizationToken)
	return nil
}

func (c *lockerClientService) currentSessionKey() ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.sessionKey == nil {
		return nil, ErrNotAuthorized
	}
	return c.sessionKey, nil
}

func (c *lockerClientService) SaveLocker(ctx context.Context, exportKey string, data any, publicAdditionalData crypto.Value) error {
	sessionKey, err := c.currentSessionKey()
	if err != nil {
		return err
	}

	seed, err := crypto.DecodeSeed(exportKey)
	if err != nil {
		return fmt.Errorf("export key: %w", err)
	}

	locker, err := c.codec.EncryptLocker(data, publicAdditionalData, seed, sessionKey)
	if err != nil {
		return fmt.Errorf("encrypt locker: %w", err)
	}

	if err = c.adapter.PutLocker(ctx, locker); err != nil {
		c.logger.Err(err).Msg("locker upload failed")
		return mapAdapterError(err)
	}

	return nil
}

func (c *lockerClientService) LoadLocker(ctx context.Context, exportKey string, format crypto.OutputFormat) (crypto.Plaintext, error) {
	sessionKey, err := c.currentSessionKey()
	if err != nil {
		return crypto.Plaintext{}, err
	}

	seed, err := crypto.DecodeSeed(exportKey)
	if err != nil {
		return crypto.Plaintext{}, fmt.Errorf("export key: %w", err)
	}

	locker, err := c.adapter.GetLocker(ctx)
	if err != nil {
		return crypto.Plaintext{}, mapAdapterError(err)
	}

	plaintext, err := c.codec.DecryptLocker(locker, seed, sessionKey, format)
	if err != nil {
		return crypto.Plaintext{}, fmt.Errorf("decrypt locker: %w", err)
	}

	return plaintext, nil
}

func (c *lockerClientService) SetupRecovery(ctx context.Context, exportKey, recoveryExportKey string) error {
	if _, err := c.currentSessionKey(); err != nil {
		return err
	}

	seed, err := crypto.DecodeSeed(exportKey)
	if err != nil {
		return fmt.Errorf("export key: %w", err)
	}
	recoverySeed, err := crypto.DecodeSeed(recoveryExportKey)
	if err != nil {
		return fmt.Errorf("recovery export key: %w", err)
	}

	lockbox, err := c.codec.CreateRecoveryLockbox(seed, recoverySeed)
	if err != nil {
		return fmt.Errorf("create recovery lockbox: %w", err)
	}

	if err = c.adapter.PutRecoveryLockbox(ctx, lockbox); err != nil {
		return mapAdapterError(err)
	}

	return nil
}

func (c *lockerClientService) RemoveRecovery(ctx context.Context) error {
	if _, err := c.currentSessionKey(); err != nil {
		return err
	}

	return mapAdapterError(c.adapter.DeleteRecoveryLockbox(ctx))
}

func (c *lockerClientService) RecoverLocker(ctx context.Context, recoveryExportKey string, format crypto.OutputFormat) (crypto.Plaintext, error) {
	sessionKey, err := c.currentSessionKey()
	if err != nil {
		return crypto.Plaintext{}, err
	}

	recoverySeed, err := crypto.DecodeSeed(recoveryExportKey)
	if err != nil {
		return crypto.Plaintext{}, fmt.Errorf("recovery export key: %w", err)
	}

	resp, err := c.adapter.GetRecoveryLocker(ctx)
	if err != nil {
		return crypto.Plaintext{}, mapAdapterError(err)
	}

	plaintext, err := c.codec.DecryptLockerFromRecoveryLockbox(resp.Locker, recoverySeed, sessionKey, resp.RecoveryLockbox, format)
	if err != nil {
		return crypto.Plaintext{}, fmt.Errorf("decrypt recovered locker: %w", err)
	}

	return plaintext, nil
}

func (c *lockerClientService) Logout(ctx context.Context) error {
	if err := c.adapter.Logout(ctx); err != nil {
		return mapAdapterError(err)
	}

	c.mu.Lock()
	c.sessionKey = nil
	c.mu.Unlock()
	return nil
}

func (c *lockerClientService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}
