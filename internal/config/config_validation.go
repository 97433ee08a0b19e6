// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the merged [StructuredConfig] carries everything the
// server needs. All failing groups are reported at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs))
	}
	if cfg.App.GatewayHashKey == "" {
		errs = append(errs, fmt.Errorf("%w: gateway hash key is required", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Limits.RecoveryRPS <= 0 || cfg.Limits.RecoveryBurst <= 0 {
		errs = append(errs, ErrInvalidLimitsConfigs)
	}

	if cfg.Workers.SessionCleanupInterval <= 0 || cfg.Workers.HealthCheckInterval <= 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Credentials.Token == "" || cfg.Credentials.SessionKey == "" {
		return ErrInvalidCredentials
	}

	return nil
}
