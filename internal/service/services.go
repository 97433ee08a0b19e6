// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-locker/internal/config"
	"github.com/MKhiriev/go-locker/internal/crypto"
	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/internal/metrics"
	"github.com/MKhiriev/go-locker/internal/store"
)

type Services struct {
	SessionService  SessionService
	LockerService   LockerService
	RecoveryService RecoveryService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, codec crypto.LockerCodec, cfg config.App, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SessionService:  NewSessionService(storages.SessionRepository, cfg, m, logger),
		LockerService:   NewLockerService(storages.LockerRepository, codec, m, logger),
		RecoveryService: NewRecoveryService(storages.RecoveryRepository, storages.LockerRepository, codec, m, logger),
		AppInfoService:  appInfo,
	}, nil
}
