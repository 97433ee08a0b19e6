// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-locker/internal/config"
	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/internal/metrics"
	"github.com/MKhiriev/go-locker/internal/service"
	"github.com/MKhiriev/go-locker/internal/utils"
)

// maxBodySize caps every request body.
const maxBodySize = 8 << 20

type Handler struct {
	services *service.Services

	gatewayHasher   *utils.Hasher
	recoveryLimiter *utils.KeyedLimiter
	metrics         *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		gatewayHasher:   utils.NewHasher(cfg.App.GatewayHashKey),
		recoveryLimiter: utils.NewKeyedLimiter(cfg.Limits.RecoveryRPS, cfg.Limits.RecoveryBurst, cfg.Limits.LimiterIdleTTL),
		metrics:         m,
		logger:          logger,
	}
}
