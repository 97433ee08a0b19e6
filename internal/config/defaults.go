// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress            = "localhost:8080"
	DefaultGRPCAddress            = "localhost:9090"
	DefaultAdapterAddress         = "http://localhost:8080"
	DefaultTokenIssuer            = "go-locker"
	DefaultTokenDuration          = time.Hour
	DefaultRequestTimeout         = 30 * time.Second
	DefaultShutdownTimeout        = 10 * time.Second
	DefaultAdapterRequestTimeout  = 10 * time.Second
	DefaultRecoveryRPS            = 0.2
	DefaultRecoveryBurst          = 3
	DefaultLimiterIdleTTL         = 10 * time.Minute
	DefaultSessionCleanupInterval = 5 * time.Minute
	DefaultHealthCheckInterval    = 15 * time.Second
)

// defaults is merged last, so it only fills fields no other source set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			GRPCAddress:     DefaultGRPCAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
		Limits: Limits{
			RecoveryRPS:    DefaultRecoveryRPS,
			RecoveryBurst:  DefaultRecoveryBurst,
			LimiterIdleTTL: DefaultLimiterIdleTTL,
		},
		Workers: Workers{
			SessionCleanupInterval: DefaultSessionCleanupInterval,
			HealthCheckInterval:    DefaultHealthCheckInterval,
		},
	}
}
