// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// locker server and the locker CLI. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file and
// finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, gateway and version settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts for the HTTP API and the
	// gRPC health endpoint.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the CLI uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Limits holds request rate limits.
	Limits Limits `envPrefix:"LIMITS_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Credentials holds the session material the CLI works with. The server
	// ignores it.
	Credentials Credentials `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional arguments left after flag parsing. The CLI
	// reads its command from here.
	Args []string
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// lifecycle, the login gateway trust and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a session and of its JWT.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// GatewayHashKey is the HMAC key the login gateway signs session
	// requests with (HashSHA256 header).
	// Env: APP_GATEWAY_HASH_KEY
	GatewayHashKey string `env:"GATEWAY_HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP API in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health service.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: "postgres://" and "postgresql://" DSNs open
	// PostgreSQL through pgx, anything else is a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the PostgreSQL pool. Zero keeps the default.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// RetryAttempts is how many times a retryable statement is tried.
	// Env: STORAGE_DB_RETRY_ATTEMPTS
	RetryAttempts int `env:"RETRY_ATTEMPTS"`
}

// Adapter holds the outbound settings of the CLI.
type Adapter struct {
	// HTTPAddress is the base URL of the locker server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Limits holds per-user request rate limits.
type Limits struct {
	// RecoveryRPS is the sustained rate of recovery locker reads per user.
	// Env: LIMITS_RECOVERY_RPS
	RecoveryRPS float64 `env:"RECOVERY_RPS"`

	// RecoveryBurst is the burst size for recovery locker reads.
	// Env: LIMITS_RECOVERY_BURST
	RecoveryBurst int `env:"RECOVERY_BURST"`

	// LimiterIdleTTL is how long an idle per-user limiter is kept.
	// Env: LIMITS_IDLE_TTL
	LimiterIdleTTL time.Duration `env:"IDLE_TTL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionCleanupInterval is how often expired sessions are purged.
	// Env: WORKERS_SESSION_CLEANUP_INTERVAL
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL"`

	// HealthCheckInterval is how often the storage is probed to refresh the
	// gRPC health status.
	// Env: WORKERS_HEALTH_CHECK_INTERVAL
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`
}

// Credentials is the session material produced by a PAKE login. Keys are
// base64 (URL-safe, no padding).
type Credentials struct {
	// Token is the JWT returned by the server when the session was opened.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`

	// SessionKey is the PAKE session key.
	// Env: CLIENT_SESSION_KEY
	SessionKey string `env:"SESSION_KEY"`

	// ExportKey is the PAKE export key of the password login.
	// Env: CLIENT_EXPORT_KEY
	ExportKey string `env:"EXPORT_KEY"`

	// RecoveryExportKey is the export key of the recovery login.
	// Env: CLIENT_RECOVERY_EXPORT_KEY
	RecoveryExportKey string `env:"RECOVERY_EXPORT_KEY"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (the first
// source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
