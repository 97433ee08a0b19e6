// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-locker/internal/config"
	"github.com/MKhiriev/go-locker/internal/logger"
)

// Storages bundles the repositories used by the service layer together with
// the connection they share.
type Storages struct {
	SessionRepository  SessionRepository
	LockerRepository   LockerRepository
	RecoveryRepository RecoveryRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DB.DSN, applies the
// migrations and builds the repositories. A "postgres://" or
// "postgresql://" DSN selects PostgreSQL, any other non-empty DSN is
// treated as a SQLite database.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return newStoragesFromDB(db, log), nil
}

// Connect opens a connection for the dialect implied by the DSN.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch DialectFromDSN(cfg.DSN) {
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DSN)
	}
}

// DialectFromDSN picks the driver for dsn. An empty DSN yields "".
func DialectFromDSN(dsn string) Dialect {
	switch {
	case dsn == "":
		return ""
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres
	default:
		return DialectSQLite
	}
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		SessionRepository:  NewSessionRepository(db, log),
		LockerRepository:   NewLockerRepository(db, log),
		RecoveryRepository: NewRecoveryRepository(db, log),
		db:                 db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return ErrNoConnection
	}
	return s.db.PingContext(ctx)
}
