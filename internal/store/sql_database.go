// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/migrations"
)

// Dialect identifies the SQL database engine behind a [DB].
type Dialect string

const (
	// DialectPostgres is served by the pgx stdlib driver.
	DialectPostgres Dialect = "postgres"

	// DialectSQLite is served by the go-sqlite3 driver.
	DialectSQLite Dialect = "sqlite3"
)

// DB is the shared connection pool of the user store. It is created once by
// [NewDB] and injected into every repository.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the connection pool described by cfg, sizes it, and pings the
// database once.
//
// DSN selection:
//   - "postgres://", "postgresql://" → pgx (see [NewConnectPostgres])
//   - "sqlite://", "file:"           → go-sqlite3 (see [NewConnectSQLite])
//
// Any other DSN is rejected with [ErrUnsupportedDSN].
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch dialect, dsn := dialectFromDSN(cfg.DSN); dialect {
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case DialectSQLite:
		cfg.DSN = dsn
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewDB").Msg("unsupported database DSN")
		return nil, ErrUnsupportedDSN
	}
}

// dialectFromDSN picks the dialect for dsn and returns the DSN in the form
// the matching driver expects.
func dialectFromDSN(dsn string) (Dialect, string) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "file:"):
		return DialectSQLite, dsn
	default:
		return "", dsn
	}
}

// openPool opens a database/sql pool for driverName, applies the pool limits
// from cfg, and verifies the connection with a ping.
func openPool(ctx context.Context, driverName string, cfg config.DB, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "openPool").Str("driver", driverName).Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "openPool").Str("driver", driverName).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	return conn, nil
}

// Dialect reports the engine behind db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations for the active dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Ping verifies that the database is still reachable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("error pinging database: %w", err)
	}
	return nil
}

// Classify reports whether err, returned by this database, is transient.
func (db *DB) Classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// builder returns a squirrel statement builder using the placeholder style
// of the active dialect ($1 for Postgres, ? for SQLite).
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
