// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/activity-tracker/internal/config"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/migrations"
)

// DB wraps a *sql.DB together with everything a repository needs to talk to
// one concrete dialect: a squirrel statement builder with the right
// placeholder format and an error classifier for driver errors.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	clock              func() time.Time
}

// newDB wires conn for dialect. It does not ping or migrate.
func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
		clock:   time.Now,
	}

	switch dialect {
	case migrations.DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the migration dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// now returns the current time as stored by every dialect: UTC, microsecond
// precision.
func (db *DB) now() time.Time {
	return db.clock().UTC().Truncate(time.Microsecond)
}

// uniqueViolation reports whether err is a unique constraint violation and,
// if so, which constraint (or column list, for SQLite) was hit.
func (db *DB) uniqueViolation(err error) (string, bool) {
	if db.errorClassificator == nil {
		return "", false
	}
	return db.errorClassificator.UniqueViolation(err)
}

// runOnce runs fn a single time. A failure is never retried; transient
// driver errors are only flagged in the log so the caller can decide.
func (db *DB) runOnce(ctx context.Context, funcName string, fn func() error) error {
	err := fn()
	if err != nil && db.transient(err) {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", funcName).
			Msg("transient database error, not retried")
	}
	return err
}

// transient reports whether the dialect classifies err as retryable.
func (db *DB) transient(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}

// isNoRows reports whether err (possibly wrapped) is sql.ErrNoRows.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// containsFold is a small helper for matching constraint names.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
