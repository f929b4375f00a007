// Package migrations embeds the SQL schema of the application and applies it
// with goose. Every supported database dialect has its own directory of
// migrations sharing the same version numbers.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Supported dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

var errNilDB = errors.New("migration error: db is nil")

// goose dialect name and migration directory per supported dialect
var dialects = map[string]struct {
	gooseDialect string
	dir          string
}{
	DialectPostgres: {gooseDialect: "pgx", dir: "postgres"},
	DialectSQLite:   {gooseDialect: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations of the given dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errNilDB
	}

	d, ok := dialects[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(d.gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
