// Package migrations embeds the SQL schema of the user store and applies it
// with goose. Each dialect has its own directory of migration files.
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

// ErrUnknownDialect is returned by [Migrate] for an unsupported dialect name.
var ErrUnknownDialect = errors.New("unknown migration dialect")

// dialects maps store dialect names to the goose dialect and the directory
// holding that dialect's migrations.
var dialects = map[string]struct {
	goose goose.Dialect
	dir   string
}{
	"postgres": {goose: goose.DialectPostgres, dir: "postgres"},
	"sqlite3":  {goose: goose.DialectSQLite3, dir: "sqlite"},
}

// Migrate applies all pending migrations for dialect ("postgres" or
// "sqlite3") to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	d, ok := dialects[dialect]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnknownDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(d.goose)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
