// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")
	defer db.Close()

	// no expectations are registered, so the first statement goose issues fails
	err = Migrate(db, "postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")
	assert.ErrorIs(t, err, ErrUnknownDialect)
}

func TestEmbeddedMigrations(t *testing.T) {
	for name, d := range dialects {
		t.Run(name, func(t *testing.T) {
			files, err := fs.Glob(embedMigrations, d.dir+"/*.sql")
			require.NoError(t, err)
			require.NotEmpty(t, files)

			body, err := fs.ReadFile(embedMigrations, files[0])
			require.NoError(t, err)

			sqlText := strings.ToLower(string(body))
			assert.Contains(t, sqlText, "-- +goose up")
			assert.Contains(t, sqlText, "-- +goose down")
			assert.Contains(t, sqlText, "create table if not exists users")
			assert.Contains(t, sqlText, "password_hash")
			assert.Contains(t, sqlText, "on users (lower(email))")
		})
	}
}
