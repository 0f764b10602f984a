// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-gate/models"
)

// userColumns is the column list scanned by [scanUser], in scan order.
var userColumns = []string{"user_id", "email", "password_hash", "name", "created_at"}

// buildFindUserByEmailQuery builds the case-insensitive email lookup.
// Both sides are lowercased in SQL, so rows stored before normalization was
// enforced still match. At most one row is returned.
func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Expr("LOWER(email) = LOWER(?)", email)).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindUserByIDQuery builds the primary-key lookup.
func buildFindUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCreateUserQuery builds the INSERT for a new account. The RETURNING
// clause hands back the server-assigned columns.
func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(models.User{}.TableName()).
		Columns("email", "password_hash", "name").
		Values(user.Email, user.PasswordHash, user.Name).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.Name, (*timestamp)(&user.CreatedAt))
	return user, err
}

// sqliteTimestampLayouts are the text forms SQLite uses for CURRENT_TIMESTAMP
// and for time values written by go-sqlite3.
var sqliteTimestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
}

// timestamp scans a time column. Postgres delivers time.Time; SQLite may
// deliver text when the column type is lost (e.g. in RETURNING).
type timestamp time.Time

// Scan implements sql.Scanner.
func (ts *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts = timestamp(v)
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	case nil:
		*ts = timestamp(time.Time{})
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (ts *timestamp) parse(value string) error {
	for _, layout := range sqliteTimestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			*ts = timestamp(t)
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", value)
}
