// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the go-auth-gate HTTP API.
//
// [ServerAdapter] hides the transport from the command-line client. Failed
// requests are mapped to the sentinel errors in errors.go so callers can
// match them with [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// ServerAdapter talks to the authentication server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if there is none.
	Token() string

	// Register creates an account. On success the issued token is stored.
	Register(ctx context.Context, registration models.Registration) (models.AuthResponse, error)

	// Login authenticates with email and password. On success the issued
	// token is stored.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Profile returns the account that owns the stored token.
	Profile(ctx context.Context) (models.PublicUser, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
