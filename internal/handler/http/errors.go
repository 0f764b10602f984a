// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidGzipBody is reported when a gzip-encoded body is corrupt.
	ErrInvalidGzipBody = errors.New("invalid gzip data")
)

// Machine-readable reasons carried by every error response.
const (
	reasonInvalidRequest     = "invalid_request"
	reasonInvalidCredentials = "invalid_credentials"
	reasonInvalidToken       = "invalid_token"
	reasonEmailTaken         = "email_taken"
	reasonNotFound           = "not_found"
	reasonInternal           = "internal_error"
)
