// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-auth-gate/models"

// LoginOutcome discriminates the result of a login attempt.
type LoginOutcome int

const (
	// LoginNotAttempted is the zero value; it is never returned alongside a
	// nil error.
	LoginNotAttempted LoginOutcome = iota

	// LoginOK means the credentials were accepted and a token was issued.
	LoginOK

	// LoginEmailNotFound means no account matches the email.
	LoginEmailNotFound

	// LoginWrongPassword means the account exists but the password was wrong.
	LoginWrongPassword
)

// String returns a snake_case label suitable for logs.
func (o LoginOutcome) String() string {
	switch o {
	case LoginOK:
		return "ok"
	case LoginEmailNotFound:
		return "email_not_found"
	case LoginWrongPassword:
		return "wrong_password"
	default:
		return "not_attempted"
	}
}

// LoginResult is the outcome of [AuthService.Login] and
// [AuthService.Register].
//
// Token and User are set only when Outcome is [LoginOK]. User is the full
// stored record, password hash included; transports must expose it through
// [models.User.Public].
type LoginResult struct {
	Outcome LoginOutcome
	Token   models.Token
	User    models.User
}

// OK reports whether the login succeeded.
func (r LoginResult) OK() bool {
	return r.Outcome == LoginOK
}

// Err maps the outcome to a sentinel error: nil for [LoginOK],
// [ErrEmailNotFound] or [ErrWrongPassword] for rejected credentials.
func (r LoginResult) Err() error {
	switch r.Outcome {
	case LoginOK:
		return nil
	case LoginEmailNotFound:
		return ErrEmailNotFound
	case LoginWrongPassword:
		return ErrWrongPassword
	default:
		return ErrLoginNotAttempted
	}
}
