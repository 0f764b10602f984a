package service

import "errors"

// credentialError is a login failure that is the caller's fault. Every
// credentialError matches [ErrInvalidCredentials] under [errors.Is].
type credentialError struct {
	msg string
}

func (e *credentialError) Error() string { return e.msg }

func (e *credentialError) Unwrap() error { return ErrInvalidCredentials }

var (
	// ErrInvalidCredentials matches both credential failures.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailNotFound means no account exists for the email.
	ErrEmailNotFound error = &credentialError{msg: "email not recognized"}

	// ErrWrongPassword means the account exists but the password does not
	// match.
	ErrWrongPassword error = &credentialError{msg: "wrong password"}

	// ErrLoginNotAttempted is reported by the zero [LoginResult].
	ErrLoginNotAttempted = errors.New("login was not attempted")
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenIsExpired          = errors.New("token is expired")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
