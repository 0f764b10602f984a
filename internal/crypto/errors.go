package crypto

import "errors"

var (
	// ErrPasswordMismatch is returned by PasswordHasher.Compare when the
	// supplied password does not match the stored digest.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrPasswordTooLong is returned by PasswordHasher.Hash for passwords
	// that exceed the bcrypt input limit.
	ErrPasswordTooLong = errors.New("password is too long")
)
