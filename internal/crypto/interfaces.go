package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes and verifies user passwords with an adaptive,
// salted one-way function. Implementations must compare in constant time.
type PasswordHasher interface {
	// Hash returns the encoded digest of password, salt and cost included.
	Hash(password string) (string, error)

	// Compare reports whether password matches the encoded digest hash.
	// It returns nil on match, ErrPasswordMismatch when the password is
	// wrong (or cannot possibly match), and any other error when hash
	// itself is malformed.
	Compare(hash, password string) error
}
