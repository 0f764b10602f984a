package store

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository provides access to user accounts.
type UserRepository interface {
	// CreateUser persists user and returns it with the server-assigned
	// UserID and CreatedAt.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the first user whose lowercased email equals
	// the lowercased argument.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given identifier.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// Pinger reports whether the underlying store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
