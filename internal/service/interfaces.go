package service

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// AuthService authenticates users and manages their session tokens.
type AuthService interface {
	// Login authenticates email and password. Rejected credentials are
	// reported through LoginResult.Outcome with a nil error; the error is
	// reserved for infrastructure faults.
	Login(ctx context.Context, email, password string) (LoginResult, error)

	// Register creates an account and logs it in.
	Register(ctx context.Context, registration models.Registration) (LoginResult, error)

	// Profile returns the stored user with the given identifier.
	Profile(ctx context.Context, userID int64) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
