package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/crypto"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/golang-jwt/jwt/v5"
)

// dummyPassword is hashed once to give unknown-email logins a bcrypt
// comparison of the same cost as a real one.
const dummyPassword = "go-auth-gate timing equalizer"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and a PasswordHasher
// (bcrypt) for password digests.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes new passwords and verifies supplied ones.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for token issuance.
	now func() time.Time

	dummyHashOnce sync.Once
	dummyHash     string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher and populated with token parameters
// from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// Login authenticates a user by email and password.
//
// The email is lowercased and looked up case-insensitively. The password is
// checked against the stored bcrypt digest. On success a session token is
// signed and returned together with the full user record.
//
// Outcomes:
//   - unknown email → LoginEmailNotFound, nil error.
//   - wrong password → LoginWrongPassword, nil error.
//   - store, hash, or signing failure → zero LoginResult and a wrapped error.
func (a *authService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	log := logger.FromContext(ctx)

	email = strings.ToLower(email)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.equalizeTiming(password)
		log.Debug().Str("outcome", LoginEmailNotFound.String()).Msg("login rejected")
		return LoginResult{Outcome: LoginEmailNotFound}, nil
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return LoginResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.hasher.Compare(foundUser.PasswordHash, password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Debug().Int64("id", foundUser.UserID).Str("outcome", LoginWrongPassword.String()).Msg("login rejected")
			return LoginResult{Outcome: LoginWrongPassword}, nil
		}

		log.Err(err).Int64("id", foundUser.UserID).Msg("stored password hash is unusable")
		return LoginResult{}, fmt.Errorf("password verification failed: %w", err)
	}

	token, err := a.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("token creation failed")
		return LoginResult{}, err
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user logged in")
	return LoginResult{Outcome: LoginOK, Token: token, User: foundUser}, nil
}

// Register creates a new user account and logs it in.
//
// The email is lowercased before storage and the password is replaced by its
// bcrypt digest. Input validation is applied by the validation wrapper (see
// NewAuthValidationService).
//
// Returns a LoginOK result or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - a wrapped store.ErrEmailAlreadyExists if the email is taken.
//   - a wrapped error for any hashing, storage, or signing failure.
func (a *authService) Register(ctx context.Context, registration models.Registration) (LoginResult, error) {
	log := logger.FromContext(ctx)

	if registration.Email == "" || registration.Password == "" {
		log.Error().Msg("invalid registration data provided")
		return LoginResult{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(registration.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return LoginResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        strings.ToLower(registration.Email),
		PasswordHash: hash,
		Name:         registration.Name,
	})
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return LoginResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Int64("id", registeredUser.UserID).Msg("token creation failed")
		return LoginResult{}, err
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")
	return LoginResult{Outcome: LoginOK, Token: token, User: registeredUser}, nil
}

// Profile returns the stored user with the given identifier.
// An unknown identifier yields a wrapped store.ErrNoUserWasFound.
func (a *authService) Profile(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the "id" and "email" claims, is signed with the
// configured tokenSignKey, carries the configured tokenIssuer as the "iss"
// claim, and expires tokenDuration after now.
//
// Returns the token model on success or a wrapped ErrTokenCreationFailed.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:   a.tokenIssuer,
		UserID:   user.UserID,
		Email:    user.Email,
		IssuedAt: a.now(),
		Duration: a.tokenDuration,
		SignKey:  a.tokenSignKey,
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (bad signature, wrong issuer, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors. Expired tokens additionally match
// ErrTokenIsExpired.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, ErrTokenIsExpired)
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// equalizeTiming runs one bcrypt comparison against a throwaway digest so
// that an unknown email is not distinguishable by response time.
func (a *authService) equalizeTiming(password string) {
	a.dummyHashOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Err(err).Msg("failed to prepare timing equalizer hash")
			return
		}
		a.dummyHash = hash
	})

	if a.dummyHash != "" {
		_ = a.hasher.Compare(a.dummyHash, password)
	}
}
