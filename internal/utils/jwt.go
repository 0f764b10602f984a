package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenParams describes a session token to be issued.
type TokenParams struct {
	// Issuer is placed in the "iss" claim.
	Issuer string

	// UserID and Email identify the authenticated user ("id", "email", "sub").
	UserID int64
	Email  string

	// IssuedAt is the issuance instant; ExpiresAt is IssuedAt + Duration.
	IssuedAt time.Time
	Duration time.Duration

	// SignKey is the HMAC-SHA256 secret.
	SignKey string
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token from params.
//
// The token carries the custom claims "id" and "email" and the standard
// claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): params.IssuedAt (now when zero)
//   - ExpiresAt (exp): IssuedAt plus params.Duration
//
// Returns an error if the issuer, duration, or sign key are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.TokenParams{
//	    Issuer: "go-auth-gate", UserID: 42, Email: "a@b.com",
//	    Duration: 24 * time.Hour, SignKey: "secret",
//	})
func GenerateJWTToken(params TokenParams) (models.Token, error) {
	if params.Issuer == "" || params.Duration <= 0 || params.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	issuedAt := params.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	claims := models.Claims{
		UserID: params.UserID,
		Email:  params.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   strconv.FormatInt(params.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(params.Duration)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		Claims:       claims,
		SignedString: tokenString,
		UserID:       params.UserID,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signing method restricted to HS256
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Agreement between the "sub" and "id" claims
//
// The returned error wraps the golang-jwt sentinel errors, so callers can
// test for e.g. jwt.ErrTokenExpired with errors.Is.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	var claims models.Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	parsed := models.Token{Token: token, Claims: claims, SignedString: tokenString}

	userID, err := parsed.GetUserID()
	if err != nil {
		return models.Token{}, err
	}
	parsed.UserID = userID

	return parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
