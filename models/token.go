// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token. Besides the standard registered
// claims (iss, sub, iat, exp) it carries the user's identifier and email.
type Claims struct {
	// UserID is the identifier of the authenticated user ("id" claim).
	UserID int64 `json:"id"`

	// Email is the user's email as stored ("email" claim).
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// Token wraps a session JWT with convenience accessors.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in the Authorization header or a response body.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded payload of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier, copied from the "id" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim and
// checks that it agrees with the "id" claim.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	if userID != t.Claims.UserID {
		return 0, fmt.Errorf("token subject %d does not match id claim %d", userID, t.Claims.UserID)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
