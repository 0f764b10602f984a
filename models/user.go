// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account record as stored in the "users" table.
// It contains identity attributes and the bcrypt password hash.
// The hash must never leave trusted boundaries; use [User.Public] before
// exposing a user to a caller.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the case-insensitive identity of the user. It is stored
	// lowercased on registration and always compared lowercased on lookup.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	// It is excluded from JSON serialization.
	PasswordHash string `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the scrubbed projection of u that is safe to return to
// API callers.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:    u.UserID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the externally visible view of a [User]. It carries no
// credential material.
type PublicUser struct {
	UserID    int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
