// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the request body of the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the request body of the register endpoint.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthResponse is returned by the login and register endpoints.
// ServiceToken is the signed session token; User is always the scrubbed
// [PublicUser] projection.
type AuthResponse struct {
	ServiceToken string     `json:"serviceToken"`
	User         PublicUser `json:"user"`
}

// ErrorResponse is the JSON body written for failed API requests.
type ErrorResponse struct {
	// Reason is a stable machine-readable code (e.g. "invalid_credentials").
	Reason string `json:"reason"`

	// Message is a human-readable description intended for display.
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
