// Package http implements the REST transport of the authentication service.
//
// It wires the chi router, the request handlers for registration, login,
// profile, version and health, and the middleware chain that handles
// tracing, access logging, gzip and bearer-token authentication before
// requests reach the service layer.
package http
