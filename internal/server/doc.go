// Package server runs the HTTP and gRPC listeners of the authentication
// service and shuts them down gracefully.
package server
