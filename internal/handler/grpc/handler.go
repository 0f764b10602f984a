// Package grpc exposes the standard gRPC health service for the
// authentication server.
package grpc

import (
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// StoreService is the health service name that tracks the user store.
const StoreService = "go-auth-gate.store"

// Handler serves grpc.health.v1.Health. Both the overall status and
// [StoreService] follow the store health checker.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler reporting NOT_SERVING until the first store
// check arrives through [Handler.SetStoreHealth].
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetStoreHealth flips the served status. It matches the subscriber
// signature of the store health checker.
func (h *Handler) SetStoreHealth(healthy bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if healthy {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.logger.Debug().Str("status", status.String()).Msg("gRPC health status updated")
	h.setStatus(status)
}

// Shutdown reports NOT_SERVING permanently and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(StoreService, status)
}
