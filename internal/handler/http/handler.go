package http

import (
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
)

// HealthReporter reports whether the backing store is currently reachable.
type HealthReporter interface {
	Healthy() bool
}

// Options tune the HTTP transport.
type Options struct {
	// RevealCredentialErrors returns "email not recognized" and "wrong
	// password" separately instead of one generic message.
	RevealCredentialErrors bool

	// RequestTimeout bounds every request. Zero disables the limit.
	RequestTimeout time.Duration
}

type Handler struct {
	services       *service.Services
	healthReporter HealthReporter
	options        Options

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. healthReporter may be nil, in which
// case the health endpoint always reports ok.
func NewHandler(services *service.Services, healthReporter HealthReporter, options Options, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		healthReporter: healthReporter,
		options:        options,
		logger:         logger,
	}
}
