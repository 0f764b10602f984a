package handler

import (
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/handler/grpc"
	"github.com/MKhiriev/go-auth-gate/internal/handler/http"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
)

// HealthSource is the store health state shared by both transports.
type HealthSource interface {
	Healthy() bool
	Subscribe(fn func(healthy bool))
}

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every transport that has an address in
// cfg. The gRPC health handler is subscribed to health.
func NewHandlers(services *service.Services, health HealthSource, cfg config.Server, appCfg config.App, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, health, http.Options{
			RevealCredentialErrors: appCfg.RevealCredentialErrors,
			RequestTimeout:         cfg.RequestTimeout,
		}, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
		if health != nil {
			health.Subscribe(handlers.GRPC.SetStoreHealth)
		}
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
