package service

import (
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/crypto"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
)

// Services bundles the application services handed to the transports.
type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the services from their dependencies. The auth service
// is wrapped with registration validation.
func NewServices(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthService(userRepository, crypto.NewBcryptHasher(cfg.BcryptCost), cfg, logger)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		AppInfoService: appInfoService,
	}, nil
}
