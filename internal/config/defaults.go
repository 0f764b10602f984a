package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenIssuer         = "go-auth-gate"
	defaultTokenDuration       = 24 * time.Hour
	defaultVersion             = "dev"
	defaultMaxOpenConns        = 10
	defaultMaxIdleConns        = 4
	defaultConnMaxLifetime     = 30 * time.Minute
	defaultHealthCheckInterval = 30 * time.Second
	defaultRequestTimeout      = 30 * time.Second
)

// applyDefaults fills every zero-valued tunable with its default.
// Required secrets (TokenSignKey, DSN) are left alone so that validate can
// reject them.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}

	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = defaultMaxOpenConns
	}
	if cfg.Storage.DB.MaxIdleConns == 0 {
		cfg.Storage.DB.MaxIdleConns = defaultMaxIdleConns
	}
	if cfg.Storage.DB.ConnMaxLifetime == 0 {
		cfg.Storage.DB.ConnMaxLifetime = defaultConnMaxLifetime
	}
	if cfg.Storage.DB.HealthCheckInterval == 0 {
		cfg.Storage.DB.HealthCheckInterval = defaultHealthCheckInterval
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
}
