package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
)

// Storages bundles the opened database and the repositories built on it.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
}

// NewStorages opens the database described by cfg, applies migrations when
// cfg.DB.Migrate is set and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if cfg.DB.Migrate {
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		log.Info().Str("dialect", string(db.Dialect())).Msg("migrations applied")
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
