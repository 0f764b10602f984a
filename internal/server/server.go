package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/handler"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
)

type server struct {
	listeners []listener
	logger    *logger.Logger

	shutdownOnce sync.Once
}

// NewServer creates a server for every handler that is configured.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		s.listeners = append(s.listeners, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if handlers != nil && handlers.GRPC != nil && cfg.GRPCAddress != "" {
		s.listeners = append(s.listeners, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.listeners) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer(ctx context.Context) error {
	errCh := make(chan error, len(s.listeners))

	var wg sync.WaitGroup
	for _, l := range s.listeners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.logger.Info().Msgf("launching %s server", l.name())
			if err := l.serve(); err != nil {
				errCh <- fmt.Errorf("%s server: %w", l.name(), err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		s.logger.Err(runErr).Msg("server failed")
	}

	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server shutdown gracefully")
	return runErr
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		for _, l := range s.listeners {
			s.logger.Info().Msgf("shutting down %s server", l.name())
			l.shutdown()
		}
	})
}
