package server

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/handler"
	myGRPC "github.com/MKhiriev/go-auth-gate/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-auth-gate/internal/handler/http"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeListener struct {
	err       error
	stop      chan struct{}
	shutdowns atomic.Int32
}

func newFakeListener(err error) *fakeListener {
	return &fakeListener{err: err, stop: make(chan struct{})}
}

func (f *fakeListener) name() string { return "fake" }

func (f *fakeListener) serve() error {
	if f.err != nil {
		return f.err
	}
	<-f.stop
	return nil
}

func (f *fakeListener) shutdown() {
	if f.shutdowns.Add(1) == 1 {
		close(f.stop)
	}
}

func TestNewServer_NoServers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", cfg: config.Server{HTTPAddress: ":0"}},
		{name: "no addresses", handlers: &handler.Handlers{}, cfg: config.Server{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			require.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, s)
		})
	}
}

func TestNewServer_BothTransports(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, nil, myHTTP.Options{}, logger.Nop()),
		GRPC: myGRPC.NewHandler(logger.Nop()),
	}

	s, err := NewServer(handlers, config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}, logger.Nop())

	require.NoError(t, err)
	assert.Len(t, s.(*server).listeners, 2)
}

func TestRunServer_StopsOnContextCancel(t *testing.T) {
	l1, l2 := newFakeListener(nil), newFakeListener(nil)
	s := &server{listeners: []listener{l1, l2}, logger: logger.Nop()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- s.RunServer(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after cancel")
	}
	assert.EqualValues(t, 1, l1.shutdowns.Load())
	assert.EqualValues(t, 1, l2.shutdowns.Load())
}

func TestRunServer_ListenerFailure(t *testing.T) {
	failure := errors.New("address already in use")
	healthy := newFakeListener(nil)
	s := &server{listeners: []listener{newFakeListener(failure), healthy}, logger: logger.Nop()}

	err := s.RunServer(context.Background())

	require.ErrorIs(t, err, failure)
	assert.EqualValues(t, 1, healthy.shutdowns.Load())
}

func TestRunServer_RealListeners(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, nil, myHTTP.Options{}, logger.Nop()),
		GRPC: myGRPC.NewHandler(logger.Nop()),
	}
	s, err := NewServer(handlers, config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	assert.NoError(t, s.RunServer(ctx))
}

func TestShutdown_Idempotent(t *testing.T) {
	l := newFakeListener(nil)
	s := &server{listeners: []listener{l}, logger: logger.Nop()}

	s.Shutdown()
	s.Shutdown()

	assert.EqualValues(t, 1, l.shutdowns.Load())
}
