package server

import (
	"net"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	myGRPC "github.com/MKhiriev/go-auth-gate/internal/handler/grpc"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server
	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  s,
		logger:  logger,
	}
}

func (g *grpcServer) name() string { return "gRPC" }

func (g *grpcServer) serve() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}

	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	return g.server.Serve(lis)
}

func (g *grpcServer) shutdown() {
	g.handler.Shutdown()
	g.server.GracefulStop()
}
