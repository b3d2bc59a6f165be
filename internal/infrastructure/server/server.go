package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"

	connectcors "connectrpc.com/cors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/Swatkovich/cortexex-sub000/internal/adapter/connectrpc"
	"github.com/Swatkovich/cortexex-sub000/internal/infrastructure/config"
)

// Server represents the application server
type Server struct {
	config     *config.Config
	httpServer *http.Server
	logger     logrus.FieldLogger
}

// NewServer creates a new server instance serving every Connect service over
// HTTP/1.1 and cleartext HTTP/2.
func NewServer(cfg *config.Config, logger *logrus.Logger, svcs *connectrpc.Services) *Server {
	handler := connectrpc.NewHandler(svcs, NewLoggingInterceptor(logger))

	httpServer := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.HTTPPort)),
		Handler:           h2c.NewHandler(withCORS(cfg.Server.CORSOrigins, handler), &http2.Server{}),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
	}

	return &Server{
		config:     cfg,
		httpServer: httpServer,
		logger:     logger,
	}
}

// withCORS allows browser clients from origins to speak the Connect, gRPC-Web
// and gRPC protocols.
func withCORS(origins []string, h http.Handler) http.Handler {
	middleware := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: connectcors.AllowedMethods(),
		AllowedHeaders: append(connectcors.AllowedHeaders(), connectrpc.UserIDHeader),
		ExposedHeaders: connectcors.ExposedHeaders(),
	})
	return middleware.Handler(h)
}

// Handler exposes the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Infof("HTTP server starting on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("Failed to shutdown HTTP server: %v", err)
		return err
	}

	s.logger.Info("Server shutdown complete")
	return nil
}
