// Package server owns the HTTP listener for the studio API: the public site
// endpoints and the admin portal share one server.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dspfilms/studio-go/internal/application/container"
	"github.com/dspfilms/studio-go/internal/presentation/http/routes"
	"github.com/dspfilms/studio-go/pkg/config"
)

// Server wraps http.Server with the studio's routing and timeouts.
type Server struct {
	httpServer *http.Server
	container  *container.Container
}

// New builds the server around the application container. Timeouts come from
// config so slow uploads don't hold connections open indefinitely.
func New(port string, c *container.Container) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + port,
			Handler:      routes.SetupRoutes(c),
			ReadTimeout:  config.ServerReadTimeout,
			WriteTimeout: config.ServerWriteTimeout,
			IdleTimeout:  config.ServerIdleTimeout,
		},
		container: c,
	}
}

// Start listens until Stop is called or the listener fails.
func (s *Server) Start() error {
	s.container.Logger.Startup().Info("Starting HTTP server", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Stop drains in-flight requests until the context expires.
func (s *Server) Stop(ctx context.Context) error {
	s.container.Logger.Shutdown().Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
