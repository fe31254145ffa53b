// Package server wraps the configd HTTP server with lifecycle management:
// startup, signal-driven graceful shutdown, and shutdown timeouts.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mycareerassist/careerctl/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// shutdown signal.
const shutdownTimeout = 5 * time.Second

// HTTPServer runs the configd inspection API.
type HTTPServer struct {
	server *http.Server
	logger *logger.Logger
}

// NewHTTPServer returns a server bound to address serving handler.
func NewHTTPServer(address string, handler http.Handler, log *logger.Logger) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: log,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully. It returns
// the first serve error, or nil after a clean shutdown.
func (h *HTTPServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		h.logger.Info().Str("address", h.server.Addr).Msg("configd listening")
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(shutdownCtx); err != nil {
		h.logger.Error().Err(err).Msg("http server shutdown")
		return err
	}

	h.logger.Info().Msg("configd stopped")
	return nil
}
