// Package web serves the site: page rendering, the contact form's
// Datastar signal patching, static assets and the health endpoint.
package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"greenscape/internal/config"
)

// siteName is the display name used in page chrome. Settings carry the
// machine-readable name reported by the health endpoint.
const siteName = "GreenScape Lawn Care"

// Server is the HTTP server for the site.
type Server struct {
	settings *config.Settings
	router   *mux.Router
	server   *http.Server
	logger   *zap.Logger
	started  time.Time
}

// NewServer creates a server bound to the configured address.
func NewServer(settings *config.Settings, logger *zap.Logger) *Server {
	s := &Server{
		settings: settings,
		logger:   logger,
		router:   mux.NewRouter(),
		started:  time.Now(),
	}

	s.registerRoutes()

	handler := s.applyMiddleware(s.router)
	s.server = &http.Server{
		Addr:         settings.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		// Connection-level transport errors go to the logger instead of
		// the process stderr. The affected request fails on its own.
		ErrorLog: zap.NewStdLog(logger.Named("http")),
	}

	return s
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	s.logger.Info("starting http server",
		zap.String("addr", s.settings.Server.Addr()),
		zap.String("environment", config.Environment()),
	)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.logger.Info("server shut down cleanly")
	return nil
}

// ServeHTTP implements http.Handler for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}

// applyMiddleware wraps the router; the last wrap runs first.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	handler = RecoveryMiddleware(s.logger)(handler)
	handler = LoggingMiddleware(s.logger)(handler)
	handler = RequestIDMiddleware()(handler)
	return handler
}
