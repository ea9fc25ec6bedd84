// Package server defines the Server struct that composes the app's main
// dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - http.Server
//
// and provides the start/shutdown logic to run the backend cleanly.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/humanizer/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/humanizer/internal/logger"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself; it holds the config, the loggers and
// an internal *http.Server used to listen and serve requests.
type Server struct {
	Config *config.Config

	Logger *zerolog.Logger

	// LoggerService holds the New Relic application. Its application is
	// nil when New Relic is not configured.
	LoggerService *loggerPkg.LoggerService

	// httpServer is configured in SetupHTTPServer and started in Start.
	httpServer *http.Server
}

// New constructs a Server. It does not start listening.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) *Server {
	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
	}
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Config stores seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server and blocks until it stops.
// SetupHTTPServer must be called first.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Str("engine", s.EngineName()).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// EngineName reports which humanize engine the backend runs with.
func (s *Server) EngineName() string {
	if s.Config.Engine.UpstreamURL != "" {
		return "upstream"
	}
	return "echo"
}

// Shutdown stops the HTTP server, letting in-flight requests finish until
// ctx expires, then flushes the New Relic agent.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	s.LoggerService.Shutdown()

	return nil
}
