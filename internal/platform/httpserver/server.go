// Package httpserver provides HTTP server infrastructure.
package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config holds server configuration. ShutdownTimeout bounds how long
// in-flight order requests may drain after the stop signal.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns sensible defaults for a local deployment.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}
}

// ConfigFromEnv returns the default configuration with the listen
// address overridden by HTTP_ADDR when set.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	return cfg
}

// Server runs an http.Server until its context is canceled, then drains
// in-flight requests within the configured shutdown timeout.
type Server struct {
	cfg    Config
	server *http.Server
	logger *slog.Logger
}

// New creates a server for the given handler.
func New(cfg Config, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		cfg: cfg,
		server: &http.Server{
			Addr:         cfg.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		logger: logger,
	}
}

// Run starts the listener and blocks until ctx is canceled or the
// listener fails. On cancellation the server stops accepting new
// connections and waits up to ShutdownTimeout for active requests.
func (s *Server) Run(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", slog.String("addr", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}
