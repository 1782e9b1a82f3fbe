package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"onebeat/scout/pkg/config"
	"onebeat/scout/pkg/intel/export"
	"onebeat/scout/pkg/intel/storage"
	"onebeat/scout/pkg/server/handlers"
	"onebeat/scout/pkg/server/middleware"
	"onebeat/scout/pkg/telemetry/metrics"
)

// Server is the HTTP server for the competitive intelligence API.
type Server struct {
	config       *config.Config
	store        *storage.Store
	exporter     *export.Exporter
	collector    *metrics.Collector
	logger       *slog.Logger
	httpServer   *http.Server
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// NewServer creates a server over the given store and exporter.
// collector may be nil when metrics are disabled.
func NewServer(
	cfg *config.Config,
	store *storage.Store,
	exporter *export.Exporter,
	collector *metrics.Collector,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		config:    cfg,
		store:     store,
		exporter:  exporter,
		collector: collector,
		logger:    logger,
	}
}

// Start starts the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	s.httpServer = &http.Server{
		Addr:         s.config.Server.ListenAddress,
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting server",
			"address", s.config.Server.ListenAddress,
			"metrics_enabled", s.collector != nil,
		)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server, bounded by the configured
// shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		s.logger.Info("initiating graceful shutdown", "timeout", s.config.Server.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				s.logger.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		s.logger.Info("server stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and the middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(s.store, s.exporter, s.collector, s.logger)

	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("GET /api/competitors", h.ListCompetitors)
	mux.HandleFunc("GET /api/competitors/category/{category}", h.ListCompetitorsByCategory)
	mux.HandleFunc("GET /api/competitors/{id}", h.GetCompetitor)
	mux.HandleFunc("POST /api/competitors", h.CreateCompetitor)
	mux.HandleFunc("PUT /api/competitors/{id}", h.UpdateCompetitor)
	mux.HandleFunc("DELETE /api/competitors/{id}", h.DeleteCompetitor)

	mux.HandleFunc("GET /api/capabilities", h.ListCapabilities)
	mux.HandleFunc("POST /api/capabilities", h.CreateCapability)
	mux.HandleFunc("GET /api/market-segments", h.ListMarketSegments)
	mux.HandleFunc("POST /api/market-segments", h.CreateMarketSegment)

	mux.HandleFunc("GET /api/export/{format}", h.Export)

	if s.collector != nil && s.config.Telemetry.Metrics.Enabled {
		mux.Handle("GET "+s.config.Telemetry.Metrics.Path, s.collector.Handler())
	}

	var handler http.Handler = mux

	handler = middleware.Timeout(s.config.Server.RequestTimeout)(handler)
	handler = middleware.CORS(s.convertCORSConfig())(handler)
	handler = middleware.Metrics(s.collector)(handler)
	handler = middleware.Logging(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(handler)

	return handler
}

// Handler returns the configured HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *Server) convertCORSConfig() middleware.CORSConfig {
	return middleware.CORSConfig{
		Enabled:        s.config.Server.CORS.Enabled,
		AllowedOrigins: s.config.Server.CORS.AllowedOrigins,
		AllowedMethods: s.config.Server.CORS.AllowedMethods,
		AllowedHeaders: s.config.Server.CORS.AllowedHeaders,
		MaxAge:         s.config.Server.CORS.MaxAge,
	}
}
