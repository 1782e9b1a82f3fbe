// Package server provides the HTTP server for the competitive
// intelligence API.
//
// This package ties together handlers, middleware, and routing, and
// provides server lifecycle management including start and graceful
// shutdown.
//
// # Routes
//
// The server exposes the following HTTP endpoints:
//
//   - GET /health - Liveness probe
//   - GET /api/competitors - List all competitors
//   - GET /api/competitors/category/{category} - Filter by category
//   - GET /api/competitors/{id} - Fetch one competitor
//   - POST /api/competitors - Create a competitor
//   - PUT /api/competitors/{id} - Replace a competitor
//   - DELETE /api/competitors/{id} - Delete a competitor
//   - GET /api/capabilities - List the capability catalog
//   - POST /api/capabilities - Add a capability
//   - GET /api/market-segments - List market segments
//   - POST /api/market-segments - Add a market segment
//   - GET /api/export/{format} - Download an export (json, csv, pdf);
//     optional ?team= scopes the field set
//   - GET /metrics - Prometheus scrape endpoint (when enabled)
//
// # Middleware Chain
//
// Requests pass through the following middleware (outermost to
// innermost):
//  1. Recovery: Recovers from panics and returns a 500 error
//  2. RequestID: Generates a unique request ID for tracing
//  3. Logging: Logs request/response details
//  4. Metrics: Records request counters and latency histograms
//  5. CORS: Adds Cross-Origin Resource Sharing headers
//  6. Timeout: Enforces the per-request timeout
//
// # Basic Usage
//
//	cfg, err := config.LoadConfigWithEnvOverrides(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := storage.NewStore()
//	exporter := export.NewExporter(cfg.Export.Product, renderer, logger)
//	collector := metrics.NewCollector(nil)
//
//	srv := server.NewServer(cfg, store, exporter, collector, logger)
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Start blocks until the context is cancelled or the listener fails,
// then drains in-flight requests up to the configured shutdown timeout.
package server
