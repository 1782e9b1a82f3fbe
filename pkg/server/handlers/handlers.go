package handlers

import (
	"log/slog"

	"onebeat/scout/pkg/intel/export"
	"onebeat/scout/pkg/intel/storage"
	"onebeat/scout/pkg/telemetry/metrics"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "onebeat-competitive-intelligence"

// Handler carries the dependencies shared by every endpoint.
type Handler struct {
	store     *storage.Store
	exporter  *export.Exporter
	collector *metrics.Collector
	logger    *slog.Logger
}

// New creates the handler set. collector may be nil when metrics are
// disabled.
func New(store *storage.Store, exporter *export.Exporter, collector *metrics.Collector, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:     store,
		exporter:  exporter,
		collector: collector,
		logger:    logger,
	}
}

// syncStoreGauges refreshes the per-collection record gauges after a
// mutation.
func (h *Handler) syncStoreGauges() {
	competitors, capabilities, segments := h.store.Counts()
	h.collector.SetStoreCounts(competitors, capabilities, segments)
}
