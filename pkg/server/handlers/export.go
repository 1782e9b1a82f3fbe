package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"onebeat/scout/pkg/intel/export"
	"onebeat/scout/pkg/intel/projection"
	"onebeat/scout/pkg/server/types"
	"onebeat/scout/pkg/telemetry/metrics"
)

// Export encodes the competitor collection in the requested format,
// optionally scoped to a team via the team query parameter. An
// unrecognized team value falls back to the complete-database field
// set; an unrecognized format is a 400.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.PathValue("format"))
	if err != nil {
		var unsupported *export.ErrUnsupportedFormat
		if errors.As(err, &unsupported) {
			writeError(w, http.StatusBadRequest,
				types.NewInvalidRequestError(err.Error(), "format", types.CodeUnsupportedFormat))
			return
		}
		writeError(w, http.StatusInternalServerError, types.NewServerError("Failed to export data"))
		return
	}

	team := projection.Team(r.URL.Query().Get("team"))

	competitors := h.store.ListCompetitors()
	capabilities := h.store.ListCapabilities()
	segments := h.store.ListMarketSegments()

	start := time.Now()
	result, err := h.exporter.Export(r.Context(), format, team, competitors, capabilities, segments)
	if err != nil {
		h.collector.RecordExport(string(format), string(team), metrics.OutcomeError, time.Since(start))
		h.logger.Error("export failed",
			"format", string(format),
			"team", string(team),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, types.NewServerError("Failed to export data"))
		return
	}

	outcome := metrics.OutcomeSuccess
	if format == export.FormatPDF && result.ContentType == "text/plain" {
		outcome = metrics.OutcomeFallback
	}
	h.collector.RecordExport(string(format), string(team), outcome, time.Since(start))

	h.logger.Info("export completed",
		"format", string(format),
		"team", string(team),
		"filename", result.Filename,
		"bytes", len(result.Data),
		"records", len(competitors),
	)

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}
