package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"onebeat/scout/pkg/server/types"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, resp *types.ErrorResponse) {
	writeJSON(w, status, resp)
}
