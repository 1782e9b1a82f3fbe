package handlers

import (
	"net/http"

	"onebeat/scout/pkg/intel"
)

// ListCapabilities returns the capability catalog.
func (h *Handler) ListCapabilities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListCapabilities())
}

// CreateCapability adds a capability catalog entry.
func (h *Handler) CreateCapability(w http.ResponseWriter, r *http.Request) {
	var c intel.Capability
	if !decodeBody(w, r, &c) {
		return
	}
	if err := intel.ValidateCapability(c); err != nil {
		writeError(w, http.StatusBadRequest, validationResponse(err))
		return
	}

	created := h.store.CreateCapability(c)
	h.syncStoreGauges()
	writeJSON(w, http.StatusCreated, created)
}

// ListMarketSegments returns the market segment catalog.
func (h *Handler) ListMarketSegments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListMarketSegments())
}

// CreateMarketSegment adds a market segment.
func (h *Handler) CreateMarketSegment(w http.ResponseWriter, r *http.Request) {
	var seg intel.MarketSegment
	if !decodeBody(w, r, &seg) {
		return
	}
	if err := intel.ValidateMarketSegment(seg); err != nil {
		writeError(w, http.StatusBadRequest, validationResponse(err))
		return
	}

	created := h.store.CreateMarketSegment(seg)
	h.syncStoreGauges()
	writeJSON(w, http.StatusCreated, created)
}
