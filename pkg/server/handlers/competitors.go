package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"onebeat/scout/pkg/intel"
	"onebeat/scout/pkg/server/types"
)

// ListCompetitors returns every competitor in creation order.
func (h *Handler) ListCompetitors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListCompetitors())
}

// ListCompetitorsByCategory returns competitors whose category matches
// the path segment exactly. An unknown category yields an empty list,
// not a 404.
func (h *Handler) ListCompetitorsByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	writeJSON(w, http.StatusOK, h.store.ListCompetitorsByCategory(category))
}

// GetCompetitor returns a single competitor by id.
func (h *Handler) GetCompetitor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	c, found := h.store.GetCompetitor(id)
	if !found {
		writeError(w, http.StatusNotFound, types.NewNotFoundError("Competitor not found"))
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateCompetitor validates and stores a new competitor record.
func (h *Handler) CreateCompetitor(w http.ResponseWriter, r *http.Request) {
	var c intel.Competitor
	if !decodeBody(w, r, &c) {
		return
	}
	if !validateCompetitor(w, c) {
		return
	}

	created := h.store.CreateCompetitor(c)
	h.syncStoreGauges()
	writeJSON(w, http.StatusCreated, created)
}

// UpdateCompetitor replaces an existing record entirely. Partial
// patches are not supported; clients send the full field set.
func (h *Handler) UpdateCompetitor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var c intel.Competitor
	if !decodeBody(w, r, &c) {
		return
	}
	if !validateCompetitor(w, c) {
		return
	}

	updated, found := h.store.UpdateCompetitor(id, c)
	if !found {
		writeError(w, http.StatusNotFound, types.NewNotFoundError("Competitor not found"))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteCompetitor removes a record by id. Deleting an unknown id is a
// 404, not a silent success.
func (h *Handler) DeleteCompetitor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if !h.store.DeleteCompetitor(id) {
		writeError(w, http.StatusNotFound, types.NewNotFoundError("Competitor not found"))
		return
	}
	h.syncStoreGauges()
	w.WriteHeader(http.StatusNoContent)
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest,
			types.NewInvalidRequestError("Invalid competitor ID", "id", types.CodeInvalidValue))
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest,
			types.NewInvalidRequestError("Request body is not valid JSON", "", types.CodeInvalidJSON))
		return false
	}
	return true
}

func validateCompetitor(w http.ResponseWriter, c intel.Competitor) bool {
	if err := intel.ValidateCompetitor(c); err != nil {
		writeError(w, http.StatusBadRequest, validationResponse(err))
		return false
	}
	return true
}

// validationResponse maps a validation error onto the wire envelope,
// distinguishing missing required fields from invalid values.
func validationResponse(err error) *types.ErrorResponse {
	var verr *intel.ValidationError
	if errors.As(err, &verr) {
		code := types.CodeInvalidValue
		if strings.Contains(verr.Message, "required") {
			code = types.CodeMissingField
		}
		return types.NewInvalidRequestError(verr.Error(), verr.Field, code)
	}
	return types.NewInvalidRequestError(err.Error(), "", types.CodeInvalidValue)
}
