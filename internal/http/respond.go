package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"foodspend/internal/core"
)

// Stable error kinds surfaced to the client.
const (
	kindInvalidOrder     = "invalid_order"
	kindInvalidDateRange = "invalid_date_range"
	kindBadRequest       = "bad_request"
	kindNotFound         = "not_found"
	kindInternal         = "internal"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorBody{Error: kind, Message: message})
}

// writeDomainError maps core error kinds to HTTP statuses. Everything
// unrecognized is an internal error and hides its detail from the client.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidOrder):
		writeError(w, http.StatusUnprocessableEntity, kindInvalidOrder, err.Error())
	case errors.Is(err, core.ErrInvalidDateRange):
		writeError(w, http.StatusBadRequest, kindInvalidDateRange, err.Error())
	default:
		slog.ErrorContext(r.Context(), "Request failed",
			"error", err, "method", r.Method, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, kindInternal, "internal error")
	}
}
