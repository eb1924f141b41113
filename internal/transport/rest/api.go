// Package rest serves the JSON API and health endpoints of the local server.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordlookup/internal/controller"
	"github.com/heartmarshall/wordlookup/internal/domain"
	"github.com/heartmarshall/wordlookup/internal/render"
)

type lookupController interface {
	Search(ctx context.Context, p controller.Presenter, input string) error
	History() []string
	ClearHistory(ctx context.Context, p controller.Presenter)
}

// LookupHandler exposes the lookup pipeline as JSON.
type LookupHandler struct {
	ctrl lookupController
	log  *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(ctrl lookupController, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{ctrl: ctrl, log: logger.With("handler", "api")}
}

// LookupResponse is the body of a successful /api/lookup.
type LookupResponse struct {
	Result render.View `json:"result"`
	Recent []string    `json:"recent"`
}

// HistoryResponse is the body of /api/history.
type HistoryResponse struct {
	Recent []string `json:"recent"`
}

// ErrorResponse is the body of every 4xx/5xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Lookup handles GET /api/lookup?q=word.
func (h *LookupHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var snap render.Snapshot

	err := h.ctrl.Search(r.Context(), &snap, r.URL.Query().Get("q"))
	switch {
	case err == nil && snap.View != nil:
		writeJSON(w, http.StatusOK, LookupResponse{Result: *snap.View, Recent: snap.History})
	case errors.Is(err, domain.ErrEmptyQuery):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: controller.MsgEmptyQuery, Code: "EMPTY_QUERY"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: controller.MsgNotFound, Code: "NOT_FOUND"})
	case errors.Is(err, controller.ErrBusy):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "another lookup is in progress", Code: "BUSY"})
	default:
		h.log.ErrorContext(r.Context(), "lookup failed", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: "INTERNAL"})
	}
}

// History handles GET /api/history.
func (h *LookupHandler) History(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HistoryResponse{Recent: nonNil(h.ctrl.History())})
}

// ClearHistory handles DELETE /api/history.
func (h *LookupHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	var snap render.Snapshot
	h.ctrl.ClearHistory(r.Context(), &snap)
	writeJSON(w, http.StatusOK, HistoryResponse{Recent: nonNil(snap.History)})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
