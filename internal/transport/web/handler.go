// Package web serves the browser UI: a search page whose related words and
// recent searches are links back into the lookup.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordlookup/internal/controller"
	"github.com/heartmarshall/wordlookup/internal/domain"
	"github.com/heartmarshall/wordlookup/internal/render"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// MsgBusy is shown when a lookup is rejected because another is running.
const MsgBusy = "Another search is still running. Please try again in a moment."

type webController interface {
	Search(ctx context.Context, p controller.Presenter, input string) error
	PlayAudio(ctx context.Context) bool
	History() []string
	Placeholder() string
}

// Handler renders the HTML pages.
type Handler struct {
	ctrl webController
	log  *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(ctrl webController, logger *slog.Logger) *Handler {
	return &Handler{ctrl: ctrl, log: logger.With("handler", "web")}
}

type pageData struct {
	Query       string
	Placeholder string
	State       render.State
	Message     string
	View        *render.View
	History     []string
}

// Index handles GET /: the idle page with recent searches.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	var snap render.Snapshot
	snap.ShowIdle()
	snap.ShowHistory(h.ctrl.History())

	h.renderPage(w, r, http.StatusOK, pageData{}, &snap)
}

// Lookup handles GET /lookup?q=word. Search submissions and clicks on
// related words and recent searches all land here.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	var snap render.Snapshot
	snap.ShowHistory(h.ctrl.History())

	status := http.StatusOK
	if err := h.ctrl.Search(r.Context(), &snap, q); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyQuery):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, controller.ErrBusy):
			status = http.StatusConflict
			snap.ShowError(MsgBusy)
		default:
			h.log.ErrorContext(r.Context(), "lookup failed", slog.Any("error", err))
			status = http.StatusInternalServerError
		}
	}

	h.renderPage(w, r, status, pageData{Query: q}, &snap)
}

// Audio handles POST /audio. It answers 204 so a submitting page stays put.
func (h *Handler) Audio(w http.ResponseWriter, r *http.Request) {
	if !h.ctrl.PlayAudio(r.Context()) {
		h.log.DebugContext(r.Context(), "audio requested with nothing bound")
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, data pageData, snap *render.Snapshot) {
	data.Placeholder = h.ctrl.Placeholder()
	data.State = snap.State
	data.Message = snap.Message
	data.View = snap.View
	data.History = snap.History

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		h.log.ErrorContext(r.Context(), "render page", slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes()) //nolint:errcheck
}
