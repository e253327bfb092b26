package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/grocerylist/internal/application"
)

// maxRequestBody bounds JSON request bodies.
const maxRequestBody = 1 << 16

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	list    *application.ListService
	metrics http.Handler
	logger  *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. metrics may be
// nil, in which case /metrics is not registered.
func NewHandler(list *application.ListService, metrics http.Handler, logger *slog.Logger) *Handler {
	return &Handler{
		list:    list,
		metrics: metrics,
		logger:  logger,
	}
}

// RegisterAPIRoutes registers the JSON API and the metrics endpoint on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/entries", h.ListEntries)
	mux.HandleFunc("POST /api/v1/entries", h.SubmitEntry)
	mux.HandleFunc("DELETE /api/v1/entries", h.ClearEntries)
	mux.HandleFunc("POST /api/v1/entries/{id}/edit", h.BeginEdit)
	mux.HandleFunc("DELETE /api/v1/entries/{id}", h.DeleteEntry)
	mux.HandleFunc("GET /api/v1/session", h.GetSession)
	mux.HandleFunc("DELETE /api/v1/session", h.CancelEdit)
	mux.HandleFunc("GET /api/v1/health", h.Health)

	if h.metrics != nil {
		mux.Handle("GET /metrics", h.metrics)
	}
}

// ApplyMiddleware wraps next with recovery and request logging. Recovery is
// innermost so panics are caught before logging.
func ApplyMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	wrapped := recoveryMiddleware(logger, next)
	return loggingMiddleware(logger, wrapped)
}

// ListEntries returns every entry in display order.
func (h *Handler) ListEntries(w http.ResponseWriter, _ *http.Request) {
	entries := h.list.Entries()

	resp := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toEntryResponse(e))
	}

	writeJSON(w, http.StatusOK, resp)
}

// SubmitEntry submits a value as the form would: it creates an entry, or
// updates the entry being edited.
func (h *Handler) SubmitEntry(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.writeResult(w, r, h.list.Submit(r.Context(), req.Value))
}

// BeginEdit puts the entry in the path into edit mode.
func (h *Handler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	h.writeResult(w, r, h.list.BeginEdit(r.PathValue("id")))
}

// DeleteEntry removes the entry in the path.
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	h.writeResult(w, r, h.list.Delete(r.Context(), r.PathValue("id")))
}

// ClearEntries removes every entry.
func (h *Handler) ClearEntries(w http.ResponseWriter, r *http.Request) {
	h.writeResult(w, r, h.list.Clear(r.Context()))
}

// GetSession returns the edit session state.
func (h *Handler) GetSession(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toSessionResponse(h.list.Session()))
}

// CancelEdit returns the session to creating mode.
func (h *Handler) CancelEdit(w http.ResponseWriter, _ *http.Request) {
	h.list.CancelEdit()
	writeJSON(w, http.StatusOK, toSessionResponse(h.list.Session()))
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Entries: len(h.list.Entries()),
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, res application.Result) {
	if res.Err != nil {
		h.logger.Error("list command failed", "method", r.Method, "path", r.URL.Path, "error", res.Err)
	}
	reportOutcome(w, res.Outcome)
	writeJSON(w, statusForOutcome(res.Outcome), toCommandResponse(res))
}
