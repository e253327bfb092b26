// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ericfisherdev/grocerylist/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/grocerylist/internal/adapter/driving/web/templates/pages"
	"github.com/ericfisherdev/grocerylist/internal/application"
	"github.com/ericfisherdev/grocerylist/internal/domain/model"
)

// NoticeSource exposes the notice currently on screen.
type NoticeSource interface {
	Current() model.Notice
}

// Handler is the web GUI driving adapter that serves HTML via templ components.
// Every form post runs one ListService command and redirects back to the page.
type Handler struct {
	list    *application.ListService
	view    *ListView
	notices NoticeSource
	logger  *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	list *application.ListService,
	view *ListView,
	notices NoticeSource,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		list:    list,
		view:    view,
		notices: notices,
		logger:  logger,
	}
}

// Index renders the list page with the full HTML layout.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	token := csrfToken(w, r)
	rows, visible := h.view.Snapshot()
	page := toPageViewModel(rows, visible, h.list.Session(), h.notices.Current(), token)

	layout := templates.Layout(page.Title, pages.List(page))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layout.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render list page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// Submit creates or updates an entry depending on the edit mode.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, func(ctx context.Context) application.Result {
		return h.list.Submit(ctx, r.FormValue("item"))
	})
}

// Edit switches the form into edit mode for the entry in the path.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, func(context.Context) application.Result {
		return h.list.BeginEdit(r.PathValue("id"))
	})
}

// Delete removes the entry in the path.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, func(ctx context.Context) application.Result {
		return h.list.Delete(ctx, r.PathValue("id"))
	})
}

// Clear removes every entry.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, func(ctx context.Context) application.Result {
		return h.list.Clear(ctx)
	})
}

// Cancel leaves edit mode without submitting.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}
	h.list.CancelEdit()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) command(w http.ResponseWriter, r *http.Request, run func(context.Context) application.Result) {
	if !validateCSRF(r) {
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}

	res := run(r.Context())
	if res.Err != nil {
		h.logger.Error("list command failed", "path", r.URL.Path, "error", res.Err)
	}
	// The request logger wraps w; tag its line with what the command did.
	if s, ok := w.(interface{ SetOutcome(model.Outcome) }); ok {
		s.SetOutcome(res.Outcome)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
