package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers all web GUI routes on the provided mux.
// Static assets are served from the embedded filesystem at /static/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	mux.HandleFunc("GET /{$}", h.Index)

	// Form posts. The fixed paths are registered before the {id} patterns for
	// readability; ServeMux picks the most specific match either way.
	mux.HandleFunc("POST /items", h.Submit)
	mux.HandleFunc("POST /items/clear", h.Clear)
	mux.HandleFunc("POST /items/cancel", h.Cancel)
	mux.HandleFunc("POST /items/{id}/edit", h.Edit)
	mux.HandleFunc("POST /items/{id}/delete", h.Delete)
}
