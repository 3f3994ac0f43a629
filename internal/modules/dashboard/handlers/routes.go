package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the request/response dashboard routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", h.HandleGetSnapshot)       // Snapshot for query criteria
		r.Post("/", h.HandlePostSnapshot)     // Snapshot for JSON criteria
		r.Get("/options", h.HandleGetOptions) // Control metadata and defaults
		r.Get("/charts", h.HandleGetCharts)   // Chart series only
	})

	r.Get("/export/{target}", h.HandleExport) // CSV download (powerpoint|word)
}

// RegisterStreamRoutes registers long-lived routes. Mount them outside any
// request timeout middleware.
func (h *Handler) RegisterStreamRoutes(r chi.Router) {
	r.Get("/stream/dashboard", h.HandleStream)
}
