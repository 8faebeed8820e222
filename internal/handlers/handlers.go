package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"showcase.dev/internal/config"
	"showcase.dev/internal/metrics"
	"showcase.dev/internal/middleware"
	"showcase.dev/internal/models"
	"showcase.dev/internal/services"
	"showcase.dev/internal/views"
)

// SetupRoutes configures all routes and returns the router.
// m may be nil when metrics are disabled.
func SetupRoutes(cfg *config.Config, section *models.Section, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(m))
	r.Use(middleware.Logger(m))

	// Initialize services
	projectService := services.NewProjectService(section)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	workHandler := NewWorkHandler(projectService, m)

	// Page and HTMX fragments
	r.Get("/", workHandler.Index)
	r.Get(views.ClosePath, workHandler.CloseModal)
	r.Get(views.ModalPathPrefix+"{id}", workHandler.OpenModal)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/section", projectHandler.GetSection)
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	if m != nil {
		r.Handle("/metrics", m.Handler())
	}

	// Static files
	if cfg != nil && cfg.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(cfg.StaticDir))
		r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	}

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode json response", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// projectIDParam returns the {id} URL parameter. chi matches on the escaped
// path when one is set, so ids holding a "/" arrive still escaped.
func projectIDParam(r *http.Request) string {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return id
	}
	if unescaped, err := url.PathUnescape(id); err == nil {
		return unescaped
	}
	return id
}
