package handlers

import (
	"errors"
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"showcase.dev/internal/htmx"
	"showcase.dev/internal/metrics"
	"showcase.dev/internal/services"
	"showcase.dev/internal/telemetry"
	"showcase.dev/internal/views"
)

// WorkHandler serves the projects section page and its modal fragments
type WorkHandler struct {
	projectService *services.ProjectService
	metrics        *metrics.Metrics
}

// NewWorkHandler creates a new WorkHandler
func NewWorkHandler(ps *services.ProjectService, m *metrics.Metrics) *WorkHandler {
	return &WorkHandler{projectService: ps, metrics: m}
}

// Index handles GET / - the page, with the modal open when ?project names a
// known project
func (h *WorkHandler) Index(w http.ResponseWriter, r *http.Request) {
	section := h.projectService.Section()

	id := r.URL.Query().Get(views.ProjectQueryKey)
	if id == "" {
		htmx.RenderPage(w, r, views.Section(section, nil), views.Page(section, nil))
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		// unknown ids fall back to the closed page
		htmx.RenderPage(w, r, views.Section(section, nil), views.Page(section, nil))
		return
	}
	h.metrics.ModalOpened(project.ID)
	htmx.RenderPage(w, r, views.Section(section, project), views.Page(section, project))
}

// OpenModal handles GET /work/projects/{id}
func (h *WorkHandler) OpenModal(w http.ResponseWriter, r *http.Request) {
	id := projectIDParam(r)
	_, span := telemetry.Tracer().Start(r.Context(), "work.open_modal")
	span.SetAttributes(attribute.String("project.id", id))
	defer span.End()

	project, err := h.projectService.GetByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.metrics.ModalOpened(project.ID)
	section := h.projectService.Section()
	htmx.RenderPage(w, r,
		views.Modal(*project, h.projectService.Anchor()),
		views.Page(section, project),
	)
}

// CloseModal handles GET /work/close - empties the modal slot
func (h *WorkHandler) CloseModal(w http.ResponseWriter, r *http.Request) {
	if !htmx.IsHTMXRequest(r) {
		http.Redirect(w, r, "/#"+h.projectService.Anchor(), http.StatusSeeOther)
		return
	}
	htmx.Render(w, r, http.StatusOK, views.ClosedModal())
}
