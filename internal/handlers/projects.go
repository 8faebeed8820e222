package handlers

import (
	"errors"
	"net/http"

	"showcase.dev/internal/models"
	"showcase.dev/internal/services"
)

// ProjectHandler handles project-related API endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

type sectionResponse struct {
	Anchor string `json:"anchor"`
	*models.Section
}

// GetSection handles GET /api/section
func (h *ProjectHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, sectionResponse{
		Anchor:  h.projectService.Anchor(),
		Section: h.projectService.Section(),
	})
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()
	respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := projectIDParam(r)

	detail, err := h.projectService.Detail(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, detail)
}
