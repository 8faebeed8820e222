package services

import (
	"errors"
	"fmt"

	"showcase.dev/internal/models"
	"showcase.dev/internal/showcase"
)

// ErrProjectNotFound is returned when no project has the requested ID.
var ErrProjectNotFound = errors.New("project not found")

// ProjectDetail is a project with everything the modal derives from it
type ProjectDetail struct {
	models.Project
	Anchor  string           `json:"anchor"`
	Media   showcase.Media   `json:"media"`
	Actions showcase.Actions `json:"actions"`
}

// ProjectService handles project-related operations
type ProjectService struct {
	section *models.Section
	byID    map[string]int
}

// NewProjectService creates a new ProjectService over a loaded section.
// A nil section behaves like an empty one.
func NewProjectService(section *models.Section) *ProjectService {
	if section == nil {
		section = &models.Section{}
	}
	section.Normalize()

	byID := make(map[string]int, len(section.Projects))
	for i, p := range section.Projects {
		if _, dup := byID[p.ID]; !dup {
			byID[p.ID] = i
		}
	}
	return &ProjectService{section: section, byID: byID}
}

// Section returns the section header and projects
func (s *ProjectService) Section() *models.Section {
	return s.section
}

// Anchor returns the anchor identifier of the section
func (s *ProjectService) Anchor() string {
	return showcase.AnchorID(s.section.Title)
}

// GetAll returns all projects in display order
func (s *ProjectService) GetAll() []models.Project {
	return s.section.Projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return &s.section.Projects[i], nil
}

// Detail returns a project together with its media and actions
func (s *ProjectService) Detail(id string) (*ProjectDetail, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &ProjectDetail{
		Project: *p,
		Anchor:  s.Anchor(),
		Media:   showcase.MediaFor(*p),
		Actions: showcase.ActionsFor(*p),
	}, nil
}
