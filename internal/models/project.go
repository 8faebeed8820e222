package models

// Project represents a portfolio project card
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image" yaml:"image"`
	Tags        []string `json:"tags" yaml:"tags"`
	GitHub      string   `json:"github,omitempty" yaml:"github,omitempty"`
	WebApp      string   `json:"webapp,omitempty" yaml:"webapp,omitempty"`
	APK         string   `json:"apk,omitempty" yaml:"apk,omitempty"`
	Video       string   `json:"video,omitempty" yaml:"video,omitempty"`
}

// Section is the content rendered as one projects section
type Section struct {
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Projects    []Project `json:"projects" yaml:"projects"`
}

// Normalize replaces absent collections with empty ones so rendering
// never has to nil-check them.
func (s *Section) Normalize() {
	if s.Projects == nil {
		s.Projects = []Project{}
	}
	for i := range s.Projects {
		if s.Projects[i].Tags == nil {
			s.Projects[i].Tags = []string{}
		}
	}
}
