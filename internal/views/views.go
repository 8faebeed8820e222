// Package views renders the projects section as HTML.
//
// Components are templ components backed by html/template, so both the
// full page and the HTMX fragments go through the same escaping rules.
package views

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"showcase.dev/internal/models"
	"showcase.dev/internal/showcase"
)

// Paths used by the rendered markup.
const (
	ModalPathPrefix = "/work/projects/"
	ClosePath       = "/work/close"
	ProjectQueryKey = "project"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(
	template.New("views").
		Funcs(template.FuncMap{"icon": icon}).
		ParseFS(templateFS, "templates/*.html"),
)

type card struct {
	models.Project
	OpenHref  string
	ModalPath string
}

type sectionData struct {
	Title       string
	Description string
	Anchor      string
	Projects    []card
}

type modalData struct {
	Project   models.Project
	Media     showcase.Media
	IsVideo   bool
	Actions   showcase.Actions
	ClosePath string
	CloseHref string
}

type pageData struct {
	Section sectionData
	Modal   *modalData
}

// ModalPath returns the fragment path that opens the modal for a project.
func ModalPath(projectID string) string {
	return ModalPathPrefix + url.PathEscape(projectID)
}

// OpenHref returns the no-JS link that renders the page with the modal open.
func OpenHref(projectID, anchor string) string {
	q := url.Values{ProjectQueryKey: {projectID}}
	return "/?" + q.Encode() + "#" + anchor
}

func newSectionData(s *models.Section) sectionData {
	if s == nil {
		s = &models.Section{}
	}
	anchor := showcase.AnchorID(s.Title)
	cards := make([]card, 0, len(s.Projects))
	for _, p := range s.Projects {
		if p.Tags == nil {
			p.Tags = []string{}
		}
		cards = append(cards, card{
			Project:   p,
			OpenHref:  OpenHref(p.ID, anchor),
			ModalPath: ModalPath(p.ID),
		})
	}
	return sectionData{
		Title:       s.Title,
		Description: s.Description,
		Anchor:      anchor,
		Projects:    cards,
	}
}

func newModalData(p models.Project, anchor string) *modalData {
	media := showcase.MediaFor(p)
	return &modalData{
		Project:   p,
		Media:     media,
		IsVideo:   media.Kind == showcase.MediaVideo,
		Actions:   showcase.ActionsFor(p),
		ClosePath: ClosePath,
		CloseHref: "/#" + anchor,
	}
}

func newPageData(s *models.Section, selected *models.Project) pageData {
	data := pageData{Section: newSectionData(s)}
	if selected != nil {
		data.Modal = newModalData(*selected, data.Section.Anchor)
	}
	return data
}

func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return templates.ExecuteTemplate(w, name, data)
	})
}

// Page renders the full HTML document. The modal is open iff selected is
// non-nil.
func Page(s *models.Section, selected *models.Project) templ.Component {
	return render("page", newPageData(s, selected))
}

// Section renders the section element with its grid and modal slot.
func Section(s *models.Section, selected *models.Project) templ.Component {
	return render("section", newPageData(s, selected))
}

// Modal renders the modal overlay for one project.
func Modal(p models.Project, anchor string) templ.Component {
	return render("modal", newModalData(p, anchor))
}

// ClosedModal renders the empty modal slot content.
func ClosedModal() templ.Component {
	return templ.NopComponent
}
