// Package modal implements the open/close state machine of the project modal
// and the scoped outside-click listener that goes with it.
//
// A Controller is owned by a single UI loop and is not safe for concurrent
// use. The Document it subscribes to may be shared.
package modal

import "showcase.dev/internal/models"

// Controller tracks which project, if any, the modal shows.
//
// While open it holds exactly one pointer-down subscription on its Document;
// every path out of the open state releases it.
type Controller struct {
	doc *Document

	selected *models.Project
	sub      *Subscription

	root    Rect
	hasRoot bool

	tornDown bool
}

// NewController creates a closed Controller listening on doc while open.
func NewController(doc *Document) *Controller {
	return &Controller{doc: doc}
}

// Open selects p. Opening while already open swaps the project and keeps the
// existing subscription.
func (c *Controller) Open(p models.Project) {
	if c.tornDown {
		return
	}
	selected := p
	c.selected = &selected
	if c.sub == nil {
		c.sub = c.doc.OnPointerDown(c.handlePointerDown)
	}
}

// Close clears the selection and releases the subscription.
func (c *Controller) Close() {
	c.selected = nil
	c.hasRoot = false
	c.root = Rect{}
	if c.sub != nil {
		c.sub.Release()
		c.sub = nil
	}
}

// Teardown closes the modal for good. Later calls to Open are ignored.
func (c *Controller) Teardown() {
	c.Close()
	c.tornDown = true
}

// SetRoot records where the modal's root element was laid out. Until a root
// is set, pointer-down events never dismiss the modal.
func (c *Controller) SetRoot(r Rect) {
	if c.selected == nil {
		return
	}
	c.root = r
	c.hasRoot = true
}

// IsOpen reports whether a project is selected.
func (c *Controller) IsOpen() bool {
	return c.selected != nil
}

// Selected returns the selected project.
func (c *Controller) Selected() (models.Project, bool) {
	if c.selected == nil {
		return models.Project{}, false
	}
	return *c.selected, true
}

func (c *Controller) handlePointerDown(p Point) {
	if !c.hasRoot {
		return
	}
	if !c.root.Contains(p) {
		c.Close()
	}
}
