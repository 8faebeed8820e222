// Package tui is a terminal browser for a projects section. It renders the
// card grid with lipgloss and drives the modal through modal.Controller, so a
// mouse press outside the modal box dismisses it.
package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"showcase.dev/internal/modal"
	"showcase.dev/internal/models"
	"showcase.dev/internal/showcase"
)

// Model is the bubbletea model of the browser.
type Model struct {
	section *models.Section
	anchor  string

	doc  *modal.Document
	ctrl *modal.Controller

	width, height int
	grid          gridLayout
	offset        int
	focus         int

	keys keyMap
	help help.Model
}

var _ tea.Model = (*Model)(nil)

// New creates a browser for section. A nil section shows an empty grid.
func New(section *models.Section) *Model {
	if section == nil {
		section = &models.Section{}
	}
	section.Normalize()

	doc := modal.NewDocument()
	m := &Model{
		section: section,
		anchor:  showcase.AnchorID(section.Title),
		doc:     doc,
		ctrl:    modal.NewController(doc),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	m.resize(80, 24)
	return m
}

// Document returns the pointer-down source the modal subscribes to.
func (m *Model) Document() *modal.Document {
	return m.doc
}

// Selected returns the project shown in the modal.
func (m *Model) Selected() (models.Project, bool) {
	return m.ctrl.Selected()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		m.ctrl.Teardown()
		return tea.Quit
	}

	if m.ctrl.IsOpen() {
		if key.Matches(msg, m.keys.Close) {
			m.closeModal("close control")
		}
		return nil
	}

	n := len(m.section.Projects)
	if n == 0 {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Left):
		m.setFocus(m.focus - 1)
	case key.Matches(msg, m.keys.Right):
		m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.Up):
		m.setFocus(m.focus - m.grid.cols)
	case key.Matches(msg, m.keys.Down):
		m.setFocus(m.focus + m.grid.cols)
	case key.Matches(msg, m.keys.Open):
		m.openModal(m.focus)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		p := modal.Point{X: msg.X, Y: msg.Y}
		if m.ctrl.IsOpen() {
			m.doc.DispatchPointerDown(p)
			if !m.ctrl.IsOpen() {
				slog.Debug("modal dismissed", "reason", "outside click")
				return
			}
			if m.closeRect().Contains(p) {
				m.closeModal("close control")
			}
			return
		}
		if i, ok := m.cardAt(p); ok {
			m.focus = i
			m.openModal(i)
		}
	case msg.Button == tea.MouseButtonWheelUp && !m.ctrl.IsOpen():
		m.scroll(-1)
	case msg.Button == tea.MouseButtonWheelDown && !m.ctrl.IsOpen():
		m.scroll(1)
	}
}

func (m *Model) openModal(i int) {
	if i < 0 || i >= len(m.section.Projects) {
		return
	}
	p := m.section.Projects[i]
	m.ctrl.Open(p)
	if !m.ctrl.IsOpen() {
		return
	}
	m.ctrl.SetRoot(m.modalRect())
	slog.Debug("modal opened", "project", p.ID)
}

func (m *Model) closeModal(reason string) {
	m.ctrl.Close()
	slog.Debug("modal dismissed", "reason", reason)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.grid = layoutGrid(width, len(m.section.Projects))
	m.scroll(0)
	if m.ctrl.IsOpen() {
		m.ctrl.SetRoot(m.modalRect())
	}
}

func (m *Model) gridHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 0 {
		return 0
	}
	return h
}

func (m *Model) scroll(delta int) {
	m.offset += delta
	maxOffset := m.grid.lines() - m.gridHeight()
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) setFocus(i int) {
	n := len(m.section.Projects)
	if i < 0 || i >= n {
		return
	}
	m.focus = i
	r := m.grid.rects[i]
	if r.Y < m.offset {
		m.offset = r.Y
	}
	if bottom := r.Y + r.H; bottom > m.offset+m.gridHeight() {
		m.offset = bottom - m.gridHeight()
	}
	m.scroll(0)
}

// cardAt hit-tests a screen position against the visible cards.
func (m *Model) cardAt(p modal.Point) (int, bool) {
	if p.Y < headerHeight || p.Y >= headerHeight+m.gridHeight() {
		return 0, false
	}
	gp := modal.Point{X: p.X, Y: p.Y - headerHeight + m.offset}
	for i, r := range m.grid.rects {
		if r.Contains(gp) {
			return i, true
		}
	}
	return 0, false
}

// View implements tea.Model.
func (m *Model) View() string {
	if p, ok := m.ctrl.Selected(); ok {
		r := m.modalRect()
		return lipgloss.NewStyle().Margin(r.Y, 0, 0, r.X).Render(m.renderModal(p))
	}
	return m.renderHeader() + "\n" + m.renderGrid() + "\n" + m.renderFooter()
}

func (m *Model) renderHeader() string {
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}
	lines := []string{
		center(Styles.Title.Render(truncate(m.section.Title, m.width))),
		center(Styles.Divider.Render(strings.Repeat("━", min(16, m.width)))),
		center(Styles.Description.Render(truncate(m.section.Description, m.width))),
		"",
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderGrid() string {
	visible := m.gridHeight()
	out := make([]string, visible)
	if len(m.section.Projects) == 0 {
		if visible > 0 {
			out[0] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, Styles.Help.Render("No projects yet."))
		}
		return strings.Join(out, "\n")
	}

	var rows []string
	for start := 0; start < len(m.section.Projects); start += m.grid.cols {
		end := min(start+m.grid.cols, len(m.section.Projects))
		var cells []string
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", gapX))
			}
			cells = append(cells, m.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := strings.Split(strings.Join(rows, strings.Repeat("\n", gapY+1)), "\n")

	pad := strings.Repeat(" ", marginX)
	for i := range out {
		if line := m.offset + i; line < len(grid) {
			out[i] = pad + grid[line]
		}
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderCard(i int) string {
	p := m.section.Projects[i]
	inner := m.grid.cardWidth - 4

	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, "#"+t)
	}

	lines := []string{
		Styles.CardTitle.Render(truncate(p.Title, inner)),
		Styles.CardMedia.Render(truncate("▣ "+p.Image, inner)),
	}
	for _, l := range clamp(p.Description, inner, 3) {
		lines = append(lines, Styles.CardText.Render(l))
	}
	lines = append(lines, "", Styles.Tag.Render(truncate(strings.ToUpper(strings.Join(tags, " ")), inner)))

	style := Styles.Card
	if i == m.focus {
		style = Styles.CardFocused
	}
	return style.Width(m.grid.cardWidth - 2).Height(cardHeight - 2).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter() string {
	return Styles.Help.Render(truncate(m.help.View(m.keys), m.width))
}

func (m *Model) modalWidth() int {
	w := min(maxModalWidth, m.width-4)
	return max(w, minModalWidth)
}

// modalInner is the content width inside the modal border and padding.
func (m *Model) modalInner() int {
	return m.modalWidth() - 2 - 4
}

func (m *Model) renderModal(p models.Project) string {
	inner := m.modalInner()

	closeCtl := Styles.ModalClose.Render("[x]")
	title := Styles.ModalTitle.Render(truncate(p.Title, inner-4))
	gap := max(1, inner-lipgloss.Width(title)-lipgloss.Width(closeCtl))
	header := title + strings.Repeat(" ", gap) + closeCtl

	var mediaLine string
	if media := showcase.MediaFor(p); media.Kind == showcase.MediaVideo {
		mediaLine = Styles.CardMedia.Render(truncate("▶ "+media.Src, inner))
	} else {
		mediaLine = Styles.CardMedia.Render(truncate("▣ "+media.Src, inner))
	}

	var tags []string
	if len(p.Tags) > 0 {
		tags = []string{Styles.Tag.Render(truncate(strings.ToUpper("#"+strings.Join(p.Tags, " #")), inner))}
	}

	var actions []string
	for _, l := range showcase.ActionsFor(p).Links() {
		style := Styles.ActionMain
		if l.Icon == showcase.IconGitHub {
			style = Styles.ActionCode
		}
		label := style.Render(l.Label)
		href := Styles.ActionHref.Render(truncate(l.Href, max(0, inner-lipgloss.Width(label)-1)))
		actions = append(actions, label+" "+href)
	}

	body := modalBody{
		header:  header,
		media:   []string{mediaLine},
		desc:    wrap(p.Description, inner),
		tags:    tags,
		actions: actions,
		spaced:  true,
	}
	body.fit(m.height-4, p.Description, inner)

	return Styles.ModalBox.Width(m.modalWidth() - 2).Render(strings.Join(body.lines(), "\n"))
}

// modalBody holds the modal's content blocks in display order. The header
// always comes first so the close control keeps its position.
type modalBody struct {
	header  string
	media   []string
	desc    []string
	tags    []string
	actions []string
	spaced  bool
}

func (b modalBody) lines() []string {
	lines := []string{b.header}
	for _, block := range [][]string{b.media, b.desc, b.tags, b.actions} {
		if len(block) == 0 {
			continue
		}
		if b.spaced {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
	}
	return lines
}

// fit shrinks the body to height lines, giving up tags, description length,
// spacing, media and finally the description. Header and actions stay.
func (b *modalBody) fit(height int, description string, width int) {
	over := func() int { return len(b.lines()) - height }
	if over() <= 0 {
		return
	}
	b.tags = nil
	if n := over(); n > 0 && len(b.desc) > 1 {
		b.desc = clamp(description, width, max(1, len(b.desc)-n))
	}
	if over() > 0 {
		b.spaced = false
	}
	if over() > 0 {
		b.media = nil
	}
	if over() > 0 {
		b.desc = nil
	}
}

// modalRect is where the modal box is drawn on screen.
func (m *Model) modalRect() modal.Rect {
	p, ok := m.ctrl.Selected()
	if !ok {
		return modal.Rect{}
	}
	box := m.renderModal(p)
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	return modal.Rect{
		X: max(0, (m.width-w)/2),
		Y: max(0, (m.height-h)/2),
		W: w,
		H: h,
	}
}

// closeRect is the "[x]" control in the modal's first content line.
func (m *Model) closeRect() modal.Rect {
	r := m.modalRect()
	if r.Empty() {
		return r
	}
	return modal.Rect{
		X: r.X + 1 + 2 + m.modalInner() - 3,
		Y: r.Y + 1 + 1,
		W: 3,
		H: 1,
	}
}
