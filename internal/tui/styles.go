package tui

import "github.com/charmbracelet/lipgloss"

const (
	accent = lipgloss.Color("135")
	dim    = lipgloss.Color("245")
	muted  = lipgloss.Color("241")
)

// Styles groups the lipgloss styles of the browser.
var Styles = struct {
	Title       lipgloss.Style
	Divider     lipgloss.Style
	Description lipgloss.Style

	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardTitle   lipgloss.Style
	CardMedia   lipgloss.Style
	CardText    lipgloss.Style
	Tag         lipgloss.Style

	ModalBox   lipgloss.Style
	ModalTitle lipgloss.Style
	ModalClose lipgloss.Style
	ActionCode lipgloss.Style
	ActionMain lipgloss.Style
	ActionHref lipgloss.Style
	Help       lipgloss.Style
}{
	Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
	Divider:     lipgloss.NewStyle().Foreground(accent),
	Description: lipgloss.NewStyle().Bold(true).Foreground(dim),

	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1),
	CardFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1),
	CardTitle: lipgloss.NewStyle().Bold(true),
	CardMedia: lipgloss.NewStyle().Foreground(muted).Italic(true),
	CardText:  lipgloss.NewStyle().Foreground(dim),
	Tag:       lipgloss.NewStyle().Bold(true).Foreground(accent),

	ModalBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2),
	ModalTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
	ModalClose: lipgloss.NewStyle().Foreground(dim),
	ActionCode: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 1),
	ActionMain: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(accent).Padding(0, 1),
	ActionHref: lipgloss.NewStyle().Foreground(muted).Underline(true),
	Help:       lipgloss.NewStyle().Foreground(muted),
}
