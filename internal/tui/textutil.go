package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// truncate cuts s to at most maxWidth terminal columns, ending in an ellipsis
// when anything was dropped.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, ellipsis)
}

// wrap breaks s into lines of at most width columns on word boundaries.
// Words longer than width are truncated.
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(s) {
		word = truncate(word, width)
		w := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += w
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// clamp wraps s and keeps at most n lines, marking the cut with an ellipsis.
// The result always has exactly n lines.
func clamp(s string, width, n int) []string {
	lines := wrap(s, width)
	if len(lines) > n {
		last := lines[n-1]
		if runewidth.StringWidth(last)+runewidth.StringWidth(ellipsis) > width {
			last = runewidth.Truncate(last, width-runewidth.StringWidth(ellipsis), "")
		}
		lines = append(lines[:n-1], last+ellipsis)
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}
