package tui

import "showcase.dev/internal/modal"

const (
	headerHeight = 4
	footerHeight = 1
	cardHeight   = 9
	gapX         = 2
	gapY         = 1
	marginX      = 2
	minCardWidth = 20

	// Column breakpoints in cells, roughly the md and xl widths of the web grid
	// at 8px per cell.
	twoColumnWidth   = 96
	threeColumnWidth = 160

	maxModalWidth = 80
	minModalWidth = 30
)

// columnsFor returns the number of grid columns for a terminal width.
func columnsFor(width int) int {
	switch {
	case width >= threeColumnWidth:
		return 3
	case width >= twoColumnWidth:
		return 2
	default:
		return 1
	}
}

// gridLayout places n cards. Rects are in grid coordinates: Y is relative to
// the first grid line, before scrolling.
type gridLayout struct {
	cols      int
	cardWidth int
	rects     []modal.Rect
}

func layoutGrid(width, n int) gridLayout {
	cols := columnsFor(width)
	cardWidth := (width - 2*marginX - (cols-1)*gapX) / cols
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}

	rects := make([]modal.Rect, n)
	for i := range rects {
		row, col := i/cols, i%cols
		rects[i] = modal.Rect{
			X: marginX + col*(cardWidth+gapX),
			Y: row * (cardHeight + gapY),
			W: cardWidth,
			H: cardHeight,
		}
	}
	return gridLayout{cols: cols, cardWidth: cardWidth, rects: rects}
}

// lines returns the number of grid lines the cards occupy.
func (g gridLayout) lines() int {
	if len(g.rects) == 0 {
		return 0
	}
	last := g.rects[len(g.rects)-1]
	return last.Y + last.H
}
