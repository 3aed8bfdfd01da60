package tui

import (
	"github.com/idilsaglam/board/internal/drag"
	"github.com/idilsaglam/board/internal/model"
	"github.com/idilsaglam/board/internal/ui"
)

// Rows above and below the board: title bar on top, blank line plus
// help footer below.
const (
	boardTop     = 1
	footerLines  = 2
	minColWidth  = 12
	minColHeight = 4
)

// layout fixes the geometry of one rendered frame. The view and mouse
// hit testing both derive from it, so a card is clickable exactly
// where it is drawn.
type layout struct {
	cols      int
	colWidth  int
	colHeight int
}

func newLayout(width, height, cols int) layout {
	if cols <= 0 {
		return layout{}
	}
	cw := (width - ui.ColumnGap*(cols-1)) / cols
	if cw < minColWidth {
		cw = minColWidth
	}
	ch := height - boardTop - footerLines
	if ch < minColHeight {
		ch = minColHeight
	}
	return layout{cols: cols, colWidth: cw, colHeight: ch}
}

// elementAt maps terminal coordinates to the card or column body under
// the pointer. Inside a column box, row 0 is the border, row 1 the
// column title, and row 2+j card j.
func (l layout) elementAt(s model.Snapshot, x, y int) (drag.Element, bool) {
	if l.cols == 0 || y < boardTop || y >= boardTop+l.colHeight {
		return drag.Element{}, false
	}
	stride := l.colWidth + ui.ColumnGap
	ci := x / stride
	if x < 0 || ci >= len(s.Order) {
		return drag.Element{}, false
	}
	if x >= ci*stride+l.colWidth {
		// in the gap between columns
		return drag.Element{}, false
	}
	key := s.Order[ci]
	cardRow := y - boardTop - 2
	if cards := s.Cards[key]; cardRow >= 0 && cardRow < len(cards) {
		return drag.Element{Column: key, Card: cards[cardRow].ID}, true
	}
	return drag.Element{Column: key}, true
}
