package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/board/internal/model"
)

// ColumnGap is the number of blank cells between adjacent columns.
// Mouse hit testing depends on it matching the rendered output.
const ColumnGap = 1

// Marks carries the transient visual state of one render: what is
// dragged, hovered, grabbed, and where the keyboard cursor sits.
// Everything here is presentation only; none of it lives in the
// snapshot.
type Marks struct {
	Dragging    string // card id shown faint at its origin
	HoverCard   string // card id showing the insert-before caret
	HoverColumn string // column key with a highlighted border
	Grabbed     string // card id grabbed in keyboard mode

	CursorColumn int
	CursorCard   int // index within the column; len(cards) is the end slot
	ShowCursor   bool
}

// RenderBoard draws every column side by side. Each column box is
// exactly colWidth x colHeight cells: border, then a title line, then
// one line per card.
func RenderBoard(s model.Snapshot, m Marks, colWidth, colHeight int) string {
	views := make([]string, 0, 2*len(s.Order))
	gap := strings.Repeat(" ", ColumnGap)
	for ci, key := range s.Order {
		if ci > 0 {
			views = append(views, gap)
		}
		views = append(views, renderColumn(s.Cards[key], key, m, ci, colWidth, colHeight))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func renderColumn(cards []model.Item, key string, m Marks, ci, colWidth, colHeight int) string {
	inner := colWidth - 2

	lines := make([]string, 0, len(cards)+2)
	lines = append(lines, columnTitleStyle.Render(truncate(key, inner)))
	for j, it := range cards {
		lines = append(lines, renderCard(it, m, ci, j, inner))
	}
	if m.ShowCursor && m.CursorColumn == ci && m.CursorCard >= len(cards) {
		lines = append(lines, cursorStyle.Render(">")+mutedStyle.Render(" end"))
	}

	box := columnStyle
	if key == m.HoverColumn {
		box = columnHoverStyle
	}
	return box.Width(inner).Height(colHeight - 2).Render(strings.Join(lines, "\n"))
}

func renderCard(it model.Item, m Marks, ci, j, inner int) string {
	prefix := "  "
	label := truncate(it.Label, inner-2)

	switch {
	case m.ShowCursor && m.CursorColumn == ci && m.CursorCard == j:
		prefix = cursorStyle.Render("> ")
	case it.ID == m.Grabbed:
		prefix = grabbedStyle.Render("◆ ")
	case it.ID == m.HoverCard:
		prefix = hoverStyle.Render("▸ ")
	}
	if it.ID == m.Dragging && it.ID != m.Grabbed {
		label = draggingStyle.Render(label)
	}
	return prefix + label
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	if len(r) > w-1 {
		r = r[:w-1]
	}
	return string(r) + "…"
}
