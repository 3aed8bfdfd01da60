package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/board/internal/drag"
	"github.com/idilsaglam/board/internal/model"
	"github.com/idilsaglam/board/internal/ui"
)

// Model is the Bubble Tea model for the board. It owns the layout, the
// keyboard cursor, and the gesture engine; the card order itself lives
// in the drag.Board and changes only through applied moves.
type Model struct {
	board   *drag.Board
	ges     *gestureEngine
	cleanup drag.CleanupFunc

	keys keyMap
	help help.Model

	mouse  bool
	lay    layout
	width  int
	height int
	ready  bool

	cursorCol  int
	cursorCard int
	grabbed    bool // keyboard gesture in flight
}

func newModel(b *drag.Board, mouse bool) Model {
	ges := newGestureEngine()
	cleanup := b.Register(ges)
	return Model{
		board:   b,
		ges:     ges,
		cleanup: cleanup,
		keys:    defaultKeyMap(),
		help:    help.New(),
		mouse:   mouse,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.lay = newLayout(msg.Width, msg.Height, len(m.board.Snapshot().Order))
		m.ready = true
		return m, nil

	case tea.MouseMsg:
		if m.mouse {
			m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.grabbed {
			m.ges.cancel()
			m.grabbed = false
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if m.grabbed {
			m.ges.cancel()
			m.grabbed = false
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m = m.moveCursor(0, -1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m = m.moveCursor(0, 1)
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m = m.moveCursor(-1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m = m.moveCursor(1, 0)
		return m, nil

	case key.Matches(msg, m.keys.Grab):
		if m.grabbed {
			m.ges.drop()
			m.grabbed = false
			m = m.clampCursor()
			return m, nil
		}
		if el, ok := m.cursorElement(); ok && el.Card != "" {
			m.grabbed = m.ges.begin(el.Card)
		}
		return m, nil
	}
	return m, nil
}

// moveCursor shifts the keyboard cursor and, while a card is grabbed,
// retargets the gesture at whatever the cursor now points at.
func (m Model) moveCursor(dc, dr int) Model {
	s := m.board.Snapshot()
	if len(s.Order) == 0 {
		return m
	}
	m.cursorCol = clamp(m.cursorCol+dc, 0, len(s.Order)-1)
	// the slot one past the last card is the append position
	maxRow := len(s.Cards[s.Order[m.cursorCol]])
	m.cursorCard = clamp(m.cursorCard+dr, 0, maxRow)

	if m.grabbed {
		el, ok := m.cursorElement()
		m.ges.hover(el, ok)
	}
	return m
}

// cursorElement resolves the cursor position to a card or a column
// body (when sitting on the end slot).
func (m Model) cursorElement() (drag.Element, bool) {
	s := m.board.Snapshot()
	if m.cursorCol < 0 || m.cursorCol >= len(s.Order) {
		return drag.Element{}, false
	}
	key := s.Order[m.cursorCol]
	cards := s.Cards[key]
	if m.cursorCard < len(cards) {
		return drag.Element{Column: key, Card: cards[m.cursorCard].ID}, true
	}
	return drag.Element{Column: key}, true
}

func (m Model) clampCursor() Model {
	s := m.board.Snapshot()
	if len(s.Order) == 0 {
		return m
	}
	m.cursorCol = clamp(m.cursorCol, 0, len(s.Order)-1)
	m.cursorCard = clamp(m.cursorCard, 0, len(s.Cards[s.Order[m.cursorCol]]))
	return m
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	s := m.board.Snapshot()

	marks := ui.Marks{
		HoverCard:    m.ges.hoverCard,
		HoverColumn:  m.ges.hoverSurface,
		CursorColumn: m.cursorCol,
		CursorCard:   m.cursorCard,
		ShowCursor:   true,
	}
	if id, ok := m.board.Dragging(); ok {
		marks.Dragging = id
		if m.grabbed {
			marks.Grabbed = id
		}
	}

	header := ui.Title("Board")
	if marks.Grabbed != "" {
		header += ui.Muted("  moving: ") + labelOf(s, marks.Grabbed)
	}
	body := ui.RenderBoard(s, marks, m.lay.colWidth, m.lay.colHeight)
	footer := m.help.View(m.keys)
	return header + "\n" + body + "\n" + footer
}

func labelOf(s model.Snapshot, itemID string) string {
	if column, i, ok := s.Find(itemID); ok {
		return s.Cards[column][i].Label
	}
	return itemID
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
