package tui

import tea "github.com/charmbracelet/bubbletea"

// handleMouse translates pointer events into the drag lifecycle.
// Press on a card starts a gesture, motion retargets it, release drops
// on whatever is under the pointer — or cancels when that is nothing.
func (m Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.grabbed {
			return
		}
		if el, ok := m.lay.elementAt(m.board.Snapshot(), msg.X, msg.Y); ok && el.Card != "" {
			m.ges.begin(el.Card)
		}

	case tea.MouseActionMotion:
		if !m.ges.active || m.grabbed {
			return
		}
		el, ok := m.lay.elementAt(m.board.Snapshot(), msg.X, msg.Y)
		m.ges.markMoved()
		m.ges.hover(el, ok)

	case tea.MouseActionRelease:
		if !m.ges.active || m.grabbed {
			return
		}
		if !m.ges.moved {
			// press and release with no motion in between is a click
			m.ges.cancel()
			return
		}
		el, ok := m.lay.elementAt(m.board.Snapshot(), msg.X, msg.Y)
		m.ges.hover(el, ok)
		m.ges.drop()
	}
}
