package tui

import "github.com/idilsaglam/board/internal/drag"

// gestureEngine is the in-process drag-and-drop adapter: it owns the
// translation from positioned input (mouse coordinates or the keyboard
// cursor) into the dragstart/enter/leave/drop lifecycle the drag
// controllers consume. Both input paths go through the same engine, so
// a keyboard move exercises exactly the code a mouse drag does.
type gestureEngine struct {
	sources  map[string]drag.SourceConfig // card id -> source
	cards    map[string]drag.TargetConfig // card id -> card target
	surfaces map[string]drag.TargetConfig // column key -> surface

	active  bool
	moved   bool // any motion since the gesture began
	payload drag.Payload
	src     drag.SourceConfig

	hoverCard    string
	hoverSurface string
}

func newGestureEngine() *gestureEngine {
	return &gestureEngine{
		sources:  make(map[string]drag.SourceConfig),
		cards:    make(map[string]drag.TargetConfig),
		surfaces: make(map[string]drag.TargetConfig),
	}
}

func (e *gestureEngine) RegisterSource(c drag.SourceConfig) drag.CleanupFunc {
	id := c.Element.Card
	e.sources[id] = c
	return func() { delete(e.sources, id) }
}

func (e *gestureEngine) RegisterTarget(c drag.TargetConfig) drag.CleanupFunc {
	if c.Element.Card == "" {
		key := c.Element.Column
		e.surfaces[key] = c
		return func() { delete(e.surfaces, key) }
	}
	id := c.Element.Card
	e.cards[id] = c
	return func() { delete(e.cards, id) }
}

// begin starts a gesture on the given card. False when no source is
// registered for it or a gesture is already in flight.
func (e *gestureEngine) begin(card string) bool {
	if e.active {
		return false
	}
	src, ok := e.sources[card]
	if !ok {
		return false
	}
	e.payload = src.GetPayload()
	src.OnDragStart()
	e.src = src
	e.active = true
	e.moved = false
	e.hoverCard = ""
	e.hoverSurface = ""
	return true
}

// markMoved records pointer motion; a press released without any
// motion is a click, not a drag.
func (e *gestureEngine) markMoved() {
	if e.active {
		e.moved = true
	}
}

// hover retargets the in-flight gesture. Enters are delivered before
// the matching leaves (most specific target first) and the surface
// acceptance is re-evaluated after the card claim settles, mirroring
// how nested targets see a pointer move.
func (e *gestureEngine) hover(el drag.Element, over bool) {
	if !e.active {
		return
	}
	newCard, newCol := "", ""
	if over {
		newCard, newCol = el.Card, el.Column
	}

	if newCard != e.hoverCard {
		if t, ok := e.cards[newCard]; ok && newCard != "" && t.CanAccept(e.payload) {
			t.OnEnter(e.payload)
		} else {
			newCard = ""
		}
		if t, ok := e.cards[e.hoverCard]; ok && e.hoverCard != "" {
			t.OnLeave(e.payload)
		}
		e.hoverCard = newCard
	}

	wantSurface := ""
	if newCol != "" {
		if s, ok := e.surfaces[newCol]; ok && s.CanAccept(e.payload) {
			wantSurface = newCol
		}
	}
	if wantSurface != e.hoverSurface {
		if wantSurface != "" {
			s := e.surfaces[wantSurface]
			s.OnEnter(e.payload)
		}
		if s, ok := e.surfaces[e.hoverSurface]; ok && e.hoverSurface != "" {
			s.OnLeave(e.payload)
		}
		e.hoverSurface = wantSurface
	}
}

// drop resolves the gesture on whatever is currently hovered.
// Eligibility of every recipient is decided before any handler runs:
// the card target's drop releases its claim, and that must not make
// the surface eligible for the same physical drop.
func (e *gestureEngine) drop() {
	if !e.active {
		return
	}
	cardCfg, hitCard := e.cards[e.hoverCard]
	hitCard = hitCard && e.hoverCard != "" && cardCfg.CanAccept(e.payload)
	surfCfg, hitSurface := e.surfaces[e.hoverSurface]
	hitSurface = hitSurface && e.hoverSurface != "" && surfCfg.CanAccept(e.payload)

	if hitCard {
		cardCfg.OnDrop(e.payload)
	}
	if hitSurface {
		surfCfg.OnDrop(e.payload)
	}
	e.finish()
}

// cancel ends the gesture with no drop. Controllers still see their
// leave and drag-end callbacks, which is the cleanup guarantee.
func (e *gestureEngine) cancel() {
	if !e.active {
		return
	}
	e.hover(drag.Element{}, false)
	e.finish()
}

func (e *gestureEngine) finish() {
	e.src.OnDragEnd()
	e.active = false
	e.hoverCard = ""
	e.hoverSurface = ""
	e.payload = drag.Payload{}
}
