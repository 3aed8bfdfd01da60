package drag

import "github.com/idilsaglam/board/internal/model"

// Surface gives a whole column append-to-end drop semantics. Card
// targets sit inside the column's region, so a drop over a card is
// eligible for both; the surface defers whenever the intent registry
// shows a nested card target engaged in this column. That acceptance
// check is the whole conflict policy: at most one move per drop.
type Surface struct {
	column  string
	intents *IntentRegistry
	onMove  func(model.MoveRequest)
	state   TargetState
}

func NewSurface(column string, intents *IntentRegistry, onMove func(model.MoveRequest)) *Surface {
	return &Surface{column: column, intents: intents, onMove: onMove}
}

// Register wires the surface into the adapter.
func (s *Surface) Register(a Adapter) CleanupFunc {
	return a.RegisterTarget(TargetConfig{
		Element:   Element{Column: s.column},
		CanAccept: s.accepts,
		OnEnter:   s.enter,
		OnLeave:   s.leave,
		OnDrop:    s.drop,
	})
}

// Hovering reports whether an accepted drag is over the column body.
func (s *Surface) Hovering() bool { return s.state == TargetHovering }

// Column returns the column key this surface covers.
func (s *Surface) Column() string { return s.column }

func (s *Surface) accepts(p Payload) bool {
	return p.Kind == KindCard && !s.intents.ClaimedIn(s.column)
}

func (s *Surface) enter(p Payload) {
	if !s.accepts(p) {
		return
	}
	s.state = TargetHovering
}

func (s *Surface) leave(Payload) { s.state = TargetIdle }

func (s *Surface) drop(p Payload) {
	defer func() { s.state = TargetIdle }()
	if !s.accepts(p) {
		return
	}
	s.onMove(model.MoveRequest{
		ItemID: p.ItemID,
		From:   p.From,
		To:     s.column,
		Anchor: model.End,
	})
}
