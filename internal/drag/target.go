package drag

import "github.com/idilsaglam/board/internal/model"

// TargetState is the hover state of one drop acceptor.
type TargetState int

const (
	TargetIdle TargetState = iota
	TargetHovering
)

// Target gives one card insert-before drop semantics: dropping on it
// places the dragged card in front of it, in its column.
type Target struct {
	itemID  string
	locate  func(itemID string) (column string, ok bool)
	intents *IntentRegistry
	onMove  func(model.MoveRequest)
	state   TargetState
}

func NewTarget(itemID string, locate func(string) (string, bool), intents *IntentRegistry, onMove func(model.MoveRequest)) *Target {
	return &Target{itemID: itemID, locate: locate, intents: intents, onMove: onMove}
}

// Register wires the target into the adapter.
func (t *Target) Register(a Adapter) CleanupFunc {
	column, _ := t.locate(t.itemID)
	return a.RegisterTarget(TargetConfig{
		Element:   Element{Column: column, Card: t.itemID},
		CanAccept: t.accepts,
		OnEnter:   t.enter,
		OnLeave:   t.leave,
		OnDrop:    t.drop,
	})
}

// Hovering reports whether an accepted drag is over this card.
func (t *Target) Hovering() bool { return t.state == TargetHovering }

func (t *Target) accepts(p Payload) bool { return p.Kind == KindCard }

func (t *Target) enter(p Payload) {
	if !t.accepts(p) {
		return
	}
	t.state = TargetHovering
	if column, ok := t.locate(t.itemID); ok {
		t.intents.Claim(column, t.itemID)
	}
}

func (t *Target) leave(Payload) { t.reset() }

func (t *Target) drop(p Payload) {
	defer t.reset()
	if !t.accepts(p) {
		return
	}
	column, ok := t.locate(t.itemID)
	if !ok {
		return
	}
	t.onMove(model.MoveRequest{
		ItemID: p.ItemID,
		From:   p.From,
		To:     column,
		Anchor: model.Before(t.itemID),
	})
}

func (t *Target) reset() {
	t.state = TargetIdle
	if column, ok := t.locate(t.itemID); ok {
		t.intents.Release(column, t.itemID)
	}
}
