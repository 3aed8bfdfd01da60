// Package drag holds the drag-and-drop core: the adapter contract that
// delivers drag lifecycle events, the per-card and per-column
// controllers that turn those events into move requests, and the Board
// orchestrator that applies them to the live snapshot.
//
// The package never touches pointer events. An adapter (the mouse layer
// in internal/tui, or a fake in tests) owns the translation from raw
// input to dragstart/enter/leave/drop, and the controllers here only
// see those callbacks, in the order the adapter delivers them. Handlers
// tolerate a drop without a preceding leave and a gesture that ends
// with no drop at all.
package drag

// PayloadKind tags what an in-flight gesture carries. Targets only
// accept card drags; anything else is ignored.
type PayloadKind string

// KindCard marks a card drag.
const KindCard PayloadKind = "card"

// Payload identifies the dragged card and its origin column for the
// duration of one gesture. It is never stored on the board.
type Payload struct {
	Kind   PayloadKind
	ItemID string
	From   string
}

// Element names the screen region a registration belongs to: a card
// within a column, or the column surface itself when Card is empty.
type Element struct {
	Column string
	Card   string
}

// CleanupFunc releases one registration.
type CleanupFunc func()

// Combine bundles several cleanups so an element's registrations can
// be released together.
func Combine(fns ...CleanupFunc) CleanupFunc {
	return func() {
		for _, fn := range fns {
			if fn != nil {
				fn()
			}
		}
	}
}

// SourceConfig registers an element as a drag origin.
type SourceConfig struct {
	Element     Element
	GetPayload  func() Payload
	OnDragStart func()
	// OnDragEnd fires when the gesture resolves, dropped or cancelled.
	OnDragEnd func()
}

// TargetConfig registers an element as a drop acceptor. The adapter
// consults CanAccept before delivering any of the callbacks.
type TargetConfig struct {
	Element   Element
	CanAccept func(Payload) bool
	OnEnter   func(Payload)
	OnLeave   func(Payload)
	OnDrop    func(Payload)
}

// Adapter is the narrow boundary with the input layer.
type Adapter interface {
	RegisterSource(SourceConfig) CleanupFunc
	RegisterTarget(TargetConfig) CleanupFunc
}
