package drag

import "github.com/idilsaglam/board/internal/model"

// Board owns the live snapshot and funnels every controller's move
// request through a single entry point. All calls happen on one
// goroutine (the UI event loop); there is no locking here.
type Board struct {
	snap    model.Snapshot
	intents IntentRegistry

	sources  map[string]*Source
	targets  map[string]*Target
	surfaces map[string]*Surface

	// OnRender, when set, fires with the new snapshot after every
	// applied move.
	OnRender func(model.Snapshot)

	// Logf, when set, receives swallowed faults: stale payloads and
	// anchor fallbacks. Moves are never surfaced to the user as errors.
	Logf func(format string, args ...any)

	inGesture bool
}

// New builds a board around an initial snapshot.
func New(snap model.Snapshot) *Board {
	return &Board{
		snap:     snap,
		sources:  make(map[string]*Source),
		targets:  make(map[string]*Target),
		surfaces: make(map[string]*Surface),
	}
}

// Register builds a drag source and a drop target for every card and a
// drop surface for every column, registers them all with the adapter,
// and returns one cleanup releasing the lot.
func (b *Board) Register(a Adapter) CleanupFunc {
	var cleanups []CleanupFunc
	for _, column := range b.snap.Order {
		surf := NewSurface(column, &b.intents, b.OnMove)
		b.surfaces[column] = surf
		cleanups = append(cleanups, surf.Register(a))

		for _, it := range b.snap.Cards[column] {
			src := NewSource(it.ID, b.locate, b.beginGesture, b.endGesture)
			b.sources[it.ID] = src
			cleanups = append(cleanups, src.Register(a))

			tgt := NewTarget(it.ID, b.locate, &b.intents, b.OnMove)
			b.targets[it.ID] = tgt
			cleanups = append(cleanups, tgt.Register(a))
		}
	}
	return Combine(cleanups...)
}

// OnMove applies one move request against the current snapshot. On
// success the snapshot is swapped and the render hook fires; on a
// stale or inconsistent request the old snapshot stays and the fault
// is only logged.
func (b *Board) OnMove(req model.MoveRequest) {
	next, res, err := model.ApplyMove(b.snap, req)
	if err != nil {
		b.logf("move dropped: %v", err)
		return
	}
	if res.AnchorMissed {
		b.logf("anchor %q missing in column %q, appended %q at end", string(req.Anchor), req.To, req.ItemID)
	}
	b.snap = next
	if b.OnRender != nil {
		b.OnRender(next)
	}
}

// Snapshot returns the current board state. Read-only: callers must
// not modify the sequences.
func (b *Board) Snapshot() model.Snapshot { return b.snap }

// Intents exposes the registry for the conflict checks in tests and
// for hover rendering.
func (b *Board) Intents() *IntentRegistry { return &b.intents }

// Source returns the drag source controller for a card.
func (b *Board) Source(itemID string) *Source { return b.sources[itemID] }

// Target returns the drop target controller for a card.
func (b *Board) Target(itemID string) *Target { return b.targets[itemID] }

// Surface returns the drop surface controller for a column.
func (b *Board) Surface(column string) *Surface { return b.surfaces[column] }

// Dragging returns the id of the card currently being dragged, if any.
func (b *Board) Dragging() (string, bool) {
	for id, src := range b.sources {
		if src.Dragging() {
			return id, true
		}
	}
	return "", false
}

func (b *Board) locate(itemID string) (string, bool) {
	column, _, ok := b.snap.Find(itemID)
	return column, ok
}

// beginGesture admits at most one unresolved gesture at a time, even
// if the adapter misbehaves.
func (b *Board) beginGesture() bool {
	if b.inGesture {
		b.logf("drag start ignored: another gesture is active")
		return false
	}
	b.inGesture = true
	return true
}

func (b *Board) endGesture() { b.inGesture = false }

func (b *Board) logf(format string, args ...any) {
	if b.Logf != nil {
		b.Logf(format, args...)
	}
}
