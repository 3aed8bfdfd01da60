package model

import "github.com/google/uuid"

// Item is the domain model for a board card.
// Kept minimal on purpose; identity is the ID.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// NewItem builds an Item with a fresh unique id.
func NewItem(label string) Item {
	return Item{ID: uuid.NewString(), Label: label}
}

// Anchor names the insertion point of a move: the id of the card to
// insert before, or End to append to the column.
type Anchor string

// End is the append-to-end sentinel.
const End Anchor = ""

// Before returns an anchor that inserts in front of the given card.
func Before(id string) Anchor { return Anchor(id) }

// Snapshot maps column keys to ordered card sequences. Order fixes the
// column render order; the key set never changes after New. Snapshots
// are replaced wholesale on every move, never mutated in place.
type Snapshot struct {
	Order []string
	Cards map[string][]Item
}

// New builds an empty snapshot with the given fixed column order.
func New(order ...string) Snapshot {
	cards := make(map[string][]Item, len(order))
	for _, key := range order {
		cards[key] = nil
	}
	return Snapshot{Order: order, Cards: cards}
}

// Find locates a card anywhere on the board.
func (s Snapshot) Find(itemID string) (column string, index int, ok bool) {
	for _, key := range s.Order {
		if i := indexOf(s.Cards[key], itemID); i >= 0 {
			return key, i, true
		}
	}
	return "", 0, false
}

// MoveRequest is the normalized outcome of a drop: which card moves,
// from where, to where, and in front of what.
type MoveRequest struct {
	ItemID string
	From   string
	To     string
	Anchor Anchor
}

// MoveResult reports where a successful move landed.
type MoveResult struct {
	FromIndex int
	ToIndex   int
	// AnchorMissed is set when the anchor card was not in the target
	// column and the move fell back to appending.
	AnchorMissed bool
}

// ApplyMove relocates one card and returns the derived snapshot. The
// input snapshot is returned untouched on any error.
//
// Insertion goes in front of the anchor card as found in the target
// column after the dragged card has been removed. A missing anchor
// degrades to append-at-end. Within a single column, dropping a card
// onto its immediate successor would reinsert it in its original slot;
// that case is nudged one position forward so the cards swap.
func ApplyMove(s Snapshot, req MoveRequest) (Snapshot, MoveResult, error) {
	src, ok := s.Cards[req.From]
	if !ok {
		return s, MoveResult{}, &MoveError{Err: ErrUnknownColumn, Req: req}
	}
	if _, ok := s.Cards[req.To]; !ok {
		return s, MoveResult{}, &MoveError{Err: ErrUnknownColumn, Req: req}
	}
	from := indexOf(src, req.ItemID)
	if from < 0 {
		return s, MoveResult{}, &MoveError{Err: ErrItemNotFound, Req: req}
	}
	item := src[from]

	rest := make([]Item, 0, len(src)-1)
	rest = append(rest, src[:from]...)
	rest = append(rest, src[from+1:]...)

	dst := s.Cards[req.To]
	if req.From == req.To {
		dst = rest
	}

	res := MoveResult{FromIndex: from}
	insert := len(dst)
	if req.Anchor != End {
		if at := indexOf(dst, string(req.Anchor)); at >= 0 {
			insert = at
			if req.From == req.To && from == at {
				insert++
			}
		} else {
			res.AnchorMissed = true
		}
	}

	moved := make([]Item, 0, len(dst)+1)
	moved = append(moved, dst[:insert]...)
	moved = append(moved, item)
	moved = append(moved, dst[insert:]...)

	cards := make(map[string][]Item, len(s.Cards))
	for key, items := range s.Cards {
		cards[key] = items
	}
	cards[req.From] = rest
	cards[req.To] = moved

	res.ToIndex = insert
	return Snapshot{Order: s.Order, Cards: cards}, res, nil
}

func indexOf(items []Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
