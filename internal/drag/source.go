package drag

// SourceState is the drag-origin state of one card.
type SourceState int

const (
	SourceIdle SourceState = iota
	SourceDragging
)

// Source marks one card as a drag origin. The card's column is looked
// up at drag time, so the payload stays correct after earlier moves.
type Source struct {
	itemID string
	locate func(itemID string) (column string, ok bool)
	begin  func() bool
	end    func()
	state  SourceState
}

// NewSource builds a drag origin for a card. begin gates gesture
// starts (false while another gesture is unresolved), end reports that
// this gesture finished.
func NewSource(itemID string, locate func(string) (string, bool), begin func() bool, end func()) *Source {
	return &Source{itemID: itemID, locate: locate, begin: begin, end: end}
}

// Register wires the source into the adapter.
func (s *Source) Register(a Adapter) CleanupFunc {
	column, _ := s.locate(s.itemID)
	return a.RegisterSource(SourceConfig{
		Element:     Element{Column: column, Card: s.itemID},
		GetPayload:  s.payload,
		OnDragStart: s.dragStart,
		OnDragEnd:   s.dragEnd,
	})
}

// Dragging reports whether the card is currently being dragged.
func (s *Source) Dragging() bool { return s.state == SourceDragging }

func (s *Source) payload() Payload {
	column, _ := s.locate(s.itemID)
	return Payload{Kind: KindCard, ItemID: s.itemID, From: column}
}

func (s *Source) dragStart() {
	if !s.begin() {
		return
	}
	s.state = SourceDragging
}

// dragEnd resets to idle unconditionally: a gesture released over no
// valid target still ends.
func (s *Source) dragEnd() {
	if s.state == SourceDragging {
		s.end()
	}
	s.state = SourceIdle
}
