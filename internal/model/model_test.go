package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func snap(cols map[string][]string, order ...string) Snapshot {
	s := New(order...)
	for key, ids := range cols {
		for _, id := range ids {
			s.Cards[key] = append(s.Cards[key], Item{ID: id, Label: id})
		}
	}
	return s
}

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestApplyMoveAcrossColumns(t *testing.T) {
	s := snap(map[string][]string{"a": {"x", "y"}, "b": {"z"}}, "a", "b")

	next, res, err := ApplyMove(s, MoveRequest{ItemID: "x", From: "a", To: "b", Anchor: Before("z")})
	require.NoError(t, err)
	require.Equal(t, []string{"y"}, ids(next.Cards["a"]))
	require.Equal(t, []string{"x", "z"}, ids(next.Cards["b"]))
	require.Equal(t, 0, res.FromIndex)
	require.Equal(t, 0, res.ToIndex)
	require.False(t, res.AnchorMissed)

	// the input snapshot is untouched
	require.Equal(t, []string{"x", "y"}, ids(s.Cards["a"]))
	require.Equal(t, []string{"z"}, ids(s.Cards["b"]))
}

func TestApplyMoveAppendToEnd(t *testing.T) {
	s := snap(map[string][]string{"a": {"x", "y"}, "b": {}}, "a", "b")

	next, res, err := ApplyMove(s, MoveRequest{ItemID: "x", From: "a", To: "b", Anchor: End})
	require.NoError(t, err)
	require.Equal(t, []string{"y"}, ids(next.Cards["a"]))
	require.Equal(t, []string{"x"}, ids(next.Cards["b"]))
	require.False(t, res.AnchorMissed)
}

func TestApplyMoveForwardWithinColumn(t *testing.T) {
	s := snap(map[string][]string{"a": {"x", "y", "z"}}, "a")

	next, _, err := ApplyMove(s, MoveRequest{ItemID: "x", From: "a", To: "a", Anchor: Before("z")})
	require.NoError(t, err)
	require.Equal(t, []string{"y", "x", "z"}, ids(next.Cards["a"]))
}

func TestApplyMoveOntoImmediateSuccessor(t *testing.T) {
	// Dropping a card onto the card right below it swaps the pair
	// instead of reinserting it where it started.
	s := snap(map[string][]string{"a": {"x", "y", "z"}}, "a")

	next, _, err := ApplyMove(s, MoveRequest{ItemID: "x", From: "a", To: "a", Anchor: Before("y")})
	require.NoError(t, err)
	require.Equal(t, []string{"y", "x", "z"}, ids(next.Cards["a"]))
}

func TestApplyMoveBackwardWithinColumn(t *testing.T) {
	s := snap(map[string][]string{"a": {"x", "y", "z"}}, "a")

	next, _, err := ApplyMove(s, MoveRequest{ItemID: "z", From: "a", To: "a", Anchor: Before("y")})
	require.NoError(t, err)
	require.Equal(t, []string{"x", "z", "y"}, ids(next.Cards["a"]))
}

func TestApplyMoveMissingAnchorAppends(t *testing.T) {
	s := snap(map[string][]string{"a": {"x"}, "b": {"z"}}, "a", "b")

	next, res, err := ApplyMove(s, MoveRequest{ItemID: "x", From: "a", To: "b", Anchor: Before("gone")})
	require.NoError(t, err)
	require.True(t, res.AnchorMissed)
	require.Equal(t, []string{"z", "x"}, ids(next.Cards["b"]))
}

func TestApplyMoveAnchorIsMovedCard(t *testing.T) {
	// Anchoring on the dragged card itself: the anchor is gone once the
	// card is lifted, so the move degrades to append.
	s := snap(map[string][]string{"a": {"x", "y", "z"}}, "a")

	next, res, err := ApplyMove(s, MoveRequest{ItemID: "x", From: "a", To: "a", Anchor: Before("x")})
	require.NoError(t, err)
	require.True(t, res.AnchorMissed)
	require.Equal(t, []string{"y", "z", "x"}, ids(next.Cards["a"]))
}

func TestApplyMoveUnknownItemLeavesSnapshotUnchanged(t *testing.T) {
	s := snap(map[string][]string{"a": {"x"}, "b": {"z"}}, "a", "b")

	next, _, err := ApplyMove(s, MoveRequest{ItemID: "ghost", From: "a", To: "b", Anchor: End})
	require.ErrorIs(t, err, ErrItemNotFound)
	require.Equal(t, s.Cards, next.Cards)
	// same underlying sequences, not copies
	require.Same(t, &s.Cards["a"][0], &next.Cards["a"][0])
}

func TestApplyMoveWrongSourceColumn(t *testing.T) {
	// The card exists, but not where the payload claims.
	s := snap(map[string][]string{"a": {"x"}, "b": {"z"}}, "a", "b")

	_, _, err := ApplyMove(s, MoveRequest{ItemID: "z", From: "a", To: "b", Anchor: End})
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestApplyMoveUnknownColumn(t *testing.T) {
	s := snap(map[string][]string{"a": {"x"}}, "a")

	_, _, err := ApplyMove(s, MoveRequest{ItemID: "x", From: "a", To: "nope", Anchor: End})
	require.ErrorIs(t, err, ErrUnknownColumn)

	_, _, err = ApplyMove(s, MoveRequest{ItemID: "x", From: "nope", To: "a", Anchor: End})
	require.ErrorIs(t, err, ErrUnknownColumn)
}

func TestApplyMoveKeepsEveryCardExactlyOnce(t *testing.T) {
	s := snap(map[string][]string{"a": {"x", "y"}, "b": {"z"}, "c": {}}, "a", "b", "c")

	moves := []MoveRequest{
		{ItemID: "x", From: "a", To: "b", Anchor: Before("z")},
		{ItemID: "z", From: "b", To: "c", Anchor: End},
		{ItemID: "x", From: "b", To: "b", Anchor: Before("x")},
		{ItemID: "y", From: "a", To: "c", Anchor: Before("z")},
		{ItemID: "z", From: "c", To: "a", Anchor: Before("missing")},
	}
	for _, req := range moves {
		var err error
		s, _, err = ApplyMove(s, req)
		require.NoError(t, err)

		seen := map[string]int{}
		total := 0
		for _, key := range s.Order {
			for _, it := range s.Cards[key] {
				seen[it.ID]++
				total++
			}
		}
		require.Equal(t, 3, total)
		for id, n := range seen {
			require.Equalf(t, 1, n, "card %s appears %d times after %+v", id, n, req)
		}
	}
}

func TestFind(t *testing.T) {
	s := snap(map[string][]string{"a": {"x"}, "b": {"y", "z"}}, "a", "b")

	col, idx, ok := s.Find("z")
	require.True(t, ok)
	require.Equal(t, "b", col)
	require.Equal(t, 1, idx)

	_, _, ok = s.Find("ghost")
	require.False(t, ok)
}

func TestNewItemAssignsUniqueIDs(t *testing.T) {
	a := NewItem("one")
	b := NewItem("one")
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, "one", a.Label)
}
