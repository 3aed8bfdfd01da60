package model

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound indicates the moved card is not in its declared
	// source column. A stale drag payload, not a user error.
	ErrItemNotFound = errors.New("item not found in source column")

	// ErrUnknownColumn indicates a move named a column key that is not
	// part of the board.
	ErrUnknownColumn = errors.New("unknown column")
)

// MoveError wraps a move failure with the offending request.
type MoveError struct {
	Err error
	Req MoveRequest
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s (%s -> %s): %v", e.Req.ItemID, e.Req.From, e.Req.To, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }
