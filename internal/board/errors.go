package board

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedPlacement = errors.New("malformed placement")
	ErrMalformedPosition  = errors.New("malformed position")
	ErrEmptyBitboardQuery = errors.New("bitboard: set-bit query on an empty bitboard")
	ErrOverlappingPieces  = errors.New("square occupied by more than one piece")
	ErrInvalidMoveCode    = errors.New("invalid move code")
)

// PlacementError describes one defect in a piece-placement field.
// Row counts from 1 in text order (rank 8 is row 1). Column is the
// 1-based character offset inside the row, 0 when the defect concerns
// the row as a whole.
type PlacementError struct {
	Row    int
	Column int
	Char   byte
	Reason string
}

func (e *PlacementError) Error() string {
	switch {
	case e.Row == 0:
		return fmt.Sprintf("%v: %s", ErrMalformedPlacement, e.Reason)
	case e.Column == 0:
		return fmt.Sprintf("%v: row %d: %s", ErrMalformedPlacement, e.Row, e.Reason)
	default:
		return fmt.Sprintf("%v: row %d col %d (%q): %s", ErrMalformedPlacement, e.Row, e.Column, e.Char, e.Reason)
	}
}

func (e *PlacementError) Unwrap() error {
	return ErrMalformedPlacement
}

// PositionError describes a defect in one field of a FEN record.
type PositionError struct {
	Field  string
	Token  string
	Reason string
	Err    error
}

func (e *PositionError) Error() string {
	msg := fmt.Sprintf("%v: %s %q: %s", ErrMalformedPosition, e.Field, e.Token, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the position sentinel and the underlying cause,
// so a bad placement still matches ErrMalformedPlacement.
func (e *PositionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedPosition}
	}
	return []error{ErrMalformedPosition, e.Err}
}
