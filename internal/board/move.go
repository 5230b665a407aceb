package board

import "fmt"

// Move is a pseudolegal move record. Promotion is NoPieceType for
// non-promoting moves.
type Move struct {
	From      Square
	To        Square
	Capture   bool
	EnPassant bool
	Promotion PieceType
}

// NewMove creates a normal move.
func NewMove(from, to Square, capture bool) Move {
	return Move{From: from, To: to, Capture: capture, Promotion: NoPieceType}
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, capture bool, promo PieceType) Move {
	return Move{From: from, To: to, Capture: capture, Promotion: promo}
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	return Move{From: from, To: to, Capture: true, EnPassant: true, Promotion: NoPieceType}
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Char())
	}
	return s
}

// Pack encodes a move in 17 bits:
// bits 0-5:   from square
// bits 6-11:  to square
// bits 12-14: promotion piece type (NoPieceType when none)
// bit 15:     capture
// bit 16:     en passant
func (m Move) Pack() uint32 {
	code := uint32(m.From) | uint32(m.To)<<6 | uint32(m.Promotion)<<12
	if m.Capture {
		code |= 1 << 15
	}
	if m.EnPassant {
		code |= 1 << 16
	}
	return code
}

// UnpackMove decodes a value produced by Pack.
func UnpackMove(code uint32) (Move, error) {
	if code>>17 != 0 {
		return Move{}, fmt.Errorf("%w: %#x has bits above 16", ErrInvalidMoveCode, code)
	}
	m := Move{
		From:      Square(code & 0x3F),
		To:        Square((code >> 6) & 0x3F),
		Promotion: PieceType((code >> 12) & 7),
		Capture:   code&(1<<15) != 0,
		EnPassant: code&(1<<16) != 0,
	}
	switch {
	case m.Promotion > NoPieceType || m.Promotion == Pawn || m.Promotion == King:
		return Move{}, fmt.Errorf("%w: %#x has promotion code %d", ErrInvalidMoveCode, code, m.Promotion)
	case m.EnPassant && (!m.Capture || m.IsPromotion()):
		return Move{}, fmt.Errorf("%w: %#x has inconsistent en passant flags", ErrInvalidMoveCode, code)
	}
	return m, nil
}

// MoveList is a growable list of moves. Generation into a reused list
// does not allocate once its capacity covers the position.
type MoveList struct {
	moves []Move
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{moves: make([]Move, 0, 64)}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves = append(ml.moves, m)
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return len(ml.moves)
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.moves = ml.moves[:0]
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for _, have := range ml.moves {
		if have == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves
}
