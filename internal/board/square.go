// Package board implements the bitboard board representation, the
// precomputed attack geometry and pseudolegal move generation.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// SquareCount is the number of squares on the board.
const SquareCount = 64

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return (int(sq) >> 3) & 7
}

// Index returns the linear index of the square.
func (sq Square) Index() int {
	return int(sq)
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < SquareCount
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// SquareFromIndex returns the square with the given linear index.
// ok is false when index is outside [0,63].
func SquareFromIndex(index int) (sq Square, ok bool) {
	if index < 0 || index >= SquareCount {
		return 0, false
	}
	return Square(index), true
}

// NewSquare creates a square from file and rank (0-indexed).
// Out-of-range coordinates are rejected rather than wrapped.
func NewSquare(file, rank int) (sq Square, ok bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, false
	}
	return Square(rank*8 + file), true
}

// MustSquare is NewSquare for coordinates known to be on the board.
func MustSquare(file, rank int) Square {
	sq, ok := NewSquare(file, rank)
	if !ok {
		panic(fmt.Sprintf("board: square (%d,%d) is off the board", file, rank))
	}
	return sq
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid square: %q", s)
	}

	sq, ok := NewSquare(int(s[0])-'a', int(s[1])-'1')
	if !ok {
		return 0, fmt.Errorf("invalid square: %q", s)
	}
	return sq, nil
}

// RelativeRank returns the rank from a given color's perspective.
// For White, rank 0 is the 1st rank; for Black, rank 0 is the 8th rank.
func (sq Square) RelativeRank(c Color) int {
	if c == White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}

// OptSquare is a square that may be absent, such as the en passant target.
type OptSquare struct {
	sq Square
	ok bool
}

// NoSquareOpt is the absent square.
var NoSquareOpt = OptSquare{}

// SomeSquare wraps a present square.
func SomeSquare(sq Square) OptSquare {
	return OptSquare{sq: sq, ok: true}
}

// Get returns the square and whether it is present.
func (o OptSquare) Get() (Square, bool) {
	return o.sq, o.ok
}

// IsSome reports whether a square is present.
func (o OptSquare) IsSome() bool {
	return o.ok
}

// String returns the algebraic square or "-" when absent.
func (o OptSquare) String() string {
	if !o.ok {
		return "-"
	}
	return o.sq.String()
}
