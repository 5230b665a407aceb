package board

import (
	"fmt"
	"strings"
)

// SideBoard holds one side's pieces, one bitboard per piece type.
// No square is set in more than one of the bitboards.
type SideBoard struct {
	pieces [PieceTypeCount]Bitboard
}

// EmptySideBoard returns a side with no pieces.
func EmptySideBoard() SideBoard {
	return SideBoard{}
}

// NewSideBoard builds a side from per-type bitboards indexed by PieceType.
func NewSideBoard(pieces [PieceTypeCount]Bitboard) (SideBoard, error) {
	var seen Bitboard
	for pt, bb := range pieces {
		if overlap := seen & bb; overlap != 0 {
			return SideBoard{}, fmt.Errorf("%w: %s on %s", ErrOverlappingPieces, PieceType(pt), overlap.LSB())
		}
		seen |= bb
	}
	return SideBoard{pieces: pieces}, nil
}

// Pawns returns the squares holding this side's pawns.
func (s SideBoard) Pawns() Bitboard { return s.pieces[Pawn] }

// Knights returns the squares holding this side's knights.
func (s SideBoard) Knights() Bitboard { return s.pieces[Knight] }

// Bishops returns the squares holding this side's bishops.
func (s SideBoard) Bishops() Bitboard { return s.pieces[Bishop] }

// Rooks returns the squares holding this side's rooks.
func (s SideBoard) Rooks() Bitboard { return s.pieces[Rook] }

// Queens returns the squares holding this side's queens.
func (s SideBoard) Queens() Bitboard { return s.pieces[Queen] }

// Kings returns the squares holding this side's king.
func (s SideBoard) Kings() Bitboard { return s.pieces[King] }

// Pieces returns the bitboard of piece type pt.
func (s SideBoard) Pieces(pt PieceType) Bitboard {
	if pt >= NoPieceType {
		return Empty
	}
	return s.pieces[pt]
}

// Occupied returns every square holding one of this side's pieces.
func (s SideBoard) Occupied() Bitboard {
	var occ Bitboard
	for _, bb := range s.pieces {
		occ |= bb
	}
	return occ
}

// PieceAt returns the piece type on sq, if any.
func (s SideBoard) PieceAt(sq Square) (PieceType, bool) {
	for pt, bb := range s.pieces {
		if bb.IsSet(sq) {
			return PieceType(pt), true
		}
	}
	return NoPieceType, false
}

// consistent reports whether the per-type bitboards are still disjoint.
func (s SideBoard) consistent() bool {
	var seen Bitboard
	for _, bb := range s.pieces {
		if seen&bb != 0 {
			return false
		}
		seen |= bb
	}
	return true
}

// Board holds both sides. A square never belongs to both.
type Board struct {
	sides [ColorCount]SideBoard
}

// NewBoard combines two sides, rejecting any square claimed by both.
func NewBoard(white, black SideBoard) (Board, error) {
	if overlap := white.Occupied() & black.Occupied(); overlap != 0 {
		return Board{}, fmt.Errorf("%w: %s held by both sides", ErrOverlappingPieces, overlap.LSB())
	}
	return Board{sides: [ColorCount]SideBoard{White: white, Black: black}}, nil
}

// Side returns the pieces of color c. It panics if c is not White or Black.
func (b Board) Side(c Color) SideBoard {
	if !c.Valid() {
		panic(fmt.Sprintf("board: invalid color %d", uint8(c)))
	}
	return b.sides[c]
}

// White returns White's pieces.
func (b Board) White() SideBoard { return b.sides[White] }

// Black returns Black's pieces.
func (b Board) Black() SideBoard { return b.sides[Black] }

// Occupied returns all occupied squares.
func (b Board) Occupied() Bitboard {
	return b.sides[White].Occupied() | b.sides[Black].Occupied()
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (b Board) PieceAt(sq Square) Piece {
	for _, c := range Colors {
		if pt, ok := b.sides[c].PieceAt(sq); ok {
			return NewPiece(pt, c)
		}
	}
	return NoPiece
}

// String returns a visual representation of the board.
func (b Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(MustSquare(file, rank))
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteByte(piece.Char())
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}
