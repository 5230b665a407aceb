package board

import (
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a six-field FEN string and returns a Position.
// Errors are *PositionError values matching ErrMalformedPosition.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, &PositionError{Field: "record", Token: fen, Reason: "need 6 fields, got " + strconv.Itoa(len(parts))}
	}

	pos := &Position{}

	// Piece placement (field 0)
	b, err := ParsePlacement(parts[0])
	if err != nil {
		return nil, &PositionError{Field: "placement", Token: parts[0], Reason: "bad piece placement", Err: err}
	}
	pos.Board = b

	// Side to move (field 1)
	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, &PositionError{Field: "active color", Token: parts[1], Reason: "want w or b"}
	}

	// Castling rights (field 2)
	cr, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, err
	}
	pos.CastlingRights = cr

	// En passant square (field 3)
	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, &PositionError{Field: "en passant", Token: parts[3], Reason: "not a square", Err: err}
		}
		// The target sits behind a pawn the opponent just pushed two squares.
		if sq.RelativeRank(pos.SideToMove) != 5 {
			want := "6"
			if pos.SideToMove == Black {
				want = "3"
			}
			return nil, &PositionError{Field: "en passant", Token: parts[3], Reason: "target must be on rank " + want + " for " + pos.SideToMove.String()}
		}
		pos.EnPassant = SomeSquare(sq)
	}

	// Half-move clock (field 4)
	hmc, err := strconv.Atoi(parts[4])
	if err != nil || hmc < 0 {
		return nil, &PositionError{Field: "half-move clock", Token: parts[4], Reason: "want a non-negative integer"}
	}
	pos.HalfMoveClock = hmc

	// Full-move number (field 5)
	fmn, err := strconv.Atoi(parts[5])
	if err != nil || fmn < 1 {
		return nil, &PositionError{Field: "full-move number", Token: parts[5], Reason: "want a positive integer"}
	}
	pos.FullMoveNumber = fmn

	return pos, nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(castling string) (CastlingRights, error) {
	if castling == "-" {
		return NoCastling, nil
	}

	var cr CastlingRights
	for _, c := range castling {
		var right CastlingRights
		switch c {
		case 'K':
			right = WhiteKingSideCastle
		case 'Q':
			right = WhiteQueenSideCastle
		case 'k':
			right = BlackKingSideCastle
		case 'q':
			right = BlackQueenSideCastle
		default:
			return 0, &PositionError{Field: "castling", Token: castling, Reason: "invalid character " + strconv.QuoteRune(c)}
		}
		if cr&right != 0 {
			return 0, &PositionError{Field: "castling", Token: castling, Reason: "repeated character " + strconv.QuoteRune(c)}
		}
		cr |= right
	}
	return cr, nil
}

// FEN returns the FEN representation of the position.
func (p *Position) FEN() string {
	var sb strings.Builder

	sb.WriteString(p.Board.Placement())

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}
