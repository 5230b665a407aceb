package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParsePlacement parses the piece-placement field of a FEN record into a
// Board. Rows run from rank 8 to rank 1, separated by '/'. All defects
// are collected and returned together; a Board is only returned when
// the whole field is valid.
func ParsePlacement(placement string) (Board, error) {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return Board{}, &PlacementError{Reason: fmt.Sprintf("need 8 rows, got %d", len(rows))}
	}

	var pieces [ColorCount][PieceTypeCount]Bitboard
	var errs []error

	for i, row := range rows {
		rank := 7 - i
		file := 0
		overrun := false

		for j := 0; j < len(row); j++ {
			c := row[j]
			rowErr := func(reason string) {
				errs = append(errs, &PlacementError{Row: i + 1, Column: j + 1, Char: c, Reason: reason})
			}

			if c >= '0' && c <= '9' {
				if c == '0' || c == '9' {
					rowErr("run length must be 1-8")
					continue
				}
				file += int(c - '0')
			} else {
				piece := PieceFromChar(c)
				if piece == NoPiece {
					rowErr("unrecognized piece character")
					continue
				}
				if file < 8 {
					pieces[piece.Color()][piece.Type()] |= SquareBB(MustSquare(file, rank))
				}
				file++
			}

			if file > 8 && !overrun {
				overrun = true
				rowErr("row overruns 8 files")
			}
		}

		if file < 8 {
			errs = append(errs, &PlacementError{Row: i + 1, Reason: "row covers " + strconv.Itoa(file) + " of 8 files"})
		}
	}

	if len(errs) > 0 {
		return Board{}, errors.Join(errs...)
	}

	// Squares are assigned at most once above, so these cannot overlap.
	white, _ := NewSideBoard(pieces[White])
	black, _ := NewSideBoard(pieces[Black])
	return NewBoard(white, black)
}

// Placement returns the piece-placement field for b.
func (b Board) Placement() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(MustSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
