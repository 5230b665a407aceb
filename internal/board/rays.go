package board

// Sliding attacks are resolved from the ray tables: the ray from the
// origin is clipped at its nearest blocker by removing the ray that
// starts at that blocker. Each direction costs one lookup, one bit scan
// and a few bitwise operations.

// Edge sentinels are OR-ed into a blocker mask so the bit scan always has
// a set bit. Every ray rooted at a sentinel in the matching direction is
// empty, so clipping at a sentinel leaves the ray unchanged.
const (
	highEdgeSentinel Bitboard = 1 << H8 // nearest blocker for increasing rays
	lowEdgeSentinel  Bitboard = 1 << A1 // nearest blocker for decreasing rays
)

// slide returns the squares visible from sq in direction d, up to and
// including the first occupied square.
func (t *Tables) slide(d Direction, sq Square, occupied Bitboard) Bitboard {
	ray := t.rays[d][sq]
	var blocker Square
	if d.Increasing() {
		blocker = (ray&occupied | highEdgeSentinel).LSB()
	} else {
		blocker = (ray&occupied | lowEdgeSentinel).MSB()
	}
	return ray ^ t.rays[d][blocker]
}

// BishopAttacks returns the diagonal attacks from sq given occupancy.
func (t *Tables) BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range diagonalDirections {
		attacks |= t.slide(d, sq, occupied)
	}
	return attacks
}

// RookAttacks returns the orthogonal attacks from sq given occupancy.
func (t *Tables) RookAttacks(sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range orthogonalDirections {
		attacks |= t.slide(d, sq, occupied)
	}
	return attacks
}

// QueenAttacks returns the union of bishop and rook attacks.
func (t *Tables) QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return t.BishopAttacks(sq, occupied) | t.RookAttacks(sq, occupied)
}
