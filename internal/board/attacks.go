package board

import "sync"

// Direction is one of the eight ray directions.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// DirectionCount is the number of ray directions.
const DirectionCount = 8

// (file, rank) step of each direction.
var directionSteps = [DirectionCount][2]int{
	North:     {0, 1},
	NorthEast: {1, 1},
	East:      {1, 0},
	SouthEast: {1, -1},
	South:     {0, -1},
	SouthWest: {-1, -1},
	West:      {-1, 0},
	NorthWest: {-1, 1},
}

// Step returns the (file, rank) offset of one step in direction d.
func (d Direction) Step() (df, dr int) {
	s := directionSteps[d]
	return s[0], s[1]
}

// Increasing reports whether walking in d raises the square index.
// North, NorthEast, East and NorthWest do; the other four lower it.
func (d Direction) Increasing() bool {
	df, dr := d.Step()
	return dr > 0 || (dr == 0 && df > 0)
}

func (d Direction) String() string {
	return [DirectionCount]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}[d]
}

var (
	diagonalDirections   = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}
	orthogonalDirections = [4]Direction{North, East, South, West}
)

var (
	knightSteps = [8][2]int{{-2, 1}, {-1, 2}, {1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}}
	kingSteps   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}}
)

// Tables holds the precomputed attack geometry. A Tables value is never
// mutated after BuildTables returns.
type Tables struct {
	pawnPushes       [ColorCount][SquareCount]Bitboard
	pawnDoublePushes [ColorCount][SquareCount]Bitboard
	pawnAttacks      [ColorCount][SquareCount]Bitboard
	knightAttacks    [SquareCount]Bitboard
	kingAttacks      [SquareCount]Bitboard
	rays             [DirectionCount][SquareCount]Bitboard
}

// Geometry returns the process-wide tables, building them on first use.
var Geometry = sync.OnceValue(BuildTables)

// BuildTables computes every table from scratch. The result depends only
// on the board size, so two calls produce identical tables.
func BuildTables() *Tables {
	t := &Tables{}
	t.initPawnTables()
	t.initStepTable(&t.knightAttacks, knightSteps[:])
	t.initStepTable(&t.kingAttacks, kingSteps[:])
	t.initRays()
	return t
}

// offset returns the bitboard of sq shifted by (df, dr), or Empty when
// that leaves the board.
func offset(sq Square, df, dr int) Bitboard {
	to, ok := NewSquare(sq.File()+df, sq.Rank()+dr)
	if !ok {
		return Empty
	}
	return SquareBB(to)
}

func (t *Tables) initPawnTables() {
	for _, c := range Colors {
		fwd := c.Forward()
		startRank := 1
		if c == Black {
			startRank = 6
		}
		for sq := A1; sq <= H8; sq++ {
			t.pawnPushes[c][sq] = offset(sq, 0, fwd)
			if sq.Rank() == startRank {
				t.pawnDoublePushes[c][sq] = offset(sq, 0, 2*fwd)
			}
			t.pawnAttacks[c][sq] = offset(sq, -1, fwd) | offset(sq, 1, fwd)
		}
	}
}

func (t *Tables) initStepTable(table *[SquareCount]Bitboard, steps [][2]int) {
	for sq := A1; sq <= H8; sq++ {
		var attacks Bitboard
		for _, s := range steps {
			attacks |= offset(sq, s[0], s[1])
		}
		table[sq] = attacks
	}
}

func (t *Tables) initRays() {
	for d := North; d <= NorthWest; d++ {
		df, dr := d.Step()
		for sq := A1; sq <= H8; sq++ {
			var ray Bitboard
			f, r := sq.File()+df, sq.Rank()+dr
			for {
				to, ok := NewSquare(f, r)
				if !ok {
					break
				}
				ray |= SquareBB(to)
				f += df
				r += dr
			}
			t.rays[d][sq] = ray
		}
	}
}

// PawnPushes returns the single-push target of a pawn of color c on sq.
func (t *Tables) PawnPushes(c Color, sq Square) Bitboard {
	return t.pawnPushes[c][sq]
}

// PawnDoublePushes returns the double-push target; empty off the start rank.
func (t *Tables) PawnDoublePushes(c Color, sq Square) Bitboard {
	return t.pawnDoublePushes[c][sq]
}

// PawnAttacks returns the diagonal capture targets of a pawn.
func (t *Tables) PawnAttacks(c Color, sq Square) Bitboard {
	return t.pawnAttacks[c][sq]
}

// KnightAttacks returns the knight attack bitboard for a square.
func (t *Tables) KnightAttacks(sq Square) Bitboard {
	return t.knightAttacks[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func (t *Tables) KingAttacks(sq Square) Bitboard {
	return t.kingAttacks[sq]
}

// Ray returns the squares from sq (exclusive) to the board edge in direction d.
func (t *Tables) Ray(d Direction, sq Square) Bitboard {
	return t.rays[d][sq]
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return Geometry().KnightAttacks(sq)
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return Geometry().KingAttacks(sq)
}

// PawnAttacks returns the pawn attack bitboard for a square and color.
func PawnAttacks(sq Square, c Color) Bitboard {
	return Geometry().PawnAttacks(c, sq)
}

// PawnPushes returns the pawn push target bitboard for a square and color.
func PawnPushes(sq Square, c Color) Bitboard {
	return Geometry().PawnPushes(c, sq)
}

// PawnDoublePushes returns the pawn double-push target for a square and color.
func PawnDoublePushes(sq Square, c Color) Bitboard {
	return Geometry().PawnDoublePushes(c, sq)
}

// Ray returns the unobstructed ray from sq in direction d.
func Ray(d Direction, sq Square) Bitboard {
	return Geometry().Ray(d, sq)
}

// BishopAttacks returns the bishop attack bitboard for a square with given occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return Geometry().BishopAttacks(sq, occupied)
}

// RookAttacks returns the rook attack bitboard for a square with given occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return Geometry().RookAttacks(sq, occupied)
}

// QueenAttacks returns the queen attack bitboard for a square with given occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return Geometry().QueenAttacks(sq, occupied)
}

// AttackedBy returns every square attacked by side c on board b.
// Own pieces are included; the caller masks them as needed.
func AttackedBy(b Board, c Color) Bitboard {
	t := Geometry()
	sb := b.Side(c)
	occupied := b.Occupied()

	var attacks Bitboard
	for sq := range sb.Pawns().Squares() {
		attacks |= t.PawnAttacks(c, sq)
	}
	for sq := range sb.Knights().Squares() {
		attacks |= t.KnightAttacks(sq)
	}
	for sq := range (sb.Bishops() | sb.Queens()).Squares() {
		attacks |= t.BishopAttacks(sq, occupied)
	}
	for sq := range (sb.Rooks() | sb.Queens()).Squares() {
		attacks |= t.RookAttacks(sq, occupied)
	}
	for sq := range sb.Kings().Squares() {
		attacks |= t.KingAttacks(sq)
	}
	return attacks
}
