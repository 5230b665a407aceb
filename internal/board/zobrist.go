package board

import "sync"

// Zobrist hash keys for position hashing.
// Uses PRNG with fixed seed for reproducibility.
type zobristKeys struct {
	piece      [ColorCount][PieceTypeCount][SquareCount]uint64
	enPassant  [8]uint64  // One per file
	castling   [16]uint64 // All 16 castling combinations
	sideToMove uint64     // XOR when black to move
}

var zobrist = sync.OnceValue(initZobrist)

// Simple PRNG for reproducible Zobrist keys
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() *zobristKeys {
	z := &zobristKeys{}
	rng := newPRNG(0x98F107A2BEEF1234) // Fixed seed

	for _, c := range Colors {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				z.piece[c][pt][sq] = rng.next()
			}
		}
	}
	for file := range z.enPassant {
		z.enPassant[file] = rng.next()
	}
	for i := range z.castling {
		z.castling[i] = rng.next()
	}
	z.sideToMove = rng.next()
	return z
}

// Key computes the Zobrist key of the position from scratch. The move
// counters do not contribute.
func (p *Position) Key() uint64 {
	z := zobrist()
	var key uint64

	for _, c := range Colors {
		side := p.Board.Side(c)
		for pt := Pawn; pt <= King; pt++ {
			for sq := range side.Pieces(pt).Squares() {
				key ^= z.piece[c][pt][sq]
			}
		}
	}

	if p.SideToMove == Black {
		key ^= z.sideToMove
	}

	key ^= z.castling[p.CastlingRights&AllCastling]

	// A target off the capturing side's sixth rank is ignored by the
	// generator, so it does not contribute either.
	if ep, ok := p.EnPassant.Get(); ok && ep.RelativeRank(p.SideToMove) == 5 {
		key ^= z.enPassant[ep.File()]
	}

	return key
}
