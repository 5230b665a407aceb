package board

import "log"

// DebugMoveValidation enables invariant checks on every generation call.
// Violations are logged, generation still proceeds.
var DebugMoveValidation = false

// GeneratePseudoLegal generates all pseudo-legal moves for side us.
// It reads b and ep only and may be called concurrently.
func GeneratePseudoLegal(b Board, us Color, ep OptSquare) *MoveList {
	ml := NewMoveList()
	GenerateInto(ml, b, us, ep)
	return ml
}

// GenerateInto appends all pseudo-legal moves for side us to ml.
func GenerateInto(ml *MoveList, b Board, us Color, ep OptSquare) {
	generateMoves(ml, b, us, ep, true)
}

// GenerateCaptures generates captures, en passant captures and promotions.
func GenerateCaptures(b Board, us Color, ep OptSquare) *MoveList {
	ml := NewMoveList()
	generateMoves(ml, b, us, ep, false)
	return ml
}

// GeneratePseudoLegalMoves generates all pseudo-legal moves for the side to move.
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	return GeneratePseudoLegal(p.Board, p.SideToMove, p.EnPassant)
}

// GenerateCaptures generates the capture subset for the side to move.
func (p *Position) GenerateCaptures() *MoveList {
	return GenerateCaptures(p.Board, p.SideToMove, p.EnPassant)
}

func generateMoves(ml *MoveList, b Board, us Color, ep OptSquare, quiets bool) {
	t := Geometry()
	own := b.Side(us)
	ownOcc := own.Occupied()
	enemies := b.Side(us.Other()).Occupied()
	occupied := ownOcc | enemies

	if DebugMoveValidation {
		if !own.consistent() || !b.Side(us.Other()).consistent() {
			log.Printf("MOVEGEN: piece bitboards overlap within a side! occ=%x", uint64(occupied))
		}
		if ownOcc&enemies != 0 {
			log.Printf("MOVEGEN: squares held by both sides: %x", uint64(ownOcc&enemies))
		}
	}

	targets := ^ownOcc
	if !quiets {
		targets = enemies
	}

	generatePawnMoves(ml, t, own.Pawns(), us, enemies, occupied, ep, quiets)

	for from := range own.Knights().Squares() {
		addMoves(ml, from, t.KnightAttacks(from)&targets, enemies)
	}
	for from := range own.Bishops().Squares() {
		addMoves(ml, from, t.BishopAttacks(from, occupied)&targets, enemies)
	}
	for from := range own.Rooks().Squares() {
		addMoves(ml, from, t.RookAttacks(from, occupied)&targets, enemies)
	}
	for from := range own.Queens().Squares() {
		addMoves(ml, from, t.QueenAttacks(from, occupied)&targets, enemies)
	}
	for from := range own.Kings().Squares() {
		addMoves(ml, from, t.KingAttacks(from)&targets, enemies)
	}
}

// addMoves adds one move per target, capture-flagged against enemies.
func addMoves(ml *MoveList, from Square, targets, enemies Bitboard) {
	for to := range targets.Squares() {
		ml.Add(NewMove(from, to, enemies.IsSet(to)))
	}
}

// generatePawnMoves generates pushes, captures, promotions and en passant.
func generatePawnMoves(ml *MoveList, t *Tables, pawns Bitboard, us Color, enemies, occupied Bitboard, ep OptSquare, quiets bool) {
	empty := ^occupied
	promotionRank := Rank8
	if us == Black {
		promotionRank = Rank1
	}
	epSq, hasEP := ep.Get()
	if hasEP && (occupied.IsSet(epSq) || epSq.RelativeRank(us) != 5) {
		hasEP = false
	}

	for from := range pawns.Squares() {
		push := t.PawnPushes(us, from) & empty
		if push != 0 {
			push |= t.PawnDoublePushes(us, from) & empty
		}
		if !quiets {
			push &= promotionRank
		}
		for to := range push.Squares() {
			addPawnMove(ml, from, to, false, promotionRank)
		}

		attacks := t.PawnAttacks(us, from)
		for to := range (attacks & enemies).Squares() {
			addPawnMove(ml, from, to, true, promotionRank)
		}

		if hasEP && attacks.IsSet(epSq) {
			ml.Add(NewEnPassant(from, epSq))
		}
	}
}

// addPawnMove adds a pawn move, expanding last-rank arrivals into all
// four promotions.
func addPawnMove(ml *MoveList, from, to Square, capture bool, promotionRank Bitboard) {
	if !promotionRank.IsSet(to) {
		ml.Add(NewMove(from, to, capture))
		return
	}
	for _, promo := range PromotionTypes {
		ml.Add(NewPromotion(from, to, capture, promo))
	}
}
