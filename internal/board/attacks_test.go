package board

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// stepsOf returns the (file, rank) offsets from sq to every square in bb.
func stepsOf(sq Square, bb Bitboard) [][2]int {
	var steps [][2]int
	for to := range bb.Squares() {
		steps = append(steps, [2]int{to.File() - sq.File(), to.Rank() - sq.Rank()})
	}
	return steps
}

func TestLeaperTablesUseOnlyTheirSteps(t *testing.T) {
	tables := Geometry()
	for sq := A1; sq <= H8; sq++ {
		for _, s := range stepsOf(sq, tables.KnightAttacks(sq)) {
			if !(abs(s[0]) == 1 && abs(s[1]) == 2 || abs(s[0]) == 2 && abs(s[1]) == 1) {
				t.Fatalf("knight on %v reaches step %v", sq, s)
			}
		}
		for _, s := range stepsOf(sq, tables.KingAttacks(sq)) {
			if abs(s[0]) > 1 || abs(s[1]) > 1 {
				t.Fatalf("king on %v reaches step %v", sq, s)
			}
		}
		for _, c := range Colors {
			for _, s := range stepsOf(sq, tables.PawnAttacks(c, sq)) {
				if abs(s[0]) != 1 || s[1] != c.Forward() {
					t.Fatalf("%v pawn on %v captures with step %v", c, sq, s)
				}
			}
			for _, s := range stepsOf(sq, tables.PawnPushes(c, sq)) {
				if s[0] != 0 || s[1] != c.Forward() {
					t.Fatalf("%v pawn on %v pushes with step %v", c, sq, s)
				}
			}
		}
	}
}

func TestLeaperTableCounts(t *testing.T) {
	tests := []struct {
		name string
		bb   Bitboard
		want int
	}{
		{"knight a1", KnightAttacks(A1), 2},
		{"knight b1", KnightAttacks(B1), 3},
		{"knight d4", KnightAttacks(D4), 8},
		{"king a1", KingAttacks(A1), 3},
		{"king e1", KingAttacks(E1), 5},
		{"king d4", KingAttacks(D4), 8},
		{"white pawn a2 captures", PawnAttacks(A2, White), 1},
		{"white pawn e8 pushes", PawnPushes(E8, White), 0},
		{"black pawn e1 pushes", PawnPushes(E1, Black), 0},
	}

	for _, tc := range tests {
		if got := tc.bb.PopCount(); got != tc.want {
			t.Errorf("%s: %d squares, want %d", tc.name, got, tc.want)
		}
	}
}

func TestPawnDoublePushOnlyFromStartRank(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		white := PawnDoublePushes(sq, White)
		black := PawnDoublePushes(sq, Black)
		if sq.Rank() == 1 {
			if white != SquareBB(sq+16) {
				t.Errorf("white double push from %v = %v", sq, white.SquareList())
			}
		} else if white != 0 {
			t.Errorf("white double push from %v off the start rank", sq)
		}
		if sq.Rank() == 6 {
			if black != SquareBB(sq-16) {
				t.Errorf("black double push from %v = %v", sq, black.SquareList())
			}
		} else if black != 0 {
			t.Errorf("black double push from %v off the start rank", sq)
		}
	}
}

func TestRays(t *testing.T) {
	if got := Ray(North, A1); got != FileA&^SquareBB(A1) {
		t.Errorf("north ray from a1 = %v", got.SquareList())
	}
	if got := Ray(East, A1); got != Rank1&^SquareBB(A1) {
		t.Errorf("east ray from a1 = %v", got.SquareList())
	}
	if got := Ray(NorthEast, A1).PopCount(); got != 7 {
		t.Errorf("north-east ray from a1 has %d squares, want 7", got)
	}
	for d := North; d <= NorthWest; d++ {
		for sq := A1; sq <= H8; sq++ {
			ray := Ray(d, sq)
			if ray.IsSet(sq) {
				t.Fatalf("%v ray from %v contains its origin", d, sq)
			}
			for to := range ray.Squares() {
				if d.Increasing() != (to > sq) {
					t.Fatalf("%v ray from %v reaches %v against its index order", d, sq, to)
				}
			}
		}
	}
}

func TestSlidersOnEmptyBoard(t *testing.T) {
	rook := RookAttacks(D4, Empty)
	if rook.PopCount() != 14 {
		t.Errorf("rook on d4 attacks %d squares, want 14", rook.PopCount())
	}
	if want := (FileD | Rank4) &^ SquareBB(D4); rook != want {
		t.Errorf("rook on d4 = %v", rook.SquareList())
	}

	for sq := A1; sq <= H8; sq++ {
		var diag, orth Bitboard
		for _, d := range diagonalDirections {
			diag |= Ray(d, sq)
		}
		for _, d := range orthogonalDirections {
			orth |= Ray(d, sq)
		}
		if got := BishopAttacks(sq, Empty); got != diag {
			t.Fatalf("bishop on %v = %v, want full diagonals", sq, got.SquareList())
		}
		if got := RookAttacks(sq, Empty); got != orth {
			t.Fatalf("rook on %v = %v, want full lines", sq, got.SquareList())
		}
		if got := QueenAttacks(sq, Empty); got != diag|orth {
			t.Fatalf("queen on %v = %v", sq, got.SquareList())
		}
	}
}

func TestSliderStopsAtBlocker(t *testing.T) {
	got := RookAttacks(A1, SquareBB(A4))
	want := SquareBB(A2) | SquareBB(A3) | SquareBB(A4) | (Rank1 &^ SquareBB(A1))
	if got != want {
		t.Errorf("rook a1 with blocker a4 = %v, want %v", got.SquareList(), want.SquareList())
	}

	// Blockers directly next to the origin in every direction.
	adjacent := KingAttacks(D4)
	if got := QueenAttacks(D4, adjacent); got != adjacent {
		t.Errorf("queen d4 boxed in = %v, want the 8 neighbours", got.SquareList())
	}

	// Southward and westward rays stop at the nearest (highest) blocker.
	got = RookAttacks(H8, SquareBB(H3)|SquareBB(H5)|SquareBB(C8)|SquareBB(E8))
	want = SquareBB(H7) | SquareBB(H6) | SquareBB(H5) | SquareBB(G8) | SquareBB(F8) | SquareBB(E8)
	if got != want {
		t.Errorf("rook h8 = %v, want %v", got.SquareList(), want.SquareList())
	}

	got = BishopAttacks(C1, SquareBB(F4)|SquareBB(G5)|SquareBB(A3))
	want = SquareBB(D2) | SquareBB(E3) | SquareBB(F4) | SquareBB(B2) | SquareBB(A3)
	if got != want {
		t.Errorf("bishop c1 = %v, want %v", got.SquareList(), want.SquareList())
	}
}

// TestSlidersMatchMagicBitboards compares the ray resolver against the
// magic-bitboard lookups of dragontoothmg over random occupancies.
func TestSlidersMatchMagicBitboards(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 4000; i++ {
		occ := Bitboard(rng.Uint64() & rng.Uint64())
		sq := Square(rng.Intn(SquareCount))

		want := Bitboard(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), uint64(occ)))
		if got := RookAttacks(sq, occ); got != want {
			t.Fatalf("rook on %v occ %x: got %v, want %v", sq, uint64(occ), got.SquareList(), want.SquareList())
		}

		want = Bitboard(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), uint64(occ)))
		if got := BishopAttacks(sq, occ); got != want {
			t.Fatalf("bishop on %v occ %x: got %v, want %v", sq, uint64(occ), got.SquareList(), want.SquareList())
		}
	}
}

func TestBuildTablesDeterministic(t *testing.T) {
	a, b := BuildTables(), BuildTables()
	if *a != *b {
		t.Fatal("two BuildTables calls differ")
	}
	if *Geometry() != *a {
		t.Fatal("shared tables differ from a fresh build")
	}
}

func TestGeometryConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*Tables, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = Geometry()
		}()
	}
	wg.Wait()
	for i, r := range results {
		if r != results[0] {
			t.Fatalf("goroutine %d saw a different table instance", i)
		}
	}
}

func TestAttackedBy(t *testing.T) {
	pos := NewPosition()
	white := AttackedBy(pos.Board, White)
	// Every square of rank 3 is covered by a white pawn or knight at the start.
	if white&Rank3 != Rank3 {
		t.Errorf("white does not cover rank 3: %v", (Rank3 &^ white).SquareList())
	}
	if white&(Rank4|Rank5|Rank6|Rank7|Rank8) != 0 {
		t.Errorf("white attacks beyond rank 3: %v", (white & ^(Rank1 | Rank2 | Rank3)).SquareList())
	}
}
