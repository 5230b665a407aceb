package board

import (
	"errors"
	"testing"
)

func TestMoveString(t *testing.T) {
	tests := []struct {
		m    Move
		want string
	}{
		{NewMove(E2, E4, false), "e2e4"},
		{NewMove(G1, F3, false), "g1f3"},
		{NewPromotion(E7, E8, false, Queen), "e7e8q"},
		{NewPromotion(B2, A1, true, Knight), "b2a1n"},
		{NewEnPassant(E5, D6), "e5d6"},
	}

	for _, tc := range tests {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMovePackUnpack(t *testing.T) {
	moves := []Move{
		NewMove(A1, H8, false),
		NewMove(H8, A1, true),
		NewEnPassant(D5, E6),
	}
	for _, promo := range PromotionTypes {
		moves = append(moves, NewPromotion(G7, G8, false, promo), NewPromotion(B2, C1, true, promo))
	}

	for _, m := range moves {
		got, err := UnpackMove(m.Pack())
		if err != nil {
			t.Fatalf("UnpackMove(%#x) for %v: %v", m.Pack(), m, err)
		}
		if got != m {
			t.Errorf("UnpackMove(Pack(%+v)) = %+v", m, got)
		}
	}
}

func TestUnpackMoveRejectsBadCodes(t *testing.T) {
	valid := NewMove(E2, E4, false).Pack()
	codes := map[string]uint32{
		"high bits":              valid | 1<<20,
		"pawn promotion":         uint32(E7) | uint32(E8)<<6 | uint32(Pawn)<<12,
		"king promotion":         uint32(E7) | uint32(E8)<<6 | uint32(King)<<12,
		"promotion code 7":       uint32(E7) | uint32(E8)<<6 | 7<<12,
		"en passant w/o capture": uint32(E5) | uint32(D6)<<6 | uint32(NoPieceType)<<12 | 1<<16,
		"en passant promotion":   uint32(E5) | uint32(D6)<<6 | uint32(Queen)<<12 | 1<<15 | 1<<16,
	}

	for name, code := range codes {
		if _, err := UnpackMove(code); !errors.Is(err, ErrInvalidMoveCode) {
			t.Errorf("%s: UnpackMove(%#x) err = %v", name, code, err)
		}
	}
}

func TestMoveList(t *testing.T) {
	ml := NewMoveList()
	for i := 0; i < 300; i++ {
		ml.Add(NewMove(Square(i%64), Square((i+1)%64), false))
	}
	if ml.Len() != 300 {
		t.Fatalf("Len() = %d, want 300", ml.Len())
	}
	if ml.Get(65) != NewMove(B1, C1, false) {
		t.Errorf("Get(65) = %v", ml.Get(65))
	}
	if !ml.Contains(NewMove(H8, A1, false)) {
		t.Error("Contains(h8a1) = false")
	}
	ml.Clear()
	if ml.Len() != 0 || ml.Contains(NewMove(H8, A1, false)) {
		t.Error("Clear left moves behind")
	}
}
