package attacks

import (
	"testing"

	bb "chess-magics/bitboard"
)

var rookRelevantBits = [64]int{
	12, 11, 11, 11, 11, 11, 11, 12,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	12, 11, 11, 11, 11, 11, 11, 12,
}

var bishopRelevantBits = [64]int{
	6, 5, 5, 5, 5, 5, 5, 6,
	5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5,
	6, 5, 5, 5, 5, 5, 5, 6,
}

func TestKnightFromA1(t *testing.T) {
	got := Knight(0)
	want := bb.FromSquares(10, 17)
	if got != want {
		t.Fatalf("Knight(a1) = %v, want [10 17]", got.Squares())
	}
}

// Every generated jump must keep the horizontal displacement of one of its offsets;
// a wrapped target shows up as a file distance of 6 or 7.
func TestJumpsDoNotWrap(t *testing.T) {
	check := func(name string, gen func(bb.Square) bb.Bitboard, offsets [8][2]int) {
		for s := 0; s < 64; s++ {
			sq := bb.Square(s)
			for _, target := range gen(sq).Squares() {
				dr := target.Rank() - sq.Rank()
				df := target.File() - sq.File()
				matched := false
				for _, off := range offsets {
					if off[0] == dr && off[1] == df {
						matched = true
						break
					}
				}
				if !matched {
					t.Fatalf("%s from %v reaches %v (dr=%d df=%d): not a legal offset", name, sq, target, dr, df)
				}
			}
		}
	}
	check("knight", Knight, KnightOffsets())
	check("king", King, KingOffsets())
}

func TestJumpCounts(t *testing.T) {
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"knight a1", Knight(0).Count(), 2},
		{"knight b1", Knight(1).Count(), 3},
		{"knight e4", Knight(28).Count(), 8},
		{"knight h8", Knight(63).Count(), 2},
		{"king a1", King(0).Count(), 3},
		{"king e1", King(4).Count(), 5},
		{"king e4", King(28).Count(), 8},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %d targets, want %d", c.name, c.got, c.want)
		}
	}
}

func TestPawnMoves(t *testing.T) {
	e2, e3, e4 := bb.Square(12), bb.Square(20), bb.Square(28)
	if got := PawnPushes(e2, White); got != bb.FromSquares(e3, e4) {
		t.Fatalf("white e2 pushes = %v", got.Squares())
	}
	if got := PawnPushes(e3, White); got != e4.Bitboard() {
		t.Fatalf("white e3 pushes = %v", got.Squares())
	}
	e7, e6, e5 := bb.Square(52), bb.Square(44), bb.Square(36)
	if got := PawnPushes(e7, Black); got != bb.FromSquares(e6, e5) {
		t.Fatalf("black e7 pushes = %v", got.Squares())
	}
	if got := PawnPushes(bb.Square(60), White); got != 0 {
		t.Fatalf("white pawn on the last rank has no pushes, got %v", got.Squares())
	}
	if got := PawnAttacks(bb.Square(8), White); got != bb.FromSquares(17) {
		t.Fatalf("white a2 attacks = %v", got.Squares())
	}
	if got := PawnAttacks(bb.Square(15), White); got != bb.FromSquares(22) {
		t.Fatalf("white h2 attacks = %v", got.Squares())
	}
	if got := PawnAttacks(e4, Black); got != bb.FromSquares(19, 21) {
		t.Fatalf("black e4 attacks = %v", got.Squares())
	}
	if got := PawnAttacks(bb.Square(3), Black); got != 0 {
		t.Fatalf("black pawn on rank 1 has no attacks, got %v", got.Squares())
	}
}

func TestRayStopsOnBlockerInclusive(t *testing.T) {
	a1 := bb.Square(0)
	if got := Ray(a1, North, 0); got != bb.FromSquares(8, 16, 24, 32, 40, 48, 56) {
		t.Fatalf("empty north ray from a1 = %v", got.Squares())
	}
	occ := bb.FromSquares(24, 40)
	if got := Ray(a1, North, occ); got != bb.FromSquares(8, 16, 24) {
		t.Fatalf("blocked north ray from a1 = %v", got.Squares())
	}
	if got := Ray(bb.Square(7), East, 0); got != 0 {
		t.Fatalf("east ray from h1 should be empty, got %v", got.Squares())
	}
	// d4 bishop blocked on f6 and b2.
	d4 := bb.Square(27)
	got := Slide(d4, Bishop, bb.FromSquares(45, 9))
	want := bb.FromSquares(36, 45, 34, 41, 48, 20, 13, 6, 18, 9)
	if got != want {
		t.Fatalf("bishop d4 attacks = %v, want %v", got.Squares(), want.Squares())
	}
}

func TestRelevantMaskA1Rook(t *testing.T) {
	mask := RelevantMask(0, Rook)
	if mask.Count() != 12 {
		t.Fatalf("rook a1 mask has %d bits, want 12", mask.Count())
	}
	if mask != bb.Bitboard(0x000101010101017E) {
		t.Fatalf("rook a1 mask = %#x", uint64(mask))
	}
}

func TestRelevantMaskCounts(t *testing.T) {
	for s := 0; s < 64; s++ {
		sq := bb.Square(s)
		if got := RelevantMask(sq, Rook).Count(); got != rookRelevantBits[s] {
			t.Errorf("rook %v: %d relevant bits, want %d", sq, got, rookRelevantBits[s])
		}
		if got := RelevantMask(sq, Bishop).Count(); got != bishopRelevantBits[s] {
			t.Errorf("bishop %v: %d relevant bits, want %d", sq, got, bishopRelevantBits[s])
		}
	}
}

func TestRelevantMaskIsInsideEmptyAttacks(t *testing.T) {
	for _, s := range Sliders {
		for i := 0; i < 64; i++ {
			sq := bb.Square(i)
			mask := RelevantMask(sq, s)
			full := Slide(sq, s, 0)
			if mask&^full != 0 {
				t.Fatalf("%v %v: mask leaves the empty-board attack set", s, sq)
			}
			if mask.Has(sq) {
				t.Fatalf("%v %v: mask contains the origin square", s, sq)
			}
			if s.DefaultBits() < mask.Count() {
				t.Fatalf("%v %v: %d mask bits exceed default width %d", s, sq, mask.Count(), s.DefaultBits())
			}
		}
	}
}

func TestParseSlider(t *testing.T) {
	for in, want := range map[string]Slider{"rook": Rook, "Bishop": Bishop, " r ": Rook, "b": Bishop} {
		got, err := ParseSlider(in)
		if err != nil || got != want {
			t.Errorf("ParseSlider(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseSlider("queen"); err == nil {
		t.Fatalf("ParseSlider(queen): expected error")
	}
}
