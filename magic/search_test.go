package magic

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"

	"chess-magics/attacks"
	bb "chess-magics/bitboard"
	"chess-magics/occupancy"
)

// distinctPairs builds n single-bit occupancies with pairwise different attack sets.
func distinctPairs(n int) []occupancy.Pair {
	pairs := make([]occupancy.Pair, n)
	for i := range pairs {
		pairs[i] = occupancy.Pair{
			Occupancy: bb.Square(i * 7 % 64).Bitboard(),
			Attacks:   bb.Bitboard(i + 1),
		}
	}
	return pairs
}

func TestFindSyntheticPairs(t *testing.T) {
	pairs := distinctPairs(4)
	s := NewSearcher(NewSource(1))
	res, err := s.Find(pairs, 4)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(res.Table) != 16 || res.Bits != 4 {
		t.Fatalf("table has %d slots at %d bits", len(res.Table), res.Bits)
	}
	if err := Verify(pairs, res.Magic, res.Bits, res.Table); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if res.Attempts == 0 || res.Attempts != s.Attempts() {
		t.Fatalf("attempt counter %d, searcher reports %d", res.Attempts, s.Attempts())
	}
}

func TestFindToleratesAgreeingCollisions(t *testing.T) {
	pairs := distinctPairs(8)
	for i := range pairs {
		pairs[i].Attacks = 0xFF00
	}
	res, err := NewSearcher(NewSource(3)).Find(pairs, 1)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if res.Attempts != 1 {
		t.Fatalf("identical attack sets should fit the first candidate, took %d attempts", res.Attempts)
	}
	if err := Verify(pairs, res.Magic, 1, res.Table); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestFindExhaustsOnImpossibleInstance(t *testing.T) {
	// Three different attack sets cannot share a two-slot table.
	s := NewSearcher(NewSource(9), WithMaxAttempts(50))
	_, err := s.Find(distinctPairs(3), 1)
	if !errors.Is(err, ErrSearchExhausted) {
		t.Fatalf("expected ErrSearchExhausted, got %v", err)
	}
	var ex *ExhaustedError
	if !errors.As(err, &ex) || ex.Attempts != 50 {
		t.Fatalf("expected ExhaustedError with 50 attempts, got %v", err)
	}
	if s.Attempts() != 50 {
		t.Fatalf("counter = %d, want 50", s.Attempts())
	}
}

func TestProgressCallback(t *testing.T) {
	var calls []uint64
	s := NewSearcher(NewSource(2), WithMaxAttempts(100), WithProgress(10, func(n uint64) {
		calls = append(calls, n)
	}))
	if _, err := s.Find(distinctPairs(3), 1); !errors.Is(err, ErrSearchExhausted) {
		t.Fatalf("expected exhaustion, got %v", err)
	}
	if len(calls) != 10 || calls[0] != 10 || calls[9] != 100 {
		t.Fatalf("progress calls = %v", calls)
	}
}

func TestFindRejectsBadInput(t *testing.T) {
	s := NewSearcher(NewSource(1))
	for _, bits := range []int{0, -3, MaxBits + 1} {
		if _, err := s.Find(distinctPairs(2), bits); !errors.Is(err, ErrInvalidBits) {
			t.Errorf("bits=%d: expected ErrInvalidBits, got %v", bits, err)
		}
	}
	if _, err := s.Find(nil, 4); !errors.Is(err, ErrNoPairs) {
		t.Fatalf("expected ErrNoPairs, got %v", err)
	}
}

func TestFixedSeedIsDeterministic(t *testing.T) {
	_, pairs := occupancy.SliderPairs(27, attacks.Bishop)
	a, err := NewSearcher(NewSource(42)).Find(pairs, 9)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	b, err := NewSearcher(NewSource(42)).Find(pairs, 9)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if a.Magic != b.Magic || a.Attempts != b.Attempts {
		t.Fatalf("same seed gave %#x/%d and %#x/%d", a.Magic, a.Attempts, b.Magic, b.Attempts)
	}
}

func TestRookCornerTable(t *testing.T) {
	_, pairs := occupancy.SliderPairs(0, attacks.Rook)
	res, err := NewSearcher(NewSource(7)).Find(pairs, 12)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if err := Verify(pairs, res.Magic, 12, res.Table); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	filled, err := Fill(pairs, res.Magic, 12)
	if err != nil {
		t.Fatalf("Fill with found magic: %v", err)
	}
	if !slices.Equal(filled, res.Table) {
		t.Fatalf("Fill disagrees with the searched table")
	}

	// Corrupt one used slot.
	broken := slices.Clone(res.Table)
	idx := Index(pairs[1].Occupancy, res.Magic, 12)
	broken[idx] ^= 1
	var ce *CollisionError
	if err := Verify(pairs, res.Magic, 12, broken); !errors.As(err, &ce) || ce.Index != idx {
		t.Fatalf("expected collision at slot %d, got %v", idx, err)
	}
}

func TestFillRejectsBadMagic(t *testing.T) {
	_, pairs := occupancy.SliderPairs(0, attacks.Rook)
	var ce *CollisionError
	if _, err := Fill(pairs, 0, 12); !errors.As(err, &ce) {
		t.Fatalf("zero multiplier should collide, got %v", err)
	}
	if ce.Index != 0 {
		t.Fatalf("zero multiplier maps everything to slot 0, got %d", ce.Index)
	}
}

func TestDeriveSeedSpreads(t *testing.T) {
	seen := make(map[uint64]bool)
	for k := uint64(0); k < 128; k++ {
		s := DeriveSeed(1, k)
		if seen[s] {
			t.Fatalf("DeriveSeed(1, %d) repeats", k)
		}
		seen[s] = true
	}
}

func BenchmarkFindRookCorner(b *testing.B) {
	_, pairs := occupancy.SliderPairs(0, attacks.Rook)
	src := NewSource(11)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NewSearcher(src).Find(pairs, 12); err != nil {
			b.Fatalf("Find: %v", err)
		}
	}
}

func BenchmarkFindBishopCentre(b *testing.B) {
	_, pairs := occupancy.SliderPairs(27, attacks.Bishop)
	src := NewSource(11)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NewSearcher(src).Find(pairs, 9); err != nil {
			b.Fatalf("Find: %v", err)
		}
	}
}
