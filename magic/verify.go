package magic

import (
	"fmt"

	bb "chess-magics/bitboard"
	"chess-magics/occupancy"
)

// Fill places the pairs with a known multiplier. It fails with a CollisionError when the
// multiplier maps two different attack sets to one slot.
func Fill(pairs []occupancy.Pair, magic uint64, bits int) ([]bb.Bitboard, error) {
	if bits < 1 || bits > MaxBits {
		return nil, fmt.Errorf("%w: %d not in 1..%d", ErrInvalidBits, bits, MaxBits)
	}
	table := make([]bb.Bitboard, 1<<bits)
	written := make([]bool, len(table))
	for _, p := range pairs {
		idx := Index(p.Occupancy, magic, bits)
		if written[idx] && table[idx] != p.Attacks {
			return nil, &CollisionError{Occupancy: p.Occupancy, Index: idx, Want: p.Attacks, Got: table[idx]}
		}
		written[idx] = true
		table[idx] = p.Attacks
	}
	return table, nil
}

// Verify re-checks the perfect-hash property: every pair's slot holds its attack set.
func Verify(pairs []occupancy.Pair, magic uint64, bits int, table []bb.Bitboard) error {
	if bits < 1 || bits > MaxBits {
		return fmt.Errorf("%w: %d not in 1..%d", ErrInvalidBits, bits, MaxBits)
	}
	if len(table) != 1<<bits {
		return fmt.Errorf("table has %d slots, want %d", len(table), 1<<bits)
	}
	for _, p := range pairs {
		idx := Index(p.Occupancy, magic, bits)
		if table[idx] != p.Attacks {
			return &CollisionError{Occupancy: p.Occupancy, Index: idx, Want: p.Attacks, Got: table[idx]}
		}
	}
	return nil
}
