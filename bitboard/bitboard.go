package bitboard

import "math/bits"

// Bitboard is a 64-bit square set; bit i set means square i is a member.
type Bitboard uint64

// FromSquares builds a set holding the given squares.
func FromSquares(sqs ...Square) Bitboard {
	var b Bitboard
	for _, sq := range sqs {
		b |= sq.Bitboard()
	}
	return b
}

func (b Bitboard) Has(sq Square) bool { return b&sq.Bitboard() != 0 }

func (b Bitboard) With(sq Square) Bitboard { return b | sq.Bitboard() }

func (b Bitboard) Without(sq Square) Bitboard { return b &^ sq.Bitboard() }

func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest set square, or NoSquare for an empty set.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Squares lists the members in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for m := b; m != 0; m &= m - 1 {
		out = append(out, Square(bits.TrailingZeros64(uint64(m))))
	}
	return out
}
