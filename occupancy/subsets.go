// Package occupancy enumerates the blocker configurations of a relevant mask and pairs
// each one with the attack set it produces.
package occupancy

import (
	"math/bits"

	"chess-magics/attacks"
	bb "chess-magics/bitboard"
)

// Pair is one ground-truth entry: an occupancy subset and the attack set it yields.
type Pair struct {
	Occupancy bb.Bitboard
	Attacks   bb.Bitboard
}

// Deposit spreads the low bits of index over the set bits of mask, lowest first.
// Index i selects the combination of mask squares named by the bits of i.
func Deposit(index uint64, mask bb.Bitboard) bb.Bitboard {
	var res bb.Bitboard
	var idx uint
	for m := uint64(mask); m != 0; m &= m - 1 {
		if (index>>idx)&1 != 0 {
			res |= bb.Bitboard(1) << uint(bits.TrailingZeros64(m))
		}
		idx++
	}
	return res
}

// Subsets lists all 2^k subsets of a mask with k set bits, starting with the empty set.
func Subsets(mask bb.Bitboard) []bb.Bitboard {
	k := mask.Count()
	out := make([]bb.Bitboard, 1<<k)
	for i := range out {
		out[i] = Deposit(uint64(i), mask)
	}
	return out
}

// Pairs pairs every subset of mask with attack(subset).
func Pairs(mask bb.Bitboard, attack func(occ bb.Bitboard) bb.Bitboard) []Pair {
	subsets := Subsets(mask)
	out := make([]Pair, len(subsets))
	for i, occ := range subsets {
		out[i] = Pair{Occupancy: occ, Attacks: attack(occ)}
	}
	return out
}

// SliderPairs returns the relevant mask of the slider on sq together with the
// (occupancy, actual attacks) pair of every subset of that mask.
func SliderPairs(sq bb.Square, s attacks.Slider) (bb.Bitboard, []Pair) {
	mask := attacks.RelevantMask(sq, s)
	pairs := Pairs(mask, func(occ bb.Bitboard) bb.Bitboard {
		return attacks.Slide(sq, s, occ)
	})
	return mask, pairs
}
