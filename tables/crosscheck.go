package tables

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"chess-magics/attacks"
	bb "chess-magics/bitboard"
	"chess-magics/magic"
)

// referenceAttacks asks dragontoothmg's own magic tables for the slider's attacks.
func referenceAttacks(s attacks.Slider, sq bb.Square, occ bb.Bitboard) bb.Bitboard {
	if s == attacks.Bishop {
		return bb.Bitboard(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), uint64(occ)))
	}
	return bb.Bitboard(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), uint64(occ)))
}

// CrossCheck compares lookups for random full-board occupancies against an independent
// move generator. Each sample draws one occupancy and checks all 64 squares with it.
func CrossCheck(t *SliderTable, src magic.Source, samples int) error {
	for n := 0; n < samples; n++ {
		// Sparse boards reach further along the rays than uniform ones.
		occ := bb.Bitboard(src.Uint64() & src.Uint64())
		for i := 0; i < 64; i++ {
			sq := bb.Square(i)
			board := occ.Without(sq)
			got := t.Attacks(sq, board)
			want := referenceAttacks(t.Slider, sq, board)
			if got != want {
				return fmt.Errorf("%v %v occ %#x: table gives %#x, reference %#x",
					t.Slider, sq, uint64(board), uint64(got), uint64(want))
			}
		}
	}
	return nil
}
