package attacks

import bb "chess-magics/bitboard"

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// KnightOffsets returns the (rank, file) displacements a knight can jump.
func KnightOffsets() [8][2]int { return knightOffsets }

// KingOffsets returns the (rank, file) displacements of a king step.
func KingOffsets() [8][2]int { return kingOffsets }

func jumps(sq bb.Square, offsets [8][2]int) bb.Bitboard {
	var mask bb.Bitboard
	for _, off := range offsets {
		if t, ok := bb.Step(sq, off[0], off[1]); ok {
			mask |= t.Bitboard()
		}
	}
	return mask
}

// Knight returns the squares a knight attacks from sq.
func Knight(sq bb.Square) bb.Bitboard { return jumps(sq, knightOffsets) }

// King returns the squares adjacent to sq.
func King(sq bb.Square) bb.Bitboard { return jumps(sq, kingOffsets) }

func forward(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// PawnPushes returns the non-capturing targets of a pawn: one step forward, plus the
// double step when the pawn stands on its start rank.
func PawnPushes(sq bb.Square, c Color) bb.Bitboard {
	dir := forward(c)
	one, ok := bb.Step(sq, dir, 0)
	if !ok {
		return 0
	}
	mask := one.Bitboard()
	startRank := 1
	if c == Black {
		startRank = 6
	}
	if sq.Rank() == startRank {
		if two, ok := bb.Step(one, dir, 0); ok {
			mask |= two.Bitboard()
		}
	}
	return mask
}

// PawnAttacks returns the diagonal capture squares of a pawn of color c on sq.
func PawnAttacks(sq bb.Square, c Color) bb.Bitboard {
	dir := forward(c)
	var mask bb.Bitboard
	for _, df := range [2]int{-1, 1} {
		if t, ok := bb.Step(sq, dir, df); ok {
			mask |= t.Bitboard()
		}
	}
	return mask
}
