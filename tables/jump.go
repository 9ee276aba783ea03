package tables

import (
	"chess-magics/attacks"
	bb "chess-magics/bitboard"
)

// JumpTables holds the occupancy-independent attack sets, indexed by square.
// Pawn tables are indexed by color first.
type JumpTables struct {
	Knight      [64]bb.Bitboard
	King        [64]bb.Bitboard
	PawnPushes  [2][64]bb.Bitboard
	PawnAttacks [2][64]bb.Bitboard
}

// BuildJumpTables enumerates knight, king and pawn targets once per square.
func BuildJumpTables() JumpTables {
	var j JumpTables
	for i := 0; i < 64; i++ {
		sq := bb.Square(i)
		j.Knight[i] = attacks.Knight(sq)
		j.King[i] = attacks.King(sq)
		for _, c := range [2]attacks.Color{attacks.White, attacks.Black} {
			j.PawnPushes[c][i] = attacks.PawnPushes(sq, c)
			j.PawnAttacks[c][i] = attacks.PawnAttacks(sq, c)
		}
	}
	return j
}
