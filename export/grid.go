package export

import (
	"io"
	"strings"

	bb "chess-magics/bitboard"
)

// Grid renders b as 8 lines of 8 '0'/'1' characters. The first line is rank 8 (index
// 56..63) and the last is rank 1. Each line is that rank's byte written most significant
// bit first, so square 0 is the final character of the output.
func Grid(b bb.Bitboard) string {
	var sb strings.Builder
	sb.Grow(72)
	for rank := 7; rank >= 0; rank-- {
		for file := 7; file >= 0; file-- {
			if b.Has(bb.Square(rank*8 + file)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func WriteGrid(w io.Writer, b bb.Bitboard) error {
	_, err := io.WriteString(w, Grid(b))
	return err
}
