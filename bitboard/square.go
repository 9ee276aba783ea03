package bitboard

import (
	"errors"
	"fmt"
)

// Square represents a board position (0-63). Rank = sq/8, file = sq%8, a1 = 0, h8 = 63.
type Square int

const NoSquare Square = -1

// ErrOutOfRange is matched by every RangeError.
var ErrOutOfRange = errors.New("square out of range")

// RangeError reports a square index outside 0..63.
type RangeError struct {
	Index int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("square %d outside 0..63", e.Index)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// CheckSquare converts a raw index into a Square, failing outside 0..63.
func CheckSquare(i int) (Square, error) {
	if i < 0 || i > 63 {
		return NoSquare, &RangeError{Index: i}
	}
	return Square(i), nil
}

// NewSquare builds a square from a rank and file, both in 0..7.
func NewSquare(rank, file int) (Square, error) {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return NoSquare, &RangeError{Index: rank*8 + file}
	}
	return Square(rank*8 + file), nil
}

// ParseSquare converts algebraic notation ("e4") into a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, errors.New("invalid algebraic square length")
	}
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errors.New("invalid algebraic square")
	}
	return Square(int(file-'a') + int(rank-'1')*8), nil
}

func (s Square) Valid() bool { return s >= 0 && s <= 63 }

func (s Square) Rank() int { return int(s) / 8 }

func (s Square) File() int { return int(s) % 8 }

// Bitboard returns the single-bit set holding s.
func (s Square) Bitboard() Bitboard { return Bitboard(1) << uint(s) }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// Step moves dRank ranks and dFile files away from sq. The step is rejected when the
// target leaves the board or when the file distance between source and target differs
// from |dFile|, which is what happens when a horizontal offset wraps onto the next rank.
func Step(sq Square, dRank, dFile int) (Square, bool) {
	t := int(sq) + dRank*8 + dFile
	if t < 0 || t > 63 {
		return NoSquare, false
	}
	target := Square(t)
	if abs(target.File()-sq.File()) != abs(dFile) {
		return NoSquare, false
	}
	return target, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
