package magic

import (
	"errors"
	"fmt"

	bb "chess-magics/bitboard"
)

var (
	// ErrSearchExhausted is matched by ExhaustedError: the attempt cap ran out before a
	// multiplier was found. Widening the hash for that square is the usual remedy.
	ErrSearchExhausted = errors.New("magic search exhausted")
	ErrInvalidBits     = errors.New("invalid hash width")
	ErrNoPairs         = errors.New("no occupancy pairs")
)

type ExhaustedError struct {
	Attempts uint64
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("magic search exhausted after %d attempts", e.Attempts)
}

func (e *ExhaustedError) Unwrap() error { return ErrSearchExhausted }

// CollisionError reports an occupancy whose slot holds a different attack set.
type CollisionError struct {
	Occupancy bb.Bitboard
	Index     int
	Want      bb.Bitboard
	Got       bb.Bitboard
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("occupancy %#x maps to slot %d holding %#x, want %#x",
		uint64(e.Occupancy), e.Index, uint64(e.Got), uint64(e.Want))
}
