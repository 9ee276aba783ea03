package tables

import (
	"fmt"

	"chess-magics/attacks"
	bb "chess-magics/bitboard"
	"chess-magics/magic"
	"chess-magics/occupancy"
)

// Entry is the finished magic lookup for one slider on one square.
type Entry struct {
	Square   bb.Square
	Slider   attacks.Slider
	Mask     bb.Bitboard
	Magic    uint64
	Bits     int
	Table    []bb.Bitboard
	Attempts uint64
}

// Attacks looks up the attack set for a full-board occupancy.
func (e *Entry) Attacks(occ bb.Bitboard) bb.Bitboard {
	return e.Table[magic.Index(occ&e.Mask, e.Magic, e.Bits)]
}

// Verify checks every subset of the mask against freshly computed attacks.
func (e *Entry) Verify() error {
	_, pairs := occupancy.SliderPairs(e.Square, e.Slider)
	if err := magic.Verify(pairs, e.Magic, e.Bits, e.Table); err != nil {
		return fmt.Errorf("%v %v: %w", e.Slider, e.Square, err)
	}
	return nil
}

// SliderTable holds the 64 entries of one slider, indexed by square.
type SliderTable struct {
	Slider  attacks.Slider
	Bits    int
	Entries [64]Entry
}

// Attacks returns the slider's attacks from sq given the board occupancy.
func (t *SliderTable) Attacks(sq bb.Square, occ bb.Bitboard) bb.Bitboard {
	return t.Entries[sq].Attacks(occ)
}

// Magics lists the multipliers by square.
func (t *SliderTable) Magics() [64]uint64 {
	var out [64]uint64
	for i := range t.Entries {
		out[i] = t.Entries[i].Magic
	}
	return out
}

// Attempts sums the candidates tried over all squares.
func (t *SliderTable) Attempts() uint64 {
	var n uint64
	for i := range t.Entries {
		n += t.Entries[i].Attempts
	}
	return n
}

// Verify runs the exhaustive perfect-hash check on every square.
func (t *SliderTable) Verify() error {
	for i := range t.Entries {
		if err := t.Entries[i].Verify(); err != nil {
			return err
		}
	}
	return nil
}

// FromMagics rebuilds a table from previously found multipliers without searching.
// It fails with a magic.CollisionError wrapped with the square when a multiplier does
// not hash that square's occupancies consistently.
func FromMagics(s attacks.Slider, magics [64]uint64, bits int) (*SliderTable, error) {
	if bits == 0 {
		bits = s.DefaultBits()
	}
	t := &SliderTable{Slider: s, Bits: bits}
	for i := 0; i < 64; i++ {
		sq := bb.Square(i)
		mask, pairs := occupancy.SliderPairs(sq, s)
		table, err := magic.Fill(pairs, magics[i], bits)
		if err != nil {
			return nil, fmt.Errorf("%v %v: %w", s, sq, err)
		}
		t.Entries[i] = Entry{Square: sq, Slider: s, Mask: mask, Magic: magics[i], Bits: bits, Table: table}
	}
	return t, nil
}
