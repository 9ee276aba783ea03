// Package magic searches for multipliers that hash every occupancy subset of a relevant
// mask into a dense table without conflicting collisions.
//
// A slot may be shared by several occupancies only if they produce the same attack set.
// Multipliers are random, so results are valid but not unique: check them with Verify,
// never against fixed literals.
package magic

import (
	"fmt"
	"sync/atomic"

	bb "chess-magics/bitboard"
	"chess-magics/occupancy"
)

// MaxBits bounds the hash width; a table holds 1<<bits slots.
const MaxBits = 20

// Index maps an occupancy to its slot: the top bits of occ*magic.
func Index(occ bb.Bitboard, magic uint64, bits int) int {
	return int((uint64(occ) * magic) >> uint(64-bits))
}

// Result is a found multiplier and the table it fills.
type Result struct {
	Magic    uint64
	Bits     int
	Table    []bb.Bitboard
	Attempts uint64
}

type Option func(*Searcher)

// WithMaxAttempts caps the number of candidates tried; 0 leaves the search unbounded.
func WithMaxAttempts(n uint64) Option {
	return func(s *Searcher) { s.maxAttempts = n }
}

// WithProgress calls fn with the running attempt count every `every` candidates.
func WithProgress(every uint64, fn func(attempts uint64)) Option {
	return func(s *Searcher) {
		if every == 0 {
			every = 1
		}
		s.progressEvery = every
		s.progress = fn
	}
}

// Searcher draws candidate multipliers from its Source until one places every pair.
// A Searcher runs one search at a time; Attempts may be read from other goroutines.
type Searcher struct {
	src           Source
	maxAttempts   uint64
	progressEvery uint64
	progress      func(attempts uint64)
	attempts      atomic.Uint64
}

func NewSearcher(src Source, opts ...Option) *Searcher {
	s := &Searcher{src: src}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Attempts returns the number of candidates tried by the current or last search.
func (s *Searcher) Attempts() uint64 { return s.attempts.Load() }

// Candidate draws one multiplier. ANDing two uniform values leaves about a quarter of
// the bits set, and sparse multipliers hash masked occupancies far better.
func (s *Searcher) Candidate() uint64 {
	return s.src.Uint64() & s.src.Uint64()
}

// Find searches for a multiplier mapping every pair to a slot of a 1<<bits table that
// holds exactly that pair's attack set.
func (s *Searcher) Find(pairs []occupancy.Pair, bits int) (Result, error) {
	if bits < 1 || bits > MaxBits {
		return Result{}, fmt.Errorf("%w: %d not in 1..%d", ErrInvalidBits, bits, MaxBits)
	}
	if len(pairs) == 0 {
		return Result{}, ErrNoPairs
	}

	size := 1 << bits
	table := make([]bb.Bitboard, size)
	// stamp[i] == gen marks slot i as written by the current candidate, which saves
	// clearing the table between attempts.
	stamp := make([]uint32, size)
	var gen uint32
	shift := uint(64 - bits)

	s.attempts.Store(0)
	for n := uint64(1); ; n++ {
		if s.maxAttempts > 0 && n > s.maxAttempts {
			return Result{}, &ExhaustedError{Attempts: s.maxAttempts}
		}
		s.attempts.Store(n)
		if s.progress != nil && n%s.progressEvery == 0 {
			s.progress(n)
		}

		m := s.Candidate()
		gen++
		if gen == 0 {
			clear(stamp)
			gen = 1
		}
		if !place(pairs, m, shift, table, stamp, gen) {
			continue
		}
		for i := range table {
			if stamp[i] != gen {
				table[i] = 0
			}
		}
		return Result{Magic: m, Bits: bits, Table: table, Attempts: n}, nil
	}
}

// place writes every pair's attacks into its slot and reports false on the first slot
// already holding a different attack set.
func place(pairs []occupancy.Pair, m uint64, shift uint, table []bb.Bitboard, stamp []uint32, gen uint32) bool {
	for _, p := range pairs {
		idx := (uint64(p.Occupancy) * m) >> shift
		if stamp[idx] != gen {
			stamp[idx] = gen
			table[idx] = p.Attacks
			continue
		}
		if table[idx] != p.Attacks {
			return false
		}
	}
	return true
}
