package magic

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"golang.org/x/exp/rand"
)

// Source supplies the 64-bit random values candidate multipliers are drawn from.
// A Source is owned by one search at a time.
type Source interface {
	Uint64() uint64
}

// NewSource returns a PCG-backed source; equal seeds give equal streams.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewEntropySource returns a source seeded from the operating system, falling back to
// the clock when no entropy is available.
func NewEntropySource() Source {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return NewSource(uint64(time.Now().UnixNano()))
	}
	return NewSource(binary.LittleEndian.Uint64(buf[:]))
}

// DeriveSeed mixes a base seed with a job key (splitmix64 finaliser) so that every
// square gets an unrelated stream from one run seed.
func DeriveSeed(base, key uint64) uint64 {
	z := base + (key+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
