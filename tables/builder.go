// Package tables drives the magic search for every square and assembles the finished
// lookup tables for sliders and jump pieces.
package tables

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"chess-magics/attacks"
	bb "chess-magics/bitboard"
	"chess-magics/magic"
	"chess-magics/occupancy"
)

const defaultProgressEvery = 100000

// Options controls a build. The zero value runs single-threaded with seed 0, default
// hash widths and no attempt cap.
type Options struct {
	// Seed is mixed with slider and square so that each search owns its own stream;
	// results for a seed do not depend on Workers.
	Seed    uint64
	Entropy bool // seed every search from the OS instead of Seed

	Workers     int
	MaxAttempts uint64 // per square; 0 = unbounded

	RookBits   int // 0 = 12
	BishopBits int // 0 = 9

	// Progress is called every ProgressEvery attempts of a running search. With more
	// than one worker it is called concurrently.
	ProgressEvery uint64
	Progress      func(sq bb.Square, s attacks.Slider, attempts uint64)

	Logger *log.Logger
}

func (o Options) bits(s attacks.Slider) int {
	switch {
	case s == attacks.Rook && o.RookBits > 0:
		return o.RookBits
	case s == attacks.Bishop && o.BishopBits > 0:
		return o.BishopBits
	}
	return s.DefaultBits()
}

func (o Options) source(sq bb.Square, s attacks.Slider) magic.Source {
	if o.Entropy {
		return magic.NewEntropySource()
	}
	return magic.NewSource(magic.DeriveSeed(o.Seed, uint64(s)<<6|uint64(sq)))
}

func (o Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

// Tables is the full output of a build. A slider table is nil when it was not built.
type Tables struct {
	Rook   *SliderTable
	Bishop *SliderTable
	Jump   JumpTables
}

// Slider returns the table for s, or nil.
func (t *Tables) Slider(s attacks.Slider) *SliderTable {
	if s == attacks.Bishop {
		return t.Bishop
	}
	return t.Rook
}

// Build searches magics for the given sliders (both when none are named) and computes
// the jump tables.
func Build(opts Options, sliders ...attacks.Slider) (*Tables, error) {
	if len(sliders) == 0 {
		sliders = attacks.Sliders[:]
	}
	out := &Tables{Jump: BuildJumpTables()}
	for _, s := range sliders {
		st, err := BuildSlider(s, opts)
		if err != nil {
			return nil, err
		}
		if s == attacks.Bishop {
			out.Bishop = st
		} else {
			out.Rook = st
		}
	}
	return out, nil
}

// BuildSlider runs one magic search per square. The 64 searches share nothing, so they
// are spread over opts.Workers goroutines and collected by square.
func BuildSlider(s attacks.Slider, opts Options) (*SliderTable, error) {
	bits := opts.bits(s)
	t := &SliderTable{Slider: s, Bits: bits}
	var errs [64]error

	workers := opts.Workers
	if workers > 64 {
		workers = 64
	}
	if workers <= 1 {
		for i := 0; i < 64; i++ {
			e, err := searchSquare(bb.Square(i), s, bits, opts)
			if err != nil {
				return nil, err
			}
			t.Entries[i] = e
		}
		opts.logf("%v: 64 squares done, %d attempts", s, t.Attempts())
		return t, nil
	}

	var failed atomic.Bool
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if failed.Load() {
					continue
				}
				e, err := searchSquare(bb.Square(i), s, bits, opts)
				if err != nil {
					errs[i] = err
					failed.Store(true)
					continue
				}
				t.Entries[i] = e
			}
		}()
	}
	for i := 0; i < 64; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	opts.logf("%v: 64 squares done on %d workers, %d attempts", s, workers, t.Attempts())
	return t, nil
}

func searchSquare(sq bb.Square, s attacks.Slider, bits int, opts Options) (Entry, error) {
	mask, pairs := occupancy.SliderPairs(sq, s)

	var sopts []magic.Option
	if opts.MaxAttempts > 0 {
		sopts = append(sopts, magic.WithMaxAttempts(opts.MaxAttempts))
	}
	if opts.Progress != nil {
		every := opts.ProgressEvery
		if every == 0 {
			every = defaultProgressEvery
		}
		sopts = append(sopts, magic.WithProgress(every, func(n uint64) {
			opts.Progress(sq, s, n)
		}))
	}

	res, err := magic.NewSearcher(opts.source(sq, s), sopts...).Find(pairs, bits)
	if err != nil {
		return Entry{}, fmt.Errorf("%v %v: %w", s, sq, err)
	}
	opts.logf("%v %v: magic %#016x after %d attempts (%d mask bits)", s, sq, res.Magic, res.Attempts, mask.Count())
	return Entry{
		Square:   sq,
		Slider:   s,
		Mask:     mask,
		Magic:    res.Magic,
		Bits:     res.Bits,
		Table:    res.Table,
		Attempts: res.Attempts,
	}, nil
}
