package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"chess-magics/attacks"
	bb "chess-magics/bitboard"
	"chess-magics/config"
	"chess-magics/export"
	"chess-magics/magic"
	"chess-magics/tables"
)

func main() {
	// --- Flags ---
	configPath := flag.String("config", "", "JSON config file (flags given explicitly override it)")
	seed := flag.Uint64("seed", 1, "base seed for the per-square random sources")
	entropy := flag.Bool("entropy", false, "seed every search from the OS instead of -seed")
	workers := flag.Int("workers", 1, "number of concurrent square searches")
	maxAttempts := flag.Uint64("max-attempts", 0, "per-square attempt cap (0 = unbounded)")
	rookBits := flag.Int("rook-bits", 12, "rook hash width")
	bishopBits := flag.Int("bishop-bits", 9, "bishop hash width")
	outDir := flag.String("out", "magics", "output directory")
	progressEvery := flag.Uint64("progress", 0, "log a progress line every N attempts (0 = off)")
	crossCheck := flag.Int("crosscheck", 0, "compare N random boards per slider against dragontoothmg")
	piece := flag.String("piece", "all", "slider to build: rook, bishop or all")
	rookMagics := flag.String("rook-magics", "", "rebuild rook tables from this magic list instead of searching")
	bishopMagics := flag.String("bishop-magics", "", "rebuild bishop tables from this magic list instead of searching")
	verify := flag.Bool("verify", true, "re-check every occupancy subset before writing")
	cpuProf := flag.String("cpuprofile", "", "write CPU profile to file during run")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "entropy":
			cfg.Entropy = *entropy
		case "workers":
			cfg.Workers = *workers
		case "max-attempts":
			cfg.MaxAttempts = *maxAttempts
		case "rook-bits":
			cfg.RookBits = *rookBits
		case "bishop-bits":
			cfg.BishopBits = *bishopBits
		case "out":
			cfg.OutDir = *outDir
		case "progress":
			cfg.ProgressEvery = *progressEvery
		case "crosscheck":
			cfg.CrossCheckSamples = *crossCheck
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sliders, err := parsePiece(*piece)
	if err != nil {
		log.Fatalf("%v", err)
	}

	// --- Optional CPU profiling ---
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	opts := cfg.Options()
	opts.Logger = log.Default()
	if cfg.ProgressEvery > 0 {
		opts.Progress = func(sq bb.Square, s attacks.Slider, n uint64) {
			log.Printf("%v %v: %d attempts so far", s, sq, n)
		}
	}

	reload := map[attacks.Slider]string{attacks.Rook: *rookMagics, attacks.Bishop: *bishopMagics}
	bits := map[attacks.Slider]int{attacks.Rook: cfg.RookBits, attacks.Bishop: cfg.BishopBits}

	start := time.Now()
	out := &tables.Tables{Jump: tables.BuildJumpTables()}
	for _, s := range sliders {
		var st *tables.SliderTable
		if path := reload[s]; path != "" {
			magics, err := export.ReadMagics(path)
			if err != nil {
				log.Fatalf("read %v magics: %v", s, err)
			}
			st, err = tables.FromMagics(s, magics, bits[s])
			if err != nil {
				log.Fatalf("%v magics from %s are not valid: %v", s, path, err)
			}
			log.Printf("%v: rebuilt from %s", s, path)
		} else {
			st, err = tables.BuildSlider(s, opts)
			if errors.Is(err, magic.ErrSearchExhausted) {
				log.Fatalf("%v (consider a wider -%v-bits than %d or a larger -max-attempts)", err, s, bits[s])
			}
			if err != nil {
				log.Fatalf("build %v tables: %v", s, err)
			}
		}

		if *verify {
			if err := st.Verify(); err != nil {
				log.Fatalf("verify: %v", err)
			}
		}
		if cfg.CrossCheckSamples > 0 {
			if err := tables.CrossCheck(st, magic.NewSource(cfg.Seed), cfg.CrossCheckSamples); err != nil {
				log.Fatalf("crosscheck: %v", err)
			}
			log.Printf("%v: %d random boards agree with dragontoothmg", s, cfg.CrossCheckSamples)
		}
		if s == attacks.Bishop {
			out.Bishop = st
		} else {
			out.Rook = st
		}
	}

	paths, err := export.WriteAll(cfg.OutDir, out)
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	log.Printf("done in %v", time.Since(start))
}

func parsePiece(name string) ([]attacks.Slider, error) {
	if name == "all" || name == "" {
		return attacks.Sliders[:], nil
	}
	s, err := attacks.ParseSlider(name)
	if err != nil {
		return nil, fmt.Errorf("-piece: %w", err)
	}
	return []attacks.Slider{s}, nil
}
