// config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"chess-magics/magic"
	"chess-magics/tables"
)

// Config is the JSON run configuration of cmd/magicgen.
type Config struct {
	Seed              uint64 `json:"seed"`
	Entropy           bool   `json:"entropy"`
	Workers           int    `json:"workers"`
	MaxAttempts       uint64 `json:"max_attempts"`
	RookBits          int    `json:"rook_bits"`
	BishopBits        int    `json:"bishop_bits"`
	OutDir            string `json:"out_dir"`
	ProgressEvery     uint64 `json:"progress_every"`
	CrossCheckSamples int    `json:"crosscheck_samples"`
}

func Default() Config {
	return Config{
		Seed:       1,
		Workers:    1,
		RookBits:   12,
		BishopBits: 9,
		OutDir:     "magics",
	}
}

var errEmptyOutDir = errors.New("out_dir must not be empty")

// Validate rejects settings the builder cannot honour.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	for name, bits := range map[string]int{"rook_bits": c.RookBits, "bishop_bits": c.BishopBits} {
		if bits < 1 || bits > magic.MaxBits {
			return fmt.Errorf("%s: %w: %d not in 1..%d", name, magic.ErrInvalidBits, bits, magic.MaxBits)
		}
	}
	if c.OutDir == "" {
		return errEmptyOutDir
	}
	if c.CrossCheckSamples < 0 {
		return fmt.Errorf("crosscheck_samples must be >= 0, got %d", c.CrossCheckSamples)
	}
	return nil
}

// Options converts the configuration into builder options.
func (c Config) Options() tables.Options {
	return tables.Options{
		Seed:          c.Seed,
		Entropy:       c.Entropy,
		Workers:       c.Workers,
		MaxAttempts:   c.MaxAttempts,
		RookBits:      c.RookBits,
		BishopBits:    c.BishopBits,
		ProgressEvery: c.ProgressEvery,
	}
}

// Load reads a JSON file on top of Default, so missing keys keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	tmp := path + ".tmp"
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
