package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"chess-magics/attacks"
	bb "chess-magics/bitboard"
	"chess-magics/tables"
)

// Artifact file names written by WriteAll.
const (
	KnightFile           = "knight.txt"
	KingFile             = "king.txt"
	WhitePawnPushesFile  = "white_pawn_pushes.txt"
	BlackPawnPushesFile  = "black_pawn_pushes.txt"
	WhitePawnAttacksFile = "white_pawn_attacks.txt"
	BlackPawnAttacksFile = "black_pawn_attacks.txt"
)

// MagicsFile returns e.g. "rook_magics.txt".
func MagicsFile(s attacks.Slider) string { return s.String() + "_magics.txt" }

// TablesFile returns e.g. "rook_tables.txt".
func TablesFile(s attacks.Slider) string { return s.String() + "_tables.txt" }

// writeFile renders into memory and replaces path through a temporary file, so a
// half-written artifact never sits under the final name.
func writeFile(path string, render func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return os.Rename(tmp, path)
}

// WriteAll writes every artifact of t into dir, creating it if needed, and returns the
// paths written. Slider tables that were not built are skipped.
func WriteAll(dir string, t *tables.Tables) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	var written []string
	put := func(name string, render func(*bytes.Buffer) error) error {
		path := filepath.Join(dir, name)
		if err := writeFile(path, render); err != nil {
			return err
		}
		written = append(written, path)
		return nil
	}

	for _, s := range attacks.Sliders {
		st := t.Slider(s)
		if st == nil {
			continue
		}
		if err := put(MagicsFile(s), func(b *bytes.Buffer) error { return WriteMagicList(b, st.Magics()) }); err != nil {
			return written, err
		}
		if err := put(TablesFile(s), func(b *bytes.Buffer) error { return WriteSliderTables(b, st) }); err != nil {
			return written, err
		}
	}

	jump := []struct {
		name  string
		table [64]bb.Bitboard
	}{
		{KnightFile, t.Jump.Knight},
		{KingFile, t.Jump.King},
		{WhitePawnPushesFile, t.Jump.PawnPushes[attacks.White]},
		{BlackPawnPushesFile, t.Jump.PawnPushes[attacks.Black]},
		{WhitePawnAttacksFile, t.Jump.PawnAttacks[attacks.White]},
		{BlackPawnAttacksFile, t.Jump.PawnAttacks[attacks.Black]},
	}
	for _, j := range jump {
		table := j.table
		if err := put(j.name, func(b *bytes.Buffer) error { return WriteJumpTable(b, table) }); err != nil {
			return written, err
		}
	}
	return written, nil
}

// ReadMagics loads a magic list file written by WriteAll.
func ReadMagics(path string) ([64]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return [64]uint64{}, err
	}
	defer f.Close()
	m, err := ParseMagicList(f)
	if err != nil {
		return m, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
