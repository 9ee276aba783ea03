// Package export renders finished tables as the literal text a move generator embeds,
// plus debug views of single bitboards.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	bb "chess-magics/bitboard"
	"chess-magics/tables"
)

// WriteMagicList writes the 64 multipliers as one line of comma-separated decimals,
// ordered by square.
func WriteMagicList(w io.Writer, magics [64]uint64) error {
	parts := make([]string, len(magics))
	for i, m := range magics {
		parts[i] = strconv.FormatUint(m, 10)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, ","))
	return err
}

// ParseMagicList reads a list written by WriteMagicList. Whitespace and newlines
// between values are ignored; exactly 64 values are required.
func ParseMagicList(r io.Reader) ([64]uint64, error) {
	var out [64]uint64
	data, err := io.ReadAll(r)
	if err != nil {
		return out, err
	}
	fields := strings.FieldsFunc(string(data), func(c rune) bool {
		return c == ',' || c == '\n' || c == '\r' || c == ' ' || c == '\t'
	})
	if len(fields) != 64 {
		return out, fmt.Errorf("magic list has %d values, want 64", len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return out, fmt.Errorf("magic %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func hexLiteral(b bb.Bitboard) string {
	return "0x" + strconv.FormatUint(uint64(b), 16)
}

// FormatTable renders one square's table as "{ v0,v1,... }".
func FormatTable(table []bb.Bitboard) string {
	var sb strings.Builder
	sb.Grow(len(table)*20 + 4)
	sb.WriteString("{ ")
	for i, v := range table {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(hexLiteral(v))
	}
	sb.WriteString(" }")
	return sb.String()
}

// WriteSliderTables writes one table line per square, ordered by square.
func WriteSliderTables(w io.Writer, t *tables.SliderTable) error {
	bw := bufio.NewWriter(w)
	for i := range t.Entries {
		if _, err := fmt.Fprintln(bw, FormatTable(t.Entries[i].Table)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteJumpTable writes one hex literal per square.
func WriteJumpTable(w io.Writer, table [64]bb.Bitboard) error {
	bw := bufio.NewWriter(w)
	for _, v := range table {
		if _, err := fmt.Fprintln(bw, hexLiteral(v)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ParseJumpTable reads a table written by WriteJumpTable.
func ParseJumpTable(r io.Reader) ([64]bb.Bitboard, error) {
	var out [64]bb.Bitboard
	sc := bufio.NewScanner(r)
	lines := make([]string, 0, 64)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return out, err
	}
	if len(lines) != 64 {
		return out, fmt.Errorf("jump table has %d lines, want 64", len(lines))
	}
	if i := slices.IndexFunc(lines, func(l string) bool { return !strings.HasPrefix(l, "0x") }); i >= 0 {
		return out, fmt.Errorf("line %d: %q is not a hex literal", i+1, lines[i])
	}
	for i, l := range lines {
		v, err := strconv.ParseUint(l[2:], 16, 64)
		if err != nil {
			return out, fmt.Errorf("line %d: %w", i+1, err)
		}
		out[i] = bb.Bitboard(v)
	}
	return out, nil
}
