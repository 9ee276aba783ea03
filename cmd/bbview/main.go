package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"chess-magics/attacks"
	bb "chess-magics/bitboard"
	"chess-magics/export"
)

func main() {
	value := flag.String("value", "", "raw bitboard (decimal or 0x-prefixed hex)")
	square := flag.String("square", "", "origin square, e.g. e4")
	piece := flag.String("piece", "", "knight, king, rook, bishop, wpawn or bpawn")
	mask := flag.Bool("mask", false, "show the relevant occupancy mask instead of the attacks (sliders only)")
	occ := flag.String("occ", "0", "occupancy for slider attacks (decimal or 0x hex)")
	svgPath := flag.String("svg", "", "also write an SVG view to this file")
	flag.Parse()

	b, origin, err := resolve(*value, *square, *piece, *occ, *mask)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bbview: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	fmt.Printf("%#x (%d squares)\n", uint64(b), b.Count())
	if err := export.WriteGrid(os.Stdout, b); err != nil {
		fmt.Fprintf(os.Stderr, "write grid: %v\n", err)
		os.Exit(1)
	}

	if *svgPath != "" {
		f, err := os.Create(*svgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create svg: %v\n", err)
			os.Exit(1)
		}
		if err := export.WriteSVG(f, b, origin); err != nil {
			f.Close()
			fmt.Fprintf(os.Stderr, "write svg: %v\n", err)
			os.Exit(1)
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "close svg: %v\n", err)
			os.Exit(1)
		}
	}
}

func resolve(value, square, piece, occStr string, mask bool) (bb.Bitboard, bb.Square, error) {
	if value != "" {
		v, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return 0, bb.NoSquare, fmt.Errorf("-value: %w", err)
		}
		return bb.Bitboard(v), bb.NoSquare, nil
	}
	if square == "" || piece == "" {
		return 0, bb.NoSquare, fmt.Errorf("need -value, or -square with -piece")
	}
	sq, err := bb.ParseSquare(square)
	if err != nil {
		return 0, bb.NoSquare, fmt.Errorf("-square: %w", err)
	}
	o, err := strconv.ParseUint(occStr, 0, 64)
	if err != nil {
		return 0, bb.NoSquare, fmt.Errorf("-occ: %w", err)
	}

	switch strings.ToLower(piece) {
	case "knight", "n":
		return attacks.Knight(sq), sq, nil
	case "king", "k":
		return attacks.King(sq), sq, nil
	case "wpawn":
		return attacks.PawnAttacks(sq, attacks.White) | attacks.PawnPushes(sq, attacks.White), sq, nil
	case "bpawn":
		return attacks.PawnAttacks(sq, attacks.Black) | attacks.PawnPushes(sq, attacks.Black), sq, nil
	}
	s, err := attacks.ParseSlider(piece)
	if err != nil {
		return 0, bb.NoSquare, err
	}
	if mask {
		return attacks.RelevantMask(sq, s), sq, nil
	}
	return attacks.Slide(sq, s, bb.Bitboard(o)), sq, nil
}
