package main

import (
	"flag"
	"fmt"
	"os"

	"chess-magics/evalconv"
)

func main() {
	p := flag.Float64("p", -1, "win probability in [0,1] to convert to centipawns")
	cp := flag.Int("cp", 0, "centipawn score to convert to a win probability")
	flag.Parse()

	cpSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "cp" {
			cpSet = true
		}
	})

	switch {
	case *p >= 0:
		if *p > 1 {
			fmt.Fprintln(os.Stderr, "-p must be in [0,1]")
			os.Exit(2)
		}
		if *p == 0 || *p == 1 {
			fmt.Fprintln(os.Stderr, "-p must be strictly between 0 and 1")
			os.Exit(2)
		}
		fmt.Println(evalconv.EvalToCP(*p))
	case cpSet:
		fmt.Printf("%.6f\n", evalconv.CPToEval(*cp))
	default:
		fmt.Println("Usage:")
		flag.PrintDefaults()
		os.Exit(2)
	}
}
