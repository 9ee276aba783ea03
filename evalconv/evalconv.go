// Package evalconv converts between a win probability and a centipawn score, the label
// format shared with the training-sample tools.
package evalconv

import "math"

// EvalToCP maps a win probability to centipawns. Probabilities below 0.5 give negative
// scores; 0.5 is 0. p must lie strictly inside (0, 1).
func EvalToCP(p float64) int {
	switch {
	case p > 0.5:
		return int(math.Round(math.Sqrt((20000*p - 10000) / (1 - p))))
	case p < 0.5:
		q := 1 - p
		return -int(math.Round(math.Sqrt((20000*q - 10000) / (1 - q))))
	default:
		return 0
	}
}

// CPToEval is the inverse of EvalToCP up to centipawn rounding.
func CPToEval(cp int) float64 {
	switch {
	case cp > 0:
		c := float64(cp) * float64(cp)
		return (c + 10000) / (c + 20000)
	case cp < 0:
		c := float64(cp) * float64(cp)
		return 1 - (c+10000)/(c+20000)
	default:
		return 0.5
	}
}
