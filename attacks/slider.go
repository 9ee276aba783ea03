package attacks

import (
	"fmt"
	"strings"

	bb "chess-magics/bitboard"
)

// Direction is a unit step along a rank, file or diagonal.
type Direction struct {
	DRank, DFile int
}

var (
	North     = Direction{1, 0}
	South     = Direction{-1, 0}
	East      = Direction{0, 1}
	West      = Direction{0, -1}
	NorthEast = Direction{1, 1}
	NorthWest = Direction{1, -1}
	SouthEast = Direction{-1, 1}
	SouthWest = Direction{-1, -1}
)

// Slider identifies a sliding piece with its own magic table.
type Slider uint8

const (
	Rook Slider = iota
	Bishop
)

// Sliders lists every slider with a magic table, in export order.
var Sliders = [2]Slider{Rook, Bishop}

var (
	rookDirections   = [4]Direction{North, South, East, West}
	bishopDirections = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}
)

func (s Slider) String() string {
	switch s {
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	default:
		return fmt.Sprintf("slider(%d)", uint8(s))
	}
}

// Directions returns the four ray directions the slider moves along.
func (s Slider) Directions() [4]Direction {
	if s == Bishop {
		return bishopDirections
	}
	return rookDirections
}

// DefaultBits is the fixed hash width used for the slider's tables: wide enough for the
// largest relevant mask (12 rook squares on a corner, 9 bishop squares in the centre).
func (s Slider) DefaultBits() int {
	if s == Bishop {
		return 9
	}
	return 12
}

// ParseSlider accepts "rook" or "bishop" in any case.
func ParseSlider(name string) (Slider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rook", "r":
		return Rook, nil
	case "bishop", "b":
		return Bishop, nil
	}
	return 0, fmt.Errorf("unknown slider %q", name)
}

// Ray walks from sq in dir until the board edge. With a non-empty occupancy the walk
// stops after the first occupied square, which is included in the result.
func Ray(sq bb.Square, dir Direction, occ bb.Bitboard) bb.Bitboard {
	var ray bb.Bitboard
	cur := sq
	for {
		next, ok := bb.Step(cur, dir.DRank, dir.DFile)
		if !ok {
			return ray
		}
		ray |= next.Bitboard()
		if occ.Has(next) {
			return ray
		}
		cur = next
	}
}

// Slide returns the actual attack set of the slider on sq for the given occupancy.
func Slide(sq bb.Square, s Slider, occ bb.Bitboard) bb.Bitboard {
	var att bb.Bitboard
	for _, dir := range s.Directions() {
		att |= Ray(sq, dir, occ)
	}
	return att
}

// RelevantMask returns the squares whose occupancy can change the slider's attacks from
// sq. The last square of every ray is left out: the ray reaches it whatever stands there.
func RelevantMask(sq bb.Square, s Slider) bb.Bitboard {
	var mask bb.Bitboard
	for _, dir := range s.Directions() {
		ray := Ray(sq, dir, 0)
		if ray == 0 {
			continue
		}
		mask |= ray &^ edgeOf(ray, dir)
	}
	return mask
}

// edgeOf picks the square of a ray furthest from its origin.
func edgeOf(ray bb.Bitboard, dir Direction) bb.Bitboard {
	sqs := ray.Squares()
	// Rays heading north or east grow towards higher indices.
	if dir.DRank > 0 || (dir.DRank == 0 && dir.DFile > 0) {
		return sqs[len(sqs)-1].Bitboard()
	}
	return sqs[0].Bitboard()
}
