package export

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	bb "chess-magics/bitboard"
)

const (
	svgCell   = 40
	svgMargin = 20
)

var (
	lightFill  = "fill:#f0d9b5"
	darkFill   = "fill:#b58863"
	setFill    = "fill:#d9534f;fill-opacity:0.85"
	originFill = "fill:#337ab7"
	labelStyle = "font-family:monospace;font-size:12px;text-anchor:middle"
)

// WriteSVG draws b on a board seen from White's side: set squares are highlighted and
// origin, when valid, is marked in a second colour. One rect is emitted per square.
func WriteSVG(w io.Writer, b bb.Bitboard, origin bb.Square) error {
	var buf bytes.Buffer
	size := 8*svgCell + 2*svgMargin
	canvas := svg.New(&buf)
	canvas.Start(size, size)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := bb.Square(rank*8 + file)
			x := svgMargin + file*svgCell
			y := svgMargin + (7-rank)*svgCell
			style := lightFill
			if (rank+file)%2 == 0 {
				style = darkFill
			}
			switch {
			case origin.Valid() && sq == origin:
				style = originFill
			case b.Has(sq):
				style = setFill
			}
			canvas.Rect(x, y, svgCell, svgCell, style)
		}
	}
	for i := 0; i < 8; i++ {
		canvas.Text(svgMargin+i*svgCell+svgCell/2, size-svgMargin/3, string(rune('a'+i)), labelStyle)
		canvas.Text(svgMargin/2, svgMargin+(7-i)*svgCell+svgCell/2+4, fmt.Sprint(i+1), labelStyle)
	}
	canvas.End()
	_, err := w.Write(buf.Bytes())
	return err
}
