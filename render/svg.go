package render

import (
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/types"
)

const squareSize = 64

var pieceLetterSVG = [12]string{
	"P", "p", "N", "n", "B", "b", "R", "r", "Q", "q", "K", "k",
}

// errWriter wraps an io.Writer and remembers the first write error it sees,
// since svgo's canvas methods (Fprintf under the hood) discard the errors
// their writes return.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// SVG writes an 8x8 SVG diagram of p to w, one squareSize-pixel square per
// board square, alternating light/dark fills, with each occupied square
// labeled by its FEN piece letter. Not a replacement for a proper piece-set
// renderer, but enough to eyeball a position without a terminal. Returns
// the first error encountered writing to w, if any.
func SVG(w io.Writer, p position.Position) error {
	ew := &errWriter{w: w}
	board := squareSize * 8
	canvas := svg.New(ew)
	canvas.Start(board, board)

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			x := file * squareSize
			y := (7 - rank) * squareSize

			fill := "#f0d9b5"
			if (rank+file)%2 == 0 {
				fill = "#b58863"
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			if piece := p.PieceAt(sq); piece != types.PieceNone {
				textColor := "#000000"
				if types.PieceColor(piece) == types.Black {
					textColor = "#ffffff"
					if (rank+file)%2 == 0 {
						textColor = "#f0d9b5"
					}
				}
				canvas.Text(x+squareSize/2, y+squareSize/2+8, pieceLetterSVG[piece],
					"text-anchor:middle;font-size:28px;fill:"+textColor)
			}
		}
	}

	canvas.End()
	return ew.err
}
