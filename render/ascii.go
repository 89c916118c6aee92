// Package render draws a position.Position as plain ASCII, ANSI-colored
// terminal output, or an SVG diagram.
package render

import (
	"strings"

	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/types"
	"github.com/fatih/color"
)

var pieceGlyph = [12]rune{
	'♙', '♟', '♘', '♞', '♗', '♝',
	'♖', '♜', '♕', '♛', '♔', '♚',
}

// ASCII renders p as an 8x8 board, rank 8 at the top, plus a trailing
// summary of active color, en passant target and castling rights.
func ASCII(p position.Position) string {
	var b strings.Builder
	b.Grow(256)

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + '1')
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			b.WriteRune(glyphAt(p, rank*8+file))
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	writeSummary(&b, p)
	return b.String()
}

func glyphAt(p position.Position, sq int) rune {
	piece := p.PieceAt(sq)
	if piece == types.PieceNone {
		return '.'
	}
	return pieceGlyph[piece]
}

var castlingLetters = [4]struct {
	right  types.CastlingRights
	letter byte
}{
	{types.CastlingWhiteKing, 'K'}, {types.CastlingWhiteQueen, 'Q'},
	{types.CastlingBlackKing, 'k'}, {types.CastlingBlackQueen, 'q'},
}

func writeSummary(b *strings.Builder, p position.Position) {
	b.WriteString("Active color: ")
	if p.ActiveColor == types.White {
		b.WriteString("white\n")
	} else {
		b.WriteString("black\n")
	}

	b.WriteString("En passant: ")
	if p.EPTarget == types.OutOfBoard {
		b.WriteString("none\n")
	} else {
		b.WriteString(types.SquareNames[p.EPTarget])
		b.WriteByte('\n')
	}

	b.WriteString("Castling rights: ")
	wrote := false
	for _, cr := range castlingLetters {
		if p.CastlingRights&cr.right != 0 {
			b.WriteByte(cr.letter)
			wrote = true
		}
	}
	if !wrote {
		b.WriteByte('-')
	}
	b.WriteByte('\n')
}

var (
	lightSquare = color.New(color.BgWhite, color.FgBlack)
	darkSquare  = color.New(color.BgBlack, color.FgWhite)
)

// Colored renders p the same way as ASCII, but with alternating light/dark
// square backgrounds via github.com/fatih/color, for a terminal that
// supports ANSI escapes.
func Colored(p position.Position) string {
	var b strings.Builder
	b.Grow(512)

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + '1')
		b.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			glyph := " " + string(glyphAt(p, sq)) + " "
			sqColor := lightSquare
			if (rank+file)%2 == 0 {
				sqColor = darkSquare
			}
			b.WriteString(sqColor.Sprint(glyph))
		}
		b.WriteByte('\n')
	}
	b.WriteString("  a  b  c  d  e  f  g  h\n")

	writeSummary(&b, p)
	return b.String()
}
