// Package fen implements conversion between Forsyth-Edwards Notation
// strings and position.Position values.
//
// A FEN string has six space-separated fields: piece placement, active
// color, castling rights, en passant target square, halfmove clock and
// fullmove number. Parse panics on a malformed string — the caller is
// expected to validate input (a CLI flag, a UCI "position fen" command)
// before handing it to this package.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/types"
)

// Default is the FEN of the standard chess starting position.
const Default = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse parses s into a Position. Panics if s does not have exactly six
// fields or any field is malformed.
func Parse(s string) position.Position {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		panic(fmt.Sprintf("fen: expected 6 fields, got %d: %q", len(fields), s))
	}

	p := position.Empty()
	parsePlacement(&p, fields[0])

	switch fields[1] {
	case "w":
		p.ActiveColor = types.White
	case "b":
		p.ActiveColor = types.Black
	default:
		panic(fmt.Sprintf("fen: invalid active color field %q", fields[1]))
	}

	for _, c := range fields[2] {
		switch c {
		case 'K':
			p.CastlingRights |= types.CastlingWhiteKing
		case 'Q':
			p.CastlingRights |= types.CastlingWhiteQueen
		case 'k':
			p.CastlingRights |= types.CastlingBlackKing
		case 'q':
			p.CastlingRights |= types.CastlingBlackQueen
		case '-':
		default:
			panic(fmt.Sprintf("fen: invalid castling rights field %q", fields[2]))
		}
	}

	p.EPTarget = parseEPTarget(fields[3])

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		panic(fmt.Sprintf("fen: invalid halfmove clock field %q", fields[4]))
	}
	p.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		panic(fmt.Sprintf("fen: invalid fullmove number field %q", fields[5]))
	}
	p.FullmoveNumber = fullmove

	p.Hash = position.ComputeHash(&p)
	return p
}

var fenPieceSymbol = map[byte]types.Piece{
	'P': types.PieceWPawn, 'p': types.PieceBPawn,
	'N': types.PieceWKnight, 'n': types.PieceBKnight,
	'B': types.PieceWBishop, 'b': types.PieceBBishop,
	'R': types.PieceWRook, 'r': types.PieceBRook,
	'Q': types.PieceWQueen, 'q': types.PieceBQueen,
	'K': types.PieceWKing, 'k': types.PieceBKing,
}

// parsePlacement parses the first FEN field, which lists ranks 8 down to 1
// separated by '/', each rank a run of piece letters and digit-counted
// empty-square gaps.
func parsePlacement(p *position.Position, placement string) {
	square := 56 // a8, FEN ranks run from the eighth rank down.
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			square -= 16
		case c >= '1' && c <= '8':
			square += int(c - '0')
		default:
			piece, ok := fenPieceSymbol[c]
			if !ok {
				panic(fmt.Sprintf("fen: invalid piece placement character %q", c))
			}
			p.PlacePiece(piece, square)
			square++
		}
	}
}

func parseEPTarget(s string) int {
	if s == "-" {
		return types.OutOfBoard
	}
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		panic(fmt.Sprintf("fen: invalid en passant target field %q", s))
	}
	return int(s[1]-'1')*8 + int(s[0]-'a')
}

// Serialize renders p as a FEN string.
func Serialize(p position.Position) string {
	var b strings.Builder
	b.Grow(64)

	b.WriteString(serializePlacement(p))
	b.WriteByte(' ')

	if p.ActiveColor == types.White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}
	b.WriteByte(' ')

	before := b.Len()
	if p.CastlingRights&types.CastlingWhiteKing != 0 {
		b.WriteByte('K')
	}
	if p.CastlingRights&types.CastlingWhiteQueen != 0 {
		b.WriteByte('Q')
	}
	if p.CastlingRights&types.CastlingBlackKing != 0 {
		b.WriteByte('k')
	}
	if p.CastlingRights&types.CastlingBlackQueen != 0 {
		b.WriteByte('q')
	}
	if b.Len() == before {
		b.WriteByte('-')
	}
	b.WriteByte(' ')

	if p.EPTarget == types.OutOfBoard {
		b.WriteString("-")
	} else {
		b.WriteString(types.SquareNames[p.EPTarget])
	}
	b.WriteByte(' ')

	b.WriteString(strconv.Itoa(p.HalfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullmoveNumber))

	return b.String()
}

func serializePlacement(p position.Position) string {
	var b strings.Builder
	b.Grow(72)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			piece := p.PieceAt(sq)
			if piece == types.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + byte(empty))
				empty = 0
			}
			b.WriteByte(types.PieceSymbols[piece])
		}
		if empty > 0 {
			b.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}
	return b.String()
}
