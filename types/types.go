// Package types declares the shared enumerations and square constants used
// throughout the engine core: piece/color encoding, castling rights bits, and
// the named squares of the board. Kept dependency-free so every other
// package can import it without risking an import cycle.
package types

// Square is a board index 0..63, file + 8*rank (A1=0, H8=63).
type Square = int

// OutOfBoard is the sentinel used for an absent en-passant target square.
const OutOfBoard Square = -1

// Color is either White or Black. side^1 yields the opponent.
type Color = int

const (
	White Color = iota
	Black
)

// FlipSquare mirrors a square vertically when side is Black, letting move
// logic be written in a white-centric frame.
func FlipSquare(sq Square, side Color) Square {
	if side == Black {
		return sq ^ 56
	}
	return sq
}

// Piece interleaves color into bit 0: PieceWPawn, PieceBPawn, PieceWKnight, ...
// PieceNone is a distinct sentinel outside the valid 0..11 range.
type Piece = int

const (
	PieceWPawn Piece = iota
	PieceBPawn
	PieceWKnight
	PieceBKnight
	PieceWBishop
	PieceBBishop
	PieceWRook
	PieceBRook
	PieceWQueen
	PieceBQueen
	PieceWKing
	PieceBKing
)

// PieceNone is a sentinel piece value outside the valid 0..11 range.
const PieceNone Piece = -1

// PieceKind is the kind of a piece with color stripped out.
type PieceKind = int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kind strips the color bit from a piece value.
func Kind(p Piece) PieceKind { return p / 2 }

// PieceColor extracts the color bit from a piece value.
func PieceColor(p Piece) Color { return p & 1 }

// MakePiece builds a colored piece from a kind and a color.
func MakePiece(k PieceKind, c Color) Piece { return k*2 + c }

// CastlingRights packs the four castling booleans: 1 white king-side,
// 2 white queen-side, 4 black king-side, 8 black queen-side.
type CastlingRights = int

const (
	CastlingWhiteKing  CastlingRights = 1
	CastlingWhiteQueen CastlingRights = 2
	CastlingBlackKing  CastlingRights = 4
	CastlingBlackQueen CastlingRights = 8
)

// CastleSide distinguishes king-side from queen-side castling.
type CastleSide int

const (
	CastleKing CastleSide = iota
	CastleQueen
)

// PieceSymbols maps each piece value to its FEN letter.
var PieceSymbols = [12]byte{
	'P', 'p', 'N', 'n', 'B', 'b',
	'R', 'r', 'Q', 'q', 'K', 'k',
}

// SquareNames maps each square index to its algebraic name.
var SquareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// Named squares, used throughout the move generator and tests.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// PieceWeights gives the classic material value of each piece kind,
// indexed by PieceKind. The king has no material value.
var PieceWeights = [6]int{1, 3, 3, 5, 9, 0}
