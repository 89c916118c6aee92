package position

import (
	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/types"
)

// IsThreefoldRepetition reports whether the position at the top of g's
// stack has occurred at least three times across the stack's history.
// Unlike a string-built FEN key, this compares Zobrist hashes that are
// already maintained incrementally by every Push, so no extra bookkeeping
// is needed beyond the stack Game already carries.
//
// NOTE: this only examines positions currently on the stack, so a repeat
// straddling a UndoMove past the search root is not seen. For a full game
// history spanning multiple searches, the caller is responsible for
// seeding the stack (or keeping a side hash log) accordingly.
func (g *Game) IsThreefoldRepetition() bool {
	target := g.Current().Hash
	count := 0
	for i := range g.stack {
		if g.stack[i].Hash == target {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// IsFiftyMoveRule reports whether the position at the top of g's stack is
// drawable under the fifty-move rule: fifty full moves (a hundred
// halfmoves) have passed without a pawn move or capture.
func (g *Game) IsFiftyMoveRule() bool {
	return g.Current().HalfmoveClock >= 100
}

// IsInsufficientMaterial reports whether neither side retains enough
// material to deliver checkmate by any sequence of legal moves:
//
//  1. Both sides have a bare king.
//  2. One side has a king and a single minor piece against a bare king.
//  3. Both sides have a king and a bishop, the bishops on the same
//     square color.
//  4. Both sides have a king and a knight, no other material.
func (g *Game) IsInsufficientMaterial() bool {
	p := g.Current()

	if p.Bitboards[types.PieceWPawn] != 0 || p.Bitboards[types.PieceBPawn] != 0 ||
		p.Bitboards[types.PieceWRook] != 0 || p.Bitboards[types.PieceBRook] != 0 ||
		p.Bitboards[types.PieceWQueen] != 0 || p.Bitboards[types.PieceBQueen] != 0 {
		return false
	}

	whiteBishops := bitboard.PopCount(p.Bitboards[types.PieceWBishop])
	blackBishops := bitboard.PopCount(p.Bitboards[types.PieceBBishop])
	whiteKnights := bitboard.PopCount(p.Bitboards[types.PieceWKnight])
	blackKnights := bitboard.PopCount(p.Bitboards[types.PieceBKnight])

	whiteMinors := whiteBishops + whiteKnights
	blackMinors := blackBishops + blackKnights

	if whiteMinors == 0 && blackMinors == 0 {
		return true
	}
	if whiteMinors+blackMinors == 1 {
		return true
	}
	if whiteBishops == 1 && blackBishops == 1 && whiteKnights == 0 && blackKnights == 0 {
		const darkSquares = 0xAA55AA55AA55AA55
		whiteOnDark := uint64(p.Bitboards[types.PieceWBishop])&darkSquares != 0
		blackOnDark := uint64(p.Bitboards[types.PieceBBishop])&darkSquares != 0
		return whiteOnDark == blackOnDark
	}
	if whiteKnights == 1 && blackKnights == 1 && whiteBishops == 0 && blackBishops == 0 {
		return true
	}
	return false
}
