// Package attack implements precomputed knight/king/pawn attack tables and
// dumb7fill-based sliding-piece attack generation, plus the "superpiece"
// attacked-square and check tests built on top of them.
//
// Call InitTables once, as close to process start as possible, before using
// any other function in this package.
package attack

import (
	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/types"
)

// Precomputed attack tables, populated by InitTables. Immutable afterwards;
// safe for concurrent readers.
var (
	PawnAttacks   [2][64]bitboard.Board
	KnightAttacks [64]bitboard.Board
	KingAttacks   [64]bitboard.Board
)

// InitTables fills PawnAttacks, KnightAttacks and KingAttacks. Move
// generation and attack queries are undefined until this has run.
func InitTables() {
	for sq := 0; sq < 64; sq++ {
		bb := bitboard.Set(0, sq)

		PawnAttacks[types.White][sq] = genPawnAttacks(bb, types.White)
		PawnAttacks[types.Black][sq] = genPawnAttacks(bb, types.Black)
		KnightAttacks[sq] = genKnightAttacks(bb)
		KingAttacks[sq] = genKingAttacks(bb)
	}
}

// genPawnAttacks returns the diagonal forward attack squares of every pawn
// in the bitboard, for the given attacking color. Use PawnAttacks for a
// single pawn's precomputed attack set.
func genPawnAttacks(pawns bitboard.Board, color types.Color) bitboard.Board {
	if color == types.White {
		return bitboard.Shift(pawns, bitboard.UpLeft) | bitboard.Shift(pawns, bitboard.UpRight)
	}
	return bitboard.Shift(pawns, bitboard.DownLeft) | bitboard.Shift(pawns, bitboard.DownRight)
}

// genKnightAttacks returns the squares attacked by every knight in the
// bitboard. Use KnightAttacks for a single knight's precomputed attack set.
func genKnightAttacks(knights bitboard.Board) bitboard.Board {
	return bitboard.Shift(knights&bitboard.NotAFile, -17) |
		bitboard.Shift(knights&bitboard.NotHFile, -15) |
		bitboard.Shift(knights&bitboard.NotABFile, -10) |
		bitboard.Shift(knights&bitboard.NotGHFile, -6) |
		bitboard.Shift(knights&bitboard.NotABFile, 6) |
		bitboard.Shift(knights&bitboard.NotGHFile, 10) |
		bitboard.Shift(knights&bitboard.NotAFile, 15) |
		bitboard.Shift(knights&bitboard.NotHFile, 17)
}

// genKingAttacks returns the 8-neighborhood of every king in the bitboard.
// Use KingAttacks for a single king's precomputed attack set.
func genKingAttacks(kings bitboard.Board) bitboard.Board {
	return bitboard.Shift(kings, bitboard.Up) |
		bitboard.Shift(kings, bitboard.Down) |
		bitboard.Shift(kings, bitboard.Left) |
		bitboard.Shift(kings, bitboard.Right) |
		bitboard.Shift(kings, bitboard.UpLeft) |
		bitboard.Shift(kings, bitboard.UpRight) |
		bitboard.Shift(kings, bitboard.DownLeft) |
		bitboard.Shift(kings, bitboard.DownRight)
}

// ray floods from sq in dir against occupied's complement, then shifts one
// further square to land on (and include) the first blocker.
func ray(sq int, occupied bitboard.Board, dir int) bitboard.Board {
	seed := bitboard.Set(0, sq)
	flood := bitboard.Dumb7Fill(seed, ^occupied, dir)
	return bitboard.Shift(flood, dir)
}

// BishopAttacks returns the squares a bishop on sq attacks under the given
// occupancy, via four dumb7fill rays (NE, NW, SE, SW). The result includes
// the first occupied square in each direction (so it can be captured) but
// excludes sq itself.
func BishopAttacks(sq int, occupied bitboard.Board) bitboard.Board {
	return ray(sq, occupied, bitboard.UpLeft) |
		ray(sq, occupied, bitboard.UpRight) |
		ray(sq, occupied, bitboard.DownLeft) |
		ray(sq, occupied, bitboard.DownRight)
}

// RookAttacks returns the squares a rook on sq attacks under the given
// occupancy, via four dumb7fill rays (N, S, E, W).
func RookAttacks(sq int, occupied bitboard.Board) bitboard.Board {
	return ray(sq, occupied, bitboard.Up) |
		ray(sq, occupied, bitboard.Down) |
		ray(sq, occupied, bitboard.Left) |
		ray(sq, occupied, bitboard.Right)
}

// QueenAttacks is the union of BishopAttacks and RookAttacks.
func QueenAttacks(sq int, occupied bitboard.Board) bitboard.Board {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// PieceAttacks dispatches on p's kind to return the squares attacked by a
// piece of that kind, color and square under the given occupancy.
func PieceAttacks(p types.Piece, sq int, occupied bitboard.Board) bitboard.Board {
	switch types.Kind(p) {
	case types.Pawn:
		return PawnAttacks[types.PieceColor(p)][sq]
	case types.Knight:
		return KnightAttacks[sq]
	case types.Bishop:
		return BishopAttacks(sq, occupied)
	case types.Rook:
		return RookAttacks(sq, occupied)
	case types.Queen:
		return QueenAttacks(sq, occupied)
	case types.King:
		return KingAttacks[sq]
	}
	return 0
}

// Boards is the minimal piece-bitboard view attack queries need: one
// bitboard per colored piece plus the full-board occupancy. Any type with
// these fields (such as position.Position) can be passed by converting to
// this view — see position.Position.Boards.
type Boards struct {
	Pieces   [12]bitboard.Board
	Occupied bitboard.Board
}

// IsAttacked reports whether any piece of color bySide attacks sq, using the
// superpiece trick: a piece of each kind placed at sq would attack an
// opposing piece of that same kind iff that piece attacks sq. Tested in
// order pawn, knight, king, bishop/queen, rook/queen, short-circuiting on
// the first hit.
func IsAttacked(b Boards, sq int, bySide types.Color) bool {
	occ := b.Occupied

	if PawnAttacks[1-bySide][sq]&b.Pieces[types.MakePiece(types.Pawn, bySide)] != 0 {
		return true
	}
	if KnightAttacks[sq]&b.Pieces[types.MakePiece(types.Knight, bySide)] != 0 {
		return true
	}
	if KingAttacks[sq]&b.Pieces[types.MakePiece(types.King, bySide)] != 0 {
		return true
	}
	bishopsQueens := b.Pieces[types.MakePiece(types.Bishop, bySide)] | b.Pieces[types.MakePiece(types.Queen, bySide)]
	if BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := b.Pieces[types.MakePiece(types.Rook, bySide)] | b.Pieces[types.MakePiece(types.Queen, bySide)]
	if RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// IsCheck reports whether side's king is attacked by the opponent. If side
// has no king on the board (a degenerate test-only position), it
// conservatively returns true.
func IsCheck(b Boards, side types.Color) bool {
	kingBB := b.Pieces[types.MakePiece(types.King, side)]
	if kingBB == 0 {
		return true
	}
	return IsAttacked(b, bitboard.Scan(kingBB), 1-side)
}

// AttacksTo returns the bitboard of every piece, of either color, attacking
// sq under the given occupancy. Used by SEE to walk the exchange sequence.
func AttacksTo(b Boards, sq int, occupied bitboard.Board) bitboard.Board {
	var attackers bitboard.Board

	attackers |= PawnAttacks[types.Black][sq] & b.Pieces[types.PieceWPawn]
	attackers |= PawnAttacks[types.White][sq] & b.Pieces[types.PieceBPawn]
	attackers |= KnightAttacks[sq] & (b.Pieces[types.PieceWKnight] | b.Pieces[types.PieceBKnight])
	attackers |= KingAttacks[sq] & (b.Pieces[types.PieceWKing] | b.Pieces[types.PieceBKing])

	bishopRay := BishopAttacks(sq, occupied)
	attackers |= bishopRay & (b.Pieces[types.PieceWBishop] | b.Pieces[types.PieceBBishop] |
		b.Pieces[types.PieceWQueen] | b.Pieces[types.PieceBQueen])

	rookRay := RookAttacks(sq, occupied)
	attackers |= rookRay & (b.Pieces[types.PieceWRook] | b.Pieces[types.PieceBRook] |
		b.Pieces[types.PieceWQueen] | b.Pieces[types.PieceBQueen])

	return attackers
}
