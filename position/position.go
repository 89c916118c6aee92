// Package position defines the board-state representation the rest of the
// core operates on: the 12 piece-colored bitboards plus mailbox, castling
// rights, en-passant target, move counters, and the incrementally maintained
// Zobrist hash. It also owns the per-search position stack (Game) that
// package movegen pushes to and pops from on make/unmake.
//
// Call InitZobristKeys once, as close to process start as possible, before
// using Position.Hash or anything in this package that reads the key
// tables.
package position

import (
	"github.com/corvidchess/corvid/attack"
	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/types"
)

// MaxPly bounds the depth of the position stack a single Game may reach,
// the conventional search-ply ceiling.
const MaxPly = 512

// Position is a single chessboard state: piece placement (bitboards and the
// denormalized mailbox that mirrors them), whose move it is, castling
// rights, the en-passant target square (types.OutOfBoard if none), the
// fifty-move-rule halfmove clock, the fullmove number, the incrementally
// maintained Zobrist hash, and the last captured piece (carried for
// callers that want it; UndoMove itself restores state wholesale from the
// position stack and does not need to replay it).
type Position struct {
	Bitboards      [12]bitboard.Board
	Mailbox        [64]types.Piece
	ColorBB        [2]bitboard.Board
	Occupied       bitboard.Board
	ActiveColor    types.Color
	CastlingRights types.CastlingRights
	EPTarget       int
	HalfmoveClock  int
	FullmoveNumber int
	Hash           uint64
	Captured       types.Piece
}

// Empty returns a Position with every square empty, White to move, no
// castling rights, and no en-passant target. Bitboards, hash and halfmove
// clock are zero and the fullmove number is 1; callers normally populate a Position
// via package fen instead of building one empty.
func Empty() Position {
	p := Position{EPTarget: types.OutOfBoard, FullmoveNumber: 1}
	for i := range p.Mailbox {
		p.Mailbox[i] = types.PieceNone
	}
	return p
}

// Boards adapts Position to the minimal view package attack needs for
// attacked-square and check queries.
func (p *Position) Boards() attack.Boards {
	return attack.Boards{Pieces: p.Bitboards, Occupied: p.Occupied}
}

// PieceAt returns the piece standing on sq, or types.PieceNone if empty.
// O(1) via the mailbox, per the mailbox/bitboard redundancy design: the
// mailbox exists precisely so this doesn't have to scan twelve bitboards.
func (p *Position) PieceAt(sq int) types.Piece {
	return p.Mailbox[sq]
}

// PlacePiece puts piece on sq, updating the mailbox, the piece bitboard,
// the color aggregate, the occupancy aggregate, and the Zobrist hash.
// sq must currently be empty; placing onto an occupied square corrupts the
// mailbox/bitboard invariant (callers remove the old occupant first).
func (p *Position) PlacePiece(piece types.Piece, sq int) {
	bit := bitboard.Board(1) << uint(sq)
	debugAssert(p.Occupied&bit == 0, "PlacePiece: square already occupied")
	p.Bitboards[piece] |= bit
	p.ColorBB[types.PieceColor(piece)] |= bit
	p.Occupied |= bit
	p.Mailbox[sq] = piece
	p.Hash ^= PieceKey(piece, sq)
}

// RemovePiece removes piece from sq, updating the mailbox, the piece
// bitboard, the color aggregate, the occupancy aggregate, and the Zobrist
// hash. piece must be the piece actually standing on sq.
func (p *Position) RemovePiece(piece types.Piece, sq int) {
	bit := bitboard.Board(1) << uint(sq)
	debugAssert(p.Bitboards[piece]&bit != 0, "RemovePiece: toggling a bit that was not set")
	p.Bitboards[piece] &^= bit
	p.ColorBB[types.PieceColor(piece)] &^= bit
	p.Occupied &^= bit
	p.Mailbox[sq] = types.PieceNone
	p.Hash ^= PieceKey(piece, sq)
}

// Game owns one chessboard's worth of search state: the position stack
// whose top is the current position. make_move/undo_move (implemented in
// package movegen, which owns the make/unmake sequencing) push and pop this
// stack; a Game is single-threaded and non-reentrant, owned by exactly one
// search task at a time.
type Game struct {
	stack []Position
}

// NewGame creates a Game starting from the given position, with the stack
// preallocated to MaxPly+1 so make/unmake never reallocates on the hot
// path.
func NewGame(start Position) *Game {
	g := &Game{stack: make([]Position, 1, MaxPly+1)}
	g.stack[0] = start
	return g
}

// Current returns a pointer to the top-of-stack position (mutable in place
// by movegen during make/unmake).
func (g *Game) Current() *Position { return &g.stack[len(g.stack)-1] }

// Ply returns the current search ply: the stack depth minus one, i.e. the
// number of moves made since the Game was created.
func (g *Game) Ply() int { return len(g.stack) - 1 }

// Push copies next onto the top of the stack, advancing the ply by one.
func (g *Game) Push(next Position) { g.stack = append(g.stack, next) }

// Pop removes the top-of-stack position, returning to the previous ply.
// No-op (and never called in balanced use) when the stack holds only the
// root position.
func (g *Game) Pop() {
	debugAssert(len(g.stack) > 1, "Game.Pop: stack underflow")
	if len(g.stack) > 1 {
		g.stack = g.stack[:len(g.stack)-1]
	}
}
