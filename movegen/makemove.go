// Package movegen implements pseudo-legal and legal move generation, the
// make/unmake machinery that drives search, and the staged move-ordering
// pipeline (MVV-LVA, SEE, killer moves) search relies on to cut more nodes.
//
// Package movegen is the one package that depends on attack, bitboard,
// move, position and types together; it is the top of the core's
// dependency chain.
package movegen

import (
	"github.com/corvidchess/corvid/attack"
	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/types"
)

// rightsLostAt maps a square to the castling rights that are permanently
// lost the moment a piece leaves or arrives there: the four rook corners
// and the two king home squares. Applied to both the move's from-square
// (a rook or king moving away) and to-square (a rook being captured on its
// home corner).
var rightsLostAt = func() [64]types.CastlingRights {
	var r [64]types.CastlingRights
	r[types.E1] = types.CastlingWhiteKing | types.CastlingWhiteQueen
	r[types.A1] = types.CastlingWhiteQueen
	r[types.H1] = types.CastlingWhiteKing
	r[types.E8] = types.CastlingBlackKing | types.CastlingBlackQueen
	r[types.A8] = types.CastlingBlackQueen
	r[types.H8] = types.CastlingBlackKing
	return r
}()

// castleRookMove gives the rook's from/to squares for each king destination
// square of a castling move.
var castleRookMove = map[int][2]int{
	types.G1: {types.H1, types.F1},
	types.C1: {types.A1, types.D1},
	types.G8: {types.H8, types.F8},
	types.C8: {types.A8, types.D8},
}

// MakeMove applies m to the position at the top of g's stack, pushing the
// resulting position as the new top of stack. m is assumed pseudo-legal;
// king safety is the caller's responsibility, checked separately via
// IsSafeMove so illegal tries can be rejected before the (relatively
// expensive) copy is committed to.
func MakeMove(g *position.Game, m move.Move) {
	cur := g.Current()
	next := *cur

	from, to := m.From(), m.To()
	moved := cur.PieceAt(from)
	side := cur.ActiveColor
	captured := types.PieceNone

	if cur.EPTarget != types.OutOfBoard {
		next.Hash ^= position.EPKey(cur.EPTarget)
	}
	next.EPTarget = types.OutOfBoard
	next.HalfmoveClock++

	next.RemovePiece(moved, from)

	switch {
	case m.IsEnPassant():
		next.PlacePiece(moved, to)
		capSq := to + 8
		if side == types.White {
			capSq = to - 8
		}
		captured = types.MakePiece(types.Pawn, 1^side)
		next.RemovePiece(captured, capSq)
		next.HalfmoveClock = 0

	case m.IsCastle():
		next.PlacePiece(moved, to)
		rook := castleRookMove[to]
		rookPiece := types.MakePiece(types.Rook, side)
		next.RemovePiece(rookPiece, rook[0])
		next.PlacePiece(rookPiece, rook[1])

	case m.IsPromotion():
		if m.IsCapture() {
			captured = next.PieceAt(to)
			next.RemovePiece(captured, to)
			next.HalfmoveClock = 0
		}
		next.PlacePiece(types.MakePiece(m.PromotionKind(), side), to)

	default:
		if m.IsCapture() {
			captured = next.PieceAt(to)
			next.RemovePiece(captured, to)
			next.HalfmoveClock = 0
		}
		next.PlacePiece(moved, to)
	}

	if types.Kind(moved) == types.Pawn {
		next.HalfmoveClock = 0
		if to-from == 16 || from-to == 16 {
			ep := (from + to) / 2
			next.EPTarget = ep
			next.Hash ^= position.EPKey(ep)
		}
	}

	if lost := rightsLostAt[from] | rightsLostAt[to]; next.CastlingRights&lost != 0 {
		oldRights := next.CastlingRights
		next.CastlingRights &^= lost
		next.Hash ^= position.CastlingKey(oldRights) ^ position.CastlingKey(next.CastlingRights)
		next.HalfmoveClock = 0
	}

	if side == types.Black {
		next.FullmoveNumber++
	}
	next.ActiveColor = 1 ^ side
	next.Hash ^= position.SideKey()
	next.Captured = captured

	g.Push(next)
}

// UndoMove restores the position as it was before the most recent MakeMove.
// Correct by construction: MakeMove never mutates the previous top of
// stack, it only computes and pushes a new one, so undoing is simply
// discarding it.
func UndoMove(g *position.Game) {
	g.Pop()
}

// IsLegalMove reports whether m is structurally admissible in p: not the
// null move, its origin holds a piece of the side to move whose kind
// matches m's encoding, its en-passant/castle/double-push special cases
// check out, and otherwise the moved piece's attack set from its square
// reaches the destination with capture semantics matching the
// destination's occupancy. It does not simulate m or check whether the
// mover's own king ends up in check — that's IsSafeMove. IsLegalMove is
// what Generator.Next uses to admit an externally supplied best move or
// killer move before handing it to a caller, since those arrive without
// having passed through pseudo-legal generation and may be stale or
// outright garbage (a move left over from a transposition-table entry
// computed in a different position).
func IsLegalMove(p *position.Position, m move.Move) bool {
	if m.IsNull() {
		return false
	}

	from, to := m.From(), m.To()
	moved := p.PieceAt(from)
	if moved == types.PieceNone || types.PieceColor(moved) != p.ActiveColor {
		return false
	}
	movedKind := types.Kind(moved)

	switch {
	case m.IsCastle():
		return movedKind == types.King && isLegalCastle(p, from, m)

	case m.IsEnPassant():
		return movedKind == types.Pawn && isLegalEnPassant(p, from, to)

	case m.Kind() == move.DoublePawnPush:
		return movedKind == types.Pawn && isLegalDoublePawnPush(p, from, to)

	case movedKind == types.Pawn:
		if m.IsPromotion() && !isPromotionRank(p.ActiveColor, to) {
			return false
		}
		return isLegalPawnStep(p, from, to, m.IsCapture())

	default:
		if m.IsPromotion() {
			return false
		}
		return isLegalPieceMove(p, moved, from, to, m.IsCapture())
	}
}

// isLegalPieceMove checks a non-pawn move's destination against the piece's
// attack set from its square, and that the capture flag agrees with what
// actually sits on the destination square.
func isLegalPieceMove(p *position.Position, moved types.Piece, from, to int, isCapture bool) bool {
	dests := attack.PieceAttacks(moved, from, p.Occupied)
	if dests&(bitboard.Board(1)<<uint(to)) == 0 {
		return false
	}
	target := p.PieceAt(to)
	if isCapture {
		return target != types.PieceNone && types.PieceColor(target) != p.ActiveColor
	}
	return target == types.PieceNone
}

// isLegalPawnStep checks a plain (non-double, non-en-passant) pawn move: a
// diagonal capture onto an enemy-occupied square, or a single push onto an
// empty one.
func isLegalPawnStep(p *position.Position, from, to int, isCapture bool) bool {
	if isCapture {
		if attack.PawnAttacks[p.ActiveColor][from]&(bitboard.Board(1)<<uint(to)) == 0 {
			return false
		}
		target := p.PieceAt(to)
		return target != types.PieceNone && types.PieceColor(target) != p.ActiveColor
	}
	dir := bitboard.Up
	if p.ActiveColor == types.Black {
		dir = bitboard.Down
	}
	return to == from+dir && p.PieceAt(to) == types.PieceNone
}

// isLegalDoublePawnPush checks that from holds a pawn still on its start
// rank, both squares in front of it are empty, and to is exactly two
// squares ahead.
func isLegalDoublePawnPush(p *position.Position, from, to int) bool {
	side := p.ActiveColor
	startRank, dir := 1, bitboard.Up
	if side == types.Black {
		startRank, dir = 6, bitboard.Down
	}
	if from/8 != startRank || to != from+2*dir {
		return false
	}
	mid := from + dir
	return p.PieceAt(mid) == types.PieceNone && p.PieceAt(to) == types.PieceNone
}

// isLegalEnPassant checks that to is the position's recorded en-passant
// target and that from's pawn attacks it diagonally.
func isLegalEnPassant(p *position.Position, from, to int) bool {
	if to != p.EPTarget {
		return false
	}
	return attack.PawnAttacks[p.ActiveColor][from]&(bitboard.Board(1)<<uint(to)) != 0
}

// isLegalCastle re-derives the same path/attack checks genCastles uses to
// decide whether to generate a castle, against the specific move offered
// rather than producing every castle the position allows.
func isLegalCastle(p *position.Position, from int, m move.Move) bool {
	side := p.ActiveColor
	kingHome := types.E1
	if side == types.Black {
		kingHome = types.E8
	}
	if from != kingHome {
		return false
	}

	right := types.CastlingWhiteKing
	idx := 0
	switch {
	case side == types.White && m.CastleSide() == types.CastleKing:
		right, idx = types.CastlingWhiteKing, 0
	case side == types.White:
		right, idx = types.CastlingWhiteQueen, 1
	case m.CastleSide() == types.CastleKing:
		right, idx = types.CastlingBlackKing, 2
	default:
		right, idx = types.CastlingBlackQueen, 3
	}
	if p.CastlingRights&right == 0 {
		return false
	}
	if m.To() != castlingKingDest[idx] {
		return false
	}
	if p.Occupied&castlingPath[idx] != bitboard.Board(1)<<uint(from) {
		return false
	}
	return !attackedAnywhere(p.Boards(), castlingAttackPath[idx], 1^side)
}

// isPromotionRank reports whether sq is the back rank side's pawns promote
// on.
func isPromotionRank(side types.Color, sq int) bool {
	if side == types.White {
		return sq/8 == 7
	}
	return sq/8 == 0
}

// IsSafeMove reports whether the side to move's king is safe after m is
// made, i.e. whether a pseudo-legal m is fully legal. Rejects m without
// leaving it applied: it makes the move on a scratch copy of the game
// stack's top position, inspects check, and discards the result. Callers
// that already know m is structurally valid (anything that came out of
// GenCaptures/GenQuiets) only need this, not IsLegalMove.
func IsSafeMove(p *position.Position, m move.Move) bool {
	scratch := position.NewGame(*p)
	MakeMove(scratch, m)
	after := scratch.Current()
	return !attack.IsCheck(after.Boards(), p.ActiveColor)
}

// IsInCheck reports whether the side to move's king is currently attacked.
func IsInCheck(p *position.Position) bool {
	return attack.IsCheck(p.Boards(), p.ActiveColor)
}
