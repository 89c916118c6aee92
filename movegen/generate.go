package movegen

import (
	"github.com/corvidchess/corvid/attack"
	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/types"
)

// promotionKinds lists the four pieces a pawn may promote to, most valuable
// first so genPawnMoves pushes queen promotions ahead of underpromotions.
var promotionKinds = [4]types.PieceKind{types.Queen, types.Rook, types.Bishop, types.Knight}

func promotionMoveKind(k types.PieceKind, capture bool) move.Kind {
	base := move.Kind(0)
	switch k {
	case types.Knight:
		base = move.KnightPromotion
	case types.Bishop:
		base = move.BishopPromotion
	case types.Rook:
		base = move.RookPromotion
	default:
		base = move.QueenPromotion
	}
	if capture {
		return base | move.Capture
	}
	return base
}

// Generate appends every pseudo-legal move of the position to the right of
// two lists: captures (including promotion-captures and en passant) and
// quiets (including plain promotions and castling). Equivalent to calling
// GenCaptures then GenQuiets; use those directly where only one half is
// wanted, so a capture-stage cutoff never touches quiet generation.
func Generate(p *position.Position, captures, quiets *move.List) {
	GenCaptures(p, captures)
	GenQuiets(p, quiets)
}

// GenCaptures appends every pseudo-legal capture of p (including
// en-passant and promotion-captures) to captures, scored by MVV-LVA with a
// GoodCaptureScore bonus when the capture's SEE is non-negative. Does not
// touch quiet moves at all, so the Capture stage of the staged pipeline
// (and NextCapture, its quiescence-search entry point) never pays for
// quiet-move generation.
func GenCaptures(p *position.Position, captures *move.List) {
	genPawnMoves(p, captures, nil)
	genPieceMoves(p, types.Knight, captures, nil)
	genPieceMoves(p, types.Bishop, captures, nil)
	genPieceMoves(p, types.Rook, captures, nil)
	genPieceMoves(p, types.Queen, captures, nil)
	genKingMoves(p, captures, nil)
	captures.Generated = true
}

// GenQuiets appends every pseudo-legal quiet move of p (including plain
// promotions and castling) to quiets. Does not touch captures.
func GenQuiets(p *position.Position, quiets *move.List) {
	genPawnMoves(p, nil, quiets)
	genPieceMoves(p, types.Knight, nil, quiets)
	genPieceMoves(p, types.Bishop, nil, quiets)
	genPieceMoves(p, types.Rook, nil, quiets)
	genPieceMoves(p, types.Queen, nil, quiets)
	genKingMoves(p, nil, quiets)
	quiets.Generated = true
}

// genPawnMoves appends p's pseudo-legal pawn moves to captures and quiets.
// Either list may be nil, in which case the moves that would have gone
// there are skipped rather than generated.
func genPawnMoves(p *position.Position, captures, quiets *move.List) {
	side := p.ActiveColor
	pawns := p.Bitboards[types.MakePiece(types.Pawn, side)]
	enemies := p.ColorBB[1^side]
	empty := ^p.Occupied

	dir, startRank, promoRank := bitboard.Up, bitboard.Rank2, bitboard.Rank8
	if side == types.Black {
		dir, startRank, promoRank = bitboard.Down, bitboard.Rank7, bitboard.Rank1
	}

	epBB := bitboard.Board(0)
	if p.EPTarget != types.OutOfBoard {
		epBB = bitboard.Set(0, p.EPTarget)
	}

	for pawns != 0 {
		from := bitboard.PopLSB(&pawns)
		fromBB := bitboard.Board(1) << uint(from)

		if quiets != nil {
			to := from + dir
			toBB := bitboard.Board(1) << uint(to)
			if toBB&empty != 0 {
				if toBB&promoRank != 0 {
					for _, k := range promotionKinds {
						quiets.PushQuiet(move.New(from, to, promotionMoveKind(k, false)))
					}
				} else {
					quiets.PushQuiet(move.New(from, to, move.Quiet))
					if fromBB&startRank != 0 {
						dbl := from + 2*dir
						if (bitboard.Board(1)<<uint(dbl))&empty != 0 {
							quiets.PushQuiet(move.New(from, dbl, move.DoublePawnPush))
						}
					}
				}
			}
		}

		if captures == nil {
			continue
		}
		atk := attack.PawnAttacks[side][from] & (enemies | epBB)
		for atk != 0 {
			dst := bitboard.PopLSB(&atk)
			dstBB := bitboard.Board(1) << uint(dst)
			switch {
			case dstBB&promoRank != 0:
				for _, k := range promotionKinds {
					m := move.New(from, dst, promotionMoveKind(k, true))
					captures.Push(m, scoreCapture(p, m, p.PieceAt(dst), types.Pawn))
				}
			case dstBB&epBB != 0:
				m := move.New(from, dst, move.EnPassant)
				captures.Push(m, scoreCapture(p, m, types.MakePiece(types.Pawn, 1^side), types.Pawn))
			default:
				m := move.New(from, dst, move.Capture)
				captures.Push(m, scoreCapture(p, m, p.PieceAt(dst), types.Pawn))
			}
		}
	}
}

// genPieceMoves appends p's pseudo-legal moves for the knight/bishop/rook/
// queen of kind to captures and quiets. Either list may be nil.
func genPieceMoves(p *position.Position, kind types.PieceKind, captures, quiets *move.List) {
	side := p.ActiveColor
	pieces := p.Bitboards[types.MakePiece(kind, side)]
	allies := p.ColorBB[side]
	enemies := p.ColorBB[1^side]

	for pieces != 0 {
		from := bitboard.PopLSB(&pieces)
		dests := attack.PieceAttacks(types.MakePiece(kind, side), from, p.Occupied) &^ allies

		for dests != 0 {
			to := bitboard.PopLSB(&dests)
			if bitboard.Get(enemies, to) {
				if captures == nil {
					continue
				}
				m := move.New(from, to, move.Capture)
				captures.Push(m, scoreCapture(p, m, p.PieceAt(to), kind))
			} else if quiets != nil {
				quiets.PushQuiet(move.New(from, to, move.Quiet))
			}
		}
	}
}

// genKingMoves appends p's pseudo-legal king moves, including castling, to
// captures and quiets. Either list may be nil; castling moves are quiet
// moves and are skipped along with the rest of quiets when quiets is nil.
func genKingMoves(p *position.Position, captures, quiets *move.List) {
	side := p.ActiveColor
	kingBB := p.Bitboards[types.MakePiece(types.King, side)]
	if kingBB == 0 {
		return
	}
	from := bitboard.Scan(kingBB)
	allies := p.ColorBB[side]
	enemies := p.ColorBB[1^side]

	dests := attack.KingAttacks[from] &^ allies
	for dests != 0 {
		to := bitboard.PopLSB(&dests)
		if bitboard.Get(enemies, to) {
			if captures == nil {
				continue
			}
			m := move.New(from, to, move.Capture)
			captures.Push(m, scoreCapture(p, m, p.PieceAt(to), types.King))
		} else if quiets != nil {
			quiets.PushQuiet(move.New(from, to, move.Quiet))
		}
	}

	if quiets != nil {
		genCastles(p, from, quiets)
	}
}

// castlingPath is the king's own square plus the squares that must be
// empty for the castle (the king's square is the only one of them that
// may be occupied), indexed by the bit position of the
// relevant types.CastlingWhiteKing/.../CastlingBlackQueen right.
var castlingPath = [4]bitboard.Board{
	0x70, 0x1E, 0x7000000000000000, 0x1E00000000000000,
}

// castlingAttackPath is the set of squares that must not be attacked by
// the opponent for the castle to be legal. Differs from castlingPath on
// the queen side, where B1/B8 may be attacked (the rook, not the king,
// crosses it).
var castlingAttackPath = [4]bitboard.Board{
	0x70, 0x1C, 0x7000000000000000, 0x1C00000000000000,
}

var castlingKingDest = [4]int{types.G1, types.C1, types.G8, types.C8}
var castlingKind = [4]move.Kind{move.KingCastle, move.QueenCastle, move.KingCastle, move.QueenCastle}

func genCastles(p *position.Position, kingSq int, quiets *move.List) {
	side := p.ActiveColor
	rights := [2]types.CastlingRights{types.CastlingWhiteKing, types.CastlingWhiteQueen}
	pathIdx := [2]int{0, 1}
	if side == types.Black {
		rights = [2]types.CastlingRights{types.CastlingBlackKing, types.CastlingBlackQueen}
		pathIdx = [2]int{2, 3}
	}

	boards := p.Boards()
	for i := 0; i < 2; i++ {
		right := rights[i]
		idx := pathIdx[i]
		if p.CastlingRights&right == 0 {
			continue
		}
		if p.Occupied&castlingPath[idx] != bitboard.Board(1)<<uint(kingSq) {
			continue
		}
		if attackedAnywhere(boards, castlingAttackPath[idx], 1^side) {
			continue
		}
		quiets.PushQuiet(move.New(kingSq, castlingKingDest[idx], castlingKind[idx]))
	}
}

func attackedAnywhere(b attack.Boards, squares bitboard.Board, bySide types.Color) bool {
	for squares != 0 {
		sq := bitboard.PopLSB(&squares)
		if attack.IsAttacked(b, sq, bySide) {
			return true
		}
	}
	return false
}

// GenLegalMoves returns every legal move available to the side to move in
// p: generates pseudo-legal moves (already structurally valid, since they
// came from Generate) and filters them with IsSafeMove, which is the only
// thing left to check. Convenient for perft and tests; the staged pipeline
// in stage.go is what search uses on the hot path, since it avoids
// generating and discarding quiet moves once a cutoff has already been
// found among the captures.
func GenLegalMoves(p *position.Position) []move.Move {
	var captures, quiets move.List
	Generate(p, &captures, &quiets)

	legal := make([]move.Move, 0, captures.Length+quiets.Length)
	for _, l := range [2]*move.List{&captures, &quiets} {
		for i := 0; i < l.Length; i++ {
			m := l.Moves[i].M
			if IsSafeMove(p, m) {
				legal = append(legal, m)
			}
		}
	}
	return legal
}
