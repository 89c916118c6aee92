package movegen

import (
	"github.com/corvidchess/corvid/attack"
	"github.com/corvidchess/corvid/bitboard"
	"github.com/corvidchess/corvid/move"
	"github.com/corvidchess/corvid/position"
	"github.com/corvidchess/corvid/types"
)

// mvvLvaScore ranks a capture by Most Valuable Victim, Least Valuable
// Attacker: 8*victim - attacker with piece kinds counted from 1 (pawn=1 ..
// king=6), so a pawn taking a queen always outranks a queen taking a pawn
// regardless of the absolute piece values involved.
func mvvLvaScore(victim types.Piece, attackerKind types.PieceKind) int32 {
	victimKind := types.King
	if victim != types.PieceNone {
		victimKind = types.Kind(victim)
	}
	return int32(8*(victimKind+1) - (attackerKind + 1))
}

// GoodCaptureScore is the bonus scoreCapture adds to a capture's MVV-LVA
// score when the capture's SEE is non-negative (a "good", non-losing
// trade). It doubles as the threshold NextCapture compares a List's
// remaining top score against: since the bonus dwarfs MVV-LVA's narrow
// range (8*Queen-Pawn=39 down to 8*Pawn-King=2), every good capture
// scores at or above GoodCaptureScore and every losing one scores below
// it, so comparing the combined score against this one constant is enough
// to tell them apart without recomputing SEE.
const GoodCaptureScore int32 = 1 << 16

// scoreCapture combines MVV-LVA with the GoodCaptureScore bonus for a
// capture whose net material exchange (per SEE) is not a loser.
func scoreCapture(p *position.Position, m move.Move, victim types.Piece, attackerKind types.PieceKind) int32 {
	score := mvvLvaScore(victim, attackerKind)
	if SEE(p, m) >= 0 {
		score += GoodCaptureScore
	}
	return score
}

// pieceValue gives the classic material value of a piece kind, used by SEE.
// Mirrors types.PieceWeights but indexed defensively against PieceNone.
func pieceValue(k types.PieceKind) int {
	if k < 0 || k > types.King {
		return 0
	}
	return types.PieceWeights[k]
}

// SEE performs static exchange evaluation of the capture sequence on m's
// destination square, returning the net material gain (in pawns) for the
// side to move if the exchange is played out to its conclusion with both
// sides always recapturing with their least valuable attacker. Used to
// separate winning captures from losing ones without a full search.
//
// The "gain array" algorithm: walk the sequence of captures on the target
// square from least-valuable-attacker to least-valuable-attacker, then fold
// the gain array backwards with a minimax (each side may stop capturing
// whenever continuing would lose material).
func SEE(p *position.Position, m move.Move) int {
	if m.IsEnPassant() {
		return types.PieceWeights[types.Pawn]
	}

	var gain [32]int
	depth := 0

	to := m.To()
	from := m.From()
	movedKind := types.Kind(p.PieceAt(from))
	side := p.ActiveColor

	occupied := p.Occupied
	boards := p.Boards()

	attackers := attack.AttacksTo(boards, to, occupied)

	victim := p.PieceAt(to)
	victimKind := types.Pawn // non-capture SEE probes (e.g. a quiet promotion square) fall back to pawn-equivalent gain
	if victim != types.PieceNone {
		victimKind = types.Kind(victim)
	}
	gain[depth] = pieceValue(victimKind)

	side = 1 ^ side
	for {
		depth++
		gain[depth] = pieceValue(movedKind) - gain[depth-1]

		if max(-gain[depth-1], gain[depth]) < 0 {
			break
		}

		attackers &^= bitboard.Board(1) << uint(from)
		occupied &^= bitboard.Board(1) << uint(from)
		attackers |= revealedAttackers(boards, to, occupied)

		next, nextKind, ok := leastValuableAttacker(boards, attackers, side)
		if !ok {
			break
		}
		from = next
		movedKind = nextKind
		side = 1 ^ side
	}

	// gain[depth] is a speculative recapture that was either pruned or has
	// no attacker behind it, so the fold starts one entry below it.
	for depth--; depth > 0; depth-- {
		gain[depth-1] = -max(-gain[depth-1], gain[depth])
	}
	return gain[0]
}

func revealedAttackers(b attack.Boards, sq int, occupied bitboard.Board) bitboard.Board {
	bishopsQueens := b.Pieces[types.PieceWBishop] | b.Pieces[types.PieceBBishop] |
		b.Pieces[types.PieceWQueen] | b.Pieces[types.PieceBQueen]
	rooksQueens := b.Pieces[types.PieceWRook] | b.Pieces[types.PieceBRook] |
		b.Pieces[types.PieceWQueen] | b.Pieces[types.PieceBQueen]

	return (attack.BishopAttacks(sq, occupied) & bishopsQueens & occupied) |
		(attack.RookAttacks(sq, occupied) & rooksQueens & occupied)
}

// leastValuableAttacker returns the square and kind of side's cheapest
// remaining attacker in the attackers bitboard, or ok=false if side has
// none.
func leastValuableAttacker(b attack.Boards, attackers bitboard.Board, side types.Color) (sq int, kind types.PieceKind, ok bool) {
	for k := types.Pawn; k <= types.King; k++ {
		bb := attackers & b.Pieces[types.MakePiece(k, side)]
		if bb != 0 {
			return bitboard.Scan(bb), k, true
		}
	}
	return 0, 0, false
}

