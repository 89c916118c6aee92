// Package perft implements the standard move-generator correctness check:
// walk the legal-move tree to a fixed depth and count leaf nodes, comparing
// the result against https://www.chessprogramming.org/Perft_Results.
package perft

import (
	"github.com/corvidchess/corvid/movegen"
	"github.com/corvidchess/corvid/position"
)

// Counts breaks a perft node count down by the kind of move that produced
// each leaf, mirroring the categories chessprogramming.org
// publishes alongside the raw node counts. Populated only by CountsAt;
// Perft only tracks the Nodes total, since the breakdown roughly doubles
// the work (an extra branch per move) for no benefit when all that's
// wanted is a node count to diff against a known-good value.
type Counts struct {
	Nodes      int
	Captures   int
	EnPassant  int
	Castles    int
	Promotions int
	Checks     int
	Checkmates int
}

// Perft returns the number of leaf nodes reachable from p in exactly depth
// plies, generating only legal moves at the root and every internal node.
func Perft(p *position.Position, depth int) int {
	if depth == 0 {
		return 1
	}
	g := position.NewGame(*p)
	nodes := 0
	for _, m := range movegen.GenLegalMoves(p) {
		movegen.MakeMove(g, m)
		nodes += Perft(g.Current(), depth-1)
		movegen.UndoMove(g)
	}
	return nodes
}

// Divide returns, for each legal move at the root, the perft count of the
// subtree below it — the standard technique for bisecting a move generator
// bug against a reference engine's divide output.
func Divide(p *position.Position, depth int) map[string]int {
	out := make(map[string]int)
	if depth == 0 {
		return out
	}
	g := position.NewGame(*p)
	for _, m := range movegen.GenLegalMoves(p) {
		movegen.MakeMove(g, m)
		out[movegen.MoveToCAN(m)] = Perft(g.Current(), depth-1)
		movegen.UndoMove(g)
	}
	return out
}

// CountsAt walks the same tree as Perft but tallies move-kind statistics at
// the leaves' parent ply (depth 1 from the bottom), for the verbose
// perft(n) breakdowns chessprogramming.org publishes for the standard test
// positions.
func CountsAt(p *position.Position, depth int) Counts {
	var c Counts
	countsAt(p, depth, &c)
	return c
}

func countsAt(p *position.Position, depth int, c *Counts) {
	if depth == 0 {
		c.Nodes++
		return
	}
	g := position.NewGame(*p)
	for _, m := range movegen.GenLegalMoves(p) {
		if depth == 1 {
			if m.IsCapture() {
				c.Captures++
			}
			if m.IsEnPassant() {
				c.EnPassant++
			}
			if m.IsCastle() {
				c.Castles++
			}
			if m.IsPromotion() {
				c.Promotions++
			}
		}
		movegen.MakeMove(g, m)
		after := g.Current()
		if depth == 1 {
			legalReplies := movegen.GenLegalMoves(after)
			if movegen.IsInCheck(after) {
				c.Checks++
				if len(legalReplies) == 0 {
					c.Checkmates++
				}
			}
		}
		countsAt(after, depth-1, c)
		movegen.UndoMove(g)
	}
}
